/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package querydispatcher

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/LukasDrgon/incubator-echarts/util"
	"github.com/google/go-cmp/cmp"
)

const collectionNameKey = "collection_name"

type testDataSource struct {
	queries []string

	mu      sync.Mutex
	handled map[string]int
}

func newTestDataSource(queries ...string) *testDataSource {
	return &testDataSource{
		queries: queries,
		handled: map[string]int{},
	}
}

func (tds *testDataSource) SupportedDataSeriesQueries() []string {
	return tds.queries
}

// HandleDataSeriesRequests fails for the collection 'error', and otherwise
// answers each request with an empty series.
func (tds *testDataSource) HandleDataSeriesRequests(ctx context.Context, globalFilters map[string]*util.V, drb *util.DataResponseBuilder, reqs []*util.DataSeriesRequest) error {
	if v, ok := globalFilters[collectionNameKey]; ok {
		collectionName, err := util.ExpectStringValue(v)
		if err != nil {
			return err
		}
		if collectionName == "error" {
			return errors.New("oops")
		}
	}
	tds.mu.Lock()
	defer tds.mu.Unlock()
	for _, req := range reqs {
		drb.DataSeries(req)
		tds.handled[req.QueryName]++
	}
	return nil
}

var (
	axisQueries  = []string{"axis.category_layout", "axis.category_coords"}
	valueQueries = []string{"axis.value_layout"}
)

func TestQueryDispatcherCreation(t *testing.T) {
	for _, test := range []struct {
		description string
		dataSources []dataSource
		wantQueries []string
		wantErr     bool
	}{{
		description: "single data source",
		dataSources: []dataSource{
			newTestDataSource(axisQueries...),
		},
		wantQueries: []string{"axis.category_coords", "axis.category_layout"},
	}, {
		description: "multiple data sources",
		dataSources: []dataSource{
			newTestDataSource(axisQueries...),
			newTestDataSource(valueQueries...),
		},
		wantQueries: []string{"axis.category_coords", "axis.category_layout", "axis.value_layout"},
	}, {
		description: "supported query conflict",
		dataSources: []dataSource{
			newTestDataSource(axisQueries...),
			newTestDataSource("axis.category_layout"),
		},
		wantErr: true,
	}} {
		t.Run(test.description, func(t *testing.T) {
			qd, err := New(test.dataSources...)
			if test.wantErr != (err != nil) {
				t.Fatalf("Unexpected error creating QueryDispatcher: %s", err)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(test.wantQueries, qd.SupportedQueries()); diff != "" {
				t.Errorf("SupportedQueries() diff (-want +got):\n%s", diff)
			}
		})
	}
}

func emptyDatum() *util.Datum {
	return &util.Datum{
		Properties: map[int64]*util.V{},
		Children:   []*util.Datum{},
	}
}

func TestHandleDataRequest(t *testing.T) {
	for _, test := range []struct {
		description string
		dataSources []dataSource
		req         *util.DataRequest
		wantErr     bool
		wantSeries  []string
		wantHandled []map[string]int
	}{{
		description: "single data source",
		dataSources: []dataSource{
			newTestDataSource(axisQueries...),
		},
		req: &util.DataRequest{
			SeriesRequests: []*util.DataSeriesRequest{{
				QueryName:  "axis.category_layout",
				SeriesName: "1",
			}, {
				QueryName:  "axis.category_coords",
				SeriesName: "2",
			}},
		},
		wantSeries: []string{"1", "2"},
		wantHandled: []map[string]int{
			{"axis.category_layout": 1, "axis.category_coords": 1},
		},
	}, {
		description: "multiple data sources",
		dataSources: []dataSource{
			newTestDataSource(axisQueries...),
			newTestDataSource(valueQueries...),
		},
		req: &util.DataRequest{
			GlobalFilters: map[string]*util.V{
				collectionNameKey: util.StringValue("week"),
			},
			SeriesRequests: []*util.DataSeriesRequest{{
				QueryName:  "axis.category_layout",
				SeriesName: "x",
				Options:    map[string]*util.V{},
			}, {
				QueryName:  "axis.value_layout",
				SeriesName: "y",
				Options:    map[string]*util.V{},
			}, {
				QueryName:  "axis.category_layout",
				SeriesName: "x2",
				Options:    map[string]*util.V{},
			}},
		},
		wantSeries: []string{"x", "x2", "y"},
		wantHandled: []map[string]int{
			{"axis.category_layout": 2},
			{"axis.value_layout": 1},
		},
	}, {
		description: "data source failure",
		dataSources: []dataSource{
			newTestDataSource(axisQueries...),
		},
		req: &util.DataRequest{
			GlobalFilters: map[string]*util.V{
				collectionNameKey: util.StringValue("error"),
			},
			SeriesRequests: []*util.DataSeriesRequest{{
				QueryName:  "axis.category_layout",
				SeriesName: "1",
			}},
		},
		wantErr: true,
	}, {
		description: "unknown query",
		dataSources: []dataSource{
			newTestDataSource(axisQueries...),
		},
		req: &util.DataRequest{
			SeriesRequests: []*util.DataSeriesRequest{{
				QueryName:  "axis.polar_layout",
				SeriesName: "1",
			}},
		},
		wantErr: true,
	}} {
		t.Run(test.description, func(t *testing.T) {
			qd, err := New(test.dataSources...)
			if err != nil {
				t.Fatalf("Unexpected error creating QueryDispatcher: %s", err)
			}
			gotData, err := qd.HandleDataRequest(context.Background(), test.req)
			if test.wantErr != (err != nil) {
				t.Fatalf("HandleDataRequest() yielded unexpected error %v", err)
			}
			if err != nil {
				return
			}
			wantData := &util.Data{StringTable: []string{}}
			for _, seriesName := range test.wantSeries {
				wantData.DataSeries = append(wantData.DataSeries, &util.DataSeries{
					SeriesName: seriesName,
					Root:       emptyDatum(),
				})
			}
			sort.Slice(gotData.DataSeries, func(a, b int) bool {
				return gotData.DataSeries[a].SeriesName < gotData.DataSeries[b].SeriesName
			})
			if diff := cmp.Diff(wantData.PrettyPrint(), gotData.PrettyPrint()); diff != "" {
				t.Errorf("Got data %s, diff (-want +got):\n%s", gotData.PrettyPrint(), diff)
			}
			for idx, want := range test.wantHandled {
				tds := test.dataSources[idx].(*testDataSource)
				if diff := cmp.Diff(want, tds.handled); diff != "" {
					t.Errorf("data source %d handled queries [%s] diff (-want +got):\n%s", idx, strings.Join(tds.queries, ", "), diff)
				}
			}
		})
	}
}
