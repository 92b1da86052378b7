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

// Package querydispatcher provides QueryDispatcher, which routes the series
// of a data request to the data sources able to lay them out.
package querydispatcher

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/LukasDrgon/incubator-echarts/util"
	"golang.org/x/sync/errgroup"
)

// dataSource answers one or more named data series queries.  dataSource
// instances must support concurrent HandleDataSeriesRequests calls.
type dataSource interface {
	// SupportedDataSeriesQueries returns the DataSeriesRequest query names
	// this dataSource handles.  Query names must be unique across all
	// dataSources in a QueryDispatcher, so should be namespaced, e.g.
	// 'axis.category_layout'.
	SupportedDataSeriesQueries() []string
	// HandleDataSeriesRequests handles a set of DataSeriesRequests with the
	// supplied global filters, adding one DataSeries per request to the
	// provided DataResponseBuilder.  Any returned error fails the entire
	// DataRequest.
	HandleDataSeriesRequests(ctx context.Context, globalFilters map[string]*util.V, drb *util.DataResponseBuilder, reqs []*util.DataSeriesRequest) error
}

// QueryDispatcher multiplexes several dataSources behind a single request
// entry point.
type QueryDispatcher struct {
	dataSources []dataSource
	// Maps query names to the index, in dataSources, of their handler.
	handlers map[string]int
}

// New returns a *QueryDispatcher wrapping the provided dataSources.  It
// fails if two dataSources claim the same query.
func New(dss ...dataSource) (*QueryDispatcher, error) {
	qd := &QueryDispatcher{
		handlers: map[string]int{},
	}
	for dsIdx, ds := range dss {
		qd.dataSources = append(qd.dataSources, ds)
		for _, queryName := range ds.SupportedDataSeriesQueries() {
			if _, ok := qd.handlers[queryName]; ok {
				return nil, fmt.Errorf("multiple data sources handle query `%s`", queryName)
			}
			qd.handlers[queryName] = dsIdx
		}
	}
	return qd, nil
}

// SupportedQueries returns every query name the receiver can dispatch, in
// sorted order.
func (qd *QueryDispatcher) SupportedQueries() []string {
	ret := make([]string, 0, len(qd.handlers))
	for queryName := range qd.handlers {
		ret = append(ret, queryName)
	}
	sort.Strings(ret)
	return ret
}

// HandleDataRequest groups the provided DataRequest's series requests by the
// dataSource handling them, runs each group concurrently, and assembles the
// resulting series into a single Data response.
func (qd *QueryDispatcher) HandleDataRequest(ctx context.Context, req *util.DataRequest) (*util.Data, error) {
	drb := util.NewDataResponseBuilder()
	groupedReqs := map[int][]*util.DataSeriesRequest{}
	for _, seriesReq := range req.SeriesRequests {
		dsIdx, ok := qd.handlers[seriesReq.QueryName]
		if !ok {
			return nil, fmt.Errorf("unsupported data query `%s`", seriesReq.QueryName)
		}
		groupedReqs[dsIdx] = append(groupedReqs[dsIdx], seriesReq)
	}
	errg, ctx := errgroup.WithContext(ctx)
	for dsIdx, seriesReqs := range groupedReqs {
		ds := qd.dataSources[dsIdx]
		errg.Go(func() error {
			return ds.HandleDataSeriesRequests(ctx, req.GlobalFilters, drb, seriesReqs)
		})
	}
	if err := errg.Wait(); err != nil {
		slog.Warn("data request failed", "series", len(req.SeriesRequests), "err", err)
		return nil, err
	}
	return drb.Data()
}
