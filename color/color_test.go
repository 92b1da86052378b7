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

package color

import (
	"testing"

	testutil "github.com/LukasDrgon/incubator-echarts/test_util"
	"github.com/LukasDrgon/incubator-echarts/util"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestListAt(t *testing.T) {
	for _, test := range []struct {
		description string
		list        List
		wantColors  []string
		wantCycle   bool
	}{{
		description: "unset",
		list:        List{},
		wantColors:  []string{"", "", ""},
	}, {
		description: "single",
		list:        Single("#ccc"),
		wantColors:  []string{"#ccc", "#ccc", "#ccc"},
	}, {
		description: "cycle of two",
		list:        Cycle("red", "blue"),
		wantColors:  []string{"red", "blue", "red"},
		wantCycle:   true,
	}, {
		description: "cycle of one",
		list:        Cycle("red"),
		wantColors:  []string{"red", "red", "red"},
		wantCycle:   true,
	}} {
		t.Run(test.description, func(t *testing.T) {
			got := []string{}
			for i := 0; i < 3; i++ {
				got = append(got, test.list.At(i))
			}
			if diff := cmp.Diff(test.wantColors, got); diff != "" {
				t.Errorf("At() yielded %v, diff (-want +got):\n%s", got, diff)
			}
			if test.list.IsCycle() != test.wantCycle {
				t.Errorf("IsCycle() = %t, want %t", test.list.IsCycle(), test.wantCycle)
			}
		})
	}
}

func TestListYAML(t *testing.T) {
	for _, test := range []struct {
		description string
		doc         string
		want        List
		wantErr     bool
	}{{
		description: "scalar is single",
		doc:         "color: '#ccc'",
		want:        Single("#ccc"),
	}, {
		description: "sequence is cycle",
		doc:         "color: [red, blue]",
		want:        Cycle("red", "blue"),
	}, {
		description: "mapping is an error",
		doc:         "color: {r: 1}",
		wantErr:     true,
	}} {
		t.Run(test.description, func(t *testing.T) {
			var got struct {
				Color List `yaml:"color"`
			}
			err := yaml.Unmarshal([]byte(test.doc), &got)
			if (err != nil) != test.wantErr {
				t.Fatalf("yaml.Unmarshal() yielded error %v, want error %t", err, test.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(test.want, got.Color, cmp.AllowUnexported(List{})); diff != "" {
				t.Errorf("yaml.Unmarshal() yielded %v, diff (-want +got):\n%s", got.Color, diff)
			}
		})
	}
}

func TestColorDeclarations(t *testing.T) {
	for _, test := range []struct {
		description string
		update      util.PropertyUpdate
		wantUpdates []util.PropertyUpdate
	}{{
		description: "stroke and fill",
		update:      util.Chain(Stroke("#48b"), Fill("white")),
		wantUpdates: []util.PropertyUpdate{
			util.StringProperty(strokeColorKey, "#48b"),
			util.StringProperty(fillColorKey, "white"),
		},
	}, {
		description: "empty colors are omitted",
		update:      util.Chain(Stroke(""), Fill("")),
	}, {
		description: "list definition",
		update:      Cycle("red", "blue").Define(),
		wantUpdates: []util.PropertyUpdate{
			util.StringsProperty(colorsKey, "red", "blue"),
		},
	}} {
		t.Run(test.description, func(t *testing.T) {
			if msg, failed := testutil.NewUpdateComparator().
				WithTestUpdates(test.update).
				WithWantUpdates(test.wantUpdates...).
				Compare(t); failed {
				t.Fatal(msg)
			}
		})
	}
}
