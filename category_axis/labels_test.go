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

package categoryaxis

import (
	"fmt"
	"testing"

	"github.com/LukasDrgon/incubator-echarts/category"
	"github.com/LukasDrgon/incubator-echarts/label"
	"github.com/google/go-cmp/cmp"
)

func TestFormatLabels(t *testing.T) {
	shout := label.Func(func(v any) string {
		return fmt.Sprintf("%v!", v)
	})
	for _, test := range []struct {
		description   string
		data          []category.Entry
		axisFormatter label.Formatter
		want          []string
	}{{
		description: "no formatter",
		data:        category.Entries("Mon", "Tue"),
		want:        []string{"Mon", "Tue"},
	}, {
		description: "numbers",
		data:        category.Entries(0, 1, 2),
		want:        []string{"0", "1", "2"},
	}, {
		description:   "zero-valued record with a template",
		data:          []category.Entry{category.Record(0)},
		axisFormatter: label.Template("{value}"),
		want:          []string{"0"},
	}, {
		description:   "axis template",
		data:          category.Entries[any](1, 2.5, "x"),
		axisFormatter: label.Template("{value} h"),
		want:          []string{"1 h", "2.5 h", "x h"},
	}, {
		description: "category formatter overrides the axis formatter",
		data: []category.Entry{
			category.Record("a", category.WithFormatter(shout)),
			category.Raw("b"),
		},
		axisFormatter: label.Template("<{value}>"),
		want:          []string{"a!", "<b>"},
	}, {
		description: "record without a value",
		data:        []category.Entry{category.Record(nil), category.Record(false)},
		want:        []string{"", "false"},
	}} {
		t.Run(test.description, func(t *testing.T) {
			got := formatLabels(test.data, test.axisFormatter)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("formatLabels() = %v, diff (-want +got):\n%s", got, diff)
			}
		})
	}
}

func TestApproximateMeasurer(t *testing.T) {
	for _, test := range []struct {
		text, font string
		want       float64
	}{
		{"", "normal normal 12px Arial", 0},
		{"Mon", "normal normal 10px Arial", 18},
		{"日本", "bold 20px Go", 24},
	} {
		if got := (approximateMeasurer{}).TextWidth(test.text, test.font); got != test.want {
			t.Errorf("TextWidth(%q, %q) = %v, want %v", test.text, test.font, got, test.want)
		}
	}
}
