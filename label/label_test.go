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

package label

import (
	"strings"
	"testing"
)

func TestFormatters(t *testing.T) {
	for _, test := range []struct {
		description string
		formatter   Formatter
		value       any
		want        string
	}{{
		description: "template with zero",
		formatter:   Template("{value}"),
		value:       0,
		want:        "0",
	}, {
		description: "template replaces first placeholder only",
		formatter:   Template("{value} of {value}"),
		value:       "Mon",
		want:        "Mon of {value}",
	}, {
		description: "template with float",
		formatter:   Template("{value}%"),
		value:       12.5,
		want:        "12.5%",
	}, {
		description: "template without placeholder",
		formatter:   Template("fixed"),
		value:       "ignored",
		want:        "fixed",
	}, {
		description: "func",
		formatter: Func(func(v any) string {
			return strings.ToUpper(Display(v))
		}),
		value: "tue",
		want:  "TUE",
	}} {
		t.Run(test.description, func(t *testing.T) {
			if got := test.formatter.Format(test.value); got != test.want {
				t.Errorf("Format(%v) = %q, want %q", test.value, got, test.want)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	for _, test := range []struct {
		value any
		want  string
	}{
		{nil, ""},
		{"", ""},
		{0, "0"},
		{int64(-3), "-3"},
		{2.50, "2.5"},
		{float32(0.5), "0.5"},
		{true, "true"},
	} {
		if got := Display(test.value); got != test.want {
			t.Errorf("Display(%v) = %q, want %q", test.value, got, test.want)
		}
	}
}
