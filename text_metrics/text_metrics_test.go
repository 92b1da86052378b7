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

package textmetrics

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFont(t *testing.T) {
	for _, test := range []struct {
		desc string
		want Description
	}{{
		desc: "normal normal 12px Arial, Verdana, sans-serif",
		want: Description{SizePx: 12, Family: "Arial, Verdana, sans-serif"},
	}, {
		desc: "italic bold 18px Go",
		want: Description{Italic: true, Bold: true, SizePx: 18, Family: "Go"},
	}, {
		desc: "700 10.5px Go Mono",
		want: Description{Bold: true, SizePx: 10.5, Family: "Go Mono"},
	}, {
		desc: "normal normal -3px Go",
		want: Description{SizePx: 12, Family: "Go"},
	}, {
		desc: "",
		want: Description{SizePx: 12},
	}} {
		t.Run(test.desc, func(t *testing.T) {
			got := ParseFont(test.desc)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("ParseFont(%q) = %v, diff (-want +got):\n%s", test.desc, got, diff)
			}
		})
	}
}

func TestTextWidth(t *testing.T) {
	m, err := New(DefaultCacheSize)
	if err != nil {
		t.Fatalf("New() yielded unexpected error %s", err)
	}
	const regular = "normal normal 12px Arial"
	if got := m.TextWidth("", regular); got != 0 {
		t.Errorf("TextWidth(\"\") = %f, want 0", got)
	}
	short := m.TextWidth("Mon", regular)
	long := m.TextWidth("Monday, the first", regular)
	if short <= 0 || long <= short {
		t.Errorf("TextWidth() of 'Mon' = %f, of a longer label = %f; want 0 < short < long", short, long)
	}
	if big := m.TextWidth("Mon", "normal normal 24px Arial"); big <= short {
		t.Errorf("TextWidth() at 24px = %f, want more than %f at 12px", big, short)
	}
	if again := m.TextWidth("Mon", regular); again != short {
		t.Errorf("cached TextWidth() = %f, want %f", again, short)
	}
}

func TestTextWidthConcurrent(t *testing.T) {
	m, err := New(8)
	if err != nil {
		t.Fatalf("New() yielded unexpected error %s", err)
	}
	want := m.TextWidth("Wednesday", "bold 14px Go")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := m.TextWidth("Wednesday", "bold 14px Go"); got != want {
				t.Errorf("TextWidth() = %f, want %f", got, want)
			}
		}()
	}
	wg.Wait()
}
