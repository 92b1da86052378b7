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

package surface

import (
	"bytes"
	"strings"
	"testing"

	"github.com/LukasDrgon/incubator-echarts/shape"
	testutil "github.com/LukasDrgon/incubator-echarts/test_util"
	"github.com/LukasDrgon/incubator-echarts/util"
	"github.com/google/go-cmp/cmp"
)

var (
	area  = &shape.Rectangle{X: 0, Y: 0, Width: 100, Height: 50, Color: "#eee"}
	line  = &shape.Line{Base: shape.Base{ZLevel: 1}, XStart: 0, YStart: 51, XEnd: 100, YEnd: 51, StrokeColor: "#48b", LineWidth: 2}
	tick  = &shape.Line{XStart: 50.5, YStart: 50, XEnd: 50.5, YEnd: 55, StrokeColor: "#333", LineWidth: 1}
	label = &shape.Text{X: 50, Y: 58, Text: "A&B", Color: "#333", Font: "normal bold 12px Go", Align: "center", Baseline: "top"}
)

func kinds(shapes []shape.Shape) []shape.Kind {
	var ret []shape.Kind
	for _, s := range shapes {
		ret = append(ret, s.Kind())
	}
	return ret
}

func TestRecorder(t *testing.T) {
	for _, test := range []struct {
		description string
		ops         func(r *Recorder)
		want        []shape.Shape
		wantAdds    int
		wantDels    int
	}{{
		description: "empty",
		ops:         func(r *Recorder) {},
	}, {
		description: "ordered by z-level, then insertion",
		ops: func(r *Recorder) {
			r.AddShapes(area, line, tick, label)
		},
		want:     []shape.Shape{area, tick, label, line},
		wantAdds: 1,
	}, {
		description: "delete",
		ops: func(r *Recorder) {
			r.AddShapes(area, line)
			r.AddShapes(tick, label)
			r.DelShapes(area, line)
		},
		want:     []shape.Shape{tick, label},
		wantAdds: 2,
		wantDels: 1,
	}, {
		description: "deleting absent shapes is a no-op",
		ops: func(r *Recorder) {
			r.AddShapes(area)
			r.DelShapes(line)
		},
		want:     []shape.Shape{area},
		wantAdds: 1,
		wantDels: 1,
	}} {
		t.Run(test.description, func(t *testing.T) {
			r := NewRecorder()
			test.ops(r)
			got := r.Shapes()
			if len(got) != len(test.want) || r.Len() != len(test.want) {
				t.Fatalf("got %d shapes (%v), want %d", len(got), kinds(got), len(test.want))
			}
			for i := range got {
				if got[i] != test.want[i] {
					t.Errorf("shape %d: got %#v, want %#v", i, got[i], test.want[i])
				}
			}
			adds, dels := r.Submissions()
			if adds != test.wantAdds || dels != test.wantDels {
				t.Errorf("Submissions() = %d, %d, want %d, %d", adds, dels, test.wantAdds, test.wantDels)
			}
		})
	}
}

func TestData(t *testing.T) {
	testutil.CompareResponses(t,
		func(db util.DataBuilder) {
			Data(db, []shape.Shape{line, area})
		},
		func(db util.DataBuilder) {
			db.Child().With(area.Define())
			db.Child().With(line.Define())
		},
	)
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	rotated := &shape.Text{X: 10, Y: 20, Text: "<Mon>", Font: "italic normal 10px Go", Align: "right", Baseline: "middle",
		Rotation: &shape.Rotation{Angle: 3.141592653589793 / 2, X: 10, Y: 20}}
	named := &shape.Line{XStart: 0, YStart: 50, XEnd: 100, YEnd: 50, LineWidth: 1, LineType: "dashed",
		Label: &shape.LineLabel{Text: "Day", Position: "end", Font: "12px Go"}}
	if err := SVG(&buf, 100, 60, []shape.Shape{line, area, label, rotated, named}); err != nil {
		t.Fatalf("SVG() yielded unexpected error %s", err)
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="60" viewBox="0 0 100 60">`,
		`  <rect x="0" y="0" width="100" height="50" fill="#eee"/>`,
		`  <text x="50" y="58" fill="#333" font-size="12" font-family="Go" font-weight="bold" text-anchor="middle" dominant-baseline="hanging">A&amp;B</text>`,
		`  <text x="10" y="20" fill="" font-size="10" font-family="Go" font-style="italic" text-anchor="end" dominant-baseline="middle" transform="rotate(-90 10 20)">&lt;Mon&gt;</text>`,
		`  <line x1="0" y1="50" x2="100" y2="50" stroke="" stroke-width="1" stroke-dasharray="5 5"/>`,
		`  <text x="105" y="50" fill="" font-size="12" font-family="Go" text-anchor="start" dominant-baseline="alphabetic">Day</text>`,
		`  <line x1="0" y1="51" x2="100" y2="51" stroke="#48b" stroke-width="2"/>`,
		`</svg>`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SVG() = %s, diff (-want +got):\n%s", buf.String(), diff)
	}
}
