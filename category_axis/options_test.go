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
	"testing"

	"github.com/LukasDrgon/incubator-echarts/color"
	"github.com/LukasDrgon/incubator-echarts/style"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestIntervalYAML(t *testing.T) {
	for _, test := range []struct {
		doc      string
		wantAuto bool
		wantStep int
		wantErr  bool
	}{
		{doc: "auto", wantAuto: true},
		{doc: "0", wantStep: 1},
		{doc: "3", wantStep: 4},
		{doc: "-2", wantStep: 1},
		{doc: "often", wantErr: true},
		{doc: "[1]", wantErr: true},
	} {
		t.Run(test.doc, func(t *testing.T) {
			var iv Interval
			err := yaml.Unmarshal([]byte(test.doc), &iv)
			if (err != nil) != test.wantErr {
				t.Fatalf("Unmarshal() yielded error %v, wanted error: %t", err, test.wantErr)
			}
			if err != nil {
				return
			}
			if iv.IsAuto() != test.wantAuto {
				t.Errorf("IsAuto() = %t, want %t", iv.IsAuto(), test.wantAuto)
			}
			if !test.wantAuto && iv.Step() != test.wantStep {
				t.Errorf("Step() = %d, want %d", iv.Step(), test.wantStep)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	opt, err := Load([]byte(`
position: left
boundaryGap: false
name: Weekday
nameLocation: start
data:
  - Mon
  - 0
  - value: Wed
    textStyle:
      color: red
    formatter: "[{value}]"
axisLabel:
  interval: 1
  rotate: 30
  margin: 0
  formatter: "{value}!"
axisTick:
  interval: auto
  inside: true
splitLine:
  lineStyle:
    color: "#ddd"
splitArea:
  show: true
  areaStyle:
    color: [white, gray]
`))
	if err != nil {
		t.Fatalf("Load() yielded unexpected error %s", err)
	}
	if opt.Position != Left || opt.BoundaryGap == nil || *opt.BoundaryGap {
		t.Errorf("got position %q, boundaryGap %v", opt.Position, opt.BoundaryGap)
	}
	if opt.Name != "Weekday" || opt.NameLocation != NameStart {
		t.Errorf("got name %q at %q", opt.Name, opt.NameLocation)
	}
	if got := formatLabels(opt.Data, opt.AxisLabel.Formatter); !cmp.Equal(got, []string{"Mon!", "0!", "[Wed]"}) {
		t.Errorf("got labels %v", got)
	}
	if ts, ok := opt.Data[2].TextStyle(); !ok || ts.Color != "red" {
		t.Errorf("got category text style %v, %t", ts, ok)
	}
	if al := opt.AxisLabel; al.Interval.Step() != 2 || al.Rotate != 30 || al.Margin == nil || *al.Margin != 0 {
		t.Errorf("got axis label interval %s, rotate %v, margin %v", al.Interval, al.Rotate, al.Margin)
	}
	if at := opt.AxisTick; !at.Interval.IsAuto() || !isSet(at.Inside) {
		t.Errorf("got axis tick interval %s, inside %v", at.Interval, at.Inside)
	}
	if c := opt.SplitLine.LineStyle.Color; c.IsCycle() || c.First() != "#ddd" {
		t.Errorf("got split line color %v", c.Colors())
	}
	if c := opt.SplitArea.AreaStyle.Color; !c.IsCycle() || !cmp.Equal(c.Colors(), []string{"white", "gray"}) {
		t.Errorf("got split area color %v", c.Colors())
	}
	if !isSet(opt.SplitArea.Show) {
		t.Errorf("split area not shown")
	}
}

func TestLoadErrors(t *testing.T) {
	for _, doc := range []string{
		"axisLabel: {interval: [1]}",
		"data: [[1, 2]]",
		"splitArea: {areaStyle: {color: {r: 1}}}",
		"position: [left]",
	} {
		if _, err := Load([]byte(doc)); err == nil {
			t.Errorf("Load(%q) yielded no error", doc)
		}
	}
}

func TestMerge(t *testing.T) {
	opt := Option{
		Position:    Top,
		BoundaryGap: Bool(false),
		AxisTick: AxisTick{
			Length:    Float(8),
			LineStyle: style.Line{Color: color.Single("#000")},
		},
		AxisLabel: AxisLabel{Show: Bool(false), Interval: Every(2)},
		SplitLine: SplitLine{Show: Bool(false)},
	}
	got := opt.Merge(DefaultOption())

	if got.Position != Top || isSet(got.BoundaryGap) {
		t.Errorf("explicit position or boundaryGap overwritten: %q, %v", got.Position, *got.BoundaryGap)
	}
	if got.NameLocation != NameEnd {
		t.Errorf("NameLocation = %q, want %q", got.NameLocation, NameEnd)
	}
	if !isSet(got.AxisLine.Show) || got.AxisLine.LineStyle.Width != 2 || got.AxisLine.LineStyle.Color.First() != "#48b" {
		t.Errorf("axis line not defaulted: %+v", got.AxisLine)
	}
	tick := got.AxisTick
	if *tick.Length != 8 || tick.LineStyle.Color.First() != "#000" || tick.LineStyle.Width != 1 || isSet(tick.Inside) || tick.OnGap != nil {
		t.Errorf("axis tick merged wrong: %+v", tick)
	}
	if isSet(got.AxisLabel.Show) || got.AxisLabel.Interval.Step() != 3 || *got.AxisLabel.Margin != 8 {
		t.Errorf("axis label merged wrong: %+v", got.AxisLabel)
	}
	if isSet(got.SplitLine.Show) || isSet(got.SplitArea.Show) {
		t.Errorf("split line or area shown")
	}
	if got.SplitArea.AreaStyle.Color.Len() != 2 {
		t.Errorf("split area colors not defaulted: %v", got.SplitArea.AreaStyle.Color.Colors())
	}

	// Neither operand is modified.
	if opt.AxisLine.Show != nil || opt.AxisTick.LineStyle.Width != 0 || opt.NameLocation != "" {
		t.Errorf("Merge modified its receiver: %+v", opt)
	}
	if def := DefaultOption(); def.Position != Bottom || *def.AxisTick.Inside {
		t.Errorf("DefaultOption() changed: %+v", def)
	}

	// Zero is a length, not an absent one.
	flat := Option{AxisTick: AxisTick{Length: Float(0)}}.Merge(DefaultOption())
	if *flat.AxisTick.Length != 0 {
		t.Errorf("zero tick length merged to %v", *flat.AxisTick.Length)
	}
	absent := Option{}.Merge(DefaultOption())
	if got := *absent.AxisTick.Length; got != 5 {
		t.Errorf("absent tick length merged to %v, want 5", got)
	}
}
