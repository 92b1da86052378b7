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

	"github.com/LukasDrgon/incubator-echarts/category"
	"github.com/LukasDrgon/incubator-echarts/color"
	"github.com/LukasDrgon/incubator-echarts/label"
	"github.com/LukasDrgon/incubator-echarts/style"
	"gopkg.in/yaml.v3"
)

// Position is the side of the grid an axis is drawn along.
type Position string

// Axis positions.
const (
	Top    Position = "top"
	Bottom Position = "bottom"
	Left   Position = "left"
	Right  Position = "right"
)

// Horizontal returns true for top and bottom axes.  Any other position lays
// out vertically.
func (p Position) Horizontal() bool {
	return p == Top || p == Bottom
}

// Name locations.
const (
	NameStart = "start"
	NameEnd   = "end"
)

// Interval is the number of categories skipped between two displayed labels,
// ticks, or split lines.  The zero Interval is Auto.
type Interval struct {
	skip     int
	explicit bool
}

// Auto returns an Interval chosen from the available space.
func Auto() Interval {
	return Interval{}
}

// Every returns an Interval skipping skip categories, so every (skip+1)th
// category is displayed.  Negative values display every category.
func Every(skip int) Interval {
	if skip < 0 {
		skip = 0
	}
	return Interval{skip: skip, explicit: true}
}

// IsAuto returns true if the receiver is Auto.
func (iv Interval) IsAuto() bool {
	return !iv.explicit
}

// Step returns the index step of an explicit interval.
func (iv Interval) Step() int {
	return iv.skip + 1
}

// String implements fmt.Stringer.
func (iv Interval) String() string {
	if iv.IsAuto() {
		return "auto"
	}
	return fmt.Sprint(iv.skip)
}

// UnmarshalYAML decodes "auto" or a non-negative integer.
func (iv *Interval) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Value == "auto" {
		*iv = Auto()
		return nil
	}
	var skip int
	if err := node.Decode(&skip); err != nil {
		return fmt.Errorf("line %d: interval must be 'auto' or an integer", node.Line)
	}
	*iv = Every(skip)
	return nil
}

// AxisLine configures the line along the grid edge.
type AxisLine struct {
	Show      *bool      `yaml:"show"`
	LineStyle style.Line `yaml:"lineStyle"`
}

// AxisTick configures the tick marks.
type AxisTick struct {
	Show     *bool    `yaml:"show"`
	Interval Interval `yaml:"interval"`
	// OnGap places ticks between categories rather than on them.  Unset, it
	// follows the axis' BoundaryGap.
	OnGap     *bool      `yaml:"onGap"`
	Inside    *bool      `yaml:"inside"`
	Length    *float64   `yaml:"length"`
	LineStyle style.Line `yaml:"lineStyle"`
}

// AxisLabel configures the category labels.
type AxisLabel struct {
	Show     *bool    `yaml:"show"`
	Interval Interval `yaml:"interval"`
	// Rotate is the label rotation in degrees.
	Rotate float64  `yaml:"rotate"`
	Margin *float64 `yaml:"margin"`
	// Formatter formats every category without a formatter of its own.  In
	// YAML it is a template string.
	Formatter label.Formatter `yaml:"-"`
	TextStyle style.Text      `yaml:"textStyle"`
}

// UnmarshalYAML decodes an AxisLabel, reading formatter as a template.
func (al *AxisLabel) UnmarshalYAML(node *yaml.Node) error {
	type plain AxisLabel
	var aux struct {
		plain     `yaml:",inline"`
		Formatter string `yaml:"formatter"`
	}
	if err := node.Decode(&aux); err != nil {
		return err
	}
	*al = AxisLabel(aux.plain)
	if aux.Formatter != "" {
		al.Formatter = label.Template(aux.Formatter)
	}
	return nil
}

// SplitLine configures the grid lines drawn across the grid.
type SplitLine struct {
	Show      *bool      `yaml:"show"`
	OnGap     *bool      `yaml:"onGap"`
	LineStyle style.Line `yaml:"lineStyle"`
}

// SplitArea configures the background bands drawn behind the grid.
type SplitArea struct {
	Show      *bool      `yaml:"show"`
	OnGap     *bool      `yaml:"onGap"`
	AreaStyle style.Area `yaml:"areaStyle"`
}

// Option is the configuration of one category axis.  Absent fields (nil
// pointers, empty strings, zero numbers, Auto intervals) are filled from
// DefaultOption when the axis is refreshed.
type Option struct {
	Position    Position `yaml:"position"`
	BoundaryGap *bool    `yaml:"boundaryGap"`
	// ZLevel is the base rendering layer of the axis' shapes.
	ZLevel        int              `yaml:"zlevel"`
	Name          string           `yaml:"name"`
	NameLocation  string           `yaml:"nameLocation"`
	NameTextStyle style.Text       `yaml:"nameTextStyle"`
	Data          []category.Entry `yaml:"data"`
	AxisLine      AxisLine         `yaml:"axisLine"`
	AxisTick      AxisTick         `yaml:"axisTick"`
	AxisLabel     AxisLabel        `yaml:"axisLabel"`
	SplitLine     SplitLine        `yaml:"splitLine"`
	SplitArea     SplitArea        `yaml:"splitArea"`
}

// Bool returns a pointer to b, for optional Option fields.
func Bool(b bool) *bool {
	return &b
}

// Float returns a pointer to f, for optional Option fields.
func Float(f float64) *float64 {
	return &f
}

// DefaultOption returns the defaults every axis option is merged over.
func DefaultOption() Option {
	return Option{
		Position:     Bottom,
		BoundaryGap:  Bool(true),
		NameLocation: NameEnd,
		AxisLine: AxisLine{
			Show: Bool(true),
			LineStyle: style.Line{
				Color: color.Single("#48b"),
				Width: 2,
				Type:  "solid",
			},
		},
		AxisTick: AxisTick{
			Show:   Bool(true),
			Inside: Bool(false),
			Length: Float(5),
			LineStyle: style.Line{
				Color: color.Single("#333"),
				Width: 1,
			},
		},
		AxisLabel: AxisLabel{
			Show:      Bool(true),
			Margin:    Float(8),
			TextStyle: style.Text{Color: "#333"},
		},
		SplitLine: SplitLine{
			Show: Bool(true),
			LineStyle: style.Line{
				Color: color.Cycle("#ccc"),
				Width: 1,
				Type:  "solid",
			},
		},
		SplitArea: SplitArea{
			Show: Bool(false),
			AreaStyle: style.Area{
				Color: color.Cycle("rgba(250,250,250,0.3)", "rgba(200,200,200,0.3)"),
			},
		},
	}
}

// Merge returns the receiver with its absent fields taken from defaults.
// Neither operand is modified; Data is never merged.
func (o Option) Merge(defaults Option) Option {
	if o.Position == "" {
		o.Position = defaults.Position
	}
	o.BoundaryGap = orBool(o.BoundaryGap, defaults.BoundaryGap)
	if o.ZLevel == 0 {
		o.ZLevel = defaults.ZLevel
	}
	if o.NameLocation == "" {
		o.NameLocation = defaults.NameLocation
	}
	o.NameTextStyle = o.NameTextStyle.Merge(defaults.NameTextStyle)

	o.AxisLine.Show = orBool(o.AxisLine.Show, defaults.AxisLine.Show)
	o.AxisLine.LineStyle = o.AxisLine.LineStyle.Merge(defaults.AxisLine.LineStyle)

	o.AxisTick.Show = orBool(o.AxisTick.Show, defaults.AxisTick.Show)
	o.AxisTick.Interval = orInterval(o.AxisTick.Interval, defaults.AxisTick.Interval)
	o.AxisTick.OnGap = orBool(o.AxisTick.OnGap, defaults.AxisTick.OnGap)
	o.AxisTick.Inside = orBool(o.AxisTick.Inside, defaults.AxisTick.Inside)
	if o.AxisTick.Length == nil {
		o.AxisTick.Length = defaults.AxisTick.Length
	}
	o.AxisTick.LineStyle = o.AxisTick.LineStyle.Merge(defaults.AxisTick.LineStyle)

	o.AxisLabel.Show = orBool(o.AxisLabel.Show, defaults.AxisLabel.Show)
	o.AxisLabel.Interval = orInterval(o.AxisLabel.Interval, defaults.AxisLabel.Interval)
	if o.AxisLabel.Rotate == 0 {
		o.AxisLabel.Rotate = defaults.AxisLabel.Rotate
	}
	if o.AxisLabel.Margin == nil {
		o.AxisLabel.Margin = defaults.AxisLabel.Margin
	}
	if o.AxisLabel.Formatter == nil {
		o.AxisLabel.Formatter = defaults.AxisLabel.Formatter
	}
	o.AxisLabel.TextStyle = o.AxisLabel.TextStyle.Merge(defaults.AxisLabel.TextStyle)

	o.SplitLine.Show = orBool(o.SplitLine.Show, defaults.SplitLine.Show)
	o.SplitLine.OnGap = orBool(o.SplitLine.OnGap, defaults.SplitLine.OnGap)
	o.SplitLine.LineStyle = o.SplitLine.LineStyle.Merge(defaults.SplitLine.LineStyle)

	o.SplitArea.Show = orBool(o.SplitArea.Show, defaults.SplitArea.Show)
	o.SplitArea.OnGap = orBool(o.SplitArea.OnGap, defaults.SplitArea.OnGap)
	o.SplitArea.AreaStyle = o.SplitArea.AreaStyle.Merge(defaults.SplitArea.AreaStyle)
	return o
}

// Load reads a YAML axis option document.
func Load(doc []byte) (Option, error) {
	var opt Option
	if err := yaml.Unmarshal(doc, &opt); err != nil {
		return Option{}, fmt.Errorf("failed to decode axis option: %w", err)
	}
	return opt, nil
}

func orBool(v, def *bool) *bool {
	if v == nil {
		return def
	}
	return v
}

func orInterval(v, def Interval) Interval {
	if v.IsAuto() {
		return def
	}
	return v
}

func isSet(b *bool) bool {
	return b != nil && *b
}
