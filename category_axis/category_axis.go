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

// Package categoryaxis lays out a chart axis whose values are a discrete,
// ordered list of categories.  An Axis maps categories to pixel coordinates
// within a grid and produces the shapes (axis line, ticks, labels, split
// lines, and split areas) that draw it.
//
// Given an Option describing a bottom axis with data ["Mon", "Tue", "Wed"]
// over a 300px-wide grid, the Axis places the categories at 50, 150, and
// 250px (each centered in its 100px band), emits a tick at each band
// boundary, and a label under each category.
package categoryaxis

import (
	"github.com/LukasDrgon/incubator-echarts/category"
	"github.com/LukasDrgon/incubator-echarts/shape"
	"github.com/LukasDrgon/incubator-echarts/theme"
)

// Grid is the rectangle an axis lays out along.  Y grows downward.
type Grid interface {
	X() float64
	XEnd() float64
	Y() float64
	YEnd() float64
	Width() float64
	Height() float64
}

// Surface receives the shapes an axis builds.
type Surface interface {
	AddShapes(shapes ...shape.Shape)
	DelShapes(shapes ...shape.Shape)
}

// TextMeasurer measures rendered text.  font is a CSS font shorthand as
// produced by style.Text.Font.
type TextMeasurer interface {
	TextWidth(text, font string) float64
}

// Axis is a category axis.  It is not safe for concurrent use.
type Axis struct {
	theme    *theme.Theme
	grid     Grid
	surface  Surface
	measurer TextMeasurer

	opt      Option
	labels   []string
	interval int
	shapes   []shape.Shape
}

// New returns a new Axis over the provided grid, delivering its shapes to the
// provided surface.  A nil theme is theme.Default(); a nil surface keeps
// shapes only on the Axis; a nil measurer estimates text widths from font
// sizes.  If opt has data the axis is laid out immediately; otherwise it stays
// inert until refreshed with data.
func New(th *theme.Theme, grid Grid, surface Surface, measurer TextMeasurer, opt Option) *Axis {
	if th == nil {
		th = theme.Default()
	}
	if measurer == nil {
		measurer = approximateMeasurer{}
	}
	a := &Axis{
		theme:    th,
		grid:     grid,
		surface:  surface,
		measurer: measurer,
	}
	if len(opt.Data) == 0 {
		Logger().Debug("category axis has no data")
		return a
	}
	a.Refresh(&opt)
	return a
}

// Refresh rebuilds the axis.  If opt is non-nil it replaces the axis' option
// first.  The previous shapes are removed from the surface before the new ones
// are added.
func (a *Axis) Refresh(opt *Option) {
	if opt != nil {
		a.opt = a.resolve(*opt)
	}
	if a.surface != nil && len(a.shapes) > 0 {
		a.surface.DelShapes(a.shapes...)
	}
	a.shapes = nil
	a.labels = nil
	a.interval = 0
	if len(a.opt.Data) == 0 {
		return
	}
	l := &layout{
		opt: a.opt,
		m:   a.mapper(),
	}
	l.labels = formatLabels(a.opt.Data, a.opt.AxisLabel.Formatter)
	l.interval = a.labelInterval(l)
	a.labels = l.labels
	a.interval = l.interval
	a.shapes = l.build()
	Logger().Debug("category axis laid out",
		"position", a.opt.Position,
		"categories", len(a.opt.Data),
		"gap", l.m.gap(),
		"interval", a.interval,
		"shapes", len(a.shapes),
	)
	if a.surface != nil && len(a.shapes) > 0 {
		a.surface.AddShapes(a.shapes...)
	}
}

// resolve merges opt over the defaults and fills unset text styles from the
// theme.
func (a *Axis) resolve(opt Option) Option {
	ret := opt.Merge(DefaultOption())
	ret.AxisLabel.TextStyle = ret.AxisLabel.TextStyle.Merge(a.theme.TextStyle)
	ret.NameTextStyle = ret.NameTextStyle.Merge(a.theme.TextStyle)
	ret.Data = append([]category.Entry(nil), opt.Data...)
	if !ret.Position.Horizontal() && ret.Position != Left && ret.Position != Right {
		Logger().Warn("unknown category axis position; using bottom", "position", ret.Position)
		ret.Position = Bottom
	}
	return ret
}

func (a *Axis) labelInterval(l *layout) int {
	al := a.opt.AxisLabel
	if !al.Interval.IsAuto() {
		return al.Interval.Step()
	}
	n := len(a.opt.Data)
	if !l.m.horizontal {
		return verticalInterval(n, l.m.gap(), al.TextStyle.Size())
	}
	return horizontalInterval(n, l.m.gap(), func(idx int) float64 {
		// Rotated labels are spaced by the axis font size alone.
		if al.Rotate != 0 {
			return al.TextStyle.Size()
		}
		ts := labelTextStyle(a.opt.Data[idx], al.TextStyle)
		return a.measurer.TextWidth(l.labels[idx], ts.Font())
	})
}

func (a *Axis) mapper() mapper {
	return mapper{
		grid:        a.grid,
		horizontal:  a.opt.Position.Horizontal(),
		boundaryGap: isSet(a.opt.BoundaryGap),
		data:        a.opt.Data,
	}
}

// Option returns the axis' merged option.
func (a *Axis) Option() Option {
	return a.opt
}

// Position returns the axis' position.
func (a *Axis) Position() Position {
	return a.opt.Position
}

// Gap returns the pixel distance between adjacent categories.
func (a *Axis) Gap() float64 {
	return a.mapper().gap()
}

// CoordByIndex returns the pixel coordinate of the category at idx: an x
// coordinate for horizontal axes and a y coordinate for vertical ones.
// Indices before the first category map to the axis' start edge (left or
// bottom) and indices after the last to its end edge (right or top).
func (a *Axis) CoordByIndex(idx int) float64 {
	return a.mapper().coordByIndex(idx)
}

// CoordByValue returns the pixel coordinate of the first category equal to
// v.  Numbers and their string forms compare equal.  Values not on the axis
// return the end edge and false.
func (a *Axis) CoordByValue(v any) (float64, bool) {
	return a.mapper().coordByValue(v)
}

// IndexByName returns the index of the first category equal to v, or -1 and
// false.
func (a *Axis) IndexByName(v any) (int, bool) {
	return a.mapper().indexByName(v)
}

// NameByIndex returns the value of the category at idx, and false if idx is
// out of range.
func (a *Axis) NameByIndex(idx int) (any, bool) {
	if idx < 0 || idx >= len(a.opt.Data) {
		return nil, false
	}
	return a.opt.Data[idx].Value(), true
}

// IsMainAxis returns true if a label is displayed for the category at idx
// under the current interval.
func (a *Axis) IsMainAxis(idx int) bool {
	return a.interval > 0 && idx%a.interval == 0
}

// Interval returns the current label step.  It is 0 for an axis without
// data.
func (a *Axis) Interval() int {
	return a.interval
}

// Labels returns the formatted label of every category.
func (a *Axis) Labels() []string {
	return append([]string(nil), a.labels...)
}

// Shapes returns the shapes most recently built, back to front.
func (a *Axis) Shapes() []shape.Shape {
	return append([]shape.Shape(nil), a.shapes...)
}
