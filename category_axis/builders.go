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
	"math"

	"github.com/LukasDrgon/incubator-echarts/shape"
)

// Extents smaller than this are treated as empty.
const epsilon = 1e-6

// Label alignments and baselines.
const (
	alignLeft      = "left"
	alignCenter    = "center"
	alignRight     = "right"
	baselineTop    = "top"
	baselineMiddle = "middle"
	baselineBottom = "bottom"
)

// layout holds everything needed to build an axis' shapes from a merged
// option.
type layout struct {
	opt      Option
	m        mapper
	labels   []string
	interval int
}

func (l *layout) n() int {
	return len(l.opt.Data)
}

// offset returns how far ticks, split lines, or split areas are shifted off
// the categories' coordinates.  An unset onGap follows the boundary gap.
func (l *layout) offset(onGap *bool) float64 {
	if l.onGap(onGap) {
		return l.m.gap() / 2
	}
	return 0
}

func (l *layout) onGap(onGap *bool) bool {
	if onGap == nil {
		return l.m.boundaryGap
	}
	return *onGap
}

// build returns all enabled shapes, back to front: split area, split lines,
// axis line, ticks, then labels.
func (l *layout) build() []shape.Shape {
	var ret []shape.Shape
	if isSet(l.opt.SplitArea.Show) {
		ret = append(ret, l.splitArea()...)
	}
	if isSet(l.opt.SplitLine.Show) {
		ret = append(ret, l.splitLines()...)
	}
	if isSet(l.opt.AxisLine.Show) {
		ret = append(ret, l.axisLine())
	}
	if isSet(l.opt.AxisTick.Show) {
		ret = append(ret, l.ticks()...)
	}
	if isSet(l.opt.AxisLabel.Show) {
		ret = append(ret, l.axisLabels()...)
	}
	return ret
}

// axisLine returns the line along the grid edge, drawn outside the grid by
// half its width, carrying the axis name if there is one.
func (l *layout) axisLine() shape.Shape {
	g := l.m.grid
	ls := l.opt.AxisLine.LineStyle
	h := ls.Width / 2
	line := &shape.Line{
		Base:        shape.Base{ZLevel: l.opt.ZLevel + 1},
		StrokeColor: ls.Color.First(),
		LineWidth:   ls.Width,
		LineType:    ls.Type,
	}
	switch l.opt.Position {
	case Left:
		x := subPixel(g.X()-h, ls.Width)
		line.XStart, line.YStart, line.XEnd, line.YEnd = x, g.YEnd()+h, x, g.Y()-h
	case Right:
		x := subPixel(g.XEnd()+h, ls.Width)
		line.XStart, line.YStart, line.XEnd, line.YEnd = x, g.YEnd()+h, x, g.Y()-h
	case Top:
		y := subPixel(g.Y()-h, ls.Width)
		line.XStart, line.YStart, line.XEnd, line.YEnd = g.X()-h, y, g.XEnd()+h, y
	default:
		y := subPixel(g.YEnd()+h, ls.Width)
		line.XStart, line.YStart, line.XEnd, line.YEnd = g.X()-h, y, g.XEnd()+h, y
	}
	if l.opt.Name != "" {
		ts := l.opt.NameTextStyle
		line.Label = &shape.LineLabel{
			Text:     l.opt.Name,
			Position: l.opt.NameLocation,
			Font:     ts.Font(),
			Align:    ts.Align,
			Baseline: ts.Baseline,
			Color:    ts.Color,
		}
	}
	return line
}

// ticks returns the tick marks.  When ticks sit between categories, an extra
// tick is emitted at the axis' start edge.
func (l *layout) ticks() []shape.Shape {
	g := l.m.grid
	tick := l.opt.AxisTick
	interval := l.interval
	if !tick.Interval.IsAuto() {
		interval = tick.Interval.Step()
	}
	off := l.offset(tick.OnGap)
	start := 0
	if off > 0 {
		start = -interval
	}
	inside := isSet(tick.Inside)
	length := *tick.Length
	lw := tick.LineStyle.Width
	newTick := func(x0, y0, x1, y1 float64) shape.Shape {
		return &shape.Line{
			Base:        shape.Base{ZLevel: l.opt.ZLevel},
			XStart:      x0,
			YStart:      y0,
			XEnd:        x1,
			YEnd:        y1,
			StrokeColor: tick.LineStyle.Color.First(),
			LineWidth:   lw,
		}
	}
	var ret []shape.Shape
	if l.m.horizontal {
		var y float64
		switch {
		case l.opt.Position == Bottom && inside:
			y = g.YEnd() - length
		case l.opt.Position == Bottom:
			y = g.YEnd()
		case inside:
			y = g.Y()
		default:
			y = g.Y() - length
		}
		for idx := start; idx < l.n(); idx += interval {
			pos := l.m.coordByIndex(idx)
			if idx >= 0 {
				pos += off
			}
			x := subPixel(pos, lw)
			ret = append(ret, newTick(x, y, x, y+length))
		}
		return ret
	}
	var x float64
	switch {
	case l.opt.Position == Left && inside:
		x = g.X()
	case l.opt.Position == Left:
		x = g.X() - length
	case inside:
		x = g.XEnd() - length
	default:
		x = g.XEnd()
	}
	for idx := start; idx < l.n(); idx += interval {
		pos := l.m.coordByIndex(idx)
		if idx >= 0 {
			pos -= off
		}
		y := subPixel(pos, lw)
		ret = append(ret, newTick(x, y, x+length, y))
	}
	return ret
}

// axisLabels returns a text shape for every interval-th category with a
// non-empty label.
func (l *layout) axisLabels() []shape.Shape {
	g := l.m.grid
	al := l.opt.AxisLabel
	margin := *al.Margin
	var ret []shape.Shape
	for idx := 0; idx < l.n(); idx += l.interval {
		text := l.labels[idx]
		if text == "" {
			continue
		}
		ts := labelTextStyle(l.opt.Data[idx], al.TextStyle)
		t := &shape.Text{
			Base:  shape.Base{ZLevel: l.opt.ZLevel},
			Text:  text,
			Color: ts.Color,
			Font:  ts.Font(),
		}
		if l.m.horizontal {
			t.X = l.m.coordByIndex(idx)
			t.Align = orString(ts.Align, alignCenter)
			if l.opt.Position == Bottom {
				t.Y = g.YEnd() + margin
				t.Baseline = orString(ts.Baseline, baselineTop)
			} else {
				t.Y = g.Y() - margin
				t.Baseline = orString(ts.Baseline, baselineBottom)
			}
			if al.Rotate != 0 {
				bottom := l.opt.Position == Bottom
				if (al.Rotate > 0) == bottom {
					t.Align = alignRight
				} else {
					t.Align = alignLeft
				}
			}
		} else {
			t.Y = l.m.coordByIndex(idx)
			if l.opt.Position == Left {
				t.X = g.X() - margin
				t.Align = orString(ts.Align, alignRight)
			} else {
				t.X = g.XEnd() + margin
				t.Align = orString(ts.Align, alignLeft)
			}
			t.Baseline = l.verticalBaseline(idx, ts.Baseline)
		}
		if al.Rotate != 0 {
			t.Rotation = &shape.Rotation{
				Angle: al.Rotate * math.Pi / 180,
				X:     t.X,
				Y:     t.Y,
			}
		}
		ret = append(ret, t)
	}
	return ret
}

// verticalBaseline keeps the first and last labels of a named vertical axis
// inside the grid, clear of the name.
func (l *layout) verticalBaseline(idx int, explicit string) string {
	switch {
	case explicit != "":
		return explicit
	case l.opt.Name != "" && idx == 0:
		return baselineBottom
	case l.opt.Name != "" && idx == l.n()-1:
		return baselineTop
	default:
		return baselineMiddle
	}
}

// splitLines returns lines across the grid at every interval-th category,
// cycling through the configured colors.
func (l *layout) splitLines() []shape.Shape {
	g := l.m.grid
	sl := l.opt.SplitLine
	off := l.offset(sl.OnGap)
	n := l.n()
	if l.onGap(sl.OnGap) {
		// The line after the last category would sit on the grid edge.
		n--
	}
	lw := sl.LineStyle.Width
	var ret []shape.Shape
	for idx := 0; idx < n; idx += l.interval {
		line := &shape.Line{
			Base:        shape.Base{ZLevel: l.opt.ZLevel},
			StrokeColor: sl.LineStyle.Color.At(idx / l.interval),
			LineWidth:   lw,
			LineType:    sl.LineStyle.Type,
		}
		if l.m.horizontal {
			x := subPixel(l.m.coordByIndex(idx)+off, lw)
			line.XStart, line.YStart, line.XEnd, line.YEnd = x, g.Y(), x, g.YEnd()
		} else {
			y := subPixel(l.m.coordByIndex(idx)-off, lw)
			line.XStart, line.YStart, line.XEnd, line.YEnd = g.X(), y, g.XEnd(), y
		}
		ret = append(ret, line)
	}
	return ret
}

// splitArea returns background bands between consecutive interval-th
// categories, cycling through the configured colors, together covering the
// grid.  A single color covers the grid with one rectangle.
func (l *layout) splitArea() []shape.Shape {
	g := l.m.grid
	sa := l.opt.SplitArea
	colors := sa.AreaStyle.Color
	base := shape.Base{ZLevel: l.opt.ZLevel}
	if !colors.IsCycle() || colors.Len() == 0 {
		return []shape.Shape{&shape.Rectangle{
			Base:   base,
			X:      g.X(),
			Y:      g.Y(),
			Width:  g.Width(),
			Height: g.Height(),
			Color:  colors.First(),
		}}
	}
	off := l.offset(sa.OnGap)
	n := l.n()
	var ret []shape.Shape
	band := func(from, to float64, colorIdx int) {
		if math.Abs(to-from) < epsilon {
			return
		}
		r := &shape.Rectangle{Base: base, Color: colors.At(colorIdx)}
		if l.m.horizontal {
			r.X, r.Y, r.Width, r.Height = from, g.Y(), to-from, g.Height()
		} else {
			r.X, r.Y, r.Width, r.Height = g.X(), to, g.Width(), from-to
		}
		ret = append(ret, r)
	}
	last, end := g.X(), g.XEnd()
	if !l.m.horizontal {
		last, end = g.YEnd(), g.Y()
	}
	colorIdx := 0
	for idx := 0; idx <= n; idx += l.interval {
		cur := end
		if idx < n {
			cur = l.m.coordByIndex(idx)
			if l.m.horizontal {
				cur += off
			} else {
				cur -= off
			}
		}
		band(last, cur, colorIdx)
		last = cur
		colorIdx++
	}
	band(last, end, colorIdx)
	return ret
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
