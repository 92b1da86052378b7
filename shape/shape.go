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

// Package shape defines the primitive shapes emitted for a rendering
// surface.  The set is closed: a Shape is a *Line, a *Text, or a *Rectangle.
//
// The structure of a shape in a response, as produced by Define, is a single
// Datum:
//
//	shape
//	  properties:
//	    * shape_kind: line | text | rectangle
//	    * shape_z_level, shape_hoverable
//	    * geometry (per kind)
//	    * colors and style_* (per kind)
package shape

import (
	"github.com/LukasDrgon/incubator-echarts/color"
	"github.com/LukasDrgon/incubator-echarts/util"
)

// Kind identifies a shape variant.
type Kind string

// Shape kinds.
const (
	LineKind      Kind = "line"
	TextKind      Kind = "text"
	RectangleKind Kind = "rectangle"
)

const (
	kindKey      = "shape_kind"
	zLevelKey    = "shape_z_level"
	hoverableKey = "shape_hoverable"

	xStartKey = "x_start"
	yStartKey = "y_start"
	xEndKey   = "x_end"
	yEndKey   = "y_end"
	xKey      = "x"
	yKey      = "y"
	widthKey  = "width"
	heightKey = "height"

	lineWidthKey    = "style_line_width"
	lineTypeKey     = "style_line_type"
	textKey         = "text"
	fontKey         = "style_font"
	textAlignKey    = "style_text_align"
	textBaselineKey = "style_text_baseline"
	textPositionKey = "text_position"
	rotationKey     = "rotation"
	rotationXKey    = "rotation_x"
	rotationYKey    = "rotation_y"
)

// Shape is implemented by *Line, *Text, and *Rectangle.
type Shape interface {
	Kind() Kind
	Attrs() Base
	// Define annotates a Datum with the shape.
	Define() util.PropertyUpdate
	isShape()
}

// Base holds the attributes common to all shapes.
type Base struct {
	// ZLevel is the rendering layer; higher levels paint over lower ones.
	ZLevel    int
	Hoverable bool
}

// Attrs returns the receiver.
func (b Base) Attrs() Base { return b }

func (b Base) define(k Kind) util.PropertyUpdate {
	return util.Chain(
		util.StringProperty(kindKey, string(k)),
		util.IntegerProperty(zLevelKey, int64(b.ZLevel)),
		util.BoolProperty(hoverableKey, b.Hoverable),
	)
}

// LineLabel is text drawn alongside a line, such as an axis name.
type LineLabel struct {
	Text string
	// Position is where along the line the text sits: start or end.
	Position string
	Font     string
	Align    string
	Baseline string
	Color    string
}

// Line is a straight line segment.
type Line struct {
	Base
	XStart, YStart, XEnd, YEnd float64
	StrokeColor                string
	LineWidth                  float64
	LineType                   string
	Label                      *LineLabel
}

// Kind implements Shape.
func (*Line) Kind() Kind { return LineKind }
func (*Line) isShape()   {}

// Define implements Shape.
func (l *Line) Define() util.PropertyUpdate {
	updates := []util.PropertyUpdate{
		l.Base.define(LineKind),
		util.DoubleProperty(xStartKey, l.XStart),
		util.DoubleProperty(yStartKey, l.YStart),
		util.DoubleProperty(xEndKey, l.XEnd),
		util.DoubleProperty(yEndKey, l.YEnd),
		color.Stroke(l.StrokeColor),
		util.DoubleProperty(lineWidthKey, l.LineWidth),
		util.If(l.LineType != "", util.StringProperty(lineTypeKey, l.LineType)),
	}
	if lbl := l.Label; lbl != nil {
		updates = append(updates,
			util.StringProperty(textKey, lbl.Text),
			util.StringProperty(textPositionKey, lbl.Position),
			util.StringProperty(fontKey, lbl.Font),
			util.If(lbl.Align != "", util.StringProperty(textAlignKey, lbl.Align)),
			util.If(lbl.Baseline != "", util.StringProperty(textBaselineKey, lbl.Baseline)),
			color.Fill(lbl.Color),
		)
	}
	return util.Chain(updates...)
}

// Rotation rotates a shape by Angle radians around (X, Y).
type Rotation struct {
	Angle, X, Y float64
}

// Text is a single line of text anchored at (X, Y).
type Text struct {
	Base
	X, Y     float64
	Text     string
	Color    string
	Font     string
	Align    string
	Baseline string
	Rotation *Rotation
}

// Kind implements Shape.
func (*Text) Kind() Kind { return TextKind }
func (*Text) isShape()   {}

// Define implements Shape.
func (t *Text) Define() util.PropertyUpdate {
	updates := []util.PropertyUpdate{
		t.Base.define(TextKind),
		util.DoubleProperty(xKey, t.X),
		util.DoubleProperty(yKey, t.Y),
		util.StringProperty(textKey, t.Text),
		color.Fill(t.Color),
		util.StringProperty(fontKey, t.Font),
		util.StringProperty(textAlignKey, t.Align),
		util.StringProperty(textBaselineKey, t.Baseline),
	}
	if r := t.Rotation; r != nil {
		updates = append(updates,
			util.DoubleProperty(rotationKey, r.Angle),
			util.DoubleProperty(rotationXKey, r.X),
			util.DoubleProperty(rotationYKey, r.Y),
		)
	}
	return util.Chain(updates...)
}

// Rectangle is a filled axis-aligned rectangle.
type Rectangle struct {
	Base
	X, Y, Width, Height float64
	Color               string
}

// Kind implements Shape.
func (*Rectangle) Kind() Kind { return RectangleKind }
func (*Rectangle) isShape()   {}

// Define implements Shape.
func (r *Rectangle) Define() util.PropertyUpdate {
	return util.Chain(
		r.Base.define(RectangleKind),
		util.DoubleProperty(xKey, r.X),
		util.DoubleProperty(yKey, r.Y),
		util.DoubleProperty(widthKey, r.Width),
		util.DoubleProperty(heightKey, r.Height),
		color.Fill(r.Color),
	)
}
