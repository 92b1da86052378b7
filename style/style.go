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

// Package style supports specifying the text, line, and area styling of axis
// shapes.
//
// Styles are plain values.  An unset field (the empty string, or a zero
// size or width) is absent, and Merge fills absent fields from a set of
// defaults without ever overwriting a field that is set:
//
//	labelStyle := style.Text{Color: "#333"}.Merge(theme.TextStyle)
//
// Merge returns a new value; neither operand is modified.  Names and values
// follow the corresponding SVG attributes or CSS properties, e.g.
// https://developer.mozilla.org/en-US/docs/Web/SVG/Attribute.
package style

import (
	"fmt"
	"strconv"

	"github.com/LukasDrgon/incubator-echarts/color"
	"github.com/LukasDrgon/incubator-echarts/util"
)

const (
	keyPrefix = "style_"

	// Font description defaults.
	DefaultFontStyle  = "normal"
	DefaultFontWeight = "normal"
	DefaultFontSize   = 12
	DefaultFontFamily = "Arial, Verdana, sans-serif"
)

// Text styles a text shape.
type Text struct {
	Color      string  `yaml:"color"`
	Align      string  `yaml:"align"`
	Baseline   string  `yaml:"baseline"`
	FontStyle  string  `yaml:"fontStyle"`
	FontWeight string  `yaml:"fontWeight"`
	FontSize   float64 `yaml:"fontSize"`
	FontFamily string  `yaml:"fontFamily"`
}

// Merge returns the receiver with its absent fields taken from defaults.
func (t Text) Merge(defaults Text) Text {
	t.Color = orString(t.Color, defaults.Color)
	t.Align = orString(t.Align, defaults.Align)
	t.Baseline = orString(t.Baseline, defaults.Baseline)
	t.FontStyle = orString(t.FontStyle, defaults.FontStyle)
	t.FontWeight = orString(t.FontWeight, defaults.FontWeight)
	t.FontSize = orFloat(t.FontSize, defaults.FontSize)
	t.FontFamily = orString(t.FontFamily, defaults.FontFamily)
	return t
}

// Size returns the receiver's font size, or DefaultFontSize if absent.
func (t Text) Size() float64 {
	return orFloat(t.FontSize, DefaultFontSize)
}

// Font returns the receiver's font description, in the form of the CSS font
// shorthand: "<style> <weight> <size>px <family>".
func (t Text) Font() string {
	return fmt.Sprintf("%s %s %spx %s",
		orString(t.FontStyle, DefaultFontStyle),
		orString(t.FontWeight, DefaultFontWeight),
		strconv.FormatFloat(t.Size(), 'f', -1, 64),
		orString(t.FontFamily, DefaultFontFamily),
	)
}

// Define annotates with the receiver's set fields.
func (t Text) Define() util.PropertyUpdate {
	return util.Chain(
		util.If(t.Color != "", util.StringProperty(keyPrefix+"color", t.Color)),
		util.If(t.Align != "", util.StringProperty(keyPrefix+"text_align", t.Align)),
		util.If(t.Baseline != "", util.StringProperty(keyPrefix+"text_baseline", t.Baseline)),
		util.StringProperty(keyPrefix+"font", t.Font()),
	)
}

// Line styles a line shape.  Color may cycle, as for split lines.
type Line struct {
	Color color.List `yaml:"color"`
	Width float64    `yaml:"width"`
	// Type is the dash type: solid, dashed, or dotted.
	Type string `yaml:"type"`
}

// Merge returns the receiver with its absent fields taken from defaults.
func (l Line) Merge(defaults Line) Line {
	l.Color = l.Color.Or(defaults.Color)
	l.Width = orFloat(l.Width, defaults.Width)
	l.Type = orString(l.Type, defaults.Type)
	return l
}

// Define annotates with the receiver's width and dash type.  Colors are
// annotated per shape.
func (l Line) Define() util.PropertyUpdate {
	return util.Chain(
		util.DoubleProperty(keyPrefix+"line_width", l.Width),
		util.If(l.Type != "", util.StringProperty(keyPrefix+"line_type", l.Type)),
	)
}

// Area styles a filled region.
type Area struct {
	Color color.List `yaml:"color"`
}

// Merge returns the receiver with its absent fields taken from defaults.
func (a Area) Merge(defaults Area) Area {
	a.Color = a.Color.Or(defaults.Color)
	return a
}

// Px formats the provided value as a pixel specifier.
func Px(valPx float64) string {
	return fmt.Sprintf("%.2fpx", valPx)
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
