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

// Package color supports declaring the colors of axis shapes.
//
// A color option may be given either as a single color or as a list of
// colors.  The distinction matters: split areas paint a single background
// for a single color, but alternate bands for a list, even a list of one.
// Colors are HTML color strings: a color name, or an RGB, RGBA, HSL, HSLA, or
// hex color specifier.
//
//	bg := color.Single("#fafafa")
//	bands := color.Cycle("rgba(250,250,250,0.3)", "rgba(200,200,200,0.3)")
//	bands.At(3) // "rgba(200,200,200,0.3)"
//
// Shapes are annotated with their colors via Fill and Stroke.
package color

import (
	"fmt"

	"github.com/LukasDrgon/incubator-echarts/util"
	"gopkg.in/yaml.v3"
)

const (
	fillColorKey   = "fill_color"
	strokeColorKey = "stroke_color"
	colorsKey      = "colors"
)

// List is a single color or a cycled list of colors.  The zero List is
// unset.
type List struct {
	colors []string
	cycle  bool
}

// Single returns a List holding one color.
func Single(c string) List {
	return List{colors: []string{c}}
}

// Cycle returns a List cycling through the provided colors.
func Cycle(cs ...string) List {
	return List{colors: append([]string(nil), cs...), cycle: true}
}

// IsSet returns true if the receiver holds at least one color.
func (l List) IsSet() bool {
	return len(l.colors) > 0
}

// IsCycle returns true if the receiver was declared as a list.
func (l List) IsCycle() bool {
	return l.cycle
}

// Len returns the number of colors in the receiver.
func (l List) Len() int {
	return len(l.colors)
}

// At returns the i'th color, wrapping around the list.  An unset List yields
// the empty string.
func (l List) At(i int) string {
	if len(l.colors) == 0 {
		return ""
	}
	i %= len(l.colors)
	if i < 0 {
		i += len(l.colors)
	}
	return l.colors[i]
}

// First returns the first color, or the empty string if unset.
func (l List) First() string {
	return l.At(0)
}

// Colors returns a copy of the receiver's colors.
func (l List) Colors() []string {
	return append([]string(nil), l.colors...)
}

// Or returns the receiver if it is set, and def otherwise.
func (l List) Or(def List) List {
	if l.IsSet() {
		return l
	}
	return def
}

// UnmarshalYAML decodes a scalar as a single color and a sequence as a cycle.
func (l *List) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var c string
		if err := node.Decode(&c); err != nil {
			return err
		}
		*l = Single(c)
	case yaml.SequenceNode:
		var cs []string
		if err := node.Decode(&cs); err != nil {
			return err
		}
		*l = Cycle(cs...)
	default:
		return fmt.Errorf("line %d: color must be a string or a list of strings", node.Line)
	}
	return nil
}

// Define annotates with the receiver's colors.
func (l List) Define() util.PropertyUpdate {
	return util.StringsProperty(colorsKey, l.colors...)
}

// Fill annotates a shape with the specified fill color.
func Fill(c string) util.PropertyUpdate {
	return util.If(c != "", util.StringProperty(fillColorKey, c))
}

// Stroke annotates a shape with the specified stroke color.
func Stroke(c string) util.PropertyUpdate {
	return util.If(c != "", util.StringProperty(strokeColorKey, c))
}
