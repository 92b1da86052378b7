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

// Package grid defines the plot rectangle axes are laid out against.
package grid

import "github.com/LukasDrgon/incubator-echarts/util"

const (
	gridXKey      = "grid_x"
	gridYKey      = "grid_y"
	gridWidthKey  = "grid_width"
	gridHeightKey = "grid_height"
)

// Rect is a plot rectangle in pixels, with its origin at the top left.
type Rect struct {
	Left, Top, W, H float64
}

// New returns a Rect with the specified origin and size.
func New(x, y, width, height float64) Rect {
	return Rect{Left: x, Top: y, W: width, H: height}
}

// X returns the left edge.
func (r Rect) X() float64 { return r.Left }

// XEnd returns the right edge.
func (r Rect) XEnd() float64 { return r.Left + r.W }

// Y returns the top edge.
func (r Rect) Y() float64 { return r.Top }

// YEnd returns the bottom edge.
func (r Rect) YEnd() float64 { return r.Top + r.H }

// Width returns the width.
func (r Rect) Width() float64 { return r.W }

// Height returns the height.
func (r Rect) Height() float64 { return r.H }

// Define annotates with the receiver's geometry.
func (r Rect) Define() util.PropertyUpdate {
	return util.Chain(
		util.DoubleProperty(gridXKey, r.Left),
		util.DoubleProperty(gridYKey, r.Top),
		util.DoubleProperty(gridWidthKey, r.W),
		util.DoubleProperty(gridHeightKey, r.H),
	)
}
