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

	"github.com/LukasDrgon/incubator-echarts/category"
)

// mapper converts between category indices and pixel coordinates along one
// axis of a grid.
type mapper struct {
	grid        Grid
	horizontal  bool
	boundaryGap bool
	data        []category.Entry
}

// gap returns the pixel distance between adjacent categories.  With a
// boundary gap, each category owns a band of the axis and is centered in it;
// otherwise the first and last categories sit on the grid edges.
func (m mapper) gap() float64 {
	n := len(m.data)
	if n == 0 {
		return 0
	}
	total := m.grid.Height()
	if m.horizontal {
		total = m.grid.Width()
	}
	if m.boundaryGap {
		return total / float64(n)
	}
	if n > 1 {
		return total / float64(n-1)
	}
	return total
}

// coordByIndex returns the pixel coordinate of the category at idx.  Indices
// before the first category map to the axis' start edge and indices after the
// last map to its end edge.  Horizontal axes run left to right and vertical
// axes bottom to top.
func (m mapper) coordByIndex(idx int) float64 {
	n := len(m.data)
	g := m.grid
	if idx < 0 {
		if m.horizontal {
			return g.X()
		}
		return g.YEnd()
	}
	if idx > n-1 {
		if m.horizontal {
			return g.XEnd()
		}
		return g.Y()
	}
	if !m.boundaryGap && n > 1 && idx == n-1 {
		// Exactly on the end edge, whatever the rounding of gap.
		if m.horizontal {
			return g.XEnd()
		}
		return g.Y()
	}
	gap := m.gap()
	pos := float64(idx) * gap
	if m.boundaryGap {
		pos += gap / 2
	}
	if m.horizontal {
		return g.X() + pos
	}
	return g.YEnd() - pos
}

// indexByName returns the index of the first category whose value equals v.
func (m mapper) indexByName(v any) (int, bool) {
	for i, e := range m.data {
		if e.Matches(v) {
			return i, true
		}
	}
	return -1, false
}

// coordByValue returns the coordinate of the category equal to v.  Values not
// on the axis map to its end edge, and false.
func (m mapper) coordByValue(v any) (float64, bool) {
	idx, ok := m.indexByName(v)
	if !ok {
		return m.coordByIndex(len(m.data)), false
	}
	return m.coordByIndex(idx), true
}

// subPixel snaps a coordinate so that a line of the given width renders
// crisply: odd widths are centered on a half pixel, even widths on a whole
// one.
func subPixel(pos, lineWidth float64) float64 {
	if int(math.Round(lineWidth))%2 == 1 {
		return math.Floor(pos) + 0.5
	}
	return math.Floor(pos + 0.5)
}
