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

import "math"

const (
	// Minimum label spacing, in pixels, before measuring labels.
	horizontalMinSpacing = 15
	verticalMinSpacing   = 11
	// Padding, in pixels, required between adjacent labels.
	horizontalLabelPadding = 10
	verticalLabelPadding   = 6
)

// horizontalInterval returns the smallest step, starting from one that fits
// horizontalMinSpacing, at which every displayed label fits in the space its
// step affords.  labelSize returns the extent of the label at an index along
// the axis.  The result lies in [1, n].
func horizontalInterval(n int, gap float64, labelSize func(idx int) float64) int {
	if n <= 3 {
		return 1
	}
	if gap <= 0 {
		return n
	}
	start := math.Floor(horizontalMinSpacing / gap)
	if start >= float64(n) {
		return n
	}
	interval := int(start)
	for fits := false; !fits && interval < n; {
		interval++
		fits = true
		space := gap*float64(interval) - horizontalLabelPadding
		for idx := (n - 1) / interval * interval; idx >= 0; idx -= interval {
			if space < labelSize(idx) {
				fits = false
				break
			}
		}
	}
	return clampInterval(interval, n)
}

// verticalInterval returns the smallest step at which labels of the given
// font size, stacked vertically, do not overlap.  The result lies in [1, n].
func verticalInterval(n int, gap, fontSize float64) int {
	if n <= 3 {
		return 1
	}
	if gap <= 0 {
		return n
	}
	start := math.Floor(verticalMinSpacing / gap)
	if start >= float64(n) {
		return n
	}
	interval := int(start)
	for gap*float64(interval)-verticalLabelPadding < fontSize && interval < n {
		interval++
	}
	return clampInterval(interval, n)
}

func clampInterval(interval, n int) int {
	if interval < 1 {
		return 1
	}
	if interval > n {
		return n
	}
	return interval
}
