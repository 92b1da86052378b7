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

// Package surface provides rendering surfaces that accept the shapes an axis
// builds: an in-memory Recorder, an encoder into TraceViz response data, and
// an SVG writer.
package surface

import (
	"sort"

	"github.com/LukasDrgon/incubator-echarts/shape"
)

// Recorder retains the shapes added to it.  It is not safe for concurrent
// use.
type Recorder struct {
	shapes []shape.Shape
	adds   int
	dels   int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// AddShapes appends the provided shapes.
func (r *Recorder) AddShapes(shapes ...shape.Shape) {
	r.adds++
	r.shapes = append(r.shapes, shapes...)
}

// DelShapes removes the provided shapes.  Shapes not on the Recorder are
// ignored.
func (r *Recorder) DelShapes(shapes ...shape.Shape) {
	r.dels++
	del := make(map[shape.Shape]struct{}, len(shapes))
	for _, s := range shapes {
		del[s] = struct{}{}
	}
	kept := r.shapes[:0]
	for _, s := range r.shapes {
		if _, ok := del[s]; !ok {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(r.shapes); i++ {
		r.shapes[i] = nil
	}
	r.shapes = kept
}

// Shapes returns the retained shapes in painting order: by ascending z-level,
// and in insertion order within a level.
func (r *Recorder) Shapes() []shape.Shape {
	ret := append([]shape.Shape(nil), r.shapes...)
	sort.SliceStable(ret, func(a, b int) bool {
		return ret[a].Attrs().ZLevel < ret[b].Attrs().ZLevel
	})
	return ret
}

// Len returns the number of retained shapes.
func (r *Recorder) Len() int {
	return len(r.shapes)
}

// Submissions returns the number of AddShapes and DelShapes calls received.
func (r *Recorder) Submissions() (adds, dels int) {
	return r.adds, r.dels
}
