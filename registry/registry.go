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

// Package registry maps axis kinds to their constructors.  A Registry is
// assembled once at startup and passed to whatever builds axes.
package registry

import (
	"fmt"
	"sort"

	categoryaxis "github.com/LukasDrgon/incubator-echarts/category_axis"
	"github.com/LukasDrgon/incubator-echarts/shape"
	"github.com/LukasDrgon/incubator-echarts/theme"
)

// CategoryKind is the kind of category axes.
const CategoryKind = "category"

// Axis is implemented by every registered axis.
type Axis interface {
	Refresh(opt *categoryaxis.Option)
	Position() categoryaxis.Position
	Gap() float64
	Interval() int
	CoordByIndex(idx int) float64
	CoordByValue(v any) (float64, bool)
	IndexByName(v any) (int, bool)
	NameByIndex(idx int) (any, bool)
	IsMainAxis(idx int) bool
	Labels() []string
	Shapes() []shape.Shape
}

// Deps holds the collaborators an axis is constructed with.
type Deps struct {
	Theme    *theme.Theme
	Grid     categoryaxis.Grid
	Surface  categoryaxis.Surface
	Measurer categoryaxis.TextMeasurer
}

// Constructor builds an axis.
type Constructor func(deps Deps, opt categoryaxis.Option) Axis

// Entry associates an axis kind with its constructor.
type Entry struct {
	Kind string
	New  Constructor
}

// Category returns the Entry for category axes.
func Category() Entry {
	return Entry{
		Kind: CategoryKind,
		New: func(deps Deps, opt categoryaxis.Option) Axis {
			return categoryaxis.New(deps.Theme, deps.Grid, deps.Surface, deps.Measurer, opt)
		},
	}
}

// Registry is a table of axis constructors.  It is immutable, and safe for
// concurrent use.
type Registry struct {
	ctors map[string]Constructor
}

// New returns a Registry holding the provided entries.  Each kind may be
// registered once.
func New(entries ...Entry) (*Registry, error) {
	r := &Registry{
		ctors: map[string]Constructor{},
	}
	for _, e := range entries {
		if e.Kind == "" || e.New == nil {
			return nil, fmt.Errorf("registry entry must have a kind and a constructor")
		}
		if _, ok := r.ctors[e.Kind]; ok {
			return nil, fmt.Errorf("multiple constructors for axis kind `%s`", e.Kind)
		}
		r.ctors[e.Kind] = e.New
	}
	return r, nil
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []string {
	ret := make([]string, 0, len(r.ctors))
	for kind := range r.ctors {
		ret = append(ret, kind)
	}
	sort.Strings(ret)
	return ret
}

// New constructs an axis of the specified kind.
func (r *Registry) New(kind string, deps Deps, opt categoryaxis.Option) (Axis, error) {
	ctor, ok := r.ctors[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported axis kind `%s`", kind)
	}
	return ctor(deps, opt), nil
}
