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

// Package datasource provides a TraceViz data source laying out category
// axes.
//
// A request may name a collection, a stored axis option, in its global
// filters; each series request's options then adjust that option.  Responses
// are structured as:
//
//	axis.category_layout series
//	  properties
//	    * grid_x, grid_y, grid_width, grid_height
//	    * position, gap, label_interval, main_indices, category_names
//	    * label_format (if the axis has a template formatter)
//	  shape (repeated, in painting order; see package shape)
//
//	axis.category_coords series
//	  properties
//	    * position, gap, label_interval, main_indices
//	  category (repeated, in category order)
//	    properties
//	      * category_index, label, coord, is_main
package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/LukasDrgon/incubator-echarts/category"
	categoryaxis "github.com/LukasDrgon/incubator-echarts/category_axis"
	"github.com/LukasDrgon/incubator-echarts/grid"
	"github.com/LukasDrgon/incubator-echarts/label"
	"github.com/LukasDrgon/incubator-echarts/registry"
	"github.com/LukasDrgon/incubator-echarts/surface"
	"github.com/LukasDrgon/incubator-echarts/theme"
	"github.com/LukasDrgon/incubator-echarts/util"
	"github.com/hashicorp/golang-lru/simplelru"
	"golang.org/x/sync/errgroup"
)

const (
	categoryLayoutQuery = "axis.category_layout"
	categoryCoordsQuery = "axis.category_coords"

	// Global filter keys.
	collectionNameKey = "collection_name"

	// Series option keys.
	axisKindKey      = "axis_kind"
	gridXKey         = "grid_x"
	gridYKey         = "grid_y"
	gridWidthKey     = "grid_width"
	gridHeightKey    = "grid_height"
	positionKey      = "position"
	categoriesKey    = "categories"
	boundaryGapKey   = "boundary_gap"
	labelIntervalKey = "label_interval"
	labelRotateKey   = "label_rotate"
	labelFormatKey   = "label_format"
	axisNameKey      = "axis_name"
	splitAreaKey     = "split_area"

	// Response keys.
	gapKey           = "gap"
	categoryIndexKey = "category_index"
	labelKey         = "label"
	coordKey         = "coord"
	isMainKey        = "is_main"
	mainIndicesKey   = "main_indices"
)

// CollectionFetcher fetches stored axis options by name.
type CollectionFetcher interface {
	// Fetch returns the specified Collection, or an error if it cannot be
	// fetched.
	Fetch(ctx context.Context, collectionName string) (*Collection, error)
}

// Collection is a stored axis option that requests may refer to by name.
type Collection struct {
	opt categoryaxis.Option
}

// NewCollection returns a Collection holding the provided option.
func NewCollection(opt categoryaxis.Option) *Collection {
	return &Collection{opt: opt}
}

// DataSource implements querydispatcher.dataSource for category axis layout.
// It caches the most recently used collections, and is safe for concurrent
// use.
type DataSource struct {
	mu  sync.Mutex
	lru *simplelru.LRU
	// Fetches uncached collections.  May be nil, if no collections are served.
	fetcher  CollectionFetcher
	axes     *registry.Registry
	theme    *theme.Theme
	measurer categoryaxis.TextMeasurer
}

// New returns a new DataSource with the specified collection cache capacity,
// building axes from the provided registry with the provided theme and text
// measurer.
func New(cap int, fetcher CollectionFetcher, axes *registry.Registry, th *theme.Theme, measurer categoryaxis.TextMeasurer) (*DataSource, error) {
	lru, err := simplelru.NewLRU(cap, nil /* no onEvict policy */)
	if err != nil {
		return nil, err
	}
	if th == nil {
		th = theme.Default()
	}
	return &DataSource{
		lru:      lru,
		fetcher:  fetcher,
		axes:     axes,
		theme:    th,
		measurer: measurer,
	}, nil
}

// SupportedDataSeriesQueries returns the DataSeriesRequest query names
// supported by DataSource.
func (ds *DataSource) SupportedDataSeriesQueries() []string {
	return []string{
		categoryLayoutQuery,
		categoryCoordsQuery,
	}
}

// fetchCollection returns the specified collection from the LRU if it's
// present there.  If it isn't already in the LRU, it is fetched and added to
// the LRU before being returned.
func (ds *DataSource) fetchCollection(ctx context.Context, collectionName string) (*Collection, error) {
	ds.mu.Lock()
	collIf, ok := ds.lru.Get(collectionName)
	ds.mu.Unlock()
	if ok {
		coll, ok := collIf.(*Collection)
		if !ok {
			return nil, fmt.Errorf("cached collection `%s` wasn't an axis option", collectionName)
		}
		return coll, nil
	}
	if ds.fetcher == nil {
		return nil, fmt.Errorf("no collections are served (requested `%s`)", collectionName)
	}
	coll, err := ds.fetcher.Fetch(ctx, collectionName)
	if err != nil {
		return nil, err
	}
	ds.mu.Lock()
	ds.lru.Add(collectionName, coll)
	ds.mu.Unlock()
	return coll, nil
}

// HandleDataSeriesRequests handles the provided set of DataSeriesRequests, with
// the provided global filters.  Each request is laid out concurrently, on its
// own axis.  It assembles its responses in the provided DataResponseBuilder.
func (ds *DataSource) HandleDataSeriesRequests(ctx context.Context, globalFilters map[string]*util.V, drb *util.DataResponseBuilder, reqs []*util.DataSeriesRequest) error {
	start := time.Now()
	queryNames := make([]string, 0, len(reqs))
	for _, req := range reqs {
		queryNames = append(queryNames, req.QueryName)
	}
	defer func() {
		slog.Debug("handled axis queries", "queries", strings.Join(queryNames, ", "), "elapsed", time.Since(start))
	}()
	var base categoryaxis.Option
	if collectionNameVal, ok := globalFilters[collectionNameKey]; ok {
		collectionName, err := util.ExpectStringValue(collectionNameVal)
		if err != nil {
			return fmt.Errorf("filter option '%s' must be a string", collectionNameKey)
		}
		coll, err := ds.fetchCollection(ctx, collectionName)
		if err != nil {
			return err
		}
		base = coll.opt
	}
	errg, ctx := errgroup.WithContext(ctx)
	for _, req := range reqs {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var err error
			series := drb.DataSeries(req)
			switch req.QueryName {
			case categoryLayoutQuery:
				err = ds.handleLayoutQuery(base, series, req.Options)
			case categoryCoordsQuery:
				err = ds.handleCoordsQuery(base, series, req.Options)
			default:
				err = fmt.Errorf("unsupported data query")
			}
			if err != nil {
				return fmt.Errorf("error handling data query %s: %w", req.QueryName, err)
			}
			return nil
		})
	}
	return errg.Wait()
}

// layoutRequest is an axis to lay out, as assembled from a series request.
type layoutRequest struct {
	kind string
	grid grid.Rect
	opt  categoryaxis.Option
}

// newAxis builds the requested axis, delivering its shapes to s if s is
// non-nil.
func (ds *DataSource) newAxis(lr *layoutRequest, s categoryaxis.Surface) (registry.Axis, error) {
	return ds.axes.New(lr.kind, registry.Deps{
		Theme:    ds.theme,
		Grid:     lr.grid,
		Surface:  s,
		Measurer: ds.measurer,
	}, lr.opt)
}

// describe annotates the axis' layout summary, including the indices of the
// categories whose labels are displayed.
func describe(axis registry.Axis) util.PropertyUpdate {
	var main []int64
	for idx := range axis.Labels() {
		if axis.IsMainAxis(idx) {
			main = append(main, int64(idx))
		}
	}
	return util.Chain(
		util.StringProperty(positionKey, string(axis.Position())),
		util.DoubleProperty(gapKey, axis.Gap()),
		util.IntegerProperty(labelIntervalKey, int64(axis.Interval())),
		util.IntegersProperty(mainIndicesKey, main...),
	)
}

func (ds *DataSource) handleLayoutQuery(base categoryaxis.Option, series util.DataBuilder, reqOpts map[string]*util.V) error {
	lr, err := parseLayoutRequest(base, reqOpts)
	if err != nil {
		return err
	}
	rec := surface.NewRecorder()
	axis, err := ds.newAxis(lr, rec)
	if err != nil {
		return err
	}
	var format util.PropertyUpdate
	if tmpl, ok := lr.opt.AxisLabel.Formatter.(label.Template); ok {
		format = tmpl.Define()
	}
	series.With(
		lr.grid.Define(),
		describe(axis),
		category.Define(lr.opt.Data),
		format,
	)
	surface.Data(series, rec.Shapes())
	return nil
}

func (ds *DataSource) handleCoordsQuery(base categoryaxis.Option, series util.DataBuilder, reqOpts map[string]*util.V) error {
	lr, err := parseLayoutRequest(base, reqOpts)
	if err != nil {
		return err
	}
	axis, err := ds.newAxis(lr, nil)
	if err != nil {
		return err
	}
	series.With(describe(axis))
	for idx, l := range axis.Labels() {
		series.Child().With(
			util.IntegerProperty(categoryIndexKey, int64(idx)),
			util.StringProperty(labelKey, l),
			util.DoubleProperty(coordKey, axis.CoordByIndex(idx)),
			util.BoolProperty(isMainKey, axis.IsMainAxis(idx)),
		)
	}
	return nil
}

// parseLayoutRequest applies the provided series options to base.  The grid
// size is required; all other options are optional.
func parseLayoutRequest(base categoryaxis.Option, opts map[string]*util.V) (*layoutRequest, error) {
	lr := &layoutRequest{
		kind: registry.CategoryKind,
		opt:  base,
	}
	var err error
	getDouble := func(key string, required bool) (float64, bool, error) {
		v, ok := opts[key]
		if !ok {
			if required {
				return 0, false, fmt.Errorf("missing required option '%s'", key)
			}
			return 0, false, nil
		}
		f, err := util.ExpectDoubleValue(v)
		if err != nil {
			return 0, false, fmt.Errorf("option '%s': %w", key, err)
		}
		return f, true, nil
	}
	getString := func(key string) (string, bool, error) {
		v, ok := opts[key]
		if !ok {
			return "", false, nil
		}
		s, err := util.ExpectStringValue(v)
		if err != nil {
			return "", false, fmt.Errorf("option '%s': %w", key, err)
		}
		return s, true, nil
	}
	getInteger := func(key string) (int64, bool, error) {
		v, ok := opts[key]
		if !ok {
			return 0, false, nil
		}
		i, err := util.ExpectIntegerValue(v)
		if err != nil {
			return 0, false, fmt.Errorf("option '%s': %w", key, err)
		}
		return i, true, nil
	}

	var x, y, w, h float64
	if x, _, err = getDouble(gridXKey, false); err != nil {
		return nil, err
	}
	if y, _, err = getDouble(gridYKey, false); err != nil {
		return nil, err
	}
	if w, _, err = getDouble(gridWidthKey, true); err != nil {
		return nil, err
	}
	if h, _, err = getDouble(gridHeightKey, true); err != nil {
		return nil, err
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("grid size must not be negative (got %vx%v)", w, h)
	}
	lr.grid = grid.New(x, y, w, h)

	if kind, ok, err := getString(axisKindKey); err != nil {
		return nil, err
	} else if ok {
		lr.kind = kind
	}
	if pos, ok, err := getString(positionKey); err != nil {
		return nil, err
	} else if ok {
		switch p := categoryaxis.Position(pos); p {
		case categoryaxis.Top, categoryaxis.Bottom, categoryaxis.Left, categoryaxis.Right:
			lr.opt.Position = p
		default:
			return nil, fmt.Errorf("unknown position `%s`", pos)
		}
	}
	if v, ok := opts[categoriesKey]; ok {
		names, err := util.ExpectStringsValue(v)
		if err != nil {
			return nil, fmt.Errorf("option '%s': %w", categoriesKey, err)
		}
		lr.opt.Data = category.Entries(names...)
	}
	if bg, ok, err := getInteger(boundaryGapKey); err != nil {
		return nil, err
	} else if ok {
		lr.opt.BoundaryGap = categoryaxis.Bool(bg != 0)
	}
	if iv, ok, err := getInteger(labelIntervalKey); err != nil {
		return nil, err
	} else if ok {
		// Negative intervals are chosen automatically.
		if iv < 0 {
			lr.opt.AxisLabel.Interval = categoryaxis.Auto()
		} else {
			lr.opt.AxisLabel.Interval = categoryaxis.Every(int(iv))
		}
	}
	if rot, ok, err := getDouble(labelRotateKey, false); err != nil {
		return nil, err
	} else if ok {
		lr.opt.AxisLabel.Rotate = rot
	}
	if format, ok, err := getString(labelFormatKey); err != nil {
		return nil, err
	} else if ok {
		lr.opt.AxisLabel.Formatter = label.Template(format)
	}
	if name, ok, err := getString(axisNameKey); err != nil {
		return nil, err
	} else if ok {
		lr.opt.Name = name
	}
	if show, ok, err := getInteger(splitAreaKey); err != nil {
		return nil, err
	} else if ok {
		lr.opt.SplitArea.Show = categoryaxis.Bool(show != 0)
	}
	return lr, nil
}
