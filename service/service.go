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

// Package service assembles the axis layout HTTP service.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	categoryaxis "github.com/LukasDrgon/incubator-echarts/category_axis"
	datasource "github.com/LukasDrgon/incubator-echarts/data_source"
	"github.com/LukasDrgon/incubator-echarts/handlers"
	querydispatcher "github.com/LukasDrgon/incubator-echarts/query_dispatcher"
	"github.com/LukasDrgon/incubator-echarts/registry"
	textmetrics "github.com/LukasDrgon/incubator-echarts/text_metrics"
	"github.com/LukasDrgon/incubator-echarts/theme"
)

// collectionFetcher reads axis option collections as YAML files under a root
// directory.  Caching is left to the data source.
type collectionFetcher struct {
	collectionRoot string
}

func (cf *collectionFetcher) Fetch(ctx context.Context, collectionName string) (*datasource.Collection, error) {
	if !filepath.IsLocal(collectionName) {
		return nil, fmt.Errorf("collection name `%s` must be a local path", collectionName)
	}
	doc, err := os.ReadFile(filepath.Join(cf.collectionRoot, collectionName))
	if err != nil {
		return nil, err
	}
	opt, err := categoryaxis.Load(doc)
	if err != nil {
		return nil, fmt.Errorf("collection `%s`: %w", collectionName, err)
	}
	slog.Debug("loaded collection", "name", collectionName, "categories", len(opt.Data))
	return datasource.NewCollection(opt), nil
}

// Service serves axis layout queries.
type Service struct {
	queryHandler handlers.QueryHandler
}

// New returns a Service laying out axes with the provided theme (or the
// default theme if nil), reading collections from collectionRoot and caching
// up to cap of them.
func New(collectionRoot string, th *theme.Theme, cap int) (*Service, error) {
	measurer, err := textmetrics.New(textmetrics.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	axes, err := registry.New(registry.Category())
	if err != nil {
		return nil, err
	}
	ds, err := datasource.New(cap, &collectionFetcher{collectionRoot: collectionRoot}, axes, th, measurer)
	if err != nil {
		return nil, err
	}
	qd, err := querydispatcher.New(ds)
	if err != nil {
		return nil, err
	}
	return &Service{
		queryHandler: handlers.NewQueryHandler(qd),
	}, nil
}

// RegisterHandlers registers the receiver's handlers on the provided mux.
func (s *Service) RegisterHandlers(mux *http.ServeMux) {
	for path, handler := range s.queryHandler.HandlersByPath() {
		mux.HandleFunc(path, handler)
	}
}
