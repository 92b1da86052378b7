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

// Package handlers serves data requests over HTTP.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	querydispatcher "github.com/LukasDrgon/incubator-echarts/query_dispatcher"
	"github.com/LukasDrgon/incubator-echarts/util"
)

// HandlerFunc is a HTTP handler function.
type HandlerFunc func(http.ResponseWriter, *http.Request)

// WrapFunc is a function that rewrites a HandlerFunc.
type WrapFunc func(HandlerFunc) HandlerFunc

// Handler describes a set of HTTP handlers keyed by path.
type Handler interface {
	HandlersByPath() map[string]func(http.ResponseWriter, *http.Request)
}

// QueryHandler is a Handler for data queries.  It supports a Wrap method that
// wraps all handlers, e.g. adding cookies.
type QueryHandler interface {
	Handler
	Wrap(...WrapFunc) Handler
}

// sendHTTPResponse serializes the provided Data as JSON and sends it along
// the provided http.ResponseWriter.  Serialization failures yield an HTTP
// internal status error.
func sendHTTPResponse(resp *util.Data, w http.ResponseWriter) {
	respStr, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Failed to marshal response: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	fmt.Fprint(w, string(respStr))
}

// queryHandler serves axis layout queries.
type queryHandler struct {
	qd       *querydispatcher.QueryDispatcher
	wrappers []WrapFunc
}

// NewQueryHandler returns a new Handler serving data requests using the
// provided QueryDispatcher.
func NewQueryHandler(qd *querydispatcher.QueryDispatcher) QueryHandler {
	return &queryHandler{
		qd: qd,
	}
}

const (
	dataMethod = "/GetData"
	// The form field carrying the JSON-encoded DataRequest.
	reqField = "req"
)

type contextKey string

var (
	httpReqKey contextKey = "axisviz_http_req"
)

// RequestOf returns the http Request attached to the provided Context, or nil
// if no Request is attached.  Returns an error if something other than a
// Request is stored in the Context.
func RequestOf(ctx context.Context) (*http.Request, error) {
	reqIf := ctx.Value(httpReqKey)
	if reqIf == nil {
		return nil, nil
	}
	req, ok := reqIf.(*http.Request)
	if !ok {
		return nil, fmt.Errorf("expected *http.Request to be stored in context, but got something else")
	}
	return req, nil
}

func (qh *queryHandler) Wrap(wrappers ...WrapFunc) Handler {
	qh.wrappers = append(qh.wrappers, wrappers...)
	return qh
}

// HandlersByPath returns a mapping of HTTP request path to HTTP handler for
// this Handler.  Wrappers apply in the order they were added, the last
// outermost.
func (qh *queryHandler) HandlersByPath() map[string]func(http.ResponseWriter, *http.Request) {
	var dh HandlerFunc = qh.getDataHandler
	for _, wrapper := range qh.wrappers {
		dh = wrapper(dh)
	}
	return map[string]func(http.ResponseWriter, *http.Request){
		dataMethod: dh,
	}
}

// parseDataRequest extracts the DataRequest carried in req's form.  Layout
// requests must name at least one series, each with a query.
func parseDataRequest(req *http.Request) (*util.DataRequest, error) {
	if err := req.ParseForm(); err != nil {
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}
	encoded := req.Form.Get(reqField)
	if encoded == "" {
		return nil, fmt.Errorf("missing form field '%s'", reqField)
	}
	dataReq, err := util.DataRequestFromJSON([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to parse DataRequest: %w", err)
	}
	if len(dataReq.SeriesRequests) == 0 {
		return nil, fmt.Errorf("DataRequest has no series")
	}
	for idx, seriesReq := range dataReq.SeriesRequests {
		if seriesReq == nil || seriesReq.QueryName == "" {
			return nil, fmt.Errorf("series request %d has no query", idx)
		}
	}
	return dataReq, nil
}

func (qh *queryHandler) getDataHandler(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "Unsupported method "+req.Method, http.StatusMethodNotAllowed)
		return
	}
	dataReq, err := parseDataRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	resp, err := qh.qd.HandleDataRequest(context.WithValue(req.Context(), httpReqKey, req), dataReq)
	if err != nil {
		slog.Info("data request failed", "remote", req.RemoteAddr, "err", err)
		http.Error(w, "DataRequest failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	sendHTTPResponse(resp, w)
}

// HTTPRequestFromContext returns the *http.Request stored in the provided
// context, or nil if no request is stored in the context.
func HTTPRequestFromContext(ctx context.Context) *http.Request {
	req, _ := RequestOf(ctx)
	return req
}
