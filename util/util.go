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

// Package util defines the response encoding shared by axis layout data
// sources:
//
// DataResponseBuilder, for populating responses to DataRequests;
//
// {type}Value functions (type={String, StringIndex, Strings, StringIndices,
// Integer, Integers, Double}) for constructing Values of the specified type;
//
// Expect{type}Value functions, over the same types, for retrieving values of
// the specified types from Values, returning an error on a type mismatch;
//
// DataBuilder and PropertyUpdate, for assembling response data
// programmatically.
package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
)

type valueType int

// Enumerated value types.
const (
	unsetValue valueType = iota
	StringValueType
	StringIndexValueType
	StringsValueType
	StringIndicesValueType
	IntegerValueType
	IntegersValueType
	DoubleValueType
)

// V represents a value in a request or response.
type V struct {
	V any
	T valueType
}

// PrettyPrint returns the receiver, deterministically prettyprinted.
// String-index-type values prettyprint the same as the corresponding
// literal-string-type values.  Only for use in tests.
func (v *V) PrettyPrint(st []string) string {
	switch v.T {
	case unsetValue:
		return "unset"
	case StringValueType:
		str, err := ExpectStringValue(v)
		if err != nil {
			return "error: " + err.Error()
		}
		return "'" + str + "'"
	case StringIndexValueType:
		return "'" + st[v.V.(int64)] + "'"
	case StringsValueType:
		return "[ '" + strings.Join(v.V.([]string), "', '") + "' ]"
	case StringIndicesValueType:
		idxs := v.V.([]int64)
		strs := make([]string, len(idxs))
		for i, idx := range idxs {
			strs[i] = st[idx]
		}
		return "[ '" + strings.Join(strs, "', '") + "' ]"
	case IntegerValueType:
		return strconv.FormatInt(v.V.(int64), 10)
	case IntegersValueType:
		ints := v.V.([]int64)
		strs := make([]string, len(ints))
		for i, n := range ints {
			strs[i] = strconv.FormatInt(n, 10)
		}
		return "[ " + strings.Join(strs, ", ") + " ]"
	case DoubleValueType:
		return fmt.Sprintf("%.6f", v.V.(float64))
	}
	return fmt.Sprintf("error: unknown value type %d", v.T)
}

// MarshalJSON encodes a V as the two-element array [type, value].
func (v *V) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{v.T, v.V})
}

func (v *V) fromAny(got []any) error {
	if len(got) != 2 {
		return fmt.Errorf("value must be a [type, value] pair")
	}
	num, ok := got[0].(json.Number)
	if !ok {
		return fmt.Errorf("value type must be a number")
	}
	t, err := num.Int64()
	if err != nil {
		return err
	}
	v.T = valueType(t)
	tv := got[1]
	switch v.T {
	case StringIndexValueType, IntegerValueType:
		n, ok := tv.(json.Number)
		if !ok {
			return fmt.Errorf("expected a number for value type %d", v.T)
		}
		v.V, err = n.Int64()
	case DoubleValueType:
		n, ok := tv.(json.Number)
		if !ok {
			return fmt.Errorf("expected a number for value type %d", v.T)
		}
		v.V, err = n.Float64()
	case StringsValueType:
		items, ok := tv.([]any)
		if !ok {
			return fmt.Errorf("expected a list for value type %d", v.T)
		}
		strs := make([]string, len(items))
		for idx, item := range items {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected a string at index %d", idx)
			}
			if strs[idx], err = url.QueryUnescape(s); err != nil {
				return err
			}
		}
		v.V = strs
	case StringIndicesValueType, IntegersValueType:
		items, ok := tv.([]any)
		if !ok {
			return fmt.Errorf("expected a list for value type %d", v.T)
		}
		ints := make([]int64, len(items))
		for idx, item := range items {
			n, ok := item.(json.Number)
			if !ok {
				return fmt.Errorf("expected a number at index %d", idx)
			}
			if ints[idx], err = n.Int64(); err != nil {
				return err
			}
		}
		v.V = ints
	default:
		v.V = tv
	}
	return err
}

// UnmarshalJSON unmarshals the provided JSON bytes into the receiving V.
func (v *V) UnmarshalJSON(data []byte) error {
	var got []any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&got); err != nil {
		return err
	}
	return v.fromAny(got)
}

// Datum represents a single Datum in a data series response.
type Datum struct {
	Properties map[int64]*V
	Children   []*Datum
}

// PrettyPrint returns the receiver deterministically prettyprinted.
// Only for use in tests.
func (d *Datum) PrettyPrint(indent string, st []string) string {
	ret := []string{}
	keys := make([]int64, 0, len(d.Properties))
	for k := range d.Properties {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		return st[keys[a]] < st[keys[b]]
	})
	for _, k := range keys {
		ret = append(ret,
			fmt.Sprintf("%sProp '%s': %s", indent, st[k], d.Properties[k].PrettyPrint(st)),
		)
	}
	for _, child := range d.Children {
		ret = append(ret,
			fmt.Sprintf("%sChild:", indent),
			child.PrettyPrint(indent+"  ", st),
		)
	}
	return strings.Join(ret, "\n")
}

// MarshalJSON encodes a Datum as [[[key, V]...], [Datum...]], with
// properties in increasing key order.
func (d *Datum) MarshalJSON() ([]byte, error) {
	keys := make([]int64, 0, len(d.Properties))
	for k := range d.Properties {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		return keys[a] < keys[b]
	})
	props := make([]any, len(keys))
	for idx, k := range keys {
		props[idx] = []any{k, d.Properties[k]}
	}
	children := make([]any, len(d.Children))
	for idx, child := range d.Children {
		children[idx] = child
	}
	return json.Marshal([]any{props, children})
}

// DataSeriesRequest is a request for a specific data series.
type DataSeriesRequest struct {
	QueryName  string
	SeriesName string
	Options    map[string]*V
}

// DataSeries represents a complete data series response.
type DataSeries struct {
	SeriesName string
	Root       *Datum
}

// PrettyPrint returns the receiver deterministically prettyprinted.
// Only for use in tests.
func (ds *DataSeries) PrettyPrint(indent string, st []string) string {
	return strings.Join([]string{
		fmt.Sprintf("%sSeries %s", indent, ds.SeriesName),
		indent + "  " + "Root:",
		ds.Root.PrettyPrint(indent+"    ", st),
	}, "\n")
}

// DataRequest is a request for one or more data series.
type DataRequest struct {
	GlobalFilters  map[string]*V
	SeriesRequests []*DataSeriesRequest
}

// DataRequestFromJSON attempts to construct a DataRequest from the provided
// JSON.
func DataRequestFromJSON(j []byte) (*DataRequest, error) {
	ret := &DataRequest{}
	err := json.Unmarshal(j, ret)
	return ret, err
}

// Data represents a complete data response.
type Data struct {
	StringTable []string
	DataSeries  []*DataSeries
}

// PrettyPrint returns the receiver deterministically prettyprinted.
// Only for use in tests.
func (d *Data) PrettyPrint() string {
	ret := []string{"Data:"}
	for _, series := range d.DataSeries {
		ret = append(ret, series.PrettyPrint("  ", d.StringTable))
	}
	return strings.Join(ret, "\n")
}

// stringTable associates strings with unique integers.  It is thread-safe.
type stringTable struct {
	stringsToIndices map[string]int64
	stringsByIndex   []string
	mu               sync.RWMutex
}

func newStringTable(strs ...string) *stringTable {
	ret := &stringTable{
		stringsToIndices: map[string]int64{},
	}
	for _, str := range strs {
		ret.stringIndex(str)
	}
	return ret
}

// stringIndex returns the index of the provided string, adding it to the
// receiver if necessary.
func (st *stringTable) stringIndex(str string) int64 {
	st.mu.RLock()
	idx, ok := st.stringsToIndices[str]
	st.mu.RUnlock()
	if ok {
		return idx
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	// Another writer may have added it between the two locks.
	if idx, ok := st.stringsToIndices[str]; ok {
		return idx
	}
	idx = int64(len(st.stringsByIndex))
	st.stringsByIndex = append(st.stringsByIndex, str)
	st.stringsToIndices[str] = idx
	return idx
}

// errorList accumulates errors raised while building a response.
type errorList struct {
	errs []error
	mu   sync.Mutex
}

func (el *errorList) add(err error) {
	el.mu.Lock()
	defer el.mu.Unlock()
	el.errs = append(el.errs, err)
}

func (el *errorList) failed() bool {
	el.mu.Lock()
	defer el.mu.Unlock()
	return len(el.errs) > 0
}

func (el *errorList) toError() error {
	el.mu.Lock()
	defer el.mu.Unlock()
	if len(el.errs) == 0 {
		return nil
	}
	msgs := make([]string, len(el.errs))
	for idx, err := range el.errs {
		msgs[idx] = err.Error()
	}
	return fmt.Errorf("%s", strings.Join(msgs, ", "))
}

// DataResponseBuilder streamlines assembling responses to DataRequests.
type DataResponseBuilder struct {
	st   *stringTable
	errs *errorList
	d    *Data
	mu   sync.Mutex
}

// NewDataResponseBuilder returns a new, empty DataResponseBuilder.
func NewDataResponseBuilder() *DataResponseBuilder {
	return &DataResponseBuilder{
		st:   newStringTable(),
		errs: &errorList{},
		d: &Data{
			StringTable: []string{},
			DataSeries:  []*DataSeries{},
		},
	}
}

// DataBuilder is implemented by types that can assemble responses.
type DataBuilder interface {
	With(updates ...PropertyUpdate) DataBuilder
	Child() DataBuilder
}

// DataSeries returns a new DataBuilder for assembling the response to the
// provided DataSeriesRequest.  DataSeries is safe for concurrent use.
func (drb *DataResponseBuilder) DataSeries(req *DataSeriesRequest) DataBuilder {
	ret := newDatumBuilder(drb.errs, drb.st)
	ds := &DataSeries{
		SeriesName: req.SeriesName,
		Root:       ret.d,
	}
	drb.mu.Lock()
	drb.d.DataSeries = append(drb.d.DataSeries, ds)
	drb.mu.Unlock()
	return ret
}

// Data completes and returns the Data under construction.
func (drb *DataResponseBuilder) Data() (*Data, error) {
	if err := drb.errs.toError(); err != nil {
		return nil, err
	}
	drb.d.StringTable = drb.st.stringsByIndex
	return drb.d, nil
}

// StringValue returns a new Value wrapping the provided string.
func StringValue(str string) *V {
	return &V{V: str, T: StringValueType}
}

// StringIndexValue returns a new Value wrapping the provided string index.
func StringIndexValue(strIdx int64) *V {
	return &V{V: strIdx, T: StringIndexValueType}
}

// StringsValue returns a new Value wrapping the provided strings.
func StringsValue(strs ...string) *V {
	return &V{V: strs, T: StringsValueType}
}

// StringIndicesValue returns a new Value wrapping the provided string
// indices.
func StringIndicesValue(strIdxs ...int64) *V {
	return &V{V: strIdxs, T: StringIndicesValueType}
}

// IntegerValue returns a new Value wrapping the provided int64.
func IntegerValue(i int64) *V {
	return &V{V: i, T: IntegerValueType}
}

// IntegersValue returns a new Value wrapping the provided int64s.
func IntegersValue(ints ...int64) *V {
	return &V{V: ints, T: IntegersValueType}
}

// DoubleValue returns a new Value wrapping the provided float64.
func DoubleValue(f float64) *V {
	return &V{V: f, T: DoubleValueType}
}

// ExpectStringValue expects the provided Value to be a string, returning
// that string or an error if it isn't.
func ExpectStringValue(val *V) (string, error) {
	if val.T != StringValueType {
		return "", fmt.Errorf("expected value type 'str'")
	}
	return url.QueryUnescape(val.V.(string))
}

// ExpectStringsValue expects the provided Value to be a Strings, returning
// its contained string slice, or an error if it isn't.
func ExpectStringsValue(val *V) ([]string, error) {
	if val.T != StringsValueType {
		return nil, fmt.Errorf("expected value type 'strs'")
	}
	return val.V.([]string), nil
}

// ExpectIntegerValue expects the provided Value to be an integer, returning
// that integer or an error if it isn't.
func ExpectIntegerValue(val *V) (int64, error) {
	if val.T != IntegerValueType {
		return 0, fmt.Errorf("expected value type 'int'")
	}
	return val.V.(int64), nil
}

// ExpectDoubleValue expects the provided Value to be a float64, returning
// that float or an error if it isn't.  Integers are widened.
func ExpectDoubleValue(val *V) (float64, error) {
	switch val.T {
	case DoubleValueType:
		return val.V.(float64), nil
	case IntegerValueType:
		return float64(val.V.(int64)), nil
	}
	return 0, fmt.Errorf("expected value type 'dbl'")
}

// PropertyUpdate is a function that updates a provided datumBuilder.  A nil
// PropertyUpdate does nothing.
type PropertyUpdate func(db *datumBuilder) error

// EmptyUpdate is a PropertyUpdate that does nothing.
var EmptyUpdate PropertyUpdate = nil

// datumBuilder assembles the properties and children of one Datum.
type datumBuilder struct {
	errs      *errorList
	st        *stringTable
	valsByKey map[int64]*V
	d         *Datum
}

func newDatumBuilder(errs *errorList, st *stringTable) *datumBuilder {
	valsByKey := map[int64]*V{}
	return &datumBuilder{
		errs:      errs,
		st:        st,
		valsByKey: valsByKey,
		d: &Datum{
			Properties: valsByKey,
			Children:   []*Datum{},
		},
	}
}

// With applies the provided PropertyUpdates to the receiver in order.  After
// the first error, no further updates are applied anywhere in the response.
func (db *datumBuilder) With(updates ...PropertyUpdate) DataBuilder {
	if db.errs.failed() {
		return db
	}
	for _, update := range updates {
		if update == nil {
			continue
		}
		if err := update(db); err != nil {
			db.errs.add(err)
			break
		}
	}
	return db
}

func (db *datumBuilder) Child() DataBuilder {
	child := newDatumBuilder(db.errs, db.st)
	db.d.Children = append(db.d.Children, child.d)
	return child
}

func (db *datumBuilder) set(key string, val *V) {
	db.valsByKey[db.st.stringIndex(key)] = val
}

// If applies the provided PropertyUpdate if the provided predicate is true.
func If(predicate bool, du PropertyUpdate) PropertyUpdate {
	if predicate {
		return du
	}
	return EmptyUpdate
}

// Chain applies the provided PropertyUpdates in order.
func Chain(updates ...PropertyUpdate) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.With(updates...)
		return nil
	}
}

// StringProperty returns a PropertyUpdate adding the specified string property.
func StringProperty(key, value string) PropertyUpdate {
	return func(db *datumBuilder) error {
		k := db.st.stringIndex(key)
		db.valsByKey[k] = StringIndexValue(db.st.stringIndex(value))
		return nil
	}
}

// StringsProperty returns a PropertyUpdate adding the specified string slice
// property.
func StringsProperty(key string, values ...string) PropertyUpdate {
	return func(db *datumBuilder) error {
		k := db.st.stringIndex(key)
		idxs := make([]int64, len(values))
		for i, v := range values {
			idxs[i] = db.st.stringIndex(v)
		}
		db.valsByKey[k] = StringIndicesValue(idxs...)
		return nil
	}
}

// IntegerProperty returns a PropertyUpdate adding the specified integer property.
func IntegerProperty(key string, value int64) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.set(key, IntegerValue(value))
		return nil
	}
}

// IntegersProperty returns a PropertyUpdate adding the specified integer slice
// property.
func IntegersProperty(key string, values ...int64) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.set(key, IntegersValue(values...))
		return nil
	}
}

// DoubleProperty returns a PropertyUpdate adding the specified double property.
func DoubleProperty(key string, value float64) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.set(key, DoubleValue(value))
		return nil
	}
}

// BoolProperty returns a PropertyUpdate adding the specified boolean property,
// encoded as an integer 0 or 1.
func BoolProperty(key string, value bool) PropertyUpdate {
	var i int64
	if value {
		i = 1
	}
	return IntegerProperty(key, i)
}
