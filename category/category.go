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

// Package category supports declaring the entries of a category axis.  An
// entry is either a raw scalar value, such as a string or a number, or a
// record wrapping a value together with its own text style and formatter:
//
//	days := category.Entries("Mon", "Tue", "Wed")
//	zero := category.Record(0, category.WithFormatter(label.Template("{value}h")))
//
// Entries are identified by their values.  Two values are equal if they are
// the same, if they are numerically equal numbers, or if one is a number and
// the other a string parsing to that number.
package category

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/LukasDrgon/incubator-echarts/label"
	"github.com/LukasDrgon/incubator-echarts/style"
	"github.com/LukasDrgon/incubator-echarts/util"
	"gopkg.in/yaml.v3"
)

const (
	categoryNamesKey = "category_names"
)

// Entry is a single category.
type Entry struct {
	value     any
	record    bool
	textStyle *style.Text
	formatter label.Formatter
}

// RecordOption configures a record Entry.
type RecordOption func(e *Entry)

// WithTextStyle sets a record's own text style, which takes precedence over
// the axis label style.
func WithTextStyle(ts style.Text) RecordOption {
	return func(e *Entry) {
		e.textStyle = &ts
	}
}

// WithFormatter sets a record's own formatter, which takes precedence over
// the axis label formatter.
func WithFormatter(f label.Formatter) RecordOption {
	return func(e *Entry) {
		e.formatter = f
	}
}

// Raw returns an Entry for the provided scalar value.
func Raw(v any) Entry {
	return Entry{value: v}
}

// Record returns a record Entry wrapping the provided value.
func Record(v any, opts ...RecordOption) Entry {
	e := Entry{value: v, record: true}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Entries returns raw Entries for the provided scalar values.
func Entries[T any](vs ...T) []Entry {
	ret := make([]Entry, len(vs))
	for i, v := range vs {
		ret[i] = Raw(v)
	}
	return ret
}

// Value returns the entry's value: the scalar itself, or the record's value.
func (e Entry) Value() any {
	return e.value
}

// IsRecord returns true if the entry was declared as a record.
func (e Entry) IsRecord() bool {
	return e.record
}

// TextStyle returns the entry's own text style, if it has one.
func (e Entry) TextStyle() (style.Text, bool) {
	if e.textStyle == nil {
		return style.Text{}, false
	}
	return *e.textStyle, true
}

// Formatter returns the entry's own formatter, or nil.
func (e Entry) Formatter() label.Formatter {
	return e.formatter
}

// Matches returns true if the entry's value equals v.
func (e Entry) Matches(v any) bool {
	return Equal(e.value, v)
}

// UnmarshalYAML decodes a scalar as a raw entry and a mapping with the keys
// value, textStyle and formatter as a record.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return err
		}
		*e = Raw(v)
	case yaml.MappingNode:
		var rec struct {
			Value     any         `yaml:"value"`
			TextStyle *style.Text `yaml:"textStyle"`
			Formatter string      `yaml:"formatter"`
		}
		if err := node.Decode(&rec); err != nil {
			return err
		}
		*e = Record(rec.Value)
		e.textStyle = rec.TextStyle
		if rec.Formatter != "" {
			e.formatter = label.Template(rec.Formatter)
		}
	default:
		return fmt.Errorf("line %d: category must be a scalar or a mapping", node.Line)
	}
	return nil
}

// Define annotates with the display names of the provided entries, in order.
func Define(entries []Entry) util.PropertyUpdate {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = label.Display(e.value)
	}
	return util.StringsProperty(categoryNamesKey, names...)
}

// Equal compares two category values.
func Equal(a, b any) bool {
	fa, aNum := number(a)
	fb, bNum := number(b)
	switch {
	case aNum && bNum:
		return fa == fb
	case aNum:
		return numericString(b, fa)
	case bNum:
		return numericString(a, fb)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func numericString(v any, f float64) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && parsed == f
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
