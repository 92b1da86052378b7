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

// Package label supports turning category values into display strings.
package label

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LukasDrgon/incubator-echarts/util"
)

const (
	// labelFormatKey specifies the label format template of an axis.
	labelFormatKey = "label_format"

	// Placeholder is replaced by the formatted value in a Template.
	Placeholder = "{value}"
)

// Formatter formats a category value for display.
type Formatter interface {
	Format(v any) string
}

// Template is a Formatter replacing the first "{value}" with the value's
// display string.
type Template string

// Format implements Formatter.
func (t Template) Format(v any) string {
	return strings.Replace(string(t), Placeholder, Display(v), 1)
}

// Define annotates with the receiving template.
func (t Template) Define() util.PropertyUpdate {
	return util.StringProperty(labelFormatKey, string(t))
}

// Func adapts a function to a Formatter.
type Func func(v any) string

// Format implements Formatter.
func (f Func) Format(v any) string {
	return f(v)
}

// Display returns the display string of a value.  Numbers use their shortest
// round-trip representation, so 0 displays as "0" and 2.50 as "2.5".
func Display(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}
