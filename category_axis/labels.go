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
	"unicode/utf8"

	"github.com/LukasDrgon/incubator-echarts/category"
	"github.com/LukasDrgon/incubator-echarts/label"
	"github.com/LukasDrgon/incubator-echarts/style"
	textmetrics "github.com/LukasDrgon/incubator-echarts/text_metrics"
)

// formatLabels returns the display string of each category.  A category's own
// formatter takes precedence over the axis formatter.
func formatLabels(data []category.Entry, axisFormatter label.Formatter) []string {
	ret := make([]string, len(data))
	for i, e := range data {
		f := e.Formatter()
		if f == nil {
			f = axisFormatter
		}
		if f == nil {
			ret[i] = label.Display(e.Value())
			continue
		}
		ret[i] = f.Format(e.Value())
	}
	return ret
}

// labelTextStyle returns the text style of the label at idx: the category's
// own style, if any, over the axis label style.
func labelTextStyle(e category.Entry, axisStyle style.Text) style.Text {
	if ts, ok := e.TextStyle(); ok {
		return ts.Merge(axisStyle)
	}
	return axisStyle
}

// approximateMeasurer estimates text widths from the font size alone, for axes
// built without a TextMeasurer.
type approximateMeasurer struct{}

const approximateAdvance = 0.6

func (approximateMeasurer) TextWidth(text, font string) float64 {
	return approximateAdvance * textmetrics.ParseFont(font).SizePx * float64(utf8.RuneCountInString(text))
}
