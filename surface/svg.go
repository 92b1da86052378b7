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

package surface

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/LukasDrgon/incubator-echarts/shape"
	textmetrics "github.com/LukasDrgon/incubator-echarts/text_metrics"
	"github.com/google/safehtml"
)

// SVG writes the provided shapes, in painting order, as a standalone SVG
// document of the given size.
func SVG(w io.Writer, width, height float64, shapes []shape.Shape) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %[1]s %[2]s">`+"\n",
		num(width), num(height))
	r := &Recorder{shapes: shapes}
	for _, s := range r.Shapes() {
		switch s := s.(type) {
		case *shape.Line:
			writeLine(bw, s)
		case *shape.Text:
			writeText(bw, s)
		case *shape.Rectangle:
			fmt.Fprintf(bw, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
				num(s.X), num(s.Y), num(s.Width), num(s.Height), esc(s.Color))
		default:
			return fmt.Errorf("unsupported shape kind %q", s.Kind())
		}
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

func writeLine(w io.Writer, l *shape.Line) {
	fmt.Fprintf(w, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>`+"\n",
		num(l.XStart), num(l.YStart), num(l.XEnd), num(l.YEnd),
		esc(l.StrokeColor), num(l.LineWidth), dashArray(l.LineType, l.LineWidth))
	lbl := l.Label
	if lbl == nil {
		return
	}
	// The name sits just past the chosen end of the line.
	x, y, dx, dy := l.XEnd, l.YEnd, l.XEnd-l.XStart, l.YEnd-l.YStart
	if lbl.Position == "start" {
		x, y, dx, dy = l.XStart, l.YStart, -dx, -dy
	}
	const nameGap = 5
	if length := math.Hypot(dx, dy); length > 0 {
		x += dx / length * nameGap
		y += dy / length * nameGap
	}
	align := lbl.Align
	if align == "" {
		align = "left"
		if dx < 0 {
			align = "right"
		} else if dx == 0 {
			align = "center"
		}
	}
	writeText(w, &shape.Text{
		Base:     l.Base,
		X:        x,
		Y:        y,
		Text:     lbl.Text,
		Color:    lbl.Color,
		Font:     lbl.Font,
		Align:    align,
		Baseline: lbl.Baseline,
	})
}

func writeText(w io.Writer, t *shape.Text) {
	desc := textmetrics.ParseFont(t.Font)
	fmt.Fprintf(w, `  <text x="%s" y="%s" fill="%s" font-size="%s"`,
		num(t.X), num(t.Y), esc(t.Color), num(desc.SizePx))
	if desc.Family != "" {
		fmt.Fprintf(w, ` font-family="%s"`, esc(desc.Family))
	}
	if desc.Bold {
		fmt.Fprint(w, ` font-weight="bold"`)
	}
	if desc.Italic {
		fmt.Fprint(w, ` font-style="italic"`)
	}
	fmt.Fprintf(w, ` text-anchor="%s" dominant-baseline="%s"`,
		textAnchor(t.Align), dominantBaseline(t.Baseline))
	if r := t.Rotation; r != nil {
		// SVG rotations are clockwise in degrees.
		fmt.Fprintf(w, ` transform="rotate(%s %s %s)"`,
			num(-r.Angle*180/math.Pi), num(r.X), num(r.Y))
	}
	fmt.Fprintf(w, ">%s</text>\n", esc(t.Text))
}

func textAnchor(align string) string {
	switch align {
	case "left", "start":
		return "start"
	case "right", "end":
		return "end"
	default:
		return "middle"
	}
}

func dominantBaseline(baseline string) string {
	switch baseline {
	case "top", "hanging":
		return "hanging"
	case "middle":
		return "middle"
	case "bottom":
		return "text-after-edge"
	default:
		return "alphabetic"
	}
}

func dashArray(lineType string, width float64) string {
	switch lineType {
	case "dashed":
		return fmt.Sprintf(` stroke-dasharray="%s %s"`, num(width*5), num(width*5))
	case "dotted":
		return fmt.Sprintf(` stroke-dasharray="%s %s"`, num(width), num(width*2))
	default:
		return ""
	}
}

func esc(s string) string {
	return safehtml.HTMLEscaped(s).String()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
