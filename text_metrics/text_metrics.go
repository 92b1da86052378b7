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

// Package textmetrics measures rendered text widths.
//
// Fonts are described by CSS font shorthand strings as produced by
// style.Text.Font, e.g. "italic bold 12px Arial".  The family is not
// resolved: text is measured in the Go font of the described style and
// weight, scaled to the described pixel size.  Measuring is not cheap, so
// faces are built once per description and widths are kept in an LRU cache.
package textmetrics

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultCacheSize is the number of measured widths a Measurer retains.
const DefaultCacheSize = 4096

const defaultSizePx = 12

// Description is a parsed font description.
type Description struct {
	Italic bool
	Bold   bool
	SizePx float64
	Family string
}

// ParseFont parses a CSS font shorthand: optional style and weight keywords,
// a size in px, then the family.  Unparseable sizes fall back to 12px.
func ParseFont(desc string) Description {
	d := Description{SizePx: defaultSizePx}
	fields := strings.Fields(desc)
	for i, f := range fields {
		switch f {
		case "italic", "oblique":
			d.Italic = true
			continue
		case "bold", "bolder", "600", "700", "800", "900":
			d.Bold = true
			continue
		case "normal", "lighter", "100", "200", "300", "400", "500":
			continue
		}
		if px, ok := strings.CutSuffix(f, "px"); ok {
			if size, err := strconv.ParseFloat(px, 64); err == nil && size > 0 {
				d.SizePx = size
			}
			d.Family = strings.Join(fields[i+1:], " ")
			return d
		}
		d.Family = strings.Join(fields[i:], " ")
		return d
	}
	return d
}

type faceKey struct {
	italic, bold bool
	sizePx       float64
}

type widthKey struct {
	font, text string
}

// Measurer measures text widths.  It is safe for concurrent use.
type Measurer struct {
	mu     sync.Mutex
	fonts  map[[2]bool]*opentype.Font
	faces  map[faceKey]font.Face
	widths *simplelru.LRU
}

// New returns a Measurer caching up to cacheSize widths.
func New(cacheSize int) (*Measurer, error) {
	widths, err := simplelru.NewLRU(cacheSize, nil /* no onEvict policy */)
	if err != nil {
		return nil, err
	}
	m := &Measurer{
		fonts:  map[[2]bool]*opentype.Font{},
		faces:  map[faceKey]font.Face{},
		widths: widths,
	}
	for key, ttf := range map[[2]bool][]byte{
		{false, false}: goregular.TTF,
		{false, true}:  gobold.TTF,
		{true, false}:  goitalic.TTF,
		{true, true}:   gobolditalic.TTF,
	} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Go font: %w", err)
		}
		m.fonts[key] = f
	}
	return m, nil
}

// TextWidth returns the advance width, in pixels, of text rendered in the
// described font.
func (m *Measurer) TextWidth(text, fontDesc string) float64 {
	if text == "" {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := widthKey{font: fontDesc, text: text}
	if w, ok := m.widths.Get(key); ok {
		return w.(float64)
	}
	w := float64(font.MeasureString(m.face(ParseFont(fontDesc)), text)) / 64
	m.widths.Add(key, w)
	return w
}

// face returns the face for d, building it if necessary.  m.mu must be held.
func (m *Measurer) face(d Description) font.Face {
	key := faceKey{italic: d.Italic, bold: d.Bold, sizePx: d.SizePx}
	if face, ok := m.faces[key]; ok {
		return face
	}
	var face font.Face = basicfont.Face7x13
	// At 72 DPI a point is a pixel.
	if f, ok := m.fonts[[2]bool{d.Italic, d.Bold}]; ok {
		if otFace, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    d.SizePx,
			DPI:     72,
			Hinting: font.HintingNone,
		}); err == nil {
			face = otFace
		}
	}
	m.faces[key] = face
	return face
}
