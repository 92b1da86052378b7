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

// Package theme provides the chart-wide defaults axes fall back on.
package theme

import (
	"fmt"
	"io"

	"github.com/LukasDrgon/incubator-echarts/style"
	"gopkg.in/yaml.v3"
)

// Theme holds chart-wide style defaults.
type Theme struct {
	// TextStyle fills the absent fields of every axis text style.
	TextStyle style.Text `yaml:"textStyle"`
}

// Default returns the default theme.
func Default() *Theme {
	return &Theme{
		TextStyle: style.Text{
			FontFamily: style.DefaultFontFamily,
			FontSize:   style.DefaultFontSize,
			FontStyle:  style.DefaultFontStyle,
			FontWeight: style.DefaultFontWeight,
		},
	}
}

// Load reads a YAML theme from r.  Fields absent from the document keep their
// Default values.
func Load(r io.Reader) (*Theme, error) {
	th := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(th); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode theme: %w", err)
	}
	return th, nil
}
