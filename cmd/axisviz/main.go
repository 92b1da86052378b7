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

// Binary axisviz serves category axis layouts over HTTP, or renders a single
// axis option file as SVG.
//
// Usage:
//
//	axisviz [-port=7410] [-option_root=.] [-theme=theme.yaml] [-v]
//	axisviz [-theme=theme.yaml] svg [-width=600] [-height=400] [-margin=60] option.yaml
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	categoryaxis "github.com/LukasDrgon/incubator-echarts/category_axis"
	"github.com/LukasDrgon/incubator-echarts/grid"
	"github.com/LukasDrgon/incubator-echarts/service"
	"github.com/LukasDrgon/incubator-echarts/surface"
	textmetrics "github.com/LukasDrgon/incubator-echarts/text_metrics"
	"github.com/LukasDrgon/incubator-echarts/theme"
)

var (
	port       = flag.Int("port", 7410, "Port to serve axis layouts on")
	optionRoot = flag.String("option_root", ".", "The root path for axis option collections")
	themePath  = flag.String("theme", "", "Optional YAML theme file")
	verbose    = flag.Bool("v", false, "Log at debug level")
)

func loadTheme() *theme.Theme {
	if *themePath == "" {
		return theme.Default()
	}
	f, err := os.Open(*themePath)
	if err != nil {
		log.Fatalf("Failed to open theme: %s", err)
	}
	defer f.Close()
	th, err := theme.Load(f)
	if err != nil {
		log.Fatalf("Failed to load theme %s: %s", *themePath, err)
	}
	return th
}

// renderSVG lays out the option file named in args on a grid inset by margin
// and writes it to stdout.
func renderSVG(th *theme.Theme, args []string) {
	fs := flag.NewFlagSet("svg", flag.ExitOnError)
	width := fs.Float64("width", 600, "Image width in pixels")
	height := fs.Float64("height", 400, "Image height in pixels")
	margin := fs.Float64("margin", 60, "Space around the grid in pixels")
	fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatalf("svg expects exactly one option file, got %d", fs.NArg())
	}
	doc, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read option file: %s", err)
	}
	opt, err := categoryaxis.Load(doc)
	if err != nil {
		log.Fatalf("Failed to load option file %s: %s", fs.Arg(0), err)
	}
	measurer, err := textmetrics.New(textmetrics.DefaultCacheSize)
	if err != nil {
		log.Fatalf("Failed to create text measurer: %s", err)
	}
	g := grid.New(*margin, *margin, *width-2**margin, *height-2**margin)
	rec := surface.NewRecorder()
	categoryaxis.New(th, g, rec, measurer, opt)
	if err := surface.SVG(os.Stdout, *width, *height, rec.Shapes()); err != nil {
		log.Fatalf("Failed to write SVG: %s", err)
	}
}

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	categoryaxis.SetLogger(slog.Default())

	th := loadTheme()
	if flag.Arg(0) == "svg" {
		renderSVG(th, flag.Args()[1:])
		return
	}

	svc, err := service.New(*optionRoot, th, 10)
	if err != nil {
		log.Fatalf("Failed to create axis service: %s", err)
	}
	mux := http.NewServeMux()
	svc.RegisterHandlers(mux)
	hostname, err := os.Hostname()
	if err != nil {
		log.Fatalf("Failed to get hostname: %s", err)
	}

	// Provide OSC 8 (https://en.wikipedia.org/wiki/ANSI_escape_code#OSC) link for
	// compatible terminals.
	fmt.Printf("Serving axis layouts at \x1B]8;;http://%[1]s:%[2]d\x07http://%[1]s:%[2]d\x1B]8;;\x07\n", hostname, *port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), mux); err != nil {
		log.Fatalf("Server failed: %s", err)
	}
}
