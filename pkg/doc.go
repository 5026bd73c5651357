// Package pkg provides the core libraries for the menuboard layout engine.
//
// # Overview
//
// Menuboard computes how a menu template fits onto a fixed digital signage
// screen: how many columns the grid gets and how large the product text is
// rendered, so the content fills the screen without overflowing it. The pkg
// directory is organized into four main areas:
//
//  1. [board], [catalog] - Input formats (menu templates, product catalogs)
//  2. [layout] - Domain logic (column planning, font scaling)
//  3. [render] - Artifact generation (SVG, JSON, text)
//  4. [pipeline], [cache], [server] - Orchestration and infrastructure
//
// # Architecture
//
// The typical data flow through menuboard:
//
//	board.toml + catalog.json
//	         ↓
//	    [board] / [catalog] (decode + validate)
//	         ↓
//	    [layout] (select content, plan columns, scale fonts)
//	         ↓
//	    [render] (SVG / JSON / text artifacts)
//	         ↓
//	    files, HTTP display clients
//
// # Quick Start
//
// Compute a layout and render it to SVG:
//
//	import (
//	    "context"
//	    "github.com/askoeller/menuboard/pkg/board"
//	    "github.com/askoeller/menuboard/pkg/catalog"
//	    "github.com/askoeller/menuboard/pkg/layout"
//	    "github.com/askoeller/menuboard/pkg/render"
//	)
//
//	// 1. Load the inputs
//	tmpl, _ := board.DecodeFile("board.toml")
//	cat, _ := catalog.ReadFile("catalog.json")
//
//	// 2. Compute the layout for the first slide
//	content, result := layout.Compute(context.Background(), cat, tmpl.Slides[0], layout.Options{
//	    Fonts:       tmpl.Fonts,
//	    Columns:     tmpl.Columns,
//	    ScreenWidth: tmpl.ScreenWidth(),
//	})
//
//	// 3. Render an artifact
//	svg := render.RenderSVG(content, result, render.WithTitle(tmpl.Name))
//
// # Main Packages
//
// [board] - Menu template model: TOML/JSON decoding, structural validation,
// catalog cross-checks, and a published JSON Schema.
//
// [catalog] - Product catalog model with decimal prices, shared by every
// slide of a board.
//
// [layout] - The layout engine. Selects a slide's content from the catalog,
// plans the column count, applies the column policy, and scales the font so
// the densest column still fits the screen. Deterministic and total: broken
// input degrades to a sensible layout instead of an error.
//
// [render] - Turns computed layouts into artifacts: an SVG preview, a JSON
// document for the display runtime, and a plain text grid for terminals.
//
// [pipeline] - Complete board pipeline (load, layout, render) used by the CLI
// and the server. Ensures consistent behavior across all entry points and
// caches both stages.
//
// [cache] - Content-addressed caches for layouts and artifacts: file-backed
// for the CLI, Redis-backed for server deployments, and a null cache for
// --no-cache runs.
//
// [server] - HTTP server that serves a board to display clients, watches the
// template and catalog for edits, and pushes reloads over WebSockets.
//
// [errors] - Structured error codes and validation findings shared by the
// CLI and server.
//
// [observability] - Hook points the engine and caches report through.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//
// [board]: https://pkg.go.dev/github.com/askoeller/menuboard/pkg/board
// [catalog]: https://pkg.go.dev/github.com/askoeller/menuboard/pkg/catalog
// [layout]: https://pkg.go.dev/github.com/askoeller/menuboard/pkg/layout
// [render]: https://pkg.go.dev/github.com/askoeller/menuboard/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/askoeller/menuboard/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/askoeller/menuboard/pkg/cache
// [server]: https://pkg.go.dev/github.com/askoeller/menuboard/pkg/server
// [errors]: https://pkg.go.dev/github.com/askoeller/menuboard/pkg/errors
// [observability]: https://pkg.go.dev/github.com/askoeller/menuboard/pkg/observability
package pkg
