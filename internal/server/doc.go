// Package server implements the MCP (Model Context Protocol) server for the
// palette engine.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Conversion:
//   - color_convert: Hex to RGB and HSL
//
// Palette Generation:
//   - palette_schemes: List schemes and their sizes
//   - palette_generate: Build a palette from a base color and scheme
//   - palette_presets: Built-in named palettes
//
// Image Sampling:
//   - palette_extract: Sample distinct opaque colors from an image
//
// Export:
//   - palette_export: Build (and optionally write) the palette document
//   - palette_swatch: Render colors as a PNG strip
//
// # Image Caching
//
// Images sampled by path are cached for the lifetime of the process. Data URL
// images are decoded on every call.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.WithLogger(log))
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
