// Package server implements the MCP (Model Context Protocol) shell of the
// image editor.
//
// The server plays the part of the editor's user interface: every menu
// command, toggle button, slider and resize button is exposed as a tool, and
// the on-screen view is available as a rendered PNG. It owns one editor.Store
// and one editor.Pipeline and drives them from a single goroutine.
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
// File:
//   - image_open: Open an image, resetting all edits
//   - image_save: Overwrite the opened file with the edited image
//   - image_state: Describe the current edit state
//   - image_render: Get the displayed image as base64 PNG
//
// Toggles:
//   - image_toggle_grayscale
//   - image_toggle_edges
//
// Adjustments:
//   - image_brightness (-100..100), image_contrast (0..100), image_blur (0..10)
//   - image_resize: absolute percent or +/- delta
//
// History:
//   - image_undo, image_redo
//
// Inspection:
//   - image_sample_color: Color of a pixel of the edited image
//
// # Error Handling
//
// Files that cannot be opened or saved are reported as JSON-RPC error
// responses with code -32000; the edit state is unchanged. Edits requested
// before an image is open succeed with "applied": false.
//
// # Usage
//
//	cfg, _ := config.Load()
//	srv := server.New(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
