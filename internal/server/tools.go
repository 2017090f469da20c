package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// noArgs is the input schema of tools that take no arguments.
func noArgs() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// File
		{
			Name:        "image_open",
			Description: "Open a .jpg, .png or .bmp image for editing. Replaces the current image and resets all edits, history and scale. On failure the current image is kept.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_save",
			Description: "Overwrite the opened file with the edited image at full resolution (the display scale is not applied).",
			InputSchema: noArgs(),
		},
		{
			Name:        "image_state",
			Description: "Describe the current edit state: dimensions, channels, active toggles, display scale and undo/redo depth.",
			InputSchema: noArgs(),
		},
		{
			Name:        "image_render",
			Description: "Return the displayed image (edits plus display scale) as base64 PNG, fitted inside a viewport while preserving aspect ratio.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"max_width": map[string]interface{}{
						"type":        "integer",
						"description": "Viewport width in pixels. Defaults to the configured viewport.",
					},
					"max_height": map[string]interface{}{
						"type":        "integer",
						"description": "Viewport height in pixels. Defaults to the configured viewport.",
					},
				},
			},
		},

		// Toggles
		{
			Name:        "image_toggle_grayscale",
			Description: "Toggle grayscale. Switching on converts the current image to intensity; switching off restores exactly what was shown before.",
			InputSchema: noArgs(),
		},
		{
			Name:        "image_toggle_edges",
			Description: "Toggle Canny edge detection (thresholds 100/200). Switching on shows a black and white edge map; switching off restores exactly what was shown before.",
			InputSchema: noArgs(),
		},

		// Adjustments
		{
			Name:        "image_brightness",
			Description: "Set brightness relative to the original image. Replaces any earlier brightness, contrast or blur.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "integer",
						"description": "Offset added to every sample, -100 to 100",
						"minimum":     -100,
						"maximum":     100,
						"default":     0,
					},
				},
				"required": []string{"value"},
			},
		},
		{
			Name:        "image_contrast",
			Description: "Set contrast relative to the original image. Replaces any earlier brightness, contrast or blur.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "integer",
						"description": "Contrast level, 0 to 100; 50 leaves the image unchanged",
						"minimum":     0,
						"maximum":     100,
						"default":     50,
					},
				},
				"required": []string{"value"},
			},
		},
		{
			Name:        "image_blur",
			Description: "Set Gaussian blur relative to the original image. Replaces any earlier brightness, contrast or blur.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Blur radius, 0 to 10; the kernel is 2*radius+1 pixels wide, 0 removes blur",
						"minimum":     0,
						"maximum":     10,
						"default":     0,
					},
				},
				"required": []string{"radius"},
			},
		},
		{
			Name:        "image_resize",
			Description: "Change the display scale. Give either an absolute percent or a delta in percentage points (the editor's +/- buttons step by 10). The scale stays between 1% and 1000%, lower for very large images.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"percent": map[string]interface{}{
						"type":        "integer",
						"description": "Absolute scale in percent",
					},
					"delta": map[string]interface{}{
						"type":        "integer",
						"description": "Change in percentage points, e.g. 10 or -10",
					},
				},
			},
		},

		// History
		{
			Name:        "image_undo",
			Description: "Undo the last edit. Does nothing if there is nothing to undo.",
			InputSchema: noArgs(),
		},
		{
			Name:        "image_redo",
			Description: "Redo the last undone edit. Does nothing if there is nothing to redo.",
			InputSchema: noArgs(),
		},

		// Inspection
		{
			Name:        "image_sample_color",
			Description: "Get the color of a pixel in the edited image (before display scaling) as hex, RGB and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0 = left edge)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0 = top edge)",
					},
				},
				"required": []string{"x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
