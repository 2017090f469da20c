package server

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/ironsheep/image-edit-mcp/internal/editor"
	"github.com/ironsheep/image-edit-mcp/internal/imaging"
)

// Slider ranges of the editor controls. Tool arguments are clamped to them.
const (
	minBrightness = -100
	maxBrightness = 100
	minContrast   = 0
	maxContrast   = 100
	defContrast   = 50
	minBlur       = 0
	maxBlur       = 10
)

// noImageMessage is reported when an edit is requested before an image is open.
const noImageMessage = "no image loaded"

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_open", "image_blur").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// StateInfo summarises the edit state after a tool call.
type StateInfo struct {
	Path          string `json:"path"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Channels      int    `json:"channels"`
	Grayscale     bool   `json:"grayscale"`
	EdgeDetection bool   `json:"edge_detection"`
	ScalePercent  int    `json:"scale_percent"`
	DisplayWidth  int    `json:"display_width"`
	DisplayHeight int    `json:"display_height"`
	UndoDepth     int    `json:"undo_depth"`
	RedoDepth     int    `json:"redo_depth"`
	Composition   string `json:"composition"`
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// EditResult is returned by every tool that changes, or may change, the
// edit state.
type EditResult struct {
	// Applied is false when the call was a no-op (no image loaded, nothing to
	// undo or redo).
	Applied bool `json:"applied"`

	// Message explains a no-op.
	Message string `json:"message,omitempty"`

	// State is the state after the call, or nil if no image is loaded.
	State *StateInfo `json:"state,omitempty"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// Calls made before an image is open are not errors; they report
// applied=false.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	s.logger.Debug("tool call", "tool", params.Name)

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// File
	case "image_open":
		return s.handleImageOpen(args)
	case "image_save":
		return s.handleImageSave()
	case "image_state":
		return s.result(true, ""), nil
	case "image_render":
		return s.handleImageRender(args)

	// Toggles
	case "image_toggle_grayscale":
		return s.edit(s.pipeline.ToggleGrayscale(s.store.State())), nil
	case "image_toggle_edges":
		return s.edit(s.pipeline.ToggleEdgeDetection(s.store.State())), nil

	// Adjustments
	case "image_brightness":
		return s.handleImageBrightness(args)
	case "image_contrast":
		return s.handleImageContrast(args)
	case "image_blur":
		return s.handleImageBlur(args)
	case "image_resize":
		return s.handleImageResize(args)

	// History
	case "image_undo":
		return s.result(s.store.State().Undo(), "nothing to undo"), nil
	case "image_redo":
		return s.result(s.store.State().Redo(), "nothing to redo"), nil

	// Inspection
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments into v. Missing arguments leave v
// untouched.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return errors.Wrap(err, "invalid arguments")
	}
	return nil
}

// stateInfo describes the current state, or returns nil if no image is loaded.
func (s *Server) stateInfo() *StateInfo {
	st := s.store.State()
	if !st.Loaded() {
		return nil
	}
	work := imaging.Describe(st.Working())
	dispW, dispH := imaging.ScaledSize(work.Width, work.Height, st.ScalePercent())
	return &StateInfo{
		Path:          st.Path(),
		Width:         work.Width,
		Height:        work.Height,
		Channels:      work.Channels,
		Grayscale:     st.Active(editor.Grayscale),
		EdgeDetection: st.Active(editor.EdgeDetection),
		ScalePercent:  st.ScalePercent(),
		DisplayWidth:  dispW,
		DisplayHeight: dispH,
		UndoDepth:     st.History().UndoDepth(),
		RedoDepth:     st.History().RedoDepth(),
		Composition:   s.pipeline.Composition().String(),
		FileSizeBytes: imaging.FileSize(st.Path()),
	}
}

// result builds an EditResult. A call with no image loaded is always reported
// as not applied.
func (s *Server) result(applied bool, message string) *EditResult {
	info := s.stateInfo()
	if info == nil {
		return &EditResult{Applied: false, Message: noImageMessage}
	}
	if applied {
		message = ""
	}
	return &EditResult{Applied: applied, Message: message, State: info}
}

// edit reports the outcome of a pipeline operation.
func (s *Server) edit(applied bool) *EditResult {
	return s.result(applied, noImageMessage)
}

// === File Handlers ===

type imageOpenArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageOpen(args json.RawMessage) (interface{}, error) {
	var a imageOpenArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	if _, err := s.store.Load(a.Path); err != nil {
		return nil, err
	}
	s.logger.Info("image opened", "path", a.Path)
	return s.result(true, ""), nil
}

func (s *Server) handleImageSave() (interface{}, error) {
	err := s.store.Save()
	if errors.Is(err, editor.ErrNoImage) {
		return s.result(false, noImageMessage), nil
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info("image saved", "path", s.store.State().Path())
	return s.result(true, ""), nil
}

type imageRenderArgs struct {
	MaxWidth  int `json:"max_width"`
	MaxHeight int `json:"max_height"`
}

// RenderResult wraps the rendered display image with the state it shows.
type RenderResult struct {
	*imaging.RenderResult
	State *StateInfo `json:"state"`
}

func (s *Server) handleImageRender(args json.RawMessage) (interface{}, error) {
	a := imageRenderArgs{MaxWidth: s.cfg.ViewportWidth, MaxHeight: s.cfg.ViewportHeight}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	st := s.store.State()
	if !st.Loaded() {
		return s.result(false, noImageMessage), nil
	}
	rendered, err := imaging.Render(st.Display(), a.MaxWidth, a.MaxHeight)
	if err != nil {
		return nil, err
	}
	return &RenderResult{RenderResult: rendered, State: s.stateInfo()}, nil
}

// === Adjustment Handlers ===

type imageValueArgs struct {
	Value *int `json:"value"`
}

func (s *Server) handleImageBrightness(args json.RawMessage) (interface{}, error) {
	var a imageValueArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	v := 0
	if a.Value != nil {
		v = clampInt(*a.Value, minBrightness, maxBrightness)
	}
	return s.edit(s.pipeline.AdjustBrightness(s.store.State(), v)), nil
}

func (s *Server) handleImageContrast(args json.RawMessage) (interface{}, error) {
	var a imageValueArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	v := defContrast
	if a.Value != nil {
		v = clampInt(*a.Value, minContrast, maxContrast)
	}
	return s.edit(s.pipeline.AdjustContrast(s.store.State(), v)), nil
}

type imageBlurArgs struct {
	Radius int `json:"radius"`
}

func (s *Server) handleImageBlur(args json.RawMessage) (interface{}, error) {
	var a imageBlurArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	r := clampInt(a.Radius, minBlur, maxBlur)
	return s.edit(s.pipeline.Blur(s.store.State(), r)), nil
}

type imageResizeArgs struct {
	Percent *int `json:"percent"`
	Delta   *int `json:"delta"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	switch {
	case a.Percent != nil && a.Delta != nil:
		return nil, errors.New("give either percent or delta, not both")
	case a.Percent != nil:
		return s.edit(s.pipeline.Resize(s.store.State(), *a.Percent)), nil
	case a.Delta != nil:
		return s.edit(s.pipeline.ResizeBy(s.store.State(), *a.Delta)), nil
	}
	return nil, errors.New("percent or delta is required")
}

// === Inspection Handlers ===

type imageSampleColorArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	st := s.store.State()
	if !st.Loaded() {
		return s.result(false, noImageMessage), nil
	}
	return imaging.SampleColor(st.Working(), a.X, a.Y)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
