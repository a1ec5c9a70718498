package control

// Error codes of the control API.
const (
	CodeInvalidJSON       = "invalid_json"
	CodeEmptyPrompt       = "empty_prompt"
	CodeInvalidHotkey     = "invalid_hotkey"
	CodeHotkeyUnavailable = "hotkey_unavailable"
	CodeWindowNotFound    = "window_not_found"
	CodeShuttingDown      = "shutting_down"
	CodeInternal          = "internal"
)

// PromptRequest is the body of POST /v1/prompt.
type PromptRequest struct {
	Prompt string `json:"prompt"`
}

// HotkeyRequest is the body of PUT /v1/hotkey and its response.
type HotkeyRequest struct {
	Hotkey string `json:"hotkey"`
}

// Status is the body of GET /v1/status.
type Status struct {
	Hotkey string       `json:"hotkey"`
	Tools  []ToolStatus `json:"tools"`
}

// ToolStatus describes one configured tool.
type ToolStatus struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// ErrorBody wraps every error response.
type ErrorBody struct {
	Error APIError `json:"error"`
}

// APIError is a machine-readable error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}
