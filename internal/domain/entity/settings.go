package entity

// Settings is the user-editable state the core reads on every call.
type Settings struct {
	Hotkey string `json:"hotkey"`
	Tools  []Tool `json:"tools"`
}

// DefaultTools are the chat sites configured on first run.
func DefaultTools() []Tool {
	return []Tool{
		{ID: "deepseek", Name: "DeepSeek", URL: "https://chat.deepseek.com", Enabled: true, SendWithEnter: true},
		{ID: "qwen", Name: "Qwen", URL: "https://chat.qwen.ai/", Enabled: true, SendWithEnter: true},
		{ID: "doubao", Name: "Doubao", URL: "https://www.doubao.com/chat/", Enabled: true, SendWithEnter: true},
	}
}

// DefaultSettings returns first-run settings.
func DefaultSettings() Settings {
	return Settings{
		Hotkey: DefaultHotkey,
		Tools:  DefaultTools(),
	}
}

// EnabledTools returns the enabled subset of s.Tools.
func (s Settings) EnabledTools() []Tool {
	return EnabledTools(s.Tools)
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	out := s
	out.Tools = append([]Tool(nil), s.Tools...)
	return out
}
