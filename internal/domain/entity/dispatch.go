package entity

import "time"

// DispatchTarget records how delivery to one tool went.
type DispatchTarget struct {
	ToolID string `json:"tool_id"`
	Label  string `json:"label"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// Dispatch is one prompt fan-out as recorded in the journal.
// OK only means the script was handed to the surface; in-page delivery is
// not observable.
type Dispatch struct {
	ID        int64            `json:"id"`
	Prompt    string           `json:"prompt"`
	CreatedAt time.Time        `json:"created_at"`
	Targets   []DispatchTarget `json:"targets"`
}

// NewDispatch creates an unsaved dispatch record.
func NewDispatch(prompt string) *Dispatch {
	return &Dispatch{
		Prompt:    prompt,
		CreatedAt: time.Now(),
	}
}

// AddTarget appends the outcome for one tool.
func (d *Dispatch) AddTarget(tool Tool, err error) {
	target := DispatchTarget{ToolID: tool.ID, Label: tool.Label(), OK: err == nil}
	if err != nil {
		target.Error = err.Error()
	}
	d.Targets = append(d.Targets, target)
}

// Delivered counts targets that accepted the script.
func (d *Dispatch) Delivered() int {
	n := 0
	for _, t := range d.Targets {
		if t.OK {
			n++
		}
	}
	return n
}
