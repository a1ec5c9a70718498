// Package inject builds the in-page program that types a prompt into a
// foreign chat page and submits it.
//
// The program is pure data: it depends only on the prompt and the tool's
// selector overrides, so it can be handed to any host that can evaluate
// JavaScript in a surface.
package inject

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/bnema/tabcast/internal/domain/entity"
)

const (
	// Interval is the delay between delivery attempts.
	Interval = 200 * time.Millisecond
	// MaxAttempts bounds the retry loop, about 24s at Interval.
	MaxAttempts = 120
	// SendLabelPattern matches send button labels in English and Chinese
	// (发送, 提交, 发布).
	SendLabelPattern = "send|submit|发送|提交|发布"
)

// InputFallbacks are tried when a tool has no input selector, in preference order.
var InputFallbacks = []string{
	"textarea",
	"[contenteditable='true']",
	"div[role='textbox']",
	"input[type='text']",
	"input:not([type])",
}

// SendFallbacks are tried when a tool has no send selector, in preference order.
var SendFallbacks = []string{
	"button[type='submit']",
	"button[aria-label*='Send']",
	"button[aria-label*='send']",
	"button[data-testid*='send']",
	"[role='button']",
	"button",
}

//go:embed deliver.js.tmpl
var deliverSource string

var deliverTemplate = template.Must(template.New("deliver").Parse(deliverSource))

// Params are the JSON literals spliced into the delivery program.
type Params struct {
	Prompt           string
	InputSelectors   string
	SendSelectors    string
	SendWithEnter    string
	SendLabelPattern string
	IntervalMs       int64
	MaxAttempts      int
}

// NewParams encodes prompt and the tool's overrides.
func NewParams(prompt string, tool entity.Tool) (Params, error) {
	p := Params{
		IntervalMs:  Interval.Milliseconds(),
		MaxAttempts: MaxAttempts,
	}
	var err error
	if p.Prompt, err = literal(prompt); err != nil {
		return Params{}, err
	}
	if p.InputSelectors, err = literal(selectors(tool.InputSelector, InputFallbacks)); err != nil {
		return Params{}, err
	}
	if p.SendSelectors, err = literal(selectors(tool.SendSelector, SendFallbacks)); err != nil {
		return Params{}, err
	}
	if p.SendWithEnter, err = literal(tool.SendWithEnter); err != nil {
		return Params{}, err
	}
	if p.SendLabelPattern, err = literal(SendLabelPattern); err != nil {
		return Params{}, err
	}
	return p, nil
}

// selectors returns the trimmed override alone, or the fallbacks.
func selectors(override string, fallbacks []string) []string {
	if s := strings.TrimSpace(override); s != "" {
		return []string{s}
	}
	return fallbacks
}

func literal(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode script literal: %w", err)
	}
	return string(b), nil
}

// Build renders the delivery program for prompt and tool.
func Build(prompt string, tool entity.Tool) (string, error) {
	params, err := NewParams(prompt, tool)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := deliverTemplate.Execute(&b, params); err != nil {
		return "", fmt.Errorf("render delivery script: %w", err)
	}
	return b.String(), nil
}

// BuildValidated is Build followed by Validate.
func BuildValidated(prompt string, tool entity.Tool) (string, error) {
	script, err := Build(prompt, tool)
	if err != nil {
		return "", err
	}
	if err := Validate(script); err != nil {
		return "", err
	}
	return script, nil
}
