package inject

import (
	_ "embed"
	"fmt"
	"testing"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/fakedom.js
var fakeDOM string

// page is a fake document running one delivery script on virtual time.
type page struct {
	t  *testing.T
	vm *sobek.Runtime
}

func newPage(t *testing.T, fixture string) *page {
	t.Helper()
	vm := sobek.New()
	_, err := vm.RunString(fakeDOM)
	require.NoError(t, err)
	_, err = vm.RunString(fixture)
	require.NoError(t, err)
	return &page{t: t, vm: vm}
}

func (p *page) deliver(prompt string, tool entity.Tool) {
	p.t.Helper()
	script, err := Build(prompt, tool)
	require.NoError(p.t, err)
	_, err = p.vm.RunString(script)
	require.NoError(p.t, err)
}

func (p *page) tick(n int) {
	p.eval(fmt.Sprintf("__run(%d)", n))
}

func (p *page) eval(expr string) sobek.Value {
	p.t.Helper()
	v, err := p.vm.RunString(expr)
	require.NoError(p.t, err)
	return v
}

func (p *page) str(expr string) string { return p.eval(expr).String() }
func (p *page) num(expr string) int64  { return p.eval(expr).ToInteger() }
func (p *page) is(expr string) bool    { return p.eval(expr).ToBoolean() }

var enter = entity.Tool{ID: "t", SendWithEnter: true}

func TestDeliver_PicksLargestVisibleInput(t *testing.T) {
	p := newPage(t, `
		var small = document.appendChild(h("textarea", {id: "small"}, box(10, 10)));
		var big = document.appendChild(h("textarea", {id: "big"}, box(25, 20)));
	`)

	p.deliver("hello", enter)
	p.tick(1)

	assert.Equal(t, "hello", p.str("big.value"))
	assert.Equal(t, "", p.str("small.value"))
	assert.Equal(t, int64(200), p.num("__timers[0].ms"))
	assert.False(t, p.is("__timers[0].active"))
}

func TestDeliver_PromptSurvivesEncoding(t *testing.T) {
	p := newPage(t, `
		var area = document.appendChild(h("textarea", {id: "area"}, box(50, 50)));
	`)
	prompt := "line one\n\"quoted\" </script> `tick` ${x} \u2028 发送"

	p.deliver(prompt, enter)
	p.tick(1)

	assert.Equal(t, prompt, p.str("area.value"))
}

func TestDeliver_AreaTiesKeepScanOrder(t *testing.T) {
	p := newPage(t, `
		var first = document.appendChild(h("textarea", {id: "first"}, box(10, 10)));
		var second = document.appendChild(h("textarea", {id: "second"}, box(10, 10)));
	`)

	p.deliver("tie", enter)
	p.tick(1)

	assert.Equal(t, "tie", p.str("first.value"))
	assert.Equal(t, "", p.str("second.value"))
}

func TestDeliver_SkipsHiddenInputs(t *testing.T) {
	p := newPage(t, `
		var gone = document.appendChild(h("textarea", {id: "gone"}, {rect: {width: 900, height: 900}, style: {display: "none"}}));
		var ghost = document.appendChild(h("textarea", {id: "ghost"}, {rect: {width: 800, height: 800}, style: {visibility: "hidden"}}));
		var flat = document.appendChild(h("textarea", {id: "flat"}, box(700, 0)));
		var shown = document.appendChild(h("div", {id: "shown", contenteditable: "true"}, box(5, 5)));
	`)

	p.deliver("hi", enter)
	p.tick(1)

	assert.Equal(t, "hi", p.str("shown.textContent"))
	assert.Equal(t, "", p.str("gone.value"))
	assert.Equal(t, "", p.str("ghost.value"))
	assert.Equal(t, "", p.str("flat.value"))
}

func TestDeliver_RetriesUntilInputAppears(t *testing.T) {
	p := newPage(t, `
		var late = document.appendChild(h("textarea", {id: "late"}, {rect: {width: 50, height: 20}, visibleFrom: 5}));
	`)

	p.deliver("hello", enter)
	p.tick(4)
	assert.Equal(t, "", p.str("late.value"))
	assert.True(t, p.is("__timers[0].active"))

	p.tick(10)
	assert.Equal(t, "hello", p.str("late.value"))
	assert.Equal(t, int64(5), p.num("__timers[0].calls"))
	assert.False(t, p.is("__timers[0].active"))
}

func TestDeliver_GivesUpAfterBudget(t *testing.T) {
	p := newPage(t, `
		var never = document.appendChild(h("textarea", {id: "never"}, box(0, 0)));
	`)

	p.deliver("hello", enter)
	p.tick(500)

	assert.Equal(t, int64(MaxAttempts), p.num("__timers[0].calls"))
	assert.False(t, p.is("__timers[0].active"))
	assert.Equal(t, "", p.str("never.value"))
}

func TestDeliver_ExceptionsCountAsFailedAttempts(t *testing.T) {
	p := newPage(t, `
		var flaky = document.appendChild(h("textarea", {id: "flaky"}, box(40, 10)));
		flaky.throwOnClickUntil = 3;
	`)

	p.deliver("hello", enter)
	p.tick(10)

	assert.Equal(t, int64(3), p.num("__timers[0].calls"))
	assert.Equal(t, "hello", p.str("flaky.value"))
}

func TestDeliver_DescendsIntoShadowRoots(t *testing.T) {
	p := newPage(t, `
		var outer = document.appendChild(h("chat-app", {}, box(100, 100)));
		var inner = outer.attachShadow().appendChild(h("chat-box", {}, box(100, 100)));
		var deep = inner.attachShadow().appendChild(h("textarea", {id: "deep"}, box(30, 10)));
	`)

	p.deliver("shadow", enter)
	p.tick(1)

	assert.Equal(t, "shadow", p.str("deep.value"))
}

func TestDeliver_InputOverrideWins(t *testing.T) {
	p := newPage(t, `
		var big = document.appendChild(h("textarea", {id: "big"}, box(500, 500)));
		var mine = document.appendChild(h("input", {id: "mine", type: "search"}, box(5, 5)));
	`)

	p.deliver("override", entity.Tool{InputSelector: "#mine", SendWithEnter: true})
	p.tick(1)

	assert.Equal(t, "override", p.str("mine.value"))
	assert.Equal(t, "", p.str("big.value"))
}

func TestDeliver_InvalidSelectorMatchesNothing(t *testing.T) {
	p := newPage(t, `
		var area = document.appendChild(h("textarea", {id: "area"}, box(50, 50)));
	`)

	p.deliver("bad", entity.Tool{InputSelector: "textarea[[", SendWithEnter: true})
	p.tick(MaxAttempts)

	assert.Equal(t, "", p.str("area.value"))
	assert.False(t, p.is("__timers[0].active"))
}

func TestDeliver_NativeSetterBypassesInstanceOverride(t *testing.T) {
	p := newPage(t, `
		var field = document.appendChild(h("input", {id: "field"}, box(80, 20)));
		Object.defineProperty(field, "value", {
			configurable: true,
			get: function () { return "tracked"; },
			set: function (v) { field.intercepted = v; },
		});
	`)

	p.deliver("native", enter)
	p.tick(1)

	assert.Equal(t, "native", p.str("field._value"))
	assert.True(t, p.is("field.intercepted === undefined"))
	assert.Equal(t, "click:field,input:field,change:field,keydown:field", p.str("__log.join()"))
	assert.True(t, p.is("field.events[0].bubbles && field.events[1].bubbles"))
}

func TestDeliver_EnterEventShape(t *testing.T) {
	p := newPage(t, `
		var area = document.appendChild(h("textarea", {id: "area"}, box(50, 50)));
	`)

	p.deliver("go", enter)
	p.tick(1)

	assert.Equal(t, "keydown", p.str("area.events[2].type"))
	assert.True(t, p.is("area.events[2] instanceof KeyboardEvent"))
	assert.Equal(t, "Enter", p.str("area.events[2].key"))
	assert.Equal(t, "Enter", p.str("area.events[2].code"))
	assert.Equal(t, int64(13), p.num("area.events[2].keyCode"))
	assert.Equal(t, int64(13), p.num("area.events[2].which"))
	assert.True(t, p.is("area.events[2].bubbles && area.events[2].cancelable"))
}

func TestDeliver_ContentEditableUsesEditingCommands(t *testing.T) {
	p := newPage(t, `
		var editor = document.appendChild(h("div", {id: "editor", role: "textbox"}, {rect: {width: 60, height: 20}, text: "old"}));
	`)

	p.deliver("typed", enter)
	p.tick(1)

	assert.Equal(t, "typed", p.str("editor.textContent"))
	assert.Equal(t, "click:editor,exec:selectAll,exec:insertText,input:editor,change:editor,keydown:editor", p.str("__log.join()"))
	assert.True(t, p.is("editor.events[0] instanceof InputEvent"))
}

func TestDeliver_ContentEditableWithoutEditingCommands(t *testing.T) {
	p := newPage(t, `
		document.execCommand = undefined;
		var editor = document.appendChild(h("div", {id: "editor", contenteditable: "true"}, {rect: {width: 60, height: 20}, text: "old"}));
	`)

	p.deliver("replaced", enter)
	p.tick(1)

	assert.Equal(t, "replaced", p.str("editor.textContent"))
}

func TestDeliver_SendButtonInsideForm(t *testing.T) {
	p := newPage(t, `
		var global = document.appendChild(h("button", {id: "global", "aria-label": "Send"}, box(20, 20)));
		var form = document.appendChild(h("form", {id: "form"}, box(300, 100)));
		var area = form.appendChild(h("textarea", {id: "area"}, box(200, 50)));
		var local = form.appendChild(h("button", {id: "local"}, {rect: {width: 20, height: 20}, text: "Go"}));
	`)

	p.deliver("form", entity.Tool{SendWithEnter: false})
	p.tick(1)

	assert.Equal(t, "form", p.str("area.value"))
	assert.Equal(t, int64(1), p.num("local.clicks"))
	assert.Equal(t, int64(0), p.num("global.clicks"))
	assert.True(t, p.is("area.events.every(function (e) { return e.type !== 'keydown'; })"))
}

func TestDeliver_HiddenFormButtonFallsBackToGlobal(t *testing.T) {
	p := newPage(t, `
		var form = document.appendChild(h("form", {id: "form"}, box(300, 100)));
		var area = form.appendChild(h("textarea", {id: "area"}, box(200, 50)));
		var hidden = form.appendChild(h("button", {id: "hidden", type: "submit"}, {rect: {width: 20, height: 20}, style: {display: "none"}}));
		var outside = document.appendChild(h("button", {id: "outside", title: "Submit"}, box(20, 20)));
	`)

	p.deliver("x", entity.Tool{SendWithEnter: false})
	p.tick(1)

	assert.Equal(t, int64(0), p.num("hidden.clicks"))
	assert.Equal(t, int64(1), p.num("outside.clicks"))
}

func TestDeliver_PrefersSendLabelGlobally(t *testing.T) {
	p := newPage(t, `
		var area = document.appendChild(h("textarea", {id: "area"}, box(200, 50)));
		var cancel = document.appendChild(h("button", {id: "cancel"}, {rect: {width: 20, height: 20}, text: "Cancel"}));
		var send = document.appendChild(h("button", {id: "send"}, {rect: {width: 20, height: 20}, text: "发送"}));
	`)

	p.deliver("x", entity.Tool{SendWithEnter: false})
	p.tick(1)

	assert.Equal(t, int64(0), p.num("cancel.clicks"))
	assert.Equal(t, int64(1), p.num("send.clicks"))
}

func TestDeliver_FirstVisibleWhenNoLabelMatches(t *testing.T) {
	p := newPage(t, `
		var area = document.appendChild(h("textarea", {id: "area"}, box(200, 50)));
		var invisible = document.appendChild(h("div", {id: "invisible", role: "button"}, box(0, 0)));
		var first = document.appendChild(h("div", {id: "first", role: "button"}, {rect: {width: 20, height: 20}, text: "Attach"}));
		var second = document.appendChild(h("button", {id: "second"}, {rect: {width: 20, height: 20}, text: "Close"}));
	`)

	p.deliver("x", entity.Tool{SendWithEnter: false})
	p.tick(1)

	assert.Equal(t, int64(1), p.num("first.clicks"))
	assert.Equal(t, int64(0), p.num("second.clicks"))
}

func TestDeliver_MissingSendButtonKeepsRetrying(t *testing.T) {
	p := newPage(t, `
		var area = document.appendChild(h("textarea", {id: "area"}, box(200, 50)));
	`)

	p.deliver("x", entity.Tool{SendWithEnter: false})
	p.tick(3)

	assert.Equal(t, "x", p.str("area.value"))
	assert.True(t, p.is("__timers[0].active"))

	p.tick(MaxAttempts)
	assert.Equal(t, int64(MaxAttempts), p.num("__timers[0].calls"))
	assert.False(t, p.is("__timers[0].active"))
}

func TestDeliver_SendSelectorOverride(t *testing.T) {
	p := newPage(t, `
		var area = document.appendChild(h("textarea", {id: "area"}, box(200, 50)));
		var labelled = document.appendChild(h("button", {id: "labelled", "aria-label": "Send"}, box(20, 20)));
		var icon = document.appendChild(h("span", {id: "icon", class: "send-icon"}, box(16, 16)));
	`)

	p.deliver("x", entity.Tool{SendSelector: "span.send-icon"})
	p.tick(1)

	assert.Equal(t, int64(1), p.num("icon.clicks"))
	assert.Equal(t, int64(0), p.num("labelled.clicks"))
}
