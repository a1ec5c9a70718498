package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/application/port/mocks"
	"github.com/bnema/tabcast/internal/application/usecase"
	"github.com/bnema/tabcast/internal/domain/entity"
)

func newQuick(host *mocks.MockHost) *QuickController {
	return NewQuickController(
		usecase.NewQuickWindowUseCase(host),
		usecase.NewDispatchUseCase(host, nil, nil),
	)
}

func TestQuickSubmit_ForwardsPrompt(t *testing.T) {
	host := mocks.NewMockHost(t)
	quick := mocks.NewMockWindow(t)
	main := mocks.NewMockWindow(t)

	host.EXPECT().Window(mock.Anything, port.QuickWindowLabel).Return(quick, nil).Once()
	quick.EXPECT().Hide(mock.Anything).Return(nil).Once()
	host.EXPECT().Window(mock.Anything, port.MainWindowLabel).Return(main, nil).Once()
	main.EXPECT().Show(mock.Anything).Return(nil).Once()
	main.EXPECT().Focus(mock.Anything).Return(nil).Once()
	main.EXPECT().Emit(mock.Anything, port.EventSend, port.SendPayload{Prompt: "hello"}).Return(nil).Once()

	res := newQuick(host).Submit(context.Background(), "  hello \n")
	assert.Equal(t, QuickResult{Clear: true}, res)
}

func TestQuickSubmit_ForwardFailureKeepsText(t *testing.T) {
	host := mocks.NewMockHost(t)
	quick := mocks.NewMockWindow(t)

	host.EXPECT().Window(mock.Anything, port.QuickWindowLabel).Return(quick, nil).Once()
	quick.EXPECT().Hide(mock.Anything).Return(errors.New("gone")).Once()
	host.EXPECT().Window(mock.Anything, port.MainWindowLabel).Return(nil, port.ErrWindowNotFound).Once()

	res := newQuick(host).Submit(context.Background(), "hello")
	assert.False(t, res.Clear)
	if assert.NotNil(t, res.Notice) {
		assert.Equal(t, NoticeError, res.Notice.Level)
	}
}

func TestQuickSubmit_Commands(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		clear bool
		level NoticeLevel
		msg   string
	}{
		{name: "empty", text: "   ", level: NoticeWarning, msg: "type a prompt first"},
		{name: "clear", text: "/clear", clear: true},
		{name: "help", text: "/?", level: NoticeInfo, msg: entity.QuickHelp},
		{name: "unknown", text: "/nope please", level: NoticeWarning, msg: "unknown command: /nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := mocks.NewMockHost(t)
			res := newQuick(host).Submit(context.Background(), tt.text)

			assert.Equal(t, tt.clear, res.Clear)
			if tt.msg == "" {
				assert.Nil(t, res.Notice)
				return
			}
			if assert.NotNil(t, res.Notice) {
				assert.Equal(t, tt.level, res.Notice.Level)
				assert.Equal(t, tt.msg, res.Notice.Message)
			}
		})
	}
}

func TestQuickSubmit_SettingsCommand(t *testing.T) {
	host := mocks.NewMockHost(t)
	quick := mocks.NewMockWindow(t)
	main := mocks.NewMockWindow(t)

	host.EXPECT().Window(mock.Anything, port.MainWindowLabel).Return(main, nil).Once()
	main.EXPECT().Show(mock.Anything).Return(nil).Once()
	main.EXPECT().Focus(mock.Anything).Return(nil).Once()
	host.EXPECT().Window(mock.Anything, port.QuickWindowLabel).Return(quick, nil).Once()
	quick.EXPECT().Hide(mock.Anything).Return(nil).Once()

	res := newQuick(host).Submit(context.Background(), "/settings")
	assert.Equal(t, QuickResult{Clear: true}, res)
}

func TestQuickBlurred(t *testing.T) {
	host := mocks.NewMockHost(t)
	quick := mocks.NewMockWindow(t)
	c := newQuick(host)

	c.Blurred(context.Background(), "draft")

	host.EXPECT().Window(mock.Anything, port.QuickWindowLabel).Return(quick, nil).Once()
	quick.EXPECT().Hide(mock.Anything).Return(nil).Once()
	c.Blurred(context.Background(), "  ")
}

func TestQuickDismiss(t *testing.T) {
	host := mocks.NewMockHost(t)
	quick := mocks.NewMockWindow(t)

	host.EXPECT().Window(mock.Anything, port.QuickWindowLabel).Return(quick, nil).Once()
	quick.EXPECT().IsFocused(mock.Anything).Return(true, nil).Once()
	quick.EXPECT().Hide(mock.Anything).Return(nil).Once()

	newQuick(host).Dismiss(context.Background())
}
