package gtkhost

import (
	"context"
	"fmt"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

// onMainThread reports whether the caller already runs the GTK loop.
func onMainThread() bool {
	return glib.MainContextDefault().IsOwner()
}

// invoke runs fn on the GTK main thread and waits for its result.
// Called from the main thread it runs fn inline.
func invoke(ctx context.Context, fn func() error) error {
	if onMainThread() {
		return fn()
	}

	done := make(chan error, 1)
	glib.IdleAdd(func() bool {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("gtk callback panicked: %v", r)
			}
		}()
		done <- fn()
		return false
	})

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// query is invoke for callbacks that return a value.
func query[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var out T
	err := invoke(ctx, func() error {
		var err error
		out, err = fn()
		return err
	})
	return out, err
}

// post schedules fn on the GTK main thread without waiting.
func post(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
