// Package events is the in-process delivery of window events.
//
// Host windows emit through the Bus and the UI layer listens on it. Listeners
// run on a single worker goroutine, in emit order, so a listener may call back
// into the host without re-entering the code that emitted.
package events

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/logging"
)

const queueSize = 64

// ErrBusClosed is returned by Emit after Close.
var ErrBusClosed = errors.New("event bus closed")

type topic struct {
	window string
	event  string
}

type listener struct {
	id uint64
	fn port.EventListener
}

type delivery struct {
	topic   topic
	payload any
}

// Bus fans window events out to listeners.
type Bus struct {
	ctx context.Context

	mu        sync.RWMutex
	nextID    uint64
	listeners map[topic][]listener
	closed    bool

	queue chan delivery
	done  chan struct{}
	wg    sync.WaitGroup
}

var _ port.EventSource = (*Bus)(nil)

// NewBus starts the delivery worker. Listeners receive ctx, which carries
// the logger.
func NewBus(ctx context.Context) *Bus {
	b := &Bus{
		ctx:       ctx,
		listeners: make(map[topic][]listener),
		queue:     make(chan delivery, queueSize),
		done:      make(chan struct{}),
	}
	b.wg.Add(1)
	go b.worker()
	return b
}

// Listen registers fn for event on the labelled window.
func (b *Bus) Listen(window, event string, fn port.EventListener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	t := topic{window: window, event: event}
	b.listeners[t] = append(b.listeners[t], listener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(t, id) })
	}
}

func (b *Bus) remove(t topic, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ls := b.listeners[t]
	for i, l := range ls {
		if l.id == id {
			b.listeners[t] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	if len(b.listeners[t]) == 0 {
		delete(b.listeners, t)
	}
}

// Emit queues payload for the listeners of event on window. It blocks only
// while the queue is full.
func (b *Bus) Emit(ctx context.Context, window, event string, payload any) error {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return ErrBusClosed
	}

	d := delivery{topic: topic{window: window, event: event}, payload: payload}
	select {
	case b.queue <- d:
		return nil
	case <-b.done:
		return ErrBusClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the worker after the queued events were delivered.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	close(b.done)
	b.wg.Wait()
}

func (b *Bus) worker() {
	defer b.wg.Done()
	for {
		select {
		case d := <-b.queue:
			b.deliver(d)
		case <-b.done:
			for {
				select {
				case d := <-b.queue:
					b.deliver(d)
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) deliver(d delivery) {
	b.mu.RLock()
	ls := append([]listener(nil), b.listeners[d.topic]...)
	b.mu.RUnlock()

	if len(ls) == 0 {
		logging.FromContext(b.ctx).Debug().
			Str("window", d.topic.window).
			Str("event", d.topic.event).
			Msg("event dropped, no listener")
		return
	}
	for _, l := range ls {
		b.call(l, d)
	}
}

func (b *Bus) call(l listener, d delivery) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(b.ctx).Error().
				Interface("panic", r).
				Str("window", d.topic.window).
				Str("event", d.topic.event).
				Msg("event listener panicked")
		}
	}()
	l.fn(b.ctx, d.payload)
}

// WindowEmitter binds a window label to the bus.
type WindowEmitter struct {
	bus   *Bus
	label string
}

// For returns an emitter for the labelled window.
func (b *Bus) For(label string) WindowEmitter {
	return WindowEmitter{bus: b, label: label}
}

// Emit sends event to the listeners of the bound window.
func (e WindowEmitter) Emit(ctx context.Context, event string, payload any) error {
	return e.bus.Emit(ctx, e.label, event, payload)
}
