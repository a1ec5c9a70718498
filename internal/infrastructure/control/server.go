// Package control exposes the running instance over a local unix socket so
// the CLI can forward prompts, toggle windows and change the hotkey.
package control

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/application/usecase"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	socketPerm      = 0o600
	shutdownTimeout = 3 * time.Second
	maxBodyBytes    = 1 << 20
)

// ErrSocketInUse is returned when another instance answers on the socket.
var ErrSocketInUse = errors.New("control socket in use")

// Actions is what the control API drives.
type Actions interface {
	SendPrompt(ctx context.Context, prompt string) error
	ToggleQuick(ctx context.Context) error
	ShowMain(ctx context.Context) error
	OpenSettings(ctx context.Context) error
	ApplyHotkey(ctx context.Context, hotkey string) error
	Settings() entity.Settings
}

// Server serves the control API.
type Server struct {
	actions    Actions
	socketPath string
	baseCtx    context.Context
}

// NewServer creates a server for socketPath. ctx carries the logger handed
// to request handlers.
func NewServer(ctx context.Context, actions Actions, socketPath string) *Server {
	return &Server{
		actions:    actions,
		socketPath: socketPath,
		baseCtx:    logging.WithComponent(ctx, "control"),
	}
}

// Handler returns the API router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.withLogger)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Post("/prompt", s.handlePrompt)
		r.Post("/quick/toggle", s.handleAction(s.actions.ToggleQuick))
		r.Post("/main/show", s.handleAction(s.actions.ShowMain))
		r.Post("/settings/open", s.handleAction(s.actions.OpenSettings))
		r.Put("/hotkey", s.handleHotkey)
	})
	return r
}

// Serve listens on the unix socket until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	log := logging.FromContext(s.baseCtx)

	ln, err := s.listen(ctx)
	if err != nil {
		return err
	}
	defer os.Remove(s.socketPath)

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return s.baseCtx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	log.Info().Str("socket", s.socketPath).Msg("control API listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("control API: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("control API shutdown")
		}
		return nil
	}
}

// listen binds the socket, removing a stale one left by a crashed instance.
func (s *Server) listen(ctx context.Context) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(s.socketPath), 0o700); err != nil {
		return nil, fmt.Errorf("create socket dir: %w", err)
	}

	if _, err := os.Stat(s.socketPath); err == nil {
		dialer := net.Dialer{Timeout: 500 * time.Millisecond}
		if conn, dialErr := dialer.DialContext(ctx, "unix", s.socketPath); dialErr == nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%w: %s", ErrSocketInUse, s.socketPath)
		}
		if err := os.Remove(s.socketPath); err != nil {
			return nil, fmt.Errorf("remove stale socket: %w", err)
		}
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "unix", s.socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", s.socketPath, err)
	}
	if err := os.Chmod(s.socketPath, socketPerm); err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("chmod socket: %w", err)
	}
	return ln, nil
}

func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		ctx := logging.WithContext(r.Context(), *logging.FromContext(s.baseCtx))

		next.ServeHTTP(ww, r.WithContext(ctx))

		logging.FromContext(ctx).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("control request")
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	settings := s.actions.Settings()
	status := Status{Hotkey: settings.Hotkey, Tools: make([]ToolStatus, 0, len(settings.Tools))}
	for _, t := range settings.Tools {
		status.Tools = append(status.Tools, ToolStatus{
			ID:      t.ID,
			Name:    t.Name,
			Label:   t.Label(),
			Enabled: t.Enabled,
		})
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.actions.SendPrompt(r.Context(), req.Prompt); err != nil {
		writeActionErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHotkey(w http.ResponseWriter, r *http.Request) {
	var req HotkeyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.actions.ApplyHotkey(r.Context(), req.Hotkey); err != nil {
		writeActionErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, HotkeyRequest{Hotkey: entity.NormalizeHotkey(req.Hotkey)})
}

func (s *Server) handleAction(action func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := action(r.Context()); err != nil {
			writeActionErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeErr(w, http.StatusBadRequest, CodeInvalidJSON, err.Error())
		return false
	}
	return true
}

func writeActionErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyPrompt):
		writeErr(w, http.StatusBadRequest, CodeEmptyPrompt, err.Error())
	case errors.Is(err, entity.ErrHotkeyEmpty), errors.Is(err, entity.ErrHotkeyReserved):
		writeErr(w, http.StatusUnprocessableEntity, CodeInvalidHotkey, err.Error())
	case errors.Is(err, usecase.ErrCoordinatorClosed):
		writeErr(w, http.StatusServiceUnavailable, CodeShuttingDown, err.Error())
	case errors.Is(err, port.ErrWindowNotFound):
		writeErr(w, http.StatusNotFound, CodeWindowNotFound, err.Error())
	case errors.Is(err, usecase.ErrHotkeyUnavailable):
		writeErr(w, http.StatusConflict, CodeHotkeyUnavailable, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, CodeInternal, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeErr(w http.ResponseWriter, code int, errCode, message string) {
	writeJSON(w, code, ErrorBody{Error: APIError{Code: errCode, Message: message}})
}
