package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/ardnew/sexpr/lang"
	"github.com/ardnew/sexpr/log"
)

// Routes served by [Serve].
const (
	programRoute = "/lisp-parser"
	healthRoute  = "/healthz"
)

// defaultMaxBody is the default request body limit in bytes.
const defaultMaxBody = 1 << 20

// Serve runs programs submitted over HTTP.
//
// POST /lisp-parser accepts a batch document, {"expressions": [...]}, and
// responds with {"output": [...]}. Every request runs against a fresh
// environment.
type Serve struct {
	Listen   string        `default:":8080"   help:"Address to listen on"                     short:"l"`
	MaxBody  int64         `default:"1048576" help:"Maximum request body size in bytes"`
	Shutdown time.Duration `default:"5s"      help:"Time allowed for requests to finish on exit"`
}

// Run executes the serve command. It returns when ctx is canceled.
func (s *Serve) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ln, err := net.Listen("tcp", s.Listen)
	if err != nil {
		return ErrServe.With(slog.String("listen", s.Listen)).Wrap(err)
	}

	srv := &http.Server{
		Handler:           s.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	log.InfoContext(ctx, "listening", slog.String("addr", ln.Addr().String()))

	done := make(chan error, 1)

	go func() { done <- srv.Serve(ln) }()

	select {
	case err := <-done:
		if !errors.Is(err, http.ErrServerClosed) {
			return ErrServe.Wrap(err)
		}

		return nil

	case <-ctx.Done():
	}

	sctx, stop := context.WithTimeout(context.WithoutCancel(ctx), s.Shutdown)
	defer stop()

	log.InfoContext(ctx, "shutting down", slog.Duration("timeout", s.Shutdown))

	if err := srv.Shutdown(sctx); err != nil {
		return ErrServe.Wrap(err)
	}

	return nil
}

// Handler returns the HTTP handler serving the program and health routes.
// Interpreter options are read from ctx.
func (s *Serve) Handler(ctx context.Context) http.Handler {
	in := interpreterFrom(ctx)

	maxBody := s.MaxBody
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST "+programRoute, func(w http.ResponseWriter, r *http.Request) {
		handleProgram(w, r, in, maxBody)
	})

	mux.HandleFunc("GET "+healthRoute, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func handleProgram(
	w http.ResponseWriter,
	r *http.Request,
	in *lang.Interpreter,
	maxBody int64,
) {
	ctx := r.Context()

	batch, err := lang.DecodeBatch(ctx, http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		status := http.StatusBadRequest

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}

		log.DebugContext(ctx, "request rejected",
			slog.Int("status", status),
			slog.Any("error", err),
		)

		writeJSON(ctx, w, status, errorResponse{Error: err.Error()})

		return
	}

	out, err := in.Run(ctx, batch.Expressions)
	if err != nil {
		log.DebugContext(ctx, "program failed", slog.Any("error", err))

		if out == nil {
			writeJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})

			return
		}
	}

	format := lang.OutputJSON
	if strings.Contains(r.Header.Get("Accept"), "yaml") {
		format = lang.OutputYAML

		w.Header().Set("Content-Type", "application/yaml")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}

	if err := out.Format(ctx, w, format); err != nil {
		log.ErrorContext(ctx, "write response", slog.Any("error", err))
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ErrorContext(ctx, "write response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}
