package demo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// Handler serves the demo page at / and a liveness probe at /healthz.
//
// The page accepts an optional extra calculation through the query string,
// e.g. /?op=divide&a=1&b=0, and an optional name to greet.
func (r *Renderer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, "ok")
	})
	mux.HandleFunc("/", r.servePage)
	return mux
}

func (r *Renderer) servePage(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		http.NotFound(w, req)
		return
	}
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := req.URL.Query()
	var extra []Input
	if q.Get("op") != "" {
		in, err := parseInput(q.Get("op"), q.Get("a"), q.Get("b"))
		if err != nil {
			logger.Warn("Rejected demo query", "error", err, "query", req.URL.RawQuery)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		extra = append(extra, in)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, r.Page(q.Get("name"), extra...)); err != nil {
		logger.Error("Failed to render demo page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	logger.Debug("Served demo page", "remote", req.RemoteAddr, "query", req.URL.RawQuery)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func parseInput(op, a, b string) (Input, error) {
	operation, err := calculator.ParseOperation(op)
	if err != nil {
		return Input{}, err
	}
	na, err := calculator.ParseNumber(a)
	if err != nil {
		return Input{}, fmt.Errorf("a: %w", err)
	}
	nb, err := calculator.ParseNumber(b)
	if err != nil {
		return Input{}, fmt.Errorf("b: %w", err)
	}
	return Input{Op: operation, A: na, B: nb}, nil
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Demo server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("demo server failed: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down demo server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down demo server: %w", err)
		}
		return nil
	}
}
