package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/erraggy/oasdocs/internal/cliutil"
	"github.com/erraggy/oasdocs/parser"
	"github.com/erraggy/oasdocs/renderer"
)

// DefaultServeAddr is the listen address for the preview server.
const DefaultServeAddr = "127.0.0.1:8080"

const shutdownTimeout = 5 * time.Second

func newServeCommand(a *app) *cobra.Command {
	flags := &renderFlags{}
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [flags] <spec>",
		Short: "Render a specification and preview the site over HTTP",
		Long: `serve renders the specification into the output directory, then serves that
directory over HTTP until interrupted. Requests are logged at info level.`,
		Example: `  oasdocs serve openapi.yaml
  oasdocs serve --addr :9000 -t dark openapi.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := flags.settings(cmd, args, a.log)
			if err != nil {
				return err
			}
			switch len(settings.Inputs) {
			case 0:
				_ = cmd.Usage()
				return errNoInput
			case 1:
			default:
				return fmt.Errorf("serve takes one specification, got %d", len(settings.Inputs))
			}
			if _, err := a.generate(settings.Inputs[0], settings); err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           newSiteHandler(settings.Output, a.log),
				ReadHeaderTimeout: 10 * time.Second,
			}
			cliutil.Successf(a.stdout, "serving %s on http://%s", settings.Output, addr)
			return runServer(cmd.Context(), srv, a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", DefaultServeAddr, "listen address")
	flags.register(cmd.Flags())
	return cmd
}

// newSiteHandler serves the generated site in dir.
func newSiteHandler(dir string, log parser.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Use(middleware.NoCache)

	files := http.FileServer(http.Dir(dir))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Get("/"+renderer.SearchFile, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		files.ServeHTTP(w, req)
	})
	r.Handle("/*", files)
	return r
}

// requestLogger logs one line per request through log.
func requestLogger(log parser.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, srv *http.Server, log parser.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("serve: graceful shutdown failed: %w", err)
	}
	return nil
}
