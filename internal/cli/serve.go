package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	apperrors "github.com/tinkerkit/graphson/pkg/errors"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr string
}

// serveCommand creates the serve command: a small debug HTTP service that
// exposes the codec over POST endpoints. Useful for poking at documents with
// curl and for driver authors testing their own output against this codec.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a debug HTTP service exposing the codec",
		Long: `Run a local HTTP service with codec endpoints:

  POST /decode   GraphSON in, plain JSON out
  POST /encode   plain JSON in, GraphSON out
  GET  /healthz  liveness check

Examples:
  graphson serve
  graphson serve --addr :9090
  curl -d '{"@type":"g:Int32","@value":1}' localhost:8080/decode`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := &http.Server{
				Addr:              opts.addr,
				Handler:           c.serveRouter(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", opts.addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case <-cmd.Context().Done():
				c.Logger.Info("shutting down")
				return srv.Close()
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("serve: %w", err)
			}
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	return cmd
}

// serveRouter builds the debug service's routes.
func (c *CLI) serveRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(c.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	r.Post("/decode", c.handleDecode)
	r.Post("/encode", c.handleEncode)
	return r
}

// requestLogger logs each request through the CLI's structured logger.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		c.Logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func (c *CLI) handleDecode(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.New(apperrors.ErrCodeInvalidInput, "read body"))
		return
	}

	decoded, err := c.mapper().Read(string(body))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	out, err := marshalPlain(plainify(decoded), false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (c *CLI) handleEncode(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.New(apperrors.ErrCodeInvalidInput, "read body"))
		return
	}

	dec := json.NewDecoder(strings.NewReader(string(body)))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.Wrap(apperrors.ErrCodeInvalidJSON, err, "parse body"))
		return
	}

	encoded, err := c.mapper().Write(c.retag(tree))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(encoded))
}

// writeError sends an error as a JSON body carrying the structured code when
// one is attached.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{
		"error": err.Error(),
		"code":  string(apperrors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
