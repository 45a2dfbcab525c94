// Package demopage serves a local copy of the "Web Testing Page" so the
// sanity suite can run without network access.
package demopage

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

//go:embed static
var staticFS embed.FS

// Path is where the demo page is mounted.
const Path = "/demo_page"

var frames = map[string]string{
	"image":    "static/frames/image.html",
	"text":     "static/frames/text.html",
	"checkbox": "static/frames/checkbox.html",
}

// Handler returns the router serving the demo page and its frames.
func Handler(logger *logrus.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, Path, http.StatusFound)
	})
	r.Get(Path, func(w http.ResponseWriter, _ *http.Request) {
		serveFile(w, "static/demo_page.html")
	})
	r.Get("/frames/{name}", func(w http.ResponseWriter, req *http.Request) {
		file, ok := frames[chi.URLParam(req, "name")]
		if !ok {
			http.NotFound(w, req)
			return
		}
		serveFile(w, file)
	})
	return r
}

func serveFile(w http.ResponseWriter, name string) {
	data, err := fs.ReadFile(staticFS, name)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func requestLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"duration": time.Since(start),
			}).Debug("Demo page request")
		})
	}
}

// Server is a running demo page server.
type Server struct {
	srv      *http.Server
	listener net.Listener
	done     chan error
}

// Start listens on addr (":0" picks a free port) and serves in the
// background.
func Start(addr string, logger *logrus.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := &Server{
		srv: &http.Server{
			Handler:           Handler(logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: ln,
		done:     make(chan error, 1),
	}
	go func() {
		err := s.srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.done <- err
	}()

	logger.Infof("Demo page listening on %s", s.URL())
	return s, nil
}

// URL is the demo page address, usable as the suite base URL.
func (s *Server) URL() string {
	return "http://" + s.listener.Addr().String() + Path
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}
	return <-s.done
}
