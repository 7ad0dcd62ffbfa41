// Package web serves the pre-built browser front end.
//
// The server has two routes: the root serves index.html from the static
// directory, and every other path is resolved beneath it. Missing files and
// directory requests return 404. There is no API surface; the timer itself
// runs client-side.
package web

import (
	"context"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Server delivers static assets over plain HTTP.
type Server struct {
	Addr string // listen address, host:port
	Dir  string // static asset directory
}

// Handler returns the route handler for the static site.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.serveFile)
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	p := path.Clean("/" + r.URL.Path)
	if p == "/" {
		p = "/index.html"
	}
	if strings.Contains(p, "..") {
		http.NotFound(w, r)
		return
	}

	full := filepath.Join(s.Dir, filepath.FromSlash(p))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, full)
}

// ListenAndServe runs the server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("tabata web: serving %s on http://%s", s.Dir, s.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Printf("tabata web: shutting down")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
