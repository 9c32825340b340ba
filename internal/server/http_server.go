package server

import (
	"context"
	"net/http"
)

// httpServer is the seam Run and Shutdown drive. Tests swap in a recording
// implementation so lifecycle paths run without binding a port.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

type netServer struct {
	srv *http.Server
}

// newNetServer wraps net/http with the service timeout policy. The write
// timeout is generous because a cold /schedule fetch waits on the schedule
// page rendering.
func newNetServer(port string, h http.Handler) netServer {
	return netServer{srv: &http.Server{
		Addr:         ":" + port,
		Handler:      h,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
}

// newBareServer carries no timeouts. Used for the metrics listener, which
// only ever serves the scrape endpoint to the local collector.
func newBareServer(port string, h http.Handler) netServer {
	return netServer{srv: &http.Server{Addr: ":" + port, Handler: h}}
}

func (s netServer) ListenAndServe() error              { return s.srv.ListenAndServe() }
func (s netServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s netServer) Addr() string                       { return s.srv.Addr }
func (s netServer) Handler() http.Handler              { return s.srv.Handler }
