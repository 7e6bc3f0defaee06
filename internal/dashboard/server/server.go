package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"syscall"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// ErrPortInUse is returned by Listen when another process owns the port.
var ErrPortInUse = errors.New("port already in use")

type Server struct {
	httpServer *http.Server
	listener   net.Listener
}

func New(addr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: h2c.NewHandler(handler, &http2.Server{}),
		},
	}
}

// Listen binds the configured address. A bind that fails because the
// address is taken yields ErrPortInUse.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		if isAddrInUse(err) {
			return fmt.Errorf("%w: %s", ErrPortInUse, s.httpServer.Addr)
		}
		return err
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Serve accepts connections until Shutdown. Listen must have succeeded.
func (s *Server) Serve() error {
	if s.listener == nil {
		return errors.New("server: Serve called before Listen")
	}
	log.Printf("Starting dashboard server on %s", s.Addr())
	if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func isAddrInUse(err error) bool {
	if errors.Is(err, syscall.EADDRINUSE) {
		return true
	}
	var se *net.OpError
	if errors.As(err, &se) {
		var errno syscall.Errno
		// WSAEADDRINUSE
		if errors.As(se.Err, &errno) && errno == 10048 {
			return true
		}
	}
	return false
}
