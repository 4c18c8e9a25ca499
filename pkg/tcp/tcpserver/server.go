package tcpserver

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"time"
)

const defaultConnTimeout = time.Second * 5

// HandlerFunc owns the accepted connection and is expected to close it.
type HandlerFunc func(context.Context, *net.TCPConn)

type Option func(*Server) error

type Server struct {
	addr          *net.TCPAddr
	listener      *net.TCPListener
	handler       HandlerFunc
	connTimeout   time.Duration
	stop          chan struct{}
	readyCallback func()
}

func WithConnTimeout(timeout time.Duration) Option {
	return func(s *Server) error {
		s.connTimeout = timeout
		return nil
	}
}

func WithReadySignal(cb func()) Option {
	return func(s *Server) error {
		s.readyCallback = cb
		return nil
	}
}

func New(addr string, handler HandlerFunc, opts ...Option) (*Server, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}
	server := &Server{
		addr:    tcpAddr,
		handler: handler,
		stop:    make(chan struct{}),
		// set defaults
		connTimeout: defaultConnTimeout,
	}
	for _, opt := range opts {
		if optErr := opt(server); optErr != nil {
			return nil, optErr
		}
	}
	return server, nil
}

func (s *Server) Listen() error {
	fatal := make(chan error, 1)

	listener, err := net.ListenTCP("tcp", s.addr)
	if err != nil {
		return err
	}
	defer listener.Close()

	s.listener = listener

	if s.readyCallback != nil {
		s.readyCallback()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		<-s.stop
		cancel()
	}()

	go func() {
		for {
			conn, err := listener.AcceptTCP()
			if err != nil {
				fatal <- err
				return
			}
			if s.handler == nil {
				conn.Close() // nolint: errcheck
				continue
			}
			if err := conn.SetDeadline(time.Now().Add(s.connTimeout)); err != nil {
				conn.Close() // nolint: errcheck
				continue
			}
			go s.handler(ctx, conn)
		}
	}()

	select {
	case err := <-fatal:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (s *Server) LocalAddr() *net.TCPAddr {
	tcpAddr, ok := s.listener.Addr().(*net.TCPAddr)
	if !ok {
		panic("address must be of type *TCPAddr")
	}
	return tcpAddr
}

func (s *Server) LocalAddrPort() netip.AddrPort {
	return s.LocalAddr().AddrPort()
}

func (s *Server) Stop() error {
	close(s.stop)
	if err := s.listener.Close(); err != nil {
		return fmt.Errorf("unable to stop tcp server at %s: %w", s.addr, err)
	}
	return nil
}
