// Package transport implements the single-client, non-blocking Unix domain
// socket server the sidecar speaks to phi-core over. Unlike the TCP
// transport this runtime is descended from — one goroutine per connection,
// blocking reads dispatched onto channels — this transport is driven
// entirely by a caller-invoked PollOnce, matching the cooperative,
// single-threaded polling loop phi-core expects from every adapter
// process. There is exactly one client at a time; a new connection always
// displaces whatever was there before.
package transport

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"adapter-sidecar/domain"
	"adapter-sidecar/frame"
)

// maxSocketPathLen mirrors sizeof(sockaddr_un.sun_path) on Linux, including
// the terminating NUL the kernel requires room for.
const maxSocketPathLen = 108

const readChunkSize = 4096

const maxEpollEvents = 8

// Server is a non-blocking, epoll-driven Unix domain socket listener that
// accepts at most one client connection at a time.
type Server struct {
	socketPath string
	serverFd   int
	epollFd    int
	clientFd   int
	rx         []byte

	// OnFrame is invoked once per fully received frame, in poll order.
	OnFrame func(h frame.Header, payload []byte)
	// OnConnected fires when a client is accepted while none was present.
	OnConnected func()
	// OnDisconnected fires when the current client goes away, by EOF,
	// hangup, or protocol error.
	OnDisconnected func()
}

// NewServer returns a Server bound to socketPath once Start is called.
func NewServer(socketPath string) *Server {
	return &Server{socketPath: socketPath, serverFd: -1, epollFd: -1, clientFd: -1}
}

// Start binds and listens on the configured socket path. Any stale socket
// file left over from a previous run is unlinked first.
func (s *Server) Start() error {
	s.Stop()

	if len(s.socketPath) >= maxSocketPathLen {
		return fmt.Errorf("transport: socket path too long")
	}

	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_NONBLOCK, 0)
	if err != nil {
		return fmt.Errorf("socket: %w", err)
	}
	s.serverFd = fd

	_ = unix.Unlink(s.socketPath)

	addr := &unix.SockaddrUnix{Name: s.socketPath}
	if err := unix.Bind(fd, addr); err != nil {
		s.Stop()
		return fmt.Errorf("bind: %w", err)
	}
	if err := unix.Listen(fd, 8); err != nil {
		s.Stop()
		return fmt.Errorf("listen: %w", err)
	}

	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		s.Stop()
		return fmt.Errorf("epoll_create1: %w", err)
	}
	s.epollFd = epfd

	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(fd)}
	if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		s.Stop()
		return fmt.Errorf("epoll_ctl add server: %w", err)
	}

	s.rx = s.rx[:0]
	return nil
}

// Stop closes every open descriptor and unlinks the socket file. Safe to
// call multiple times, including on a Server that was never started.
func (s *Server) Stop() {
	if s.clientFd >= 0 {
		_ = unix.Close(s.clientFd)
		s.clientFd = -1
	}
	if s.epollFd >= 0 {
		_ = unix.Close(s.epollFd)
		s.epollFd = -1
	}
	if s.serverFd >= 0 {
		_ = unix.Close(s.serverFd)
		s.serverFd = -1
	}
	if s.socketPath != "" {
		_ = unix.Unlink(s.socketPath)
	}
	s.rx = nil
}

// HasClient reports whether a client is currently connected.
func (s *Server) HasClient() bool { return s.clientFd >= 0 }

func (s *Server) acceptClient() error {
	fd, _, err := unix.Accept4(s.serverFd, unix.SOCK_NONBLOCK)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return nil
		}
		return fmt.Errorf("accept4: %w", err)
	}

	if s.clientFd >= 0 {
		_ = unix.Close(s.clientFd)
	}
	s.clientFd = fd

	ev := unix.EpollEvent{Events: unix.EPOLLIN | unix.EPOLLRDHUP | unix.EPOLLHUP, Fd: int32(fd)}
	if err := unix.EpollCtl(s.epollFd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		_ = unix.Close(fd)
		s.clientFd = -1
		return fmt.Errorf("epoll_ctl add client: %w", err)
	}

	s.rx = s.rx[:0]
	return nil
}

func (s *Server) closeClient() {
	if s.clientFd >= 0 {
		_ = unix.EpollCtl(s.epollFd, unix.EPOLL_CTL_DEL, s.clientFd, nil)
		_ = unix.Close(s.clientFd)
		s.clientFd = -1
	}
	s.rx = s.rx[:0]
	if s.OnDisconnected != nil {
		s.OnDisconnected()
	}
}

// readClient drains every byte currently available on the client socket,
// then peels off as many complete frames as the accumulated buffer holds.
func (s *Server) readClient() error {
	buf := make([]byte, readChunkSize)
	for {
		n, err := unix.Read(s.clientFd, buf)
		if n > 0 {
			s.rx = append(s.rx, buf[:n]...)
			continue
		}
		if n == 0 && err == nil {
			s.closeClient()
			return nil
		}
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			break
		}
		if err == unix.EINTR {
			continue
		}
		s.closeClient()
		return fmt.Errorf("read: %w", err)
	}

	for len(s.rx) >= frame.HeaderSize {
		h, ok := frame.Unpack(s.rx)
		if !ok {
			s.closeClient()
			return fmt.Errorf("invalid frame header")
		}
		frameSize := frame.HeaderSize + int(h.PayloadSize)
		if len(s.rx) < frameSize {
			break
		}
		payload := s.rx[frame.HeaderSize:frameSize]
		if s.OnFrame != nil {
			s.OnFrame(h, payload)
		}
		s.rx = s.rx[frameSize:]
	}
	return nil
}

func (s *Server) writeAll(data []byte) error {
	written := 0
	for written < len(data) {
		n, err := unix.Write(s.clientFd, data[written:])
		if n > 0 {
			written += n
			continue
		}
		if err == unix.EINTR || err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			continue
		}
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Send frames and writes payload to the current client. Returns an error
// if no client is connected.
func (s *Server) Send(msgType domain.MessageType, correlationID domain.CorrelationId, payload []byte) error {
	if s.clientFd < 0 {
		return fmt.Errorf("transport: no connected client")
	}
	header := frame.Pack(msgType, correlationID, uint32(len(payload)))
	if err := s.writeAll(header); err != nil {
		return err
	}
	if len(payload) > 0 {
		return s.writeAll(payload)
	}
	return nil
}

// PollOnce blocks for up to timeout waiting for socket readiness, then
// services whatever is ready: accepting a new client, delivering frames
// from the current client, or noticing disconnection. It returns promptly
// on EINTR so a caller's signal-driven shutdown flag gets checked often.
func (s *Server) PollOnce(timeout time.Duration) error {
	if s.epollFd < 0 {
		return fmt.Errorf("transport: not started")
	}

	events := make([]unix.EpollEvent, maxEpollEvents)
	timeoutMs := int(timeout / time.Millisecond)
	n, err := unix.EpollWait(s.epollFd, events, timeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return nil
		}
		return fmt.Errorf("epoll_wait: %w", err)
	}

	for i := 0; i < n; i++ {
		fd := int(events[i].Fd)
		ev := events[i].Events

		if fd == s.serverFd {
			hadClient := s.clientFd >= 0
			if err := s.acceptClient(); err != nil {
				return err
			}
			if !hadClient && s.clientFd >= 0 && s.OnConnected != nil {
				s.OnConnected()
			}
			continue
		}

		if fd == s.clientFd {
			if ev&(unix.EPOLLRDHUP|unix.EPOLLHUP) != 0 {
				s.closeClient()
				continue
			}
			if ev&unix.EPOLLIN != 0 {
				if err := s.readClient(); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
