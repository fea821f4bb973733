package transport

import (
	"net"
	"path/filepath"
	"testing"
	"time"

	"adapter-sidecar/domain"
	"adapter-sidecar/frame"
)

func newTestSocketPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "sidecar.sock")
}

func TestServerStartStopIsIdempotent(t *testing.T) {
	s := NewServer(newTestSocketPath(t))
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
	s.Stop()
}

func TestServerAcceptsSingleClientAndDeliversFrame(t *testing.T) {
	path := newTestSocketPath(t)
	s := NewServer(path)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	connected := make(chan struct{}, 1)
	received := make(chan frame.Header, 1)
	s.OnConnected = func() { connected <- struct{}{} }
	s.OnFrame = func(h frame.Header, payload []byte) { received <- h }

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	if err := s.PollOnce(time.Second); err != nil {
		t.Fatalf("PollOnce (accept): %v", err)
	}
	select {
	case <-connected:
	default:
		t.Fatalf("OnConnected did not fire")
	}

	header := frame.Pack(domain.MessageTypeRequest, 7, 5)
	if _, err := conn.Write(append(header, []byte("hello")...)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := s.PollOnce(time.Second); err != nil {
		t.Fatalf("PollOnce (frame): %v", err)
	}
	select {
	case h := <-received:
		if h.CorrelationID != 7 {
			t.Errorf("CorrelationID = %d, want 7", h.CorrelationID)
		}
	default:
		t.Fatalf("OnFrame did not fire")
	}
}

func TestServerHandlesSplitReads(t *testing.T) {
	path := newTestSocketPath(t)
	s := NewServer(path)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	received := make(chan []byte, 1)
	s.OnFrame = func(h frame.Header, payload []byte) {
		got := make([]byte, len(payload))
		copy(got, payload)
		received <- got
	}

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()
	if err := s.PollOnce(time.Second); err != nil {
		t.Fatalf("PollOnce (accept): %v", err)
	}

	full := append(frame.Pack(domain.MessageTypeRequest, 1, 4), []byte("body")...)
	if _, err := conn.Write(full[:6]); err != nil {
		t.Fatalf("Write first half: %v", err)
	}
	if err := s.PollOnce(50 * time.Millisecond); err != nil {
		t.Fatalf("PollOnce (partial): %v", err)
	}
	select {
	case <-received:
		t.Fatalf("OnFrame fired before the frame was fully written")
	default:
	}

	if _, err := conn.Write(full[6:]); err != nil {
		t.Fatalf("Write second half: %v", err)
	}
	if err := s.PollOnce(time.Second); err != nil {
		t.Fatalf("PollOnce (rest): %v", err)
	}
	select {
	case payload := <-received:
		if string(payload) != "body" {
			t.Errorf("payload = %q, want %q", payload, "body")
		}
	default:
		t.Fatalf("OnFrame never fired")
	}
}

func TestServerDisconnectsOnBadMagic(t *testing.T) {
	path := newTestSocketPath(t)
	s := NewServer(path)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	disconnected := make(chan struct{}, 1)
	s.OnDisconnected = func() { disconnected <- struct{}{} }

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()
	if err := s.PollOnce(time.Second); err != nil {
		t.Fatalf("PollOnce (accept): %v", err)
	}

	bad := frame.Pack(domain.MessageTypeRequest, 1, 0)
	bad[0] = 'X'
	if _, err := conn.Write(bad); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := s.PollOnce(time.Second); err == nil {
		t.Fatalf("PollOnce did not report the bad-magic frame as an error")
	}
	if s.HasClient() {
		t.Errorf("HasClient() = true after bad-magic disconnect")
	}
}

func TestServerReplacesExistingClient(t *testing.T) {
	path := newTestSocketPath(t)
	s := NewServer(path)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	first, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("Dial first: %v", err)
	}
	defer first.Close()
	if err := s.PollOnce(time.Second); err != nil {
		t.Fatalf("PollOnce (accept first): %v", err)
	}

	second, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("Dial second: %v", err)
	}
	defer second.Close()
	if err := s.PollOnce(time.Second); err != nil {
		t.Fatalf("PollOnce (accept second): %v", err)
	}

	buf := make([]byte, 1)
	first.SetReadDeadline(time.Now().Add(time.Second))
	if _, err := first.Read(buf); err == nil {
		t.Errorf("expected the first connection to observe EOF after being displaced")
	}
}
