package frame

import (
	"testing"

	"adapter-sidecar/domain"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []struct {
		name          string
		msgType       domain.MessageType
		correlationID domain.CorrelationId
		payloadSize   uint32
	}{
		{"zero values", domain.MessageType(0), 0, 0},
		{"hello", domain.MessageTypeHello, 42, 128},
		{"max correlation", domain.MessageTypeEvent, ^domain.CorrelationId(0), 0xFFFFFFFF},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := Pack(tc.msgType, tc.correlationID, tc.payloadSize)
			if len(raw) != HeaderSize {
				t.Fatalf("Pack produced %d bytes, want %d", len(raw), HeaderSize)
			}
			h, ok := Unpack(raw)
			if !ok {
				t.Fatalf("Unpack rejected a freshly packed header")
			}
			if h.Type != tc.msgType {
				t.Errorf("Type = %v, want %v", h.Type, tc.msgType)
			}
			if h.CorrelationID != tc.correlationID {
				t.Errorf("CorrelationID = %v, want %v", h.CorrelationID, tc.correlationID)
			}
			if h.PayloadSize != tc.payloadSize {
				t.Errorf("PayloadSize = %v, want %v", h.PayloadSize, tc.payloadSize)
			}
			if h.Version != ProtocolVersion {
				t.Errorf("Version = %v, want %v", h.Version, ProtocolVersion)
			}
			if !h.Valid() {
				t.Errorf("Valid() = false for a round-tripped header")
			}
		})
	}
}

func TestUnpackShortBuffer(t *testing.T) {
	for n := 0; n < HeaderSize; n++ {
		if _, ok := Unpack(make([]byte, n)); ok {
			t.Errorf("Unpack accepted a %d-byte buffer, want rejection", n)
		}
	}
}

func TestUnpackBadMagic(t *testing.T) {
	raw := Pack(domain.MessageTypeEvent, 0, 0)
	raw[0] = 'X'
	raw[1] = 'X'
	raw[2] = 'X'
	raw[3] = 'X'
	h, ok := Unpack(raw)
	if ok {
		t.Fatalf("Unpack accepted a bad-magic frame")
	}
	if h.Valid() {
		t.Errorf("Valid() = true for a bad-magic header")
	}
}

func TestUnpackBadVersion(t *testing.T) {
	raw := Pack(domain.MessageTypeEvent, 7, 3)
	raw[4] = 0xFF
	raw[5] = 0xFF
	_, ok := Unpack(raw)
	if ok {
		t.Fatalf("Unpack accepted an unknown protocol version")
	}
}
