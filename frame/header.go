// Package frame packs and unpacks the fixed binary envelope that precedes
// every JSON payload on the wire: 4-byte magic, protocol version, message
// type, reserved flags, payload length, and a correlation id pairing
// requests with responses. It mirrors the way protocol.Header worked in the
// TCP sticky-packet framing this runtime is derived from, generalized to
// the sidecar's own field layout.
package frame

import (
	"encoding/binary"

	"adapter-sidecar/domain"
)

// Magic identifies a phi adapter frame: the literal bytes 'P','H','I','A'.
var Magic = [4]byte{'P', 'H', 'I', 'A'}

// ProtocolVersion is the single version this runtime speaks.
const ProtocolVersion uint16 = 1

// HeaderSize is the packed byte width of Header: 4 (magic) + 2 (version) +
// 1 (type) + 1 (flags) + 4 (payloadSize) + 8 (correlationId).
const HeaderSize = 20

// Header is the fixed frame envelope. All integers are little-endian.
type Header struct {
	Magic         [4]byte
	Version       uint16
	Type          domain.MessageType
	Flags         uint8
	PayloadSize   uint32
	CorrelationID domain.CorrelationId
}

// Pack encodes a frame header. payloadSize is always taken from the actual
// payload the caller is about to send, never trusted from elsewhere, so
// this is the only place a Header's on-wire bytes are produced.
func Pack(msgType domain.MessageType, correlationID domain.CorrelationId, payloadSize uint32) []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], Magic[:])
	binary.LittleEndian.PutUint16(buf[4:6], ProtocolVersion)
	buf[6] = byte(msgType)
	buf[7] = 0
	binary.LittleEndian.PutUint32(buf[8:12], payloadSize)
	binary.LittleEndian.PutUint64(buf[12:20], correlationID)
	return buf
}

// Unpack decodes a frame header from the first HeaderSize bytes of b. ok is
// false when there aren't enough bytes, or magic/version don't match —
// callers must treat that as a fatal protocol error, not a retry signal.
func Unpack(b []byte) (Header, bool) {
	if len(b) < HeaderSize {
		return Header{}, false
	}
	var h Header
	copy(h.Magic[:], b[0:4])
	h.Version = binary.LittleEndian.Uint16(b[4:6])
	h.Type = domain.MessageType(b[6])
	h.Flags = b[7]
	h.PayloadSize = binary.LittleEndian.Uint32(b[8:12])
	h.CorrelationID = binary.LittleEndian.Uint64(b[12:20])
	return h, h.Magic == Magic && h.Version == ProtocolVersion
}

// Valid reports whether h carries the expected magic and protocol version.
func (h Header) Valid() bool {
	return h.Magic == Magic && h.Version == ProtocolVersion
}
