package wire

import (
	"math"
	"strconv"
	"strings"

	"adapter-sidecar/domain"
)

// Encoder builds a JSON document by hand, one member at a time, so the
// dispatcher controls field order and can splice pre-serialized bytes
// (an adapter's opaque meta blob, a hints document) verbatim instead of
// round-tripping them through a generic tree.
type Encoder struct {
	buf   strings.Builder
	depth []bool // per open object/array: true once a member has been written
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) beforeMember() {
	n := len(e.depth)
	if n == 0 {
		return
	}
	if e.depth[n-1] {
		e.buf.WriteByte(',')
	}
	e.depth[n-1] = true
}

// BeginObject opens a JSON object. Inside an object or array it is a value,
// so precede it with Key or ArrayElement like any other value.
func (e *Encoder) BeginObject() {
	e.buf.WriteByte('{')
	e.depth = append(e.depth, false)
}

// EndObject closes the innermost open object.
func (e *Encoder) EndObject() {
	e.buf.WriteByte('}')
	e.depth = e.depth[:len(e.depth)-1]
}

// BeginArray opens a JSON array. Inside an object or array it is a value,
// so precede it with Key or ArrayElement like any other value.
func (e *Encoder) BeginArray() {
	e.buf.WriteByte('[')
	e.depth = append(e.depth, false)
}

// EndArray closes the innermost open array.
func (e *Encoder) EndArray() {
	e.buf.WriteByte(']')
	e.depth = e.depth[:len(e.depth)-1]
}

// Key writes an object member name. Callers must follow it with exactly
// one value-writing call.
func (e *Encoder) Key(name string) {
	e.beforeMember()
	writeQuoted(&e.buf, name)
	e.buf.WriteByte(':')
}

// ArrayElement marks the start of the next array element; use before any
// value-writing call inside a BeginArray/EndArray block.
func (e *Encoder) ArrayElement() {
	e.beforeMember()
}

// String writes a JSON string value.
func (e *Encoder) String(s string) { writeQuoted(&e.buf, s) }

// Bool writes a JSON boolean literal.
func (e *Encoder) Bool(b bool) {
	if b {
		e.buf.WriteString("true")
	} else {
		e.buf.WriteString("false")
	}
}

// Null writes the JSON null literal.
func (e *Encoder) Null() { e.buf.WriteString("null") }

// Int writes a signed integer as a bare JSON number.
func (e *Encoder) Int(i int64) { e.buf.WriteString(strconv.FormatInt(i, 10)) }

// Uint writes an unsigned integer as a bare JSON number.
func (e *Encoder) Uint(u uint64) { e.buf.WriteString(strconv.FormatUint(u, 10)) }

// Float writes a double as a JSON number. Non-finite values (NaN, +/-Inf)
// have no JSON representation and are emitted as null.
func (e *Encoder) Float(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		e.Null()
		return
	}
	e.buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}

// CmdID writes a command id as a quoted decimal string. Every outbound
// response carries cmdId this way regardless of how it was
// received, so JS clients never lose precision on ids above 2^53.
func (e *Encoder) CmdID(id domain.CmdId) {
	writeQuoted(&e.buf, strconv.FormatUint(uint64(id), 10))
}

// Scalar writes a ScalarValue using its natural JSON representation.
func (e *Encoder) Scalar(v domain.ScalarValue) {
	switch v.Kind {
	case domain.ScalarNull:
		e.Null()
	case domain.ScalarBool:
		e.Bool(v.Bool)
	case domain.ScalarInt:
		e.Int(v.Int)
	case domain.ScalarFloat:
		e.Float(v.Float)
	case domain.ScalarString:
		e.String(v.String)
	default:
		e.Null()
	}
}

// ScalarList writes a ScalarValue slice as a JSON array.
func (e *Encoder) ScalarList(vs domain.ScalarList) {
	e.BeginArray()
	for _, v := range vs {
		e.ArrayElement()
		e.Scalar(v)
	}
	e.EndArray()
}

// Raw splices pre-serialized JSON bytes verbatim. An empty or whitespace-
// only span is normalized to "{}", matching how the dispatcher treats an
// adapter's unset meta document as an empty object rather than omitting
// the member or emitting null.
func (e *Encoder) Raw(raw []byte) {
	trimmed := TrimSpace(raw)
	if len(trimmed) == 0 {
		e.buf.WriteString("{}")
		return
	}
	e.buf.Write(trimmed)
}

// Bytes returns the encoded document. The Encoder must have no open
// objects or arrays.
func (e *Encoder) Bytes() []byte {
	return []byte(e.buf.String())
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u`)
				const hex = "0123456789abcdef"
				b.WriteByte(hex[(r>>12)&0xF])
				b.WriteByte(hex[(r>>8)&0xF])
				b.WriteByte(hex[(r>>4)&0xF])
				b.WriteByte(hex[r&0xF])
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
