package wire

import (
	"strconv"
	"strings"

	"adapter-sidecar/domain"
)

// decodeStringLiteral unescapes a full JSON string literal (including its
// surrounding quotes): \", \\, \/, \b, \f, \n, \r, \t. \uXXXX escapes are
// left literal (validated but not resolved), matching the wire format.
func decodeStringLiteral(lit []byte) (string, bool) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", false
	}
	body := lit[1 : len(lit)-1]
	if !bytesContain(body, '\\') {
		return string(body), true
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", false
		}
		switch body[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			// Keep unicode escapes as-is: append the six source
			// characters verbatim instead of resolving them, matching
			// the wire format phi-core expects.
			if i+4 >= len(body) {
				return "", false
			}
			if _, ok := parseHex4(body[i+1 : i+5]); !ok {
				return "", false
			}
			b.WriteByte('\\')
			b.WriteByte('u')
			b.Write(body[i+1 : i+5])
			i += 4
		default:
			return "", false
		}
	}
	return b.String(), true
}

func bytesContain(b []byte, c byte) bool {
	for _, x := range b {
		if x == c {
			return true
		}
	}
	return false
}

func parseHex4(h []byte) (uint32, bool) {
	if len(h) != 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(string(h), 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// DecodeString decodes a JSON string value, returning ok=false if v isn't
// a string.
func DecodeString(v Value) (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return decodeStringLiteral(v.Raw)
}

// DecodeBool decodes a JSON boolean literal.
func DecodeBool(v Value) (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return string(v.Raw) == "true", true
}

func isIntegral(raw []byte) bool {
	for _, c := range raw {
		if c == '.' || c == 'e' || c == 'E' {
			return false
		}
	}
	return true
}

// DecodeI64 decodes a JSON number as a signed 64-bit integer.
func DecodeI64(v Value) (int64, bool) {
	if v.Kind != KindNumber || !isIntegral(v.Raw) {
		return 0, false
	}
	n, err := strconv.ParseInt(string(v.Raw), 10, 64)
	return n, err == nil
}

// DecodeU64 decodes a JSON number as an unsigned 64-bit integer.
func DecodeU64(v Value) (uint64, bool) {
	if v.Kind != KindNumber || !isIntegral(v.Raw) {
		return 0, false
	}
	n, err := strconv.ParseUint(string(v.Raw), 10, 64)
	return n, err == nil
}

// DecodeF64 decodes a JSON number as a double.
func DecodeF64(v Value) (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(v.Raw), 64)
	return f, err == nil
}

// DecodeCmdId decodes a command id carried either as a JSON number or, for
// clients that stringify wide integers, a decimal string — the wire format
// tolerates both on input even though every response always emits cmdId as
// a string, to sidestep IEEE-754 precision loss above 2^53 in JS clients.
func DecodeCmdId(v Value) (domain.CmdId, bool) {
	switch v.Kind {
	case KindNumber:
		u, ok := DecodeU64(v)
		return domain.CmdId(u), ok
	case KindString:
		s, ok := decodeStringLiteral(v.Raw)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseUint(s, 10, 64)
		return domain.CmdId(n), err == nil
	default:
		return 0, false
	}
}

// DecodeScalar maps a JSON value onto the sidecar's scalar sum type. An
// integral JSON number decodes to ScalarInt; any number with a fraction or
// exponent decodes to ScalarFloat.
func DecodeScalar(v Value) (domain.ScalarValue, bool) {
	switch v.Kind {
	case KindNull:
		return domain.Null(), true
	case KindBool:
		b, ok := DecodeBool(v)
		return domain.BoolValue(b), ok
	case KindString:
		s, ok := DecodeString(v)
		return domain.StringValue(s), ok
	case KindNumber:
		if isIntegral(v.Raw) {
			if n, ok := DecodeI64(v); ok {
				return domain.IntValue(n), true
			}
		}
		f, ok := DecodeF64(v)
		return domain.FloatValue(f), ok
	default:
		return domain.Null(), false
	}
}
