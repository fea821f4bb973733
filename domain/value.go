// Package domain holds the passive value catalog shared by every adapter
// sidecar: devices, channels, rooms, groups, scenes, adapter descriptors,
// and the closed set of enums used across the wire protocol. None of these
// types know how to encode themselves; that lives in the wire package so a
// single JSON micro-codec stays the only place that touches bytes.
package domain

// ScalarKind tags which field of ScalarValue is meaningful.
type ScalarKind uint8

const (
	ScalarNull ScalarKind = iota
	ScalarBool
	ScalarInt
	ScalarFloat
	ScalarString
)

// ScalarValue is the sum type {null, bool, i64, f64, string} used for
// channel values and error parameters. Zero value is ScalarNull.
type ScalarValue struct {
	Kind   ScalarKind
	Bool   bool
	Int    int64
	Float  float64
	String string
}

func Null() ScalarValue                { return ScalarValue{Kind: ScalarNull} }
func BoolValue(b bool) ScalarValue     { return ScalarValue{Kind: ScalarBool, Bool: b} }
func IntValue(i int64) ScalarValue     { return ScalarValue{Kind: ScalarInt, Int: i} }
func FloatValue(f float64) ScalarValue { return ScalarValue{Kind: ScalarFloat, Float: f} }
func StringValue(s string) ScalarValue { return ScalarValue{Kind: ScalarString, String: s} }

// IsNull reports whether the value carries no payload.
func (v ScalarValue) IsNull() bool { return v.Kind == ScalarNull }

// Equal compares two scalar values by kind and payload.
func (v ScalarValue) Equal(other ScalarValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ScalarBool:
		return v.Bool == other.Bool
	case ScalarInt:
		return v.Int == other.Int
	case ScalarFloat:
		return v.Float == other.Float
	case ScalarString:
		return v.String == other.String
	default:
		return true
	}
}

// ScalarList is an ordered sequence of scalars.
type ScalarList []ScalarValue
