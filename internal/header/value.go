// Package header decodes the version-parameterized world header blob
// into a keyed, typed property bag, driven by a schema table supplied
// as data rather than hard-coded control flow.
package header

import "fmt"

// Kind tags the concrete type carried by a Value.
type Kind int

const (
	KindBool Kind = iota
	KindU8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindString
	KindBytes
	KindList
)

// Value is a tagged-variant scalar or ordered list read from the
// header.
type Value struct {
	kind  Kind
	b     bool
	u8    uint8
	i16   int16
	i32   int32
	i64   int64
	f32   float32
	f64   float64
	str   string
	bytes []byte
	list  []Value
}

func (v Value) Kind() Kind { return v.kind }

func BoolValue(b bool) Value        { return Value{kind: KindBool, b: b} }
func U8Value(u uint8) Value         { return Value{kind: KindU8, u8: u} }
func I16Value(i int16) Value        { return Value{kind: KindI16, i16: i} }
func I32Value(i int32) Value        { return Value{kind: KindI32, i32: i} }
func I64Value(i int64) Value        { return Value{kind: KindI64, i64: i} }
func F32Value(f float32) Value      { return Value{kind: KindF32, f32: f} }
func F64Value(f float64) Value      { return Value{kind: KindF64, f64: f} }
func StringValue(s string) Value    { return Value{kind: KindString, str: s} }
func BytesValue(b []byte) Value     { return Value{kind: KindBytes, bytes: b} }
func ListValue(vs []Value) Value    { return Value{kind: KindList, list: vs} }

// KindMismatchError is returned by typed accessors when the stored
// value's kind does not match what was requested.
type KindMismatchError struct {
	Name string
	Want Kind
	Got  Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("header field %q: want kind %d, got kind %d", e.Name, e.Want, e.Got)
}

func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, &KindMismatchError{Want: KindBool, Got: v.kind}
	}
	return v.b, nil
}

func (v Value) AsI32() (int32, error) {
	if v.kind != KindI32 {
		return 0, &KindMismatchError{Want: KindI32, Got: v.kind}
	}
	return v.i32, nil
}

func (v Value) AsI64() (int64, error) {
	if v.kind != KindI64 {
		return 0, &KindMismatchError{Want: KindI64, Got: v.kind}
	}
	return v.i64, nil
}

func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", &KindMismatchError{Want: KindString, Got: v.kind}
	}
	return v.str, nil
}

func (v Value) AsBytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, &KindMismatchError{Want: KindBytes, Got: v.kind}
	}
	return v.bytes, nil
}

func (v Value) AsList() ([]Value, error) {
	if v.kind != KindList {
		return nil, &KindMismatchError{Want: KindList, Got: v.kind}
	}
	return v.list, nil
}
