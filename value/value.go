package value

import (
	"bytes"
	"encoding/hex"
	"strconv"

	lib "modernc.org/sqlite/lib"
)

// Type identifies which of the five SQLite fundamental datatypes a Value
// holds. The numeric values are the engine's own datatype codes.
//
// https://www.sqlite.org/c3ref/c_blob.html
type Type int

// Fundamental datatypes.
const (
	TypeInteger Type = lib.SQLITE_INTEGER
	TypeReal    Type = lib.SQLITE_FLOAT
	TypeText    Type = lib.SQLITE_TEXT
	TypeBlob    Type = lib.SQLITE_BLOB
	TypeNull    Type = lib.SQLITE_NULL
)

// String returns the SQLite constant name of the type.
func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "SQLITE_INTEGER"
	case TypeReal:
		return "SQLITE_FLOAT"
	case TypeText:
		return "SQLITE_TEXT"
	case TypeBlob:
		return "SQLITE_BLOB"
	case TypeNull:
		return "SQLITE_NULL"
	default:
		return "<unknown sqlite datatype>"
	}
}

// Value is one SQL column value: exactly one of a 64-bit integer, a 64-bit
// float, a text string, a byte blob, or NULL. The zero Value is NULL.
// Values are immutable once constructed and have no identity beyond
// structural equality.
type Value struct {
	typ  Type
	num  int64
	real float64
	text string
	blob []byte
}

// Integer returns an integer Value.
func Integer(v int64) Value {
	return Value{typ: TypeInteger, num: v}
}

// Real returns a floating-point Value.
func Real(v float64) Value {
	return Value{typ: TypeReal, real: v}
}

// Text returns a text Value.
func Text(s string) Value {
	return Value{typ: TypeText, text: s}
}

// Blob returns a blob Value holding a copy of b. A nil or empty b yields
// an empty (non-NULL) blob.
func Blob(b []byte) Value {
	return Value{typ: TypeBlob, blob: append([]byte(nil), b...)}
}

// Null returns the NULL Value.
func Null() Value {
	return Value{typ: TypeNull}
}

// Type reports which variant v holds. The zero Value reports TypeNull.
func (v Value) Type() Type {
	if v.typ == 0 {
		return TypeNull
	}
	return v.typ
}

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool {
	return v.Type() == TypeNull
}

// Int64 returns the integer payload, or 0 when v is not an integer.
func (v Value) Int64() int64 {
	return v.num
}

// Float64 returns the floating-point payload, or 0 when v is not a real.
func (v Value) Float64() float64 {
	return v.real
}

// Text returns the text payload, or "" when v is not text.
func (v Value) Text() string {
	return v.text
}

// Blob returns a copy of the blob payload, or nil when v is not a blob.
func (v Value) Blob() []byte {
	if v.Type() != TypeBlob {
		return nil
	}
	return append([]byte(nil), v.blob...)
}

// Equal reports structural equality: same variant, equal payload. Blob
// payloads compare byte-wise; an empty blob and a nil-backed blob are
// equal.
func (v Value) Equal(o Value) bool {
	if v.Type() != o.Type() {
		return false
	}
	switch v.Type() {
	case TypeInteger:
		return v.num == o.num
	case TypeReal:
		return v.real == o.real
	case TypeText:
		return v.text == o.text
	case TypeBlob:
		return bytes.Equal(v.blob, o.blob)
	default:
		return true // both NULL
	}
}

// String renders v for debugging, in SQL literal style.
func (v Value) String() string {
	switch v.Type() {
	case TypeInteger:
		return strconv.FormatInt(v.num, 10)
	case TypeReal:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	case TypeText:
		return strconv.Quote(v.text)
	case TypeBlob:
		return "x'" + hex.EncodeToString(v.blob) + "'"
	default:
		return "NULL"
	}
}
