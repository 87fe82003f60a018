package value

import "testing"

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	if v.Type() != TypeNull {
		t.Fatalf("zero Value type = %v, want SQLITE_NULL", v.Type())
	}
	if !v.IsNull() {
		t.Fatal("zero Value IsNull = false")
	}
	if !v.Equal(Null()) {
		t.Fatal("zero Value != Null()")
	}
}

func TestConstructorsAndAccessors(t *testing.T) {
	if v := Integer(-7); v.Type() != TypeInteger || v.Int64() != -7 {
		t.Fatalf("Integer(-7) = %v", v)
	}
	if v := Real(2.5); v.Type() != TypeReal || v.Float64() != 2.5 {
		t.Fatalf("Real(2.5) = %v", v)
	}
	if v := Text("abc"); v.Type() != TypeText || v.Text() != "abc" {
		t.Fatalf("Text(abc) = %v", v)
	}
	v := Blob([]byte{1, 2})
	if v.Type() != TypeBlob || len(v.Blob()) != 2 {
		t.Fatalf("Blob = %v", v)
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b Value
		want bool
	}{
		{Integer(1), Integer(1), true},
		{Integer(1), Integer(2), false},
		{Integer(1), Real(1), false}, // variant matters, not numeric value
		{Real(1.5), Real(1.5), true},
		{Text("a"), Text("a"), true},
		{Text("a"), Text("b"), false},
		{Text("1"), Integer(1), false},
		{Blob([]byte{1}), Blob([]byte{1}), true},
		{Blob([]byte{1}), Blob([]byte{2}), false},
		{Blob(nil), Blob([]byte{}), true},
		{Null(), Null(), true},
		{Null(), Integer(0), false},
	}
	for _, tc := range cases {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if got := tc.b.Equal(tc.a); got != tc.want {
			t.Errorf("%v.Equal(%v) = %v, want %v (symmetry)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestBlobImmutability(t *testing.T) {
	src := []byte{1, 2, 3}
	v := Blob(src)
	src[0] = 9
	if got := v.Blob(); got[0] != 1 {
		t.Fatalf("mutating the source buffer changed the value: %v", got)
	}
	out := v.Blob()
	out[1] = 9
	if got := v.Blob(); got[1] != 2 {
		t.Fatalf("mutating an accessor copy changed the value: %v", got)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Integer(42), "42"},
		{Real(1.5), "1.5"},
		{Text("a"), `"a"`},
		{Blob([]byte{0xab, 0xcd}), "x'abcd'"},
		{Null(), "NULL"},
	}
	for _, tc := range cases {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	cases := map[Type]string{
		TypeInteger: "SQLITE_INTEGER",
		TypeReal:    "SQLITE_FLOAT",
		TypeText:    "SQLITE_TEXT",
		TypeBlob:    "SQLITE_BLOB",
		TypeNull:    "SQLITE_NULL",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", int(typ), got, want)
		}
	}
}
