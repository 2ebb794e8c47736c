package services

import (
	"encoding/json"
	"testing"
)

func TestCoerceOptionalID(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *int64
	}{
		{"nil", nil, nil},
		{"whole float", float64(10), int64ptr(10)},
		{"fractional float", float64(10.5), nil},
		{"numeric string", "42", int64ptr(42)},
		{"padded numeric string", " 42 ", int64ptr(42)},
		{"garbage string", "not-a-number", nil},
		{"empty string", "", nil},
		{"bool", true, nil},
		{"object", map[string]any{"a": 1}, nil},
		{"json number", json.Number("7"), int64ptr(7)},
		{"negative", "-3", int64ptr(-3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coerceOptionalID(tt.in)
			switch {
			case tt.want == nil && got != nil:
				t.Fatalf("coerceOptionalID(%v): got %d want nil", tt.in, *got)
			case tt.want != nil && got == nil:
				t.Fatalf("coerceOptionalID(%v): got nil want %d", tt.in, *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Fatalf("coerceOptionalID(%v): got %d want %d", tt.in, *got, *tt.want)
			}
		})
	}
}

func TestCoerceRequiredID(t *testing.T) {
	if _, ok := coerceRequiredID(nil); ok {
		t.Fatal("nil should not coerce")
	}
	if _, ok := coerceRequiredID("abc"); ok {
		t.Fatal("garbage should not coerce")
	}
	id, ok := coerceRequiredID(float64(3))
	if !ok || id != 3 {
		t.Fatalf("got (%d, %v), want (3, true)", id, ok)
	}
}

func int64ptr(v int64) *int64 { return &v }
