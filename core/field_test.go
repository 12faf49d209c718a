package core

import (
	"errors"
	"testing"
	"time"
)

func TestField_StringValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{
			name:  "String field",
			field: Field{Type: StringType, Str: "hello"},
			want:  "hello",
		},
		{
			name:  "Int field",
			field: Field{Type: IntType, Int64: 42},
			want:  "42",
		},
		{
			name:  "Int64 field",
			field: Field{Type: Int64Type, Int64: 1234567890},
			want:  "1234567890",
		},
		{
			name:  "Bool field (true)",
			field: Field{Type: BoolType, Int64: 1},
			want:  "true",
		},
		{
			name:  "Bool field (false)",
			field: Field{Type: BoolType, Int64: 0},
			want:  "false",
		},
		{
			name:  "Float64 field",
			field: Field{Type: Float64Type, Float64: 3.14},
			want:  "3.14",
		},
		{
			name:  "Duration field",
			field: Field{Type: DurationType, Int64: int64(5 * time.Second)},
			want:  "5s",
		},
		{
			name:  "Error field",
			field: Field{Type: ErrorType, Str: "an error occurred"},
			want:  "an error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.StringValue(); got != tt.want {
				t.Errorf("Field.StringValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestField_Value(t *testing.T) {
	err := errors.New("boom")

	if got := (Field{Type: ErrorType, Str: "boom", Any: err}).Value(); got != err {
		t.Errorf("error field Value() = %v, want original error", got)
	}
	if got := (Field{Type: ErrorType, Str: "boom"}).Value(); got != "boom" {
		t.Errorf("error field without error Value() = %v, want %q", got, "boom")
	}
	if got := (Field{Type: IntType, Int64: 7}).Value(); got != "7" {
		t.Errorf("int field Value() = %v, want %q", got, "7")
	}
	if got := (Field{Type: AnyType, Any: 3.5}).Value(); got != 3.5 {
		t.Errorf("any field Value() = %v, want 3.5", got)
	}
}

func TestContextOf(t *testing.T) {
	if ctx := ContextOf(); ctx != nil {
		t.Errorf("ContextOf() = %v, want nil", ctx)
	}

	ctx := ContextOf(
		Field{Key: "name", Type: StringType, Str: "alice"},
		Field{Key: "name", Type: StringType, Str: "bob"},
		Field{Key: "n", Type: IntType, Int64: 3},
	)
	if ctx["name"] != "bob" {
		t.Errorf("later field should win, got %v", ctx["name"])
	}
	if ctx["n"] != "3" {
		t.Errorf("ctx[n] = %v, want 3", ctx["n"])
	}
}

func TestMerge(t *testing.T) {
	base := Context{"a": 1, "b": 2}
	over := Context{"b": 3, "c": 4}

	got := Merge(base, over)
	if got["a"] != 1 || got["b"] != 3 || got["c"] != 4 {
		t.Errorf("Merge() = %v", got)
	}
	if base["b"] != 2 {
		t.Error("Merge() modified base")
	}
	if got := Merge(nil, over); len(got) != 2 {
		t.Errorf("Merge(nil, over) = %v", got)
	}
	if got := Merge(base, nil); len(got) != 2 {
		t.Errorf("Merge(base, nil) = %v", got)
	}
}

type stringerValue struct{}

func (stringerValue) String() string { return "stringer" }

func TestStringify(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, "<nil>"},
		{"string", "Alice", "Alice"},
		{"bytes", []byte("raw"), "raw"},
		{"error", errors.New("failed"), "failed"},
		{"time", ts, "2024-05-01T12:00:00Z"},
		{"duration", 1500 * time.Millisecond, "1.5s"},
		{"stringer", stringerValue{}, "stringer"},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"int64", int64(-9), "-9"},
		{"uint", uint(5), "5"},
		{"float", 2.25, "2.25"},
		{"field", Field{Type: IntType, Int64: 8}, "8"},
		{"slice", []int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func BenchmarkFieldStringValue(b *testing.B) {
	fields := []Field{
		{Type: StringType, Str: "test"},
		{Type: IntType, Int64: 42},
		{Type: BoolType, Int64: 1},
		{Type: Float64Type, Float64: 3.14},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, f := range fields {
			_ = f.StringValue()
		}
	}
}
