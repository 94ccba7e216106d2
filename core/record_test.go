package core

import (
	"strings"
	"testing"
)

func TestRecord_Field(t *testing.T) {
	rec := Record{
		Fields: []Field{
			{Key: "a", Type: StringType, Str: "first"},
			{Key: "b", Type: Int64Type, Int64: 2},
			{Key: "a", Type: StringType, Str: "shadowed"},
		},
	}

	f, ok := rec.Field("b")
	if !ok {
		t.Fatal("Expected to find field b")
	}
	if f.Int64 != 2 {
		t.Errorf("Field b Int64 = %d, want 2", f.Int64)
	}

	f, ok = rec.Field("a")
	if !ok || f.Str != "first" {
		t.Errorf("Field a = %q, want the first occurrence", f.Str)
	}

	if _, ok := rec.Field("missing"); ok {
		t.Error("Expected missing field to report not found")
	}
}

func TestCaller(t *testing.T) {
	info := Caller(1)
	if !info.Defined {
		t.Fatal("Expected caller info to be defined")
	}
	if info.ShortFile != "record_test.go" {
		t.Errorf("ShortFile = %q, want record_test.go", info.ShortFile)
	}
	if info.Line == 0 {
		t.Error("Expected a non-zero line")
	}
	if !strings.Contains(info.Function, "TestCaller") {
		t.Errorf("Function = %q, want it to contain TestCaller", info.Function)
	}
}
