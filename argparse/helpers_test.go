package argparse

import (
	"bytes"
	"errors"
	"testing"
)

// newTestParser returns a parser whose output is captured and uncolored.
func newTestParser(description string) (*Parser, *bytes.Buffer) {
	var out bytes.Buffer
	p := New(description).Seed(42)
	p.IO().WithOut(&out).WithErr(&out).NoColor()
	return p, &out
}

func mustDefine(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("define failed: %v", err)
	}
}

func wantCategory(t *testing.T, err error, cat Category) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", cat)
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if perr.Category != cat {
		t.Fatalf("category = %s, want %s (%v)", perr.Category, cat, err)
	}
	return perr
}
