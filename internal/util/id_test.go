package util

import (
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	a, b := NewID("sec"), NewID("sec")
	if a == b {
		t.Fatalf("ids collided: %s", a)
	}
	if !strings.HasPrefix(a, "sec_") || len(a) != len("sec_")+32 {
		t.Fatalf("unexpected id shape %q", a)
	}
	if id := NewID(""); len(id) != 32 || strings.Contains(id, "_") {
		t.Fatalf("unexpected bare id %q", id)
	}
}

func TestValidID(t *testing.T) {
	for _, id := range []string{"proj_1", "abc-DEF", NewID("p")} {
		if !ValidID(id) {
			t.Fatalf("expected %q to be valid", id)
		}
	}
	for _, id := range []string{"", "../etc", "a/b", "a b", strings.Repeat("x", 129)} {
		if ValidID(id) {
			t.Fatalf("expected %q to be invalid", id)
		}
	}
}
