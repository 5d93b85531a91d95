package main

import (
	"errors"
	"testing"
)

func TestExitFor(t *testing.T) {
	if got := exitFor(nil); got != 0 {
		t.Errorf("exitFor(nil) = %d, want 0", got)
	}
	if got := exitFor(errors.New("boom")); got != 1 {
		t.Errorf("exitFor(plain error) = %d, want 1", got)
	}
	if got := exitFor(usageError{errors.New("bad flag")}); got != 2 {
		t.Errorf("exitFor(usageError) = %d, want 2", got)
	}
}
