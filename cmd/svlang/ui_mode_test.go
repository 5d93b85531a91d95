package main

import "testing"

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		in      string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"auto", uiModeAuto, false},
		{"AUTO", uiModeAuto, false},
		{"on", uiModeOn, false},
		{"off", uiModeOff, false},
		{"sometimes", "", true},
	}
	for _, c := range cases {
		got, err := readUIMode(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("readUIMode(%q): expected an error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("readUIMode(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("readUIMode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestShouldUseTUI(t *testing.T) {
	if !shouldUseTUI(uiModeOn) {
		t.Errorf("uiModeOn should always request the TUI")
	}
	if shouldUseTUI(uiModeOff) {
		t.Errorf("uiModeOff should never request the TUI")
	}
}
