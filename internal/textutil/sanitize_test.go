package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"notes.txt", "notes.txt"},
		{"  padded.txt  ", "padded.txt"},
		{"a:b*c.txt", "a-b-c.txt"},
		{`what?"<>|.txt`, "what.txt"},
		{"line\nbreak\x1b[31m.txt", "linebreak[31m.txt"},
		{"   ", ""},
	}
	for _, tc := range tests {
		if got := SanitizeFileName(tc.in); got != tc.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripControlLeavesPlainText(t *testing.T) {
	if got := StripControl("Ready"); got != "Ready" {
		t.Fatalf("unexpected %q", got)
	}
	if got := StripControl("\tReady\r\n"); got != "Ready" {
		t.Fatalf("unexpected %q", got)
	}
}
