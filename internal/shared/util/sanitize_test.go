package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "id-card.jpg", want: "id-card.jpg"},
		{in: " voice note.webm ", want: "voice note.webm"},
		{in: "a/b.jpg", want: "a_b.jpg"},
		{in: `a\b.jpg`, want: "a_b.jpg"},
		{in: "../etc/passwd", wantErr: true},
		{in: "   ", wantErr: true},
	}

	for _, tc := range cases {
		got, err := SanitizeFileName(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("SanitizeFileName(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("SanitizeFileName(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
