package util

import "testing"

func TestParseSize_Units(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"10MB", 10 * 1024 * 1024},
		{"512KB", 512 * 1024},
		{"1GB", 1024 * 1024 * 1024},
		{"25mb", 25 * 1024 * 1024},
		{" 2MB ", 2 * 1024 * 1024},
		{"100", 100},
	}
	for _, c := range cases {
		if got := ParseSize(c.in, 0); got != c.want {
			t.Errorf("ParseSize(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseSize_Invalid(t *testing.T) {
	if got := ParseSize("not-a-size", 42); got != 42 {
		t.Errorf("expected default 42, got %d", got)
	}
	if got := ParseSize("", 7); got != 7 {
		t.Errorf("expected default 7 for empty string, got %d", got)
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("gsk_abcdef123456", 4); got != "gsk_***" {
		t.Errorf("expected gsk_***, got %q", got)
	}
	if got := MaskSecret("ab", 4); got != "***" {
		t.Errorf("short secrets should be fully masked, got %q", got)
	}
}

func TestFileExtension(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"voice.mp3", "mp3"},
		{"archive.tar.GZ", "gz"},
		{"Recording.WAV", "wav"},
		{"noext", ""},
		{"trailing.", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := FileExtension(c.in); got != c.want {
			t.Errorf("FileExtension(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
