package core

import "testing"

func TestClampInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"50", 50},
		{"1", 1},
		{"100", 100},
		{"0", 1},
		{"-7", 1},
		{"101", 100},
		{"99999", 100},
		{"abc", 10},
		{"", 10},
		{" 42 ", 42},
	}

	for _, tt := range tests {
		if got := ClampInt(tt.in, 1, 100, 10); got != tt.want {
			t.Fatalf("ClampInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampInt_DefaultOutOfRange(t *testing.T) {
	// A default outside the range must still be clamped.
	if got := ClampInt("junk", 1, 100, 500); got != 100 {
		t.Fatalf("expected clamped default 100, got %d", got)
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"2", "3"}
	if got := OneOf("3", allowed, "2"); got != "3" {
		t.Fatalf("expected 3, got %q", got)
	}
	if got := OneOf("4", allowed, "2"); got != "2" {
		t.Fatalf("expected fallback 2, got %q", got)
	}
	if got := OneOf(" 2 ", allowed, "3"); got != "2" {
		t.Fatalf("expected trimmed match 2, got %q", got)
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		in, def, want string
	}{
		{"yes", "no", "yes"},
		{"on", "no", "yes"},
		{"1", "no", "yes"},
		{"no", "yes", "no"},
		{"off", "yes", "no"},
		{"", "yes", "yes"},
		{"", "no", "no"},
		{"maybe", "yes", "no"},
	}

	for _, tt := range tests {
		if got := YesNo(tt.in, tt.def); got != tt.want {
			t.Fatalf("YesNo(%q, %q) = %q, want %q", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestStripTags(t *testing.T) {
	if got := StripTags(`<script>alert(1)</script>hello <b>world</b>`); got != "alert(1)hello world" {
		t.Fatalf("unexpected strip result: %q", got)
	}
	if got := StripTags("plain text"); got != "plain text" {
		t.Fatalf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitizeSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Gallery", "gallery"},
		{"Before After!", "before-after"},
		{"a--b---c", "a-b-c"},
		{"-trim-", "trim"},
		{"///", "gallery"},
		{"", "gallery"},
	}

	for _, tt := range tests {
		if got := SanitizeSlug(tt.in, "gallery"); got != tt.want {
			t.Fatalf("SanitizeSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeCSS(t *testing.T) {
	if got := SanitizeCSS(".x { color: red } <style>bad</style>"); got != ".x { color: red } bad" {
		t.Fatalf("unexpected css: %q", got)
	}

	got := SanitizeCSS("/* open comment .x{}")
	if got != "/* open comment .x{} */" {
		t.Fatalf("expected unterminated comment to be closed, got %q", got)
	}
}
