package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func restoreTheme(t *testing.T) {
	t.Helper()
	prevStyle, prevColor := Accent, accentColor
	t.Cleanup(func() {
		Accent, accentColor = prevStyle, prevColor
	})
}

func TestNormalizeAccentColorHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#A78BFA", "#a78bfa", true},
		{"#abc", "#aabbcc", true},
		{"  #F0A ", "#ff00aa", true},
		{"#abcd", "", false},
		{"#12345g", "", false},
		{"#", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := normalizeAccentColor(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("normalizeAccentColor(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNormalizeAccentColorANSI(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"0", "0", true},
		{"255", "255", true},
		{"007", "7", true},
		{"256", "", false},
		{"-3", "", false},
		{"purple", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := normalizeAccentColor(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("normalizeAccentColor(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestConfigureThemeDisablingWords(t *testing.T) {
	for _, word := range []string{"none", "OFF", " default "} {
		t.Run(word, func(t *testing.T) {
			restoreTheme(t)

			ConfigureTheme(word)
			if c, ok := AccentColor(); ok {
				t.Fatalf("ConfigureTheme(%q) left accent %q enabled", word, c)
			}
			if fg := Accent.GetForeground(); fg != (lipgloss.NoColor{}) {
				t.Fatalf("ConfigureTheme(%q) left foreground %v on Accent", word, fg)
			}
		})
	}
}

func TestConfigureThemeUnreadableAccentDisables(t *testing.T) {
	restoreTheme(t)

	ConfigureTheme("chartreuse")
	if _, ok := AccentColor(); ok {
		t.Fatal("expected an unreadable accent to disable the accent")
	}
}

func TestConfigureThemeAppliesAndResets(t *testing.T) {
	restoreTheme(t)

	ConfigureTheme("#0AF")
	got, ok := AccentColor()
	if !ok || got != "#00aaff" {
		t.Fatalf("AccentColor() = %q, %v; want #00aaff", got, ok)
	}
	if fg := Accent.GetForeground(); fg != lipgloss.Color("#00aaff") {
		t.Fatalf("Accent foreground = %v, want #00aaff", fg)
	}

	ConfigureTheme("")
	got, ok = AccentColor()
	if !ok || got != defaultAccent {
		t.Fatalf("empty accent should restore %s, got %q (%v)", defaultAccent, got, ok)
	}
}
