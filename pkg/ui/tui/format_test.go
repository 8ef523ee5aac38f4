package tui

import (
	"strings"
	"testing"
)

func TestFormatStringStyledOperandPreserved(t *testing.T) {
	got := FormatString("value: VAL{%d}", 42)
	if !strings.Contains(got, "42") {
		t.Errorf("FormatString = %q, want it to contain %q", got, "42")
	}
	if strings.Contains(got, "VAL{") {
		t.Errorf("FormatString = %q, markup not expanded", got)
	}
}

func TestFormatStringGettextFallsBackToOperand(t *testing.T) {
	// With no locale configured, gettext returns the original string.
	got := FormatString("GT{Hello}")
	if !strings.Contains(got, "Hello") {
		t.Errorf("FormatString = %q, want it to contain %q", got, "Hello")
	}
}

func TestFormatStringUnknownFunctionLeftIntact(t *testing.T) {
	got := FormatString("BOGUS{stuff}")
	if !strings.Contains(got, "BOGUS{stuff}") {
		t.Errorf("FormatString = %q, want unknown markup left untouched", got)
	}
}

func TestFormatStringBannerFullyExpands(t *testing.T) {
	// The formatter is single-pass: operands are interpolated with
	// Sprintf before matching, never by nesting one markup in another.
	got := FormatString("DIM{%s} VAL{help} DIM{%s}", "Developer console. Type", "for commands.")
	if strings.ContainsAny(got, "{}") {
		t.Errorf("FormatString = %q, markup not fully expanded", got)
	}
	for _, part := range []string{"Developer console. Type", "help", "for commands."} {
		if !strings.Contains(got, part) {
			t.Errorf("FormatString = %q, missing %q", got, part)
		}
	}
}

func TestFormatStringMultipleMarkups(t *testing.T) {
	got := FormatString("ERR{bad} and WARN{iffy}")
	if strings.Contains(got, "ERR{") || strings.Contains(got, "WARN{") {
		t.Errorf("FormatString = %q, markup not fully expanded", got)
	}
	if !strings.Contains(got, "bad") || !strings.Contains(got, "iffy") {
		t.Errorf("FormatString = %q, operands lost", got)
	}
}
