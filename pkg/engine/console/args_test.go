package console

import "testing"

func TestTokenizeMultiWordCommand(t *testing.T) {
	entries := tokenizeArguments([]string{"+say", "hello", "world", "-loud"})
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].text != "say hello world" || !entries[0].exec {
		t.Errorf("entries[0] = %+v, want executable %q", entries[0], "say hello world")
	}
	if entries[1].text != "loud" || entries[1].exec {
		t.Errorf("entries[1] = %+v, want inert %q", entries[1], "loud")
	}
}

func TestTokenizeLeadingBareTokensDropped(t *testing.T) {
	entries := tokenizeArguments([]string{"stray", "also-stray?", "+map", "de_dust"})
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].text != "map de_dust" {
		t.Errorf("entries[0].text = %q, want %q", entries[0].text, "map de_dust")
	}
}

func TestTokenizeBareMarkers(t *testing.T) {
	entries := tokenizeArguments([]string{"+", "-"})
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (bare markers still create entries)", len(entries))
	}
	if entries[0].text != "" || !entries[0].exec {
		t.Errorf("entries[0] = %+v, want executable empty name", entries[0])
	}
	if entries[1].text != "" || entries[1].exec {
		t.Errorf("entries[1] = %+v, want inert empty name", entries[1])
	}
}

func TestTokenizeInterleavedContinuations(t *testing.T) {
	entries := tokenizeArguments([]string{"-fullscreen", "off", "+connect", "10.0.0.1", "27015"})
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].text != "fullscreen off" || entries[0].exec {
		t.Errorf("entries[0] = %+v, want inert %q", entries[0], "fullscreen off")
	}
	if entries[1].text != "connect 10.0.0.1 27015" || !entries[1].exec {
		t.Errorf("entries[1] = %+v, want executable %q", entries[1], "connect 10.0.0.1 27015")
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	if entries := tokenizeArguments(nil); entries != nil {
		t.Errorf("tokenizeArguments(nil) = %v, want nil", entries)
	}
}
