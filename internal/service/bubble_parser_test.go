package service

import "testing"

func TestSplitBubbles_MultipleSegments(t *testing.T) {
	got := SplitBubbles("Hey! | How are you? | lol")
	want := []string{"Hey!", "How are you?", "lol"}
	if len(got) != len(want) {
		t.Fatalf("expected %d bubbles, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bubble %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitBubbles_NoDelimiter(t *testing.T) {
	got := SplitBubbles("  just one thought  ")
	if len(got) != 1 || got[0] != "just one thought" {
		t.Fatalf("expected single trimmed bubble, got %v", got)
	}
}

func TestSplitBubbles_EmptySegmentsDropped(t *testing.T) {
	got := SplitBubbles("|| hola || | mundo |")
	if len(got) != 2 || got[0] != "hola" || got[1] != "mundo" {
		t.Fatalf("expected [hola mundo], got %v", got)
	}
}

func TestSplitBubbles_NeverZeroForNonEmptyInput(t *testing.T) {
	// Solo delimitadores: ningún segmento sobrevive, pero la entrada no está
	// vacía, así que vuelve entera como una burbuja.
	got := SplitBubbles("|||")
	if len(got) != 1 || got[0] != "|||" {
		t.Fatalf("expected raw text as single bubble, got %v", got)
	}
}

func TestSplitBubbles_BlankInput(t *testing.T) {
	if got := SplitBubbles("   "); len(got) != 0 {
		t.Fatalf("expected no bubbles for blank input, got %v", got)
	}
}
