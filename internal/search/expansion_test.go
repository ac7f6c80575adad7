package search

import "testing"

func TestExpand_OriginalTermAlwaysFirst(t *testing.T) {
	for _, entry := range expansionTable {
		got := Expand(entry.key)
		if len(got) == 0 || got[0] != entry.key {
			t.Errorf("Expand(%q): expected original term first, got %v", entry.key, got)
		}
	}
}

func TestExpand_NormalizesInput(t *testing.T) {
	got := Expand("  TaCos  ")
	if got[0] != "tacos" {
		t.Fatalf("expected normalized 'tacos' first, got %q", got[0])
	}
}

func TestExpand_SymmetricContainment(t *testing.T) {
	// "tacos" contains the key "taco"; "taco" is the key itself.
	// Both must pick up the taco category.
	for _, term := range []string{"taco", "tacos"} {
		got := Expand(term)
		if !containsTerm(got, "mexican") {
			t.Errorf("Expand(%q) missing 'mexican': %v", term, got)
		}
		if !containsTerm(got, "burrito") {
			t.Errorf("Expand(%q) missing 'burrito': %v", term, got)
		}
	}

	// Short term contained IN a key expands too.
	got := Expand("dump")
	if !containsTerm(got, "bao") {
		t.Errorf("Expand(\"dump\") should hit the dumpling category, got %v", got)
	}
}

func TestExpand_NoCategoryMatch(t *testing.T) {
	got := Expand("xylophone")
	if len(got) != 1 || got[0] != "xylophone" {
		t.Fatalf("expected just the original term, got %v", got)
	}
}

func TestExpand_BlankInput(t *testing.T) {
	for _, in := range []string{"", "   "} {
		got := Expand(in)
		if len(got) != 1 || got[0] != "" {
			t.Errorf("Expand(%q): expected [\"\"], got %v", in, got)
		}
	}
}

func TestExpand_DeduplicatesPreservingOrder(t *testing.T) {
	got := Expand("taco")
	seen := make(map[string]bool)
	for _, term := range got {
		if seen[term] {
			t.Fatalf("duplicate term %q in %v", term, got)
		}
		seen[term] = true
	}
}

func containsTerm(terms []string, want string) bool {
	for _, term := range terms {
		if term == want {
			return true
		}
	}
	return false
}
