package catalog

import (
	"testing"
)

func TestAllEntriesAreWellFormed(t *testing.T) {
	entries := All()
	if len(entries) == 0 {
		t.Fatal("catalog is empty")
	}

	seen := make(map[string]bool)
	for _, sp := range entries {
		if sp.ID == "" || sp.CommonName == "" || sp.ScientificName == "" {
			t.Errorf("incomplete entry: %+v", sp)
		}
		if seen[sp.ID] {
			t.Errorf("duplicate catalog ID %q", sp.ID)
		}
		seen[sp.ID] = true

		// Watering is never disableable, so every entry must carry a
		// positive suggestion for it.
		if sp.SuggestedWaterFrequency < 1 {
			t.Errorf("%s: suggested water frequency %d, want >= 1", sp.ID, sp.SuggestedWaterFrequency)
		}
		if sp.Care.Water == "" || sp.Care.Light == "" {
			t.Errorf("%s: missing care text", sp.ID)
		}
	}
}

func TestByID(t *testing.T) {
	sp, ok := ByID("snake-plant")
	if !ok {
		t.Fatal("snake-plant not found")
	}
	if sp.ScientificName != "Sansevieria trifasciata" {
		t.Errorf("ScientificName = %q", sp.ScientificName)
	}
	if sp.SuggestedWaterFrequency != 21 || sp.SuggestedMistFrequency != 0 {
		t.Errorf("suggestions = %d/%d, want 21/0", sp.SuggestedWaterFrequency, sp.SuggestedMistFrequency)
	}

	if _, ok := ByID("triffid"); ok {
		t.Error("unknown ID should not resolve")
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query   string
		wantIDs []string
	}{
		{query: "snake", wantIDs: []string{"snake-plant"}},
		{query: "FICUS", wantIDs: []string{"fiddle-leaf-fig", "rubber-plant"}},
		{query: "no such plant", wantIDs: nil},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got := Search(tc.query)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("Search(%q) returned %d entries, want %d", tc.query, len(got), len(tc.wantIDs))
			}
			for i, want := range tc.wantIDs {
				if got[i].ID != want {
					t.Errorf("result[%d] = %q, want %q", i, got[i].ID, want)
				}
			}
		})
	}

	if got := Search(""); len(got) != len(All()) {
		t.Errorf("empty query returned %d entries, want full catalog of %d", len(got), len(All()))
	}
}
