package service

import "testing"

func TestLegalCategories(t *testing.T) {
	categories := LegalCategories()
	if len(categories) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(categories))
	}

	expectedIDs := []string{"familia", "laboral", "civil", "penal", "mercantil", "inmobiliario"}
	for i, id := range expectedIDs {
		if categories[i].ID != id {
			t.Errorf("category %d: expected ID %s, got %s", i, id, categories[i].ID)
		}
		if categories[i].Name == "" || categories[i].Description == "" {
			t.Errorf("category %s missing name or description", id)
		}
	}
}

func TestResponsesForCategory(t *testing.T) {
	t.Run("known category", func(t *testing.T) {
		responses := responsesForCategory("penal")
		if len(responses) != 3 {
			t.Fatalf("expected 3 penal responses, got %d", len(responses))
		}
	})

	t.Run("every category has responses", func(t *testing.T) {
		for _, cat := range LegalCategories() {
			if len(responsesForCategory(cat.ID)) == 0 {
				t.Errorf("category %s has no responses", cat.ID)
			}
		}
	})

	t.Run("unknown category falls back to general", func(t *testing.T) {
		responses := responsesForCategory("desconocida")
		if len(responses) != len(generalResponses) {
			t.Errorf("expected %d general responses, got %d", len(generalResponses), len(responses))
		}
	})

	t.Run("empty category falls back to general", func(t *testing.T) {
		responses := responsesForCategory("")
		if len(responses) != len(generalResponses) {
			t.Errorf("expected general responses for empty category")
		}
	})
}

func TestRandomResponder_Pick(t *testing.T) {
	responder := NewRandomResponder()

	pool := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		picked := responder.Pick(pool)
		found := false
		for _, candidate := range pool {
			if picked == candidate {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("picked %q, not in pool", picked)
		}
	}

	if got := responder.Pick(nil); got != "" {
		t.Errorf("expected empty string for empty pool, got %q", got)
	}
}
