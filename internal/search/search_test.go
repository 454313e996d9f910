package search

import (
	"testing"

	"pharmatool/internal/store"
)

func sampleMedicines() []store.Medicine {
	return []store.Medicine{
		{ID: 1, Name: "Medicine 99", Category: "Other", Price: 9.99, Stock: 10},
		{ID: 2, Name: "Paracetamol 500mg", Category: "Analgesic", Price: 5.50, Stock: 100},
		{ID: 3, Name: "Amoxicillin 250mg", Category: "Antibiotic", Price: 8.75, Stock: 75},
		{ID: 4, Name: "Cough Syrup 100ml", Category: "Respiratory", Price: 12.00, Stock: 50},
		{ID: 5, Name: "Vitamin C 1000mg", Category: "Supplement", Price: 15.30, Stock: 200},
	}
}

func TestSearchRanking(t *testing.T) {
	idx := NewIndex(sampleMedicines())
	opt := DefaultOptions()

	t.Run("SeparatorDifference", func(t *testing.T) {
		res := idx.Search("med_99", opt)
		if len(res) == 0 {
			t.Fatal("expected results for med_99")
		}
		if res[0].Medicine.Name != "Medicine 99" {
			t.Errorf("expected Medicine 99 first, got %s", res[0].Medicine.Name)
		}
		if res[0].Score < 0.8 {
			t.Errorf("expected score >= 0.8, got %v", res[0].Score)
		}
	})

	t.Run("PartialWordQuery", func(t *testing.T) {
		// "med" is a prefix of "medicine 99"; the subset boost carries it
		res := idx.Search("med", opt)
		if len(res) == 0 {
			t.Fatal("expected results for med")
		}
		if res[0].Medicine.Name != "Medicine 99" {
			t.Errorf("expected Medicine 99 first, got %s", res[0].Medicine.Name)
		}
		if res[0].Score < 0.5 {
			t.Errorf("expected boosted score >= 0.5, got %v", res[0].Score)
		}
	})

	t.Run("WordSubset", func(t *testing.T) {
		res := idx.Search("syrup cough", opt)
		if len(res) == 0 {
			t.Fatal("expected results for syrup cough")
		}
		if res[0].Medicine.Name != "Cough Syrup 100ml" {
			t.Errorf("expected Cough Syrup first, got %s", res[0].Medicine.Name)
		}
		if res[0].Score < 0.9 {
			t.Errorf("expected word-subset score >= 0.9, got %v", res[0].Score)
		}
	})

	t.Run("ExactName", func(t *testing.T) {
		res := idx.Search("Paracetamol 500mg", opt)
		if len(res) == 0 || res[0].Medicine.Name != "Paracetamol 500mg" {
			t.Fatalf("expected exact match first, got %v", res)
		}
		if res[0].Score != 1.0 {
			t.Errorf("expected score 1.0, got %v", res[0].Score)
		}
	})
}

func TestSearchFiltering(t *testing.T) {
	idx := NewIndex(sampleMedicines())

	t.Run("EmptyQuery", func(t *testing.T) {
		if res := idx.Search("   ", DefaultOptions()); len(res) != 0 {
			t.Errorf("expected no results for blank query, got %d", len(res))
		}
	})

	t.Run("ThresholdApplies", func(t *testing.T) {
		opt := DefaultOptions()
		opt.Threshold = 0.95
		res := idx.Search("paracetamol", opt)
		for _, r := range res {
			if r.Score < opt.Threshold {
				t.Errorf("result %s below threshold: %v", r.Medicine.Name, r.Score)
			}
		}
	})

	t.Run("LimitApplies", func(t *testing.T) {
		opt := DefaultOptions()
		opt.Threshold = 0
		opt.Limit = 2
		res := idx.Search("m", opt)
		if len(res) > 2 {
			t.Errorf("expected at most 2 results, got %d", len(res))
		}
	})

	t.Run("SortedDescending", func(t *testing.T) {
		opt := DefaultOptions()
		opt.Threshold = 0
		res := idx.Search("mg 500", opt)
		for i := 1; i < len(res); i++ {
			if res[i].Score > res[i-1].Score {
				t.Errorf("results out of order at %d: %v after %v", i, res[i].Score, res[i-1].Score)
			}
		}
	})

	t.Run("EqualScoresOrderedByName", func(t *testing.T) {
		// both names contain every query word, so both land on the
		// word-subset score and only the name breaks the tie
		tied := NewIndex([]store.Medicine{
			{ID: 1, Name: "Zinc Syrup 100ml"},
			{ID: 2, Name: "Cough Syrup 100ml"},
		})
		res := tied.Search("syrup 100ml", DefaultOptions())
		if len(res) != 2 {
			t.Fatalf("expected 2 results, got %d", len(res))
		}
		if res[0].Score != res[1].Score {
			t.Fatalf("expected a score tie, got %v and %v", res[0].Score, res[1].Score)
		}
		if res[0].Medicine.Name != "Cough Syrup 100ml" || res[1].Medicine.Name != "Zinc Syrup 100ml" {
			t.Errorf("tied results not name-ordered: %s before %s", res[0].Medicine.Name, res[1].Medicine.Name)
		}
	})
}

func TestIndexEmpty(t *testing.T) {
	idx := NewIndex(nil)
	if res := idx.Search("anything", DefaultOptions()); len(res) != 0 {
		t.Errorf("expected no results from empty index, got %d", len(res))
	}
}
