package nsekit

import (
	"testing"
)

func TestParseWeighting(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		w, err := ParseWeighting("SCOM.KE:50, EQTY.KE:30,KCB.KE:20")
		if err != nil {
			t.Fatalf("ParseWeighting() error = %v", err)
		}
		want := Weighting{
			{"SCOM.KE", 50},
			{"EQTY.KE", 30},
			{"KCB.KE", 20},
		}
		if len(w) != len(want) {
			t.Fatalf("ParseWeighting() = %v, want %v", w, want)
		}
		for i := range want {
			if w[i] != want[i] {
				t.Errorf("component %d = %v, want %v", i, w[i], want[i])
			}
		}
	})

	t.Run("empty parts ignored", func(t *testing.T) {
		w, err := ParseWeighting("A:1,,B:2,")
		if err != nil {
			t.Fatalf("ParseWeighting() error = %v", err)
		}
		if len(w) != 2 {
			t.Errorf("ParseWeighting() len = %d, want 2", len(w))
		}
	})

	for _, bad := range []string{"SCOM.KE", "A:x", "A:-1", "A:1,A:2"} {
		if _, err := ParseWeighting(bad); err == nil {
			t.Errorf("ParseWeighting(%q) expected an error", bad)
		}
	}
}

func TestRealign_NormalizesToOne(t *testing.T) {
	table, _ := BuildTable([]FetchResult{
		fetched("A", ps("2023-01-02", 100, 110)),
		fetched("B", ps("2023-01-02", 50, 55)),
		fetched("C", ps("2023-01-02", 20, 22)),
	})

	w := table.Realign(Weighting{{"A", 50}, {"B", 30}, {"C", 20}})
	if got := w.Sum(); !closeTo(got, 1) {
		t.Errorf("Sum() = %v, want 1.0", got)
	}
	want := []float64{0.5, 0.3, 0.2}
	for i, c := range w {
		if !closeTo(c.Weight, want[i]) {
			t.Errorf("weight[%s] = %v, want %v", c.Ticker, c.Weight, want[i])
		}
	}
}

func TestRealign_FractionScale(t *testing.T) {
	// [0,1] fractions and [0,100] percentages mean the same thing.
	table, _ := BuildTable([]FetchResult{
		fetched("A", ps("2023-01-02", 100, 110)),
		fetched("B", ps("2023-01-02", 50, 55)),
	})
	percents := table.Realign(Weighting{{"A", 70}, {"B", 30}})
	fractions := table.Realign(Weighting{{"A", 0.7}, {"B", 0.3}})
	for i := range percents {
		if !closeTo(percents[i].Weight, fractions[i].Weight) {
			t.Errorf("weight[%s]: percent scale %v != fraction scale %v",
				percents[i].Ticker, percents[i].Weight, fractions[i].Weight)
		}
	}
}

func TestRealign_MissingInstrumentRedistributed(t *testing.T) {
	// B was requested but never fetched: A takes the whole portfolio.
	table, _ := BuildTable([]FetchResult{
		fetched("A", ps("2023-01-02", 100, 110)),
	})
	w := table.Realign(Weighting{{"A", 70}, {"B", 30}})
	if len(w) != 1 {
		t.Fatalf("Realign() len = %d, want 1", len(w))
	}
	if w[0].Ticker != "A" || !closeTo(w[0].Weight, 1) {
		t.Errorf("Realign() = %v, want [{A 1}]", w)
	}
}

func TestRealign_ZeroSumFallsBackToEqualWeights(t *testing.T) {
	table, _ := BuildTable([]FetchResult{
		fetched("A", ps("2023-01-02", 100, 110)),
		fetched("B", ps("2023-01-02", 50, 55)),
		fetched("C", ps("2023-01-02", 20, 22)),
	})

	t.Run("all weights zero", func(t *testing.T) {
		w := table.Realign(Weighting{{"A", 0}, {"B", 0}, {"C", 0}})
		for _, c := range w {
			if !closeTo(c.Weight, 1.0/3.0) {
				t.Errorf("weight[%s] = %v, want 1/3", c.Ticker, c.Weight)
			}
		}
	})

	t.Run("weights only on failed tickers", func(t *testing.T) {
		// All requested weight sits on tickers absent from the table.
		w := table.Realign(Weighting{{"X", 60}, {"Y", 40}})
		if got := w.Sum(); !closeTo(got, 1) {
			t.Errorf("Sum() = %v, want 1.0", got)
		}
		for _, c := range w {
			if !closeTo(c.Weight, 1.0/3.0) {
				t.Errorf("weight[%s] = %v, want 1/3", c.Ticker, c.Weight)
			}
		}
	})

	t.Run("no weights at all", func(t *testing.T) {
		w := table.Realign(nil)
		for _, c := range w {
			if !closeTo(c.Weight, 1.0/3.0) {
				t.Errorf("weight[%s] = %v, want 1/3", c.Ticker, c.Weight)
			}
		}
	})
}

func TestRealign_EmptyTable(t *testing.T) {
	table, _ := BuildTable(nil)
	if w := table.Realign(Weighting{{"A", 50}}); len(w) != 0 {
		t.Errorf("Realign() on empty table = %v, want empty", w)
	}
}

func TestRealign_KeepsColumnOrder(t *testing.T) {
	table, _ := BuildTable([]FetchResult{
		fetched("B", ps("2023-01-02", 50, 55)),
		fetched("A", ps("2023-01-02", 100, 110)),
	})
	w := table.Realign(Weighting{{"A", 1}, {"B", 3}})
	if w[0].Ticker != "B" || w[1].Ticker != "A" {
		t.Fatalf("Realign() order = %v, want table column order [B A]", w.Tickers())
	}
	if !closeTo(w[0].Weight, 0.75) || !closeTo(w[1].Weight, 0.25) {
		t.Errorf("Realign() = %v, want [{B 0.75} {A 0.25}]", w)
	}
}

func TestEqualWeighting(t *testing.T) {
	w := EqualWeighting([]string{"A", "B"})
	if got := w.Sum(); !closeTo(got, 2) {
		t.Errorf("Sum() = %v, want 2", got)
	}
	if got, ok := w.Get("B"); !ok || got != 1 {
		t.Errorf("Get(B) = %v, %v, want 1, true", got, ok)
	}
}
