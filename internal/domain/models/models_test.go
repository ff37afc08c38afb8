package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestLevelForBoundaries(t *testing.T) {
	cases := map[int]StockLevel{0: StockCritical, 9: StockCritical, 10: StockLow, 20: StockLow, 21: StockHealthy}
	for q, want := range cases {
		if got := LevelFor(q); got != want {
			t.Fatalf("LevelFor(%d) got %s want %s", q, got, want)
		}
	}
}

func TestIDKeepsReceivedForm(t *testing.T) {
	var stocks []Stock
	if err := json.Unmarshal([]byte(`[{"id":1999,"quantity":1},{"id":"a-7","quantity":2}]`), &stocks); err != nil {
		t.Fatalf("decode: %v", err)
	}

	out, err := json.Marshal([]ID{stocks[0].ID, stocks[1].ID})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(out) != `[1999,"a-7"]` {
		t.Fatalf("ids got %s", out)
	}
	if !stocks[0].ID.Equal(ParseID("1999")) {
		t.Fatalf("numeric and textual ids should compare equal")
	}
}

func TestProductValidate(t *testing.T) {
	neg := -1.0
	bad := []Product{
		{Name: "Lait", Price: -2},
		{Name: "Lait", Solde: &neg},
		{Name: "Lait", Stocks: []Stock{{ID: ParseID("1"), Quantity: -1}}},
	}
	for _, p := range bad {
		if err := p.Validate(); !errors.Is(err, ErrInvalidProduct) {
			t.Fatalf("%+v: expected ErrInvalidProduct, got %v", p, err)
		}
	}

	ok := Product{Name: "Lait", Price: 3, Stocks: []Stock{{ID: ParseID("1999"), Quantity: 0}}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid product rejected: %v", err)
	}
	unnamed := Product{Stocks: []Stock{{ID: ParseID("1")}, {ID: NumericID(1)}}}
	if err := unnamed.Validate(); err != nil {
		t.Fatalf("stored records without a name or with repeated stock ids are readable: %v", err)
	}
	if !ok.IsOutOfStock() {
		t.Fatalf("zero quantity should be out of stock")
	}
}
