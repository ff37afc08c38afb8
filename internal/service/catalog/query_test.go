package catalog

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

func product(id, name, typ, supplier string, price float64, quantities ...int) models.Product {
	p := models.Product{ID: models.ParseID(id), Name: name, Type: typ, Supplier: supplier, Price: price}
	for _, q := range quantities {
		p.Stocks = append(p.Stocks, models.Stock{Quantity: q})
	}
	return p
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID.String()
	}
	return out
}

func scenario() []models.Product {
	return []models.Product{
		product("1", "Banana", "A", "", 2, 5),
		product("2", "Apple", "B", "", 1, 0),
	}
}

func TestQueryScenarioFilterByType(t *testing.T) {
	q := models.DefaultProductQuery()
	q.Type = "A"

	got := NewEngine(language.English).Query(scenario(), q)
	if want := []string{"1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v want %v", ids(got), want)
	}
}

func TestQueryScenarioSortByName(t *testing.T) {
	got := NewEngine(language.English).Query(scenario(), models.DefaultProductQuery())
	if want := []string{"2", "1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v want %v", ids(got), want)
	}
}

func TestQueryConjunctiveFilters(t *testing.T) {
	products := []models.Product{
		product("1", "Green Tea", "drink", "Sultan", 10),
		product("2", "Black tea", "drink", "Lipton", 12),
		product("3", "Teapot", "kitchen", "Sultan", 80),
		product("4", "Coffee", "drink", "Sultan", 30),
	}

	q := models.ProductQuery{Search: "TEA", Type: "drink", Supplier: "Sultan", SortBy: models.SortByPrice, Order: models.SortAscending}
	got := (&Engine{}).Query(products, q)
	if want := []string{"1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v want %v", ids(got), want)
	}

	q = models.ProductQuery{Search: "tea"}
	got = Filter(products, q)
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("search only: got %v want %v", ids(got), want)
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	products := []models.Product{
		product("1", "b", "", "", 3),
		product("2", "a", "", "", 1),
	}
	before := ids(products)

	_ = (&Engine{}).Query(products, models.DefaultProductQuery())
	if !reflect.DeepEqual(ids(products), before) {
		t.Fatalf("input reordered: %v", ids(products))
	}
}

func TestSortStableInBothDirections(t *testing.T) {
	products := []models.Product{
		product("1", "x", "", "", 5),
		product("2", "y", "", "", 1),
		product("3", "z", "", "", 5),
		product("4", "w", "", "", 1),
	}
	e := &Engine{}

	asc := e.Sort(products, models.SortByPrice, models.SortAscending)
	if want := []string{"2", "4", "1", "3"}; !reflect.DeepEqual(ids(asc), want) {
		t.Fatalf("asc got %v want %v", ids(asc), want)
	}

	desc := e.Sort(products, models.SortByPrice, models.SortDescending)
	if want := []string{"1", "3", "2", "4"}; !reflect.DeepEqual(ids(desc), want) {
		t.Fatalf("desc got %v want %v", ids(desc), want)
	}
}

func TestSortByQuantityUsesStockTotals(t *testing.T) {
	products := []models.Product{
		product("1", "a", "", "", 1, 4, 4),
		product("2", "b", "", "", 1),
		product("3", "c", "", "", 1, 10),
	}

	got := (&Engine{}).Sort(products, models.SortByQuantity, models.SortDescending)
	if want := []string{"3", "1", "2"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v want %v", ids(got), want)
	}
}

func TestSortByPriceIgnoresSolde(t *testing.T) {
	cheap := 1.0
	discounted := product("1", "a", "", "", 50)
	discounted.Solde = &cheap
	products := []models.Product{discounted, product("2", "b", "", "", 10)}

	got := (&Engine{}).Sort(products, models.SortByPrice, models.SortAscending)
	if want := []string{"2", "1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v want %v", ids(got), want)
	}
}

func TestSortByNameIsLocaleAware(t *testing.T) {
	products := []models.Product{
		product("1", "zeste", "", "", 1),
		product("2", "Éclair", "", "", 1),
		product("3", "eau", "", "", 1),
	}

	got := NewEngine(language.French).Sort(products, models.SortByName, models.SortAscending)
	if want := []string{"3", "2", "1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v want %v", ids(got), want)
	}
}

func TestSortIdempotent(t *testing.T) {
	products := []models.Product{
		product("1", "c", "", "", 3, 1),
		product("2", "a", "", "", 3, 2),
		product("3", "b", "", "", 1, 2),
	}
	e := &Engine{}
	q := models.ProductQuery{SortBy: models.SortByQuantity, Order: models.SortDescending}

	once := e.Query(products, q)
	twice := e.Query(once, q)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("once %v twice %v", ids(once), ids(twice))
	}
}

func TestUnknownSortKeepsInputOrder(t *testing.T) {
	products := []models.Product{product("1", "b", "", "", 2), product("2", "a", "", "", 1)}

	got := (&Engine{}).Sort(products, models.SortCriteria("weight"), models.SortAscending)
	if want := []string{"1", "2"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v want %v", ids(got), want)
	}
}

func TestFilterOptionsFirstSeenOrder(t *testing.T) {
	products := []models.Product{
		product("1", "a", "drink", "Sultan", 1),
		product("2", "b", "food", "Lipton", 1),
		product("3", "c", "drink", "Sultan", 1),
	}

	types, suppliers := FilterOptions(products)
	if want := []string{"drink", "food"}; !reflect.DeepEqual(types, want) {
		t.Fatalf("types got %v want %v", types, want)
	}
	if want := []string{"Sultan", "Lipton"}; !reflect.DeepEqual(suppliers, want) {
		t.Fatalf("suppliers got %v want %v", suppliers, want)
	}
}

func TestQueryEmptyCollection(t *testing.T) {
	got := (&Engine{}).Query(nil, models.DefaultProductQuery())
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	types, suppliers := FilterOptions(nil)
	if len(types) != 0 || len(suppliers) != 0 {
		t.Fatalf("expected no options, got %v %v", types, suppliers)
	}
}
