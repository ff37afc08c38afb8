// Package catalog filters, searches and orders product collections in memory.
package catalog

import (
	"cmp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

// Engine evaluates product queries. The zero value orders names with the
// root collation.
type Engine struct {
	tag language.Tag
}

// NewEngine builds an engine collating names for the given locale.
func NewEngine(tag language.Tag) *Engine {
	return &Engine{tag: tag}
}

// Query returns the products matching every filter of q, ordered by q.SortBy
// and q.Order. The sort is stable in both directions and the input slice is
// left untouched.
func (e *Engine) Query(products []models.Product, q models.ProductQuery) []models.Product {
	out := Filter(products, q)
	e.sortInPlace(out, q.SortBy, q.Order)
	return out
}

// Sort returns a sorted copy of products.
func (e *Engine) Sort(products []models.Product, by models.SortCriteria, order models.SortOrder) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	e.sortInPlace(out, by, order)
	return out
}

func (e *Engine) sortInPlace(products []models.Product, by models.SortCriteria, order models.SortOrder) {
	compare := e.comparator(by)
	if compare == nil {
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		c := compare(products[i], products[j])
		if order == models.SortDescending {
			c = -c
		}
		return c < 0
	})
}

func (e *Engine) comparator(by models.SortCriteria) func(a, b models.Product) int {
	switch by {
	case models.SortByName:
		// collators keep internal buffers, one per sort
		col := collate.New(e.tag)
		return func(a, b models.Product) int {
			return col.CompareString(a.Name, b.Name)
		}
	case models.SortByPrice:
		return func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		}
	case models.SortByQuantity:
		return func(a, b models.Product) int {
			return cmp.Compare(a.TotalQuantity(), b.TotalQuantity())
		}
	default:
		return nil
	}
}

// Filter keeps the products whose name contains q.Search (case-insensitive)
// and whose type and supplier equal q.Type and q.Supplier when those are set.
// Input order is preserved.
func Filter(products []models.Product, q models.ProductQuery) []models.Product {
	needle := strings.ToLower(q.Search)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if q.Type != "" && p.Type != q.Type {
			continue
		}
		if q.Supplier != "" && p.Supplier != q.Supplier {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterOptions lists the distinct types and suppliers of the full collection,
// in first-seen order.
func FilterOptions(products []models.Product) (types, suppliers []string) {
	types = distinct(products, func(p models.Product) string { return p.Type })
	suppliers = distinct(products, func(p models.Product) string { return p.Supplier })
	return types, suppliers
}

func distinct(products []models.Product, key func(models.Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		k := key(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
