// Package engine derives filtered, optionally sorted views of the listing
// dataset. Everything here is a pure function of its inputs.
package engine

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/AbdullahAbukalaf/real-estate-reign/models"
)

// MaxPrice is the upper end of the price range control.
const MaxPrice = 5000000

const (
	All = "all"

	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// Criteria is the active set of filter constraints. The zero values of
// Search and BedroomsMin already mean "no constraint"; use DefaultCriteria
// to get the remaining fields at their unconstrained defaults.
type Criteria struct {
	Search      string
	Type        string
	Status      string
	MinPrice    int
	MaxPrice    int
	BedroomsMin int
}

func DefaultCriteria() Criteria {
	return Criteria{
		Type:     All,
		Status:   All,
		MinPrice: 0,
		MaxPrice: MaxPrice,
	}
}

// Filter returns the subsequence of dataset matching every active constraint,
// preserving dataset order. An inverted price range matches nothing.
func Filter(dataset []models.Property, c Criteria) []models.Property {
	results := make([]models.Property, 0, len(dataset))
	search := strings.ToLower(c.Search)

	for _, p := range dataset {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Address), search) {
			continue
		}
		if c.Type != All && string(p.Type) != c.Type {
			continue
		}
		if c.Status != All && string(p.Status) != c.Status {
			continue
		}
		if p.Price < c.MinPrice || p.Price > c.MaxPrice {
			continue
		}
		if p.Bedrooms < c.BedroomsMin {
			continue
		}
		results = append(results, p)
	}
	return results
}

// SortProperties orders a filtered result. Sorting is independent of
// filtering; SortNewest (and any unknown order) keeps the natural dataset
// order.
func SortProperties(list []models.Property, order string) []models.Property {
	out := make([]models.Property, len(list))
	copy(out, list)

	switch order {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

// CriteriaFromQuery seeds criteria from navigational query parameters.
// Malformed or unknown values are ignored and the corresponding criterion
// stays at its default.
func CriteriaFromQuery(q url.Values) Criteria {
	c := DefaultCriteria()

	if location := q.Get("location"); location != "" {
		c.Search = location
	}
	if t := q.Get("type"); models.KnownPropertyType(t) {
		c.Type = t
	}
	if s := q.Get("status"); models.KnownPropertyStatus(s) {
		c.Status = s
	}
	if bedrooms := q.Get("bedrooms"); bedrooms != "" && bedrooms != "any" {
		if n, err := strconv.Atoi(bedrooms); err == nil && n >= 0 {
			c.BedroomsMin = n
		}
	}
	if price := q.Get("price"); price != "" {
		if lo, hi, ok := parsePriceRange(price); ok {
			c.MinPrice = lo
			c.MaxPrice = hi
		}
	}
	return c
}

// parsePriceRange accepts "<min>-<max>" and the open-ended "<min>+" form,
// which clamps the upper bound to MaxPrice.
func parsePriceRange(s string) (lo, hi int, ok bool) {
	if trimmed, found := strings.CutSuffix(s, "+"); found {
		lo, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, 0, false
		}
		return lo, MaxPrice, true
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, errLo := strconv.Atoi(parts[0])
	hi, errHi := strconv.Atoi(parts[1])
	if errLo != nil || errHi != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
