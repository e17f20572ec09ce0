package service

import (
	"sort"
	"strings"

	"github.com/andikahilmy/marketplace-service/internal/domain"
	pkgdto "github.com/andikahilmy/marketplace-service/pkg/dto"
)

const defaultPageLimit = 10

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
	SortRating    = "rating"
)

// category filter value that matches everything
const categoryAll = "All"

// queryProducts filters, sorts, and pages a product collection in
// memory. The input slice is never mutated. A non-positive limit falls
// back to defaultPageLimit and a non-positive page to page 1; a page
// past the end yields an empty page rather than an error.
func queryProducts(items []domain.Product, filter pkgdto.Filter) ([]domain.Product, pkgdto.PaginationMetadata) {
	matched := filterProducts(items, filter.Q, filter.Category)
	sortProducts(matched, filter.SortBy)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}

	total := len(matched)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}

	end := start + limit
	if end > total {
		end = total
	}

	meta := pkgdto.PaginationMetadata{
		TotalCount:  uint64(total),
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
	}

	return matched[start:end], meta
}

func filterProducts(items []domain.Product, q string, category string) []domain.Product {
	matched := make([]domain.Product, 0, len(items))
	q = strings.ToLower(q)

	for _, product := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(product.Name), q) &&
			!strings.Contains(strings.ToLower(product.Description), q) {
			continue
		}

		if category != "" && category != categoryAll && product.Category != category {
			continue
		}

		matched = append(matched, product)
	}

	return matched
}

// sortProducts orders items in place. The sort is stable so equal keys
// keep their original relative order; an unknown key leaves insertion
// order untouched.
func sortProducts(items []domain.Product, sortBy string) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	case SortName:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Name < items[j].Name
		})
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	}
}
