package recommended

import (
	"math/rand"
	"time"

	"github.com/ecohero/storefront-backend/internal/product"
)

// DefaultLimit is how many related products the detail page shows.
const DefaultLimit = 4

type Service struct {
	products product.ServiceInterface
	rng      *rand.Rand
}

// NewService builds the related-products selector. rng drives the random
// fill tier and is injectable so tests can pin it.
func NewService(products product.ServiceInterface, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{products: products, rng: rng}
}

// Related picks up to limit products for the "you may also like" rail.
// Candidates come in tiers: same category first, then products sharing at
// least one tag, then random catalog fill. The source product never
// appears and no product appears twice.
func (s *Service) Related(productID, limit int) ([]product.Product, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	source, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}

	catalog := s.products.List()
	picked := make([]product.Product, 0, limit)
	seen := map[int]bool{source.ID: true}

	take := func(p product.Product) bool {
		if seen[p.ID] {
			return false
		}
		seen[p.ID] = true
		picked = append(picked, p)
		return len(picked) >= limit
	}

	// tier 1: same category
	for _, p := range catalog {
		if p.Category.Slug == source.Category.Slug && take(p) {
			return picked, nil
		}
	}

	// tier 2: shares a tag with the source product
	for _, p := range catalog {
		if seen[p.ID] {
			continue
		}
		for _, tag := range source.Tags {
			if p.HasTag(tag) {
				if take(p) {
					return picked, nil
				}
				break
			}
		}
	}

	// tier 3: random fill from whatever is left
	rest := make([]product.Product, 0, len(catalog))
	for _, p := range catalog {
		if !seen[p.ID] {
			rest = append(rest, p)
		}
	}
	s.rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	for _, p := range rest {
		if take(p) {
			break
		}
	}
	return picked, nil
}
