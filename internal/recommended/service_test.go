package recommended

import (
	"math/rand"
	"testing"

	"github.com/ecohero/storefront-backend/internal/product"
)

func newService(seed int64) *Service {
	products := product.NewService(product.NewInMemoryRepository(product.DefaultCatalog()))
	return NewService(products, rand.New(rand.NewSource(seed)))
}

func ids(products []product.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestRelated_CategoryThenTagTiers(t *testing.T) {
	svc := newService(1)

	// product 4 shares its category with 2 and 5, then 1 and 6 join via the
	// shared plastic-free tag
	got, err := svc.Related(4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{2, 5, 1, 6}
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotIDs)
		}
	}
}

func TestRelated_RandomFillNeverDuplicatesOrEchoesSource(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		svc := newService(seed)

		// product 3 is alone in its category, only product 2 shares a tag,
		// the rest is random fill
		got, err := svc.Related(3, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("seed %d: expected 4 products, got %d", seed, len(got))
		}
		if got[0].ID != 2 {
			t.Fatalf("seed %d: expected tag-tier product 2 first, got %d", seed, got[0].ID)
		}
		seen := map[int]bool{}
		for _, p := range got {
			if p.ID == 3 {
				t.Fatalf("seed %d: source product echoed back", seed)
			}
			if seen[p.ID] {
				t.Fatalf("seed %d: duplicate product %d", seed, p.ID)
			}
			seen[p.ID] = true
		}
	}
}

func TestRelated_LimitAndDefault(t *testing.T) {
	svc := newService(1)

	got, _ := svc.Related(4, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}

	// limit 0 falls back to the default rail size
	got, _ = svc.Related(4, 0)
	if len(got) != DefaultLimit {
		t.Fatalf("expected %d products, got %d", DefaultLimit, len(got))
	}
}

func TestRelated_UnknownProduct(t *testing.T) {
	svc := newService(1)
	if _, err := svc.Related(999, 4); err != product.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
