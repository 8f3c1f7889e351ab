package cart

import (
	"testing"

	"github.com/ecohero/storefront-backend/internal/product"
)

func newTestService() *Service {
	products := product.NewService(product.NewInMemoryRepository(product.DefaultCatalog()))
	return NewService(NewInMemoryRepository(), products)
}

// Totals must stay exact no matter how many times lines are added,
// resized and removed: decimal arithmetic leaves no float residue to
// accumulate.
func TestService_RepeatedCyclesCauseNoDrift(t *testing.T) {
	svc := newTestService()
	const userID = 42

	// a line that stays in the cart for the whole run: 2 x 4.99
	if _, err := svc.AddItem(userID, 1, 2); err != nil {
		t.Fatalf("seeding cart failed: %v", err)
	}

	for i := 0; i < 500; i++ {
		if _, err := svc.AddItem(userID, 4, 3); err != nil {
			t.Fatalf("cycle %d add failed: %v", i, err)
		}
		if _, err := svc.UpdateQuantity(userID, 4, 5); err != nil {
			t.Fatalf("cycle %d update failed: %v", i, err)
		}
		if _, err := svc.RemoveItem(userID, 4); err != nil {
			t.Fatalf("cycle %d remove failed: %v", i, err)
		}
	}

	q, err := svc.Quote(userID, "")
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !q.Subtotal.Equal(dec("9.98")) {
		t.Fatalf("subtotal drifted: expected exactly 9.98, got %s", q.Subtotal)
	}
	assertMoney(t, "shipping", q.Shipping, "5.99")
	// 9.98 * 0.07 = 0.6986 rounds to 0.70
	assertMoney(t, "tax", q.Tax, "0.70")
	if !q.Total.Equal(dec("16.67")) {
		t.Fatalf("total drifted: expected exactly 16.67, got %s", q.Total)
	}

	items, _ := svc.Items(userID)
	if len(items) != 1 {
		t.Fatalf("expected a single surviving line, got %d", len(items))
	}
}
