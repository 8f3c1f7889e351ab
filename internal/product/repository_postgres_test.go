package product

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var productRows = []string{
	"id", "slug", "name", "price", "sale_price", "images", "description",
	"short_description", "features", "specifications", "brand_name",
	"brand_slug", "brand_logo", "category_name", "category_slug", "tags",
	"in_stock", "rating", "review_count", "sustainability_features",
	"is_new", "is_best_seller", "created_at",
}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(productRows).
		AddRow(1, "bamboo-toothbrush", "Bamboo Toothbrush", "4.99", nil,
			"{/images/a.png}", "desc", "short", "{feature}",
			[]byte(`{"Material":"Bamboo"}`), "EcoSmile", "ecosmile", "/logo.png",
			"Bathroom", "bathroom", `{"oral care",bathroom}`, true, 4.5, 38,
			"{Plastic-Free}", false, true, "2023-01-15").
		AddRow(4, "reusable-food-wraps", "Reusable Food Wraps", "15.99", "12.99",
			"{/images/b.png}", "desc", "short", "{feature}",
			[]byte(`{}`), "Green Kitchen", "green-kitchen", "/logo.png",
			"Home & Kitchen", "home-kitchen", "{kitchen}", true, 4.5, 42,
			"{Reusable}", false, true, "2023-01-05")
	mock.ExpectQuery("FROM product").WillReturnRows(rows)

	all := repo.List()
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
	if all[0].SalePrice != nil {
		t.Fatalf("expected no sale price on product 1")
	}
	if all[1].SalePrice == nil || all[1].SalePrice.String() != "12.99" {
		t.Fatalf("expected sale price 12.99 on product 4, got %+v", all[1].SalePrice)
	}
	if len(all[0].Tags) != 2 || all[0].Tags[0] != "oral care" {
		t.Fatalf("unexpected tags %v", all[0].Tags)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetBySlug_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("WHERE slug").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(productRows))

	if _, err := repo.GetBySlug("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
