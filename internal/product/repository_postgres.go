package product

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `id, slug, name, price, sale_price, images, description, short_description, features, specifications, brand_name, brand_slug, brand_logo, category_name, category_slug, tags, in_stock, rating, review_count, sustainability_features, is_new, is_best_seller, created_at`

	listProductsQuery = `
		SELECT ` + productColumns + `
		FROM product
		ORDER BY id
	`
	getProductByIDQuery = `
		SELECT ` + productColumns + `
		FROM product
		WHERE id = $1
	`
	getProductBySlugQuery = `
		SELECT ` + productColumns + `
		FROM product
		WHERE slug = $1
	`
	insertProductQuery = `
		INSERT INTO product (id, slug, name, price, sale_price, images, description, short_description, features, specifications, brand_name, brand_slug, brand_logo, category_name, category_slug, tags, in_stock, rating, review_count, sustainability_features, is_new, is_best_seller, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p         Product
		salePrice decimal.NullDecimal
		images    pq.StringArray
		features  pq.StringArray
		specs     []byte
		tags      pq.StringArray
		susFeats  pq.StringArray
	)
	err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Name,
		&p.Price,
		&salePrice,
		&images,
		&p.Description,
		&p.ShortDescription,
		&features,
		&specs,
		&p.Brand.Name,
		&p.Brand.Slug,
		&p.Brand.Logo,
		&p.Category.Name,
		&p.Category.Slug,
		&tags,
		&p.InStock,
		&p.Rating,
		&p.ReviewCount,
		&susFeats,
		&p.IsNew,
		&p.IsBestSeller,
		&p.CreatedAt,
	)
	if err != nil {
		return Product{}, err
	}
	if salePrice.Valid {
		p.SalePrice = &salePrice.Decimal
	}
	p.Images = images
	p.Features = features
	p.Tags = tags
	p.SustainabilityFeatures = susFeats
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &p.Specifications); err != nil {
			return Product{}, err
		}
	}
	return p, nil
}

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(getProductByIDQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) GetBySlug(slug string) (Product, error) {
	row := r.db.QueryRow(getProductBySlugQuery, slug)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

// Reset deletes all products and inserts the provided list in a single
// transaction. Seed IDs are preserved so product references (reviews, carts)
// stay stable.
func (r *PostgresRepository) Reset(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM product`); err != nil {
		return err
	}

	for _, p := range products {
		specs, err := json.Marshal(p.Specifications)
		if err != nil {
			return err
		}
		var salePrice decimal.NullDecimal
		if p.SalePrice != nil {
			salePrice = decimal.NullDecimal{Decimal: *p.SalePrice, Valid: true}
		}
		if _, err := tx.Exec(insertProductQuery,
			p.ID,
			p.Slug,
			p.Name,
			p.Price,
			salePrice,
			pq.Array(p.Images),
			p.Description,
			p.ShortDescription,
			pq.Array(p.Features),
			specs,
			p.Brand.Name,
			p.Brand.Slug,
			p.Brand.Logo,
			p.Category.Name,
			p.Category.Slug,
			pq.Array(p.Tags),
			p.InStock,
			p.Rating,
			p.ReviewCount,
			pq.Array(p.SustainabilityFeatures),
			p.IsNew,
			p.IsBestSeller,
			p.CreatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
