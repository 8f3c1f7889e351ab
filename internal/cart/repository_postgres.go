package cart

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCartItemsQuery = `
		SELECT product_id, name, price, image, quantity
		FROM cart_item
		WHERE user_id = $1
		ORDER BY product_id
	`
	deleteCartItemsQuery = `DELETE FROM cart_item WHERE user_id = $1`
	insertCartItemQuery  = `
		INSERT INTO cart_item (user_id, product_id, name, price, image, quantity)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Items(userID int) ([]Item, error) {
	rows, err := r.db.Query(listCartItemsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Image, &item.Quantity); err != nil {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// Save replaces the whole cart in one transaction. Carts are small, a
// delete-and-reinsert keeps the repository free of per-line diffing.
func (r *PostgresRepository) Save(userID int, items []Item) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(deleteCartItemsQuery, userID); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := tx.Exec(insertCartItemQuery, userID, item.ProductID, item.Name, item.Price, item.Image, item.Quantity); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PostgresRepository) Clear(userID int) error {
	_, err := r.db.Exec(deleteCartItemsQuery, userID)
	return err
}
