package category

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns category rows ordered by ord then id. If the table is not
// available it returns an empty slice to keep the API resilient.
func (r *PostgresRepository) List(limit int) ([]Category, error) {
	rows, err := r.db.Query(`SELECT id, name, slug, image, description FROM category ORDER BY COALESCE(ord, 0) DESC, id LIMIT $1`, limit)
	if err != nil {
		return []Category{}, nil
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.Image, &cat.Description); err != nil {
			continue
		}
		out = append(out, cat)
	}
	return out, nil
}
