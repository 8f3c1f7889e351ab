package banner

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns banner rows ordered by ord then id. If the table is not
// available it returns an empty slice, the frontend renders fallbacks.
func (r *PostgresRepository) List(limit int) ([]Banner, error) {
	rows, err := r.db.Query(`SELECT id, heading, subheading, image, cta_text, cta_link FROM banner ORDER BY COALESCE(ord, 0) DESC, id LIMIT $1`, limit)
	if err != nil {
		return []Banner{}, nil
	}
	defer rows.Close()

	out := make([]Banner, 0)
	for rows.Next() {
		var (
			b          Banner
			subheading sql.NullString
			image      sql.NullString
			ctaText    sql.NullString
			ctaLink    sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.Heading, &subheading, &image, &ctaText, &ctaLink); err != nil {
			continue
		}
		b.Subheading = subheading.String
		b.Image = image.String
		b.CTAText = ctaText.String
		b.CTALink = ctaLink.String
		out = append(out, b)
	}
	return out, nil
}
