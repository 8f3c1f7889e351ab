package content

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Testimonials() ([]Testimonial, error) {
	rows, err := r.db.Query(`SELECT id, name, location, avatar, quote, rating FROM testimonial ORDER BY id`)
	if err != nil {
		return []Testimonial{}, nil
	}
	defer rows.Close()

	out := make([]Testimonial, 0)
	for rows.Next() {
		var (
			item     Testimonial
			location sql.NullString
			avatar   sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Name, &location, &avatar, &item.Quote, &item.Rating); err != nil {
			continue
		}
		item.Location = location.String
		item.Avatar = avatar.String
		out = append(out, item)
	}
	return out, nil
}

func (r *PostgresRepository) BlogPosts() ([]BlogPost, error) {
	rows, err := r.db.Query(`SELECT id, slug, title, excerpt, image, author, published_at FROM blog_post ORDER BY published_at DESC`)
	if err != nil {
		return []BlogPost{}, nil
	}
	defer rows.Close()

	out := make([]BlogPost, 0)
	for rows.Next() {
		var (
			post  BlogPost
			image sql.NullString
		)
		if err := rows.Scan(&post.ID, &post.Slug, &post.Title, &post.Excerpt, &image, &post.Author, &post.PublishedAt); err != nil {
			continue
		}
		post.Image = image.String
		out = append(out, post)
	}
	return out, nil
}
