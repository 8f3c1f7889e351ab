package review

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	reviewColumns = `id, product_id, user_id, user_name, user_avatar, rating, title, content, created_at, helpful, verified`

	listReviewsByProductQuery = `
		SELECT ` + reviewColumns + `
		FROM review
		WHERE product_id = $1
		ORDER BY id
	`
	getReviewByIDQuery = `
		SELECT ` + reviewColumns + `
		FROM review
		WHERE id = $1
	`
	insertReviewQuery = `
		INSERT INTO review (product_id, user_id, user_name, user_avatar, rating, title, content, created_at, helpful, verified)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`
	incrementHelpfulQuery = `
		UPDATE review SET helpful = helpful + 1 WHERE id = $1 RETURNING helpful
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (Review, error) {
	var (
		rev    Review
		avatar sql.NullString
	)
	err := row.Scan(
		&rev.ID,
		&rev.ProductID,
		&rev.UserID,
		&rev.UserName,
		&avatar,
		&rev.Rating,
		&rev.Title,
		&rev.Content,
		&rev.CreatedAt,
		&rev.Helpful,
		&rev.Verified,
	)
	if err != nil {
		return Review{}, err
	}
	if avatar.Valid {
		rev.UserAvatar = &avatar.String
	}
	return rev, nil
}

func (r *PostgresRepository) ListByProduct(productID int) ([]Review, error) {
	rows, err := r.db.Query(listReviewsByProductQuery, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			continue
		}
		out = append(out, rev)
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(id int) (Review, error) {
	row := r.db.QueryRow(getReviewByIDQuery, id)
	rev, err := scanReview(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Review{}, ErrNotFound
		}
		return Review{}, err
	}
	return rev, nil
}

func (r *PostgresRepository) Add(rev Review) (Review, error) {
	var avatar sql.NullString
	if rev.UserAvatar != nil {
		avatar = sql.NullString{String: *rev.UserAvatar, Valid: true}
	}
	err := r.db.QueryRow(insertReviewQuery,
		rev.ProductID,
		rev.UserID,
		rev.UserName,
		avatar,
		rev.Rating,
		rev.Title,
		rev.Content,
		rev.CreatedAt,
		rev.Helpful,
		rev.Verified,
	).Scan(&rev.ID)
	if err != nil {
		return Review{}, err
	}
	return rev, nil
}

func (r *PostgresRepository) IncrementHelpful(id int) (int, error) {
	var helpful int
	err := r.db.QueryRow(incrementHelpfulQuery, id).Scan(&helpful)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return helpful, nil
}
