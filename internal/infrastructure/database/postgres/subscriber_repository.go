package postgres

import (
	"context"
	"database/sql"

	"github.com/ecohero/storefront-backend/internal/domain/entity"
	"github.com/ecohero/storefront-backend/internal/domain/repository"
)

// SubscriberRepository is a PostgreSQL implementation of
// SubscriberRepository.
type SubscriberRepository struct {
	db *sql.DB
}

var _ repository.SubscriberRepository = (*SubscriberRepository)(nil)

func NewSubscriberRepository(db *sql.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

const (
	insertSubscriberQuery = `
		INSERT INTO subscriber (id, email, source, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	getSubscriberByEmailQuery = `
		SELECT id, email, source, status, created_at, updated_at
		FROM subscriber
		WHERE email = $1
	`
	listSubscribersQuery = `
		SELECT id, email, source, status, created_at, updated_at
		FROM subscriber
		ORDER BY created_at
	`
	updateSubscriberQuery = `
		UPDATE subscriber
		SET source = $2, status = $3, updated_at = $4
		WHERE id = $1
	`
)

func (r *SubscriberRepository) Create(ctx context.Context, sub *entity.Subscriber) (*entity.Subscriber, error) {
	_, err := r.db.ExecContext(ctx, insertSubscriberQuery,
		sub.ID, sub.Email, sub.Source, sub.Status, sub.CreatedAt, sub.UpdatedAt)
	if err != nil {
		return nil, err
	}
	result := *sub
	return &result, nil
}

func scanSubscriber(row *sql.Row) (*entity.Subscriber, error) {
	var sub entity.Subscriber
	err := row.Scan(&sub.ID, &sub.Email, &sub.Source, &sub.Status, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	return scanSubscriber(r.db.QueryRowContext(ctx, getSubscriberByEmailQuery, email))
}

func (r *SubscriberRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	rows, err := r.db.QueryContext(ctx, listSubscribersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*entity.Subscriber, 0)
	for rows.Next() {
		var sub entity.Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.Source, &sub.Status, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &sub)
	}
	return result, rows.Err()
}

func (r *SubscriberRepository) Update(ctx context.Context, sub *entity.Subscriber) (*entity.Subscriber, error) {
	result, err := r.db.ExecContext(ctx, updateSubscriberQuery,
		sub.ID, sub.Source, sub.Status, sub.UpdatedAt)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, repository.ErrNotFound
	}
	out := *sub
	return &out, nil
}
