package address

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	addressColumns = `id, user_id, label, street, city, state, zip_code, country, phone, created_at, updated_at`

	listAddressesQuery = `
		SELECT ` + addressColumns + `
		FROM address
		WHERE user_id = $1
		ORDER BY id
	`
	getAddressByIDQuery = `
		SELECT ` + addressColumns + `
		FROM address
		WHERE id = $1
	`
	insertAddressQuery = `
		INSERT INTO address (user_id, label, street, city, state, zip_code, country, phone, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`
	updateAddressQuery = `
		UPDATE address
		SET label = $1, street = $2, city = $3, state = $4, zip_code = $5, country = $6, phone = $7, updated_at = $8
		WHERE id = $9
	`
	deleteAddressQuery = `DELETE FROM address WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAddress(row rowScanner) (Address, error) {
	var a Address
	err := row.Scan(&a.ID, &a.UserID, &a.Label, &a.Street, &a.City, &a.State, &a.ZipCode, &a.Country, &a.Phone, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Address, error) {
	rows, err := r.db.Query(listAddressesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(id int) (Address, error) {
	a, err := scanAddress(r.db.QueryRow(getAddressByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Address{}, ErrNotFound
		}
		return Address{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Add(a Address) (Address, error) {
	err := r.db.QueryRow(insertAddressQuery,
		a.UserID, a.Label, a.Street, a.City, a.State, a.ZipCode, a.Country, a.Phone, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Update(id int, a Address) (Address, error) {
	result, err := r.db.Exec(updateAddressQuery,
		a.Label, a.Street, a.City, a.State, a.ZipCode, a.Country, a.Phone, a.UpdatedAt, id,
	)
	if err != nil {
		return Address{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Address{}, err
	}
	if affected == 0 {
		return Address{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteAddressQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
