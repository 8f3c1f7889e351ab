package user

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	userColumns = `id, email, password, first_name, last_name, phone, main_address_id, address_ids, order_ids, favorite_product_ids, avatar_pic, created_at, updated_at`

	getUserByIDQuery = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	getUserByEmailQuery = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	insertUserQuery = `
		INSERT INTO users (email, password, first_name, last_name, phone, main_address_id, address_ids, order_ids, favorite_product_ids, avatar_pic, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id
	`
	updateUserQuery = `
		UPDATE users
		SET email = $1,
			password = $2,
			first_name = $3,
			last_name = $4,
			phone = $5,
			main_address_id = $6,
			address_ids = $7,
			order_ids = $8,
			favorite_product_ids = $9,
			avatar_pic = $10,
			updated_at = $11
		WHERE id = $12
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func intArray(ids []int) pq.Int64Array {
	out := make(pq.Int64Array, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

func fromInt64Array(arr pq.Int64Array) []int {
	if len(arr) == 0 {
		return nil
	}
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}

func scanUser(scanner rowScanner) (User, error) {
	var (
		u           User
		mainAddress sql.NullInt64
		addressIDs  pq.Int64Array
		orderIDs    pq.Int64Array
		favoriteIDs pq.Int64Array
		avatar      sql.NullString
	)
	err := scanner.Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.FirstName,
		&u.LastName,
		&u.Phone,
		&mainAddress,
		&addressIDs,
		&orderIDs,
		&favoriteIDs,
		&avatar,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return User{}, err
	}
	if mainAddress.Valid {
		id := int(mainAddress.Int64)
		u.MainAddressID = &id
	}
	u.AddressIDs = fromInt64Array(addressIDs)
	u.OrderIDs = fromInt64Array(orderIDs)
	u.FavoriteProductIDs = fromInt64Array(favoriteIDs)
	if avatar.Valid {
		u.AvatarPic = &avatar.String
	}
	return u, nil
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByEmailQuery, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	var mainAddress sql.NullInt64
	if u.MainAddressID != nil {
		mainAddress = sql.NullInt64{Int64: int64(*u.MainAddressID), Valid: true}
	}
	var avatar sql.NullString
	if u.AvatarPic != nil {
		avatar = sql.NullString{String: *u.AvatarPic, Valid: true}
	}

	err := r.db.QueryRow(insertUserQuery,
		u.Email,
		u.Password,
		u.FirstName,
		u.LastName,
		u.Phone,
		mainAddress,
		intArray(u.AddressIDs),
		intArray(u.OrderIDs),
		intArray(u.FavoriteProductIDs),
		avatar,
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Update(id int, update User) (User, error) {
	if update.Password == "" {
		existing, err := r.GetByID(id)
		if err != nil {
			return User{}, err
		}
		update.Password = existing.Password
	}

	var mainAddress sql.NullInt64
	if update.MainAddressID != nil {
		mainAddress = sql.NullInt64{Int64: int64(*update.MainAddressID), Valid: true}
	}
	var avatar sql.NullString
	if update.AvatarPic != nil {
		avatar = sql.NullString{String: *update.AvatarPic, Valid: true}
	}

	result, err := r.db.Exec(updateUserQuery,
		update.Email,
		update.Password,
		update.FirstName,
		update.LastName,
		update.Phone,
		mainAddress,
		intArray(update.AddressIDs),
		intArray(update.OrderIDs),
		intArray(update.FavoriteProductIDs),
		avatar,
		update.UpdatedAt,
		id,
	)
	if err != nil {
		return User{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}
	return r.GetByID(id)
}
