package order

import (
	"database/sql"
	"encoding/json"

	"github.com/ecohero/storefront-backend/internal/cart"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `id, reference, order_number, user_id, items, subtotal, discount, shipping, tax, total, promo_code, status,
		first_name, last_name, email, address, city, state, zip_code, country, phone, payment_method, created_at`

	insertOrderQuery = `
		INSERT INTO "order" (reference, order_number, user_id, items, subtotal, discount, shipping, tax, total, promo_code, status,
			first_name, last_name, email, address, city, state, zip_code, country, phone, payment_method, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
		RETURNING id
	`
	listOrdersByUserQuery = `
		SELECT ` + orderColumns + `
		FROM "order"
		WHERE user_id = $1
		ORDER BY id DESC
	`
	getOrderByIDQuery = `
		SELECT ` + orderColumns + `
		FROM "order"
		WHERE id = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		o        Order
		rawItems []byte
	)
	err := row.Scan(
		&o.ID,
		&o.Reference,
		&o.OrderNumber,
		&o.UserID,
		&rawItems,
		&o.Subtotal,
		&o.Discount,
		&o.Shipping,
		&o.Tax,
		&o.Total,
		&o.PromoCode,
		&o.Status,
		&o.ShippingInfo.FirstName,
		&o.ShippingInfo.LastName,
		&o.ShippingInfo.Email,
		&o.ShippingInfo.Address,
		&o.ShippingInfo.City,
		&o.ShippingInfo.State,
		&o.ShippingInfo.ZipCode,
		&o.ShippingInfo.Country,
		&o.ShippingInfo.Phone,
		&o.PaymentMethod,
		&o.CreatedAt,
	)
	if err != nil {
		return Order{}, err
	}
	if len(rawItems) > 0 {
		var items []cart.Item
		if err := json.Unmarshal(rawItems, &items); err == nil {
			o.Items = items
		}
	}
	return o, nil
}

func (r *PostgresRepository) Add(o Order) (Order, error) {
	rawItems, err := json.Marshal(o.Items)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRow(insertOrderQuery,
		o.Reference,
		o.OrderNumber,
		o.UserID,
		rawItems,
		o.Subtotal,
		o.Discount,
		o.Shipping,
		o.Tax,
		o.Total,
		o.PromoCode,
		o.Status,
		o.ShippingInfo.FirstName,
		o.ShippingInfo.LastName,
		o.ShippingInfo.Email,
		o.ShippingInfo.Address,
		o.ShippingInfo.City,
		o.ShippingInfo.State,
		o.ShippingInfo.ZipCode,
		o.ShippingInfo.Country,
		o.ShippingInfo.Phone,
		o.PaymentMethod,
		o.CreatedAt,
	).Scan(&o.ID)
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(listOrdersByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	row := r.db.QueryRow(getOrderByIDQuery, id)
	o, err := scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return o, nil
}
