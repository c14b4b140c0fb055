package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// ArchivedOrder is the local record of a submitted order. The remote
// API owns the order; this archive exists for the admin dashboard.
type ArchivedOrder struct {
	ID            int64
	Reference     string
	RemoteOrderID int64
	OrderNumber   string
	CustomerEmail string
	Subtotal      float64
	Discount      float64
	DeliveryFee   float64
	Total         float64
	Status        Status
	PaymentMethod PaymentMethod
	PaymentRef    string
	Items         []Item
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Repository interface {
	SaveOrder(ctx context.Context, o Order, customer Customer, res *SubmitResult) error
	UpdateStatus(ctx context.Context, remoteOrderID int64, status Status, paymentRef string) error
	ListOrders(ctx context.Context, limit, offset int32) ([]*ArchivedOrder, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SaveOrder(ctx context.Context, o Order, customer Customer, res *SubmitResult) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO order_archive (reference,
		remote_order_id,
		order_number,
		customer_email,
		subtotal,
		discount,
		delivery_fee,
		total,
		status,
		payment_method,
		payment_ref,
		items)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		o.Reference, res.OrderID, res.OrderNumber, customer.Email,
		o.Subtotal, o.Discount, o.DeliveryFee, o.Total,
		string(o.Status), string(o.PaymentMethod), o.PaymentRef, items,
	)
	return err
}

func (r *repository) UpdateStatus(ctx context.Context, remoteOrderID int64, status Status, paymentRef string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE order_archive SET status = $1, payment_ref = $2, updated_at = NOW() WHERE remote_order_id = $3
	`, string(status), paymentRef, remoteOrderID)
	return err
}

func (r *repository) ListOrders(ctx context.Context, limit, offset int32) ([]*ArchivedOrder, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reference, remote_order_id, order_number, customer_email,
		subtotal, discount, delivery_fee, total, status, payment_method,
		payment_ref, items, created_at, updated_at
		FROM order_archive ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*ArchivedOrder
	for rows.Next() {
		var (
			o        ArchivedOrder
			rawItems []byte
		)
		if err := rows.Scan(
			&o.ID, &o.Reference, &o.RemoteOrderID, &o.OrderNumber, &o.CustomerEmail,
			&o.Subtotal, &o.Discount, &o.DeliveryFee, &o.Total, &o.Status, &o.PaymentMethod,
			&o.PaymentRef, &rawItems, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if len(rawItems) > 0 {
			if err := json.Unmarshal(rawItems, &o.Items); err != nil {
				return nil, fmt.Errorf("corrupt items payload for order %d: %w", o.ID, err)
			}
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}
