package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
	"github.com/aladdin-chain/ycms-api/internal/domain/repository"
)

var _ repository.DeliveryNoteRepository = (*DeliveryNoteRepo)(nil)

const deliveryColumns = `id, number, supplier_id, procurement_request_id, created_by, status, total_amount, notes, created_at, updated_at`

// DeliveryNoteRepo implementación del puerto sobre PostgreSQL.
type DeliveryNoteRepo struct {
	pool *pgxpool.Pool
}

// NewDeliveryNoteRepository construye el adaptador de persistencia.
func NewDeliveryNoteRepository(pool *pgxpool.Pool) *DeliveryNoteRepo {
	return &DeliveryNoteRepo{pool: pool}
}

// Create persiste una nueva nota de entrega y asigna el ID generado.
func (r *DeliveryNoteRepo) Create(note *entity.DeliveryNote) error {
	query := `
		INSERT INTO delivery_notes (number, supplier_id, procurement_request_id, created_by, status, total_amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		note.Number, note.SupplierID, note.ProcurementRequestID, note.CreatedBy,
		note.Status, note.TotalAmount, note.Notes, note.CreatedAt, note.UpdatedAt,
	).Scan(&note.ID)
	if err != nil {
		return fmt.Errorf("insert delivery note: %w", err)
	}
	return nil
}

// GetByID obtiene una nota por ID.
func (r *DeliveryNoteRepo) GetByID(id int64) (*entity.DeliveryNote, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery_notes WHERE id = $1`
	var n entity.DeliveryNote
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.Number, &n.SupplierID, &n.ProcurementRequestID, &n.CreatedBy,
		&n.Status, &n.TotalAmount, &n.Notes, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery note: %w", err)
	}
	return &n, nil
}

// Update actualiza una nota de entrega.
func (r *DeliveryNoteRepo) Update(note *entity.DeliveryNote) error {
	query := `
		UPDATE delivery_notes SET status = $2, total_amount = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		note.ID, note.Status, note.TotalAmount, note.Notes, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update delivery note: %w", err)
	}
	return nil
}

// List lista notas de entrega con paginación.
func (r *DeliveryNoteRepo) List(limit, offset int) ([]*entity.DeliveryNote, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery_notes
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// ListBySupplier lista notas de un proveedor con paginación.
func (r *DeliveryNoteRepo) ListBySupplier(supplierID int64, limit, offset int) ([]*entity.DeliveryNote, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery_notes WHERE supplier_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryMany(query, supplierID, limit, offset)
}

func (r *DeliveryNoteRepo) queryMany(query string, args ...any) ([]*entity.DeliveryNote, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list delivery notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryNote
	for rows.Next() {
		var n entity.DeliveryNote
		if err := rows.Scan(
			&n.ID, &n.Number, &n.SupplierID, &n.ProcurementRequestID, &n.CreatedBy,
			&n.Status, &n.TotalAmount, &n.Notes, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan delivery note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
