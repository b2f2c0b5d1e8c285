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

var _ repository.ProcurementRequestRepository = (*ProcurementRequestRepo)(nil)

const procurementColumns = `id, number, supplier_id, requested_by, status, total_amount, notes, created_at, updated_at`

// ProcurementRequestRepo implementación del puerto sobre PostgreSQL.
type ProcurementRequestRepo struct {
	pool *pgxpool.Pool
}

// NewProcurementRequestRepository construye el adaptador de persistencia.
func NewProcurementRequestRepository(pool *pgxpool.Pool) *ProcurementRequestRepo {
	return &ProcurementRequestRepo{pool: pool}
}

// Create persiste una nueva solicitud y asigna el ID generado.
func (r *ProcurementRequestRepo) Create(req *entity.ProcurementRequest) error {
	query := `
		INSERT INTO procurement_requests (number, supplier_id, requested_by, status, total_amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		req.Number, req.SupplierID, req.RequestedBy, req.Status, req.TotalAmount, req.Notes,
		req.CreatedAt, req.UpdatedAt,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("insert procurement request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *ProcurementRequestRepo) GetByID(id int64) (*entity.ProcurementRequest, error) {
	query := `SELECT ` + procurementColumns + ` FROM procurement_requests WHERE id = $1`
	var req entity.ProcurementRequest
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&req.ID, &req.Number, &req.SupplierID, &req.RequestedBy, &req.Status,
		&req.TotalAmount, &req.Notes, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get procurement request: %w", err)
	}
	return &req, nil
}

// Update actualiza una solicitud.
func (r *ProcurementRequestRepo) Update(req *entity.ProcurementRequest) error {
	query := `
		UPDATE procurement_requests SET status = $2, total_amount = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		req.ID, req.Status, req.TotalAmount, req.Notes, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update procurement request: %w", err)
	}
	return nil
}

// List lista solicitudes con paginación.
func (r *ProcurementRequestRepo) List(limit, offset int) ([]*entity.ProcurementRequest, error) {
	query := `SELECT ` + procurementColumns + ` FROM procurement_requests
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// ListBySupplier lista solicitudes de un proveedor con paginación.
func (r *ProcurementRequestRepo) ListBySupplier(supplierID int64, limit, offset int) ([]*entity.ProcurementRequest, error) {
	query := `SELECT ` + procurementColumns + ` FROM procurement_requests WHERE supplier_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryMany(query, supplierID, limit, offset)
}

func (r *ProcurementRequestRepo) queryMany(query string, args ...any) ([]*entity.ProcurementRequest, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list procurement requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProcurementRequest
	for rows.Next() {
		var req entity.ProcurementRequest
		if err := rows.Scan(
			&req.ID, &req.Number, &req.SupplierID, &req.RequestedBy, &req.Status,
			&req.TotalAmount, &req.Notes, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan procurement request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}
