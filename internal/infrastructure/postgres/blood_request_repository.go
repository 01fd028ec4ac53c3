package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/red-vital/internal/domain"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
)

var _ repository.BloodRequestRepository = (*BloodRequestRepo)(nil)

// BloodRequestRepo persistencia de solicitudes de sangre sobre PostgreSQL.
type BloodRequestRepo struct {
	pool *pgxpool.Pool
}

// NewBloodRequestRepository construye el adaptador.
func NewBloodRequestRepository(pool *pgxpool.Pool) *BloodRequestRepo {
	return &BloodRequestRepo{pool: pool}
}

// Create persiste una nueva solicitud.
func (r *BloodRequestRepo) Create(ctx context.Context, req *entity.BloodRequest) error {
	query := `
		INSERT INTO blood_requests (id, requester_id, city_id, blood_type, units,
			urgency, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		req.ID, req.RequesterID, req.CityID, req.BloodType, req.Units,
		req.Urgency, req.Status, req.Notes, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert blood request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por id; nil si no existe.
func (r *BloodRequestRepo) GetByID(ctx context.Context, id string) (*entity.BloodRequest, error) {
	query := `
		SELECT id, requester_id, city_id, blood_type, units, urgency, status, notes, created_at, updated_at
		FROM blood_requests WHERE id = $1`
	var req entity.BloodRequest
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.RequesterID, &req.CityID, &req.BloodType, &req.Units,
		&req.Urgency, &req.Status, &req.Notes, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blood request: %w", err)
	}
	return &req, nil
}

// List lista solicitudes según el filtro, más recientes primero.
func (r *BloodRequestRepo) List(ctx context.Context, filter repository.RequestFilter) ([]*entity.BloodRequest, error) {
	var (
		conds []string
		args  []any
	)
	add := func(col string, arg any) {
		args = append(args, arg)
		conds = append(conds, col+" = $"+strconv.Itoa(len(args)))
	}
	if filter.RequesterID != "" {
		add("requester_id", filter.RequesterID)
	}
	if filter.CityID != "" {
		add("city_id", filter.CityID)
	}
	if filter.Status != "" {
		add("status", filter.Status)
	}

	query := `
		SELECT id, requester_id, city_id, blood_type, units, urgency, status, notes, created_at, updated_at
		FROM blood_requests`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blood requests: %w", err)
	}
	defer rows.Close()

	var list []*entity.BloodRequest
	for rows.Next() {
		var req entity.BloodRequest
		if err := rows.Scan(
			&req.ID, &req.RequesterID, &req.CityID, &req.BloodType, &req.Units,
			&req.Urgency, &req.Status, &req.Notes, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan blood request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una solicitud.
func (r *BloodRequestRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE blood_requests SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update blood request status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
