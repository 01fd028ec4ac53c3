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

var _ repository.BloodInventoryRepository = (*BloodInventoryRepo)(nil)

const inventoryColumns = `id, blood_bank_id, blood_type, quantity, cost_per_unit,
	is_free, expiry_date, availability_status, last_updated, updated_by`

// BloodInventoryRepo implementación de BloodInventoryRepository sobre PostgreSQL.
// La unicidad de (blood_bank_id, blood_type) la garantiza un constraint único
// en la tabla; Upsert se apoya en él para ser una sola sentencia atómica.
type BloodInventoryRepo struct {
	pool *pgxpool.Pool
}

// NewBloodInventoryRepository construye el adaptador de inventario.
func NewBloodInventoryRepository(pool *pgxpool.Pool) *BloodInventoryRepo {
	return &BloodInventoryRepo{pool: pool}
}

// GetByID obtiene un registro por id; nil si no existe.
func (r *BloodInventoryRepo) GetByID(ctx context.Context, id string) (*entity.BloodInventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM blood_inventory WHERE id = $1`
	inv, err := scanInventory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return inv, nil
}

// GetByBankAndType obtiene el registro de un tipo de sangre en un banco; nil si no existe.
func (r *BloodInventoryRepo) GetByBankAndType(ctx context.Context, bankID string, bloodType entity.BloodType) (*entity.BloodInventory, error) {
	query := `SELECT ` + inventoryColumns + `
		FROM blood_inventory WHERE blood_bank_id = $1 AND blood_type = $2`
	inv, err := scanInventory(r.pool.QueryRow(ctx, query, bankID, bloodType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory by bank and type: %w", err)
	}
	return inv, nil
}

// List lista registros según el filtro. Con OnlyExpired ordena por vencimiento
// ascendente; en el resto de casos por tipo de sangre.
func (r *BloodInventoryRepo) List(ctx context.Context, filter repository.InventoryFilter) ([]*entity.BloodInventory, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.Replace(cond, "?", "$"+strconv.Itoa(len(args)), 1))
	}

	if filter.BloodBankID != "" {
		add("i.blood_bank_id = ?", filter.BloodBankID)
	}
	if filter.BloodType != "" {
		add("i.blood_type = ?", filter.BloodType)
	}
	if filter.CityID != "" {
		add("b.city_id = ?", filter.CityID)
	}
	if filter.MinQuantity != nil {
		add("i.quantity >= ?", *filter.MinQuantity)
	}
	if filter.MaxQuantity != nil {
		add("i.quantity <= ?", *filter.MaxQuantity)
	}

	query := `SELECT i.id, i.blood_bank_id, i.blood_type, i.quantity, i.cost_per_unit,
		i.is_free, i.expiry_date, i.availability_status, i.last_updated, i.updated_by
		FROM blood_inventory i
		JOIN blood_banks b ON b.id = i.blood_bank_id`
	orderBy := ` ORDER BY i.blood_type ASC`
	if filter.OnlyExpired {
		conds = append(conds, "i.expiry_date IS NOT NULL AND i.expiry_date < now() AND i.quantity > 0")
		orderBy = ` ORDER BY i.expiry_date ASC`
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += orderBy

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []*entity.BloodInventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Create inserta la primera entrada para un (banco, tipo).
// Traduce la violación del constraint único a domain.ErrDuplicate.
func (r *BloodInventoryRepo) Create(ctx context.Context, inv *entity.BloodInventory) error {
	query := `
		INSERT INTO blood_inventory (id, blood_bank_id, blood_type, quantity, cost_per_unit,
			is_free, expiry_date, availability_status, last_updated, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		inv.ID, inv.BloodBankID, inv.BloodType, inv.Quantity, inv.CostPerUnit,
		inv.IsFree, inv.ExpiryDate, inv.AvailabilityStatus, inv.LastUpdated, nullIfEmpty(inv.UpdatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// Upsert crea o sobreescribe el registro de (banco, tipo) en una sola sentencia.
// La selección del destino y la escritura son atómicas: dos updates concurrentes
// de la misma clave se serializan en el storage sin ventana de lectura-escritura.
func (r *BloodInventoryRepo) Upsert(ctx context.Context, inv *entity.BloodInventory) (*entity.BloodInventory, error) {
	query := `
		INSERT INTO blood_inventory (id, blood_bank_id, blood_type, quantity, cost_per_unit,
			is_free, expiry_date, availability_status, last_updated, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (blood_bank_id, blood_type) DO UPDATE SET
			quantity            = EXCLUDED.quantity,
			cost_per_unit       = EXCLUDED.cost_per_unit,
			is_free             = EXCLUDED.is_free,
			expiry_date         = EXCLUDED.expiry_date,
			availability_status = EXCLUDED.availability_status,
			last_updated        = EXCLUDED.last_updated,
			updated_by          = EXCLUDED.updated_by
		RETURNING ` + inventoryColumns
	persisted, err := scanInventory(r.pool.QueryRow(ctx, query,
		inv.ID, inv.BloodBankID, inv.BloodType, inv.Quantity, inv.CostPerUnit,
		inv.IsFree, inv.ExpiryDate, inv.AvailabilityStatus, inv.LastUpdated, nullIfEmpty(inv.UpdatedBy),
	))
	if err != nil {
		return nil, fmt.Errorf("upsert inventory: %w", err)
	}
	return persisted, nil
}

// Delete borra físicamente un registro por id.
func (r *BloodInventoryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM blood_inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GroupByTypeForBank acumulado por tipo de sangre de un banco.
// Por la unicidad de (banco, tipo) cada tipo aporta una sola fila.
func (r *BloodInventoryRepo) GroupByTypeForBank(ctx context.Context, bankID string) ([]repository.TypeStats, error) {
	const query = `
		SELECT blood_type, availability_status,
		       COALESCE(SUM(quantity), 0) AS total_quantity,
		       COUNT(*)                   AS record_count,
		       COUNT(*) FILTER (WHERE availability_status <> 'UNAVAILABLE') AS available_count
		FROM blood_inventory
		WHERE blood_bank_id = $1
		GROUP BY blood_type, availability_status
		ORDER BY blood_type`
	return r.queryTypeStats(ctx, query, bankID)
}

// GroupByTypeForCity acumulado por (tipo, status) sobre los bancos activos de la ciudad.
func (r *BloodInventoryRepo) GroupByTypeForCity(ctx context.Context, cityID string) ([]repository.TypeStats, error) {
	const query = `
		SELECT i.blood_type, i.availability_status,
		       COALESCE(SUM(i.quantity), 0) AS total_quantity,
		       COUNT(*)                     AS record_count,
		       COUNT(*) FILTER (WHERE i.availability_status <> 'UNAVAILABLE') AS available_count
		FROM blood_inventory i
		JOIN blood_banks b ON b.id = i.blood_bank_id
		WHERE b.city_id = $1 AND b.is_active = TRUE
		GROUP BY i.blood_type, i.availability_status
		ORDER BY i.blood_type`
	return r.queryTypeStats(ctx, query, cityID)
}

func (r *BloodInventoryRepo) queryTypeStats(ctx context.Context, query string, arg any) ([]repository.TypeStats, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("group inventory: %w", err)
	}
	defer rows.Close()

	var stats []repository.TypeStats
	for rows.Next() {
		var s repository.TypeStats
		if err := rows.Scan(&s.BloodType, &s.Status, &s.TotalQuantity, &s.RecordCount, &s.AvailableCount); err != nil {
			return nil, fmt.Errorf("scan inventory stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// scanInventory lee una fila con las columnas de inventoryColumns.
func scanInventory(row pgx.Row) (*entity.BloodInventory, error) {
	var (
		inv       entity.BloodInventory
		updatedBy *string
	)
	err := row.Scan(
		&inv.ID, &inv.BloodBankID, &inv.BloodType, &inv.Quantity, &inv.CostPerUnit,
		&inv.IsFree, &inv.ExpiryDate, &inv.AvailabilityStatus, &inv.LastUpdated, &updatedBy,
	)
	if err != nil {
		return nil, err
	}
	if updatedBy != nil {
		inv.UpdatedBy = *updatedBy
	}
	return &inv, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
