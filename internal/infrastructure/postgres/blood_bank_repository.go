package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
)

var _ repository.BloodBankRepository = (*BloodBankRepo)(nil)

const bankColumns = `id, city_id, hospital_name, name, address, phone,
	emergency_phone, is_24x7, is_active, latitude, longitude, created_at, updated_at`

// BloodBankRepo implementación de lectura del directorio de bancos de sangre.
type BloodBankRepo struct {
	pool *pgxpool.Pool
}

// NewBloodBankRepository construye el adaptador.
func NewBloodBankRepository(pool *pgxpool.Pool) *BloodBankRepo {
	return &BloodBankRepo{pool: pool}
}

// GetByID obtiene un banco por id; nil si no existe.
func (r *BloodBankRepo) GetByID(ctx context.Context, id string) (*entity.BloodBank, error) {
	query := `SELECT ` + bankColumns + ` FROM blood_banks WHERE id = $1`
	b, err := scanBank(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blood bank: %w", err)
	}
	return b, nil
}

// List lista bancos con filtros y paginación; devuelve también el total.
func (r *BloodBankRepo) List(ctx context.Context, filter repository.BankFilter) ([]*entity.BloodBank, int, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.Replace(cond, "?", "$"+strconv.Itoa(len(args)), 1))
	}

	if filter.OnlyActive {
		conds = append(conds, "is_active = TRUE")
	}
	if filter.CityID != "" {
		add("city_id = ?", filter.CityID)
	}
	if filter.Is24x7 != nil {
		add("is_24x7 = ?", *filter.Is24x7)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := "$" + strconv.Itoa(len(args))
		conds = append(conds, "(name ILIKE "+n+" OR address ILIKE "+n+")")
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blood_banks`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count blood banks: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit, filter.Offset)
	query := `SELECT ` + bankColumns + ` FROM blood_banks` + where +
		` ORDER BY name ASC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list blood banks: %w", err)
	}
	defer rows.Close()

	var list []*entity.BloodBank
	for rows.Next() {
		b, err := scanBank(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan blood bank: %w", err)
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

// ListWithInventory bancos activos con su ciudad y snapshot de inventario para
// las consultas de disponibilidad. Dos consultas: bancos candidatos y luego su
// inventario en bloque.
func (r *BloodBankRepo) ListWithInventory(ctx context.Context, lookup repository.AvailabilityLookup) ([]*repository.BankWithInventory, error) {
	var (
		conds = []string{"b.is_active = TRUE"}
		args  []any
	)
	if lookup.CityID != "" {
		args = append(args, lookup.CityID)
		conds = append(conds, "b.city_id = $"+strconv.Itoa(len(args)))
	}
	if lookup.BloodType != "" {
		args = append(args, lookup.BloodType)
		exists := "EXISTS (SELECT 1 FROM blood_inventory i WHERE i.blood_bank_id = b.id AND i.blood_type = $" + strconv.Itoa(len(args))
		if lookup.OnlyAvailable {
			exists += " AND i.quantity > 0"
		}
		conds = append(conds, exists+")")
	}

	query := `
		SELECT ` + prefixColumns("b", bankColumns) + `, c.id, c.name, c.state
		FROM blood_banks b
		JOIN cities c ON c.id = b.city_id
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY b.name ASC`
	if lookup.Limit > 0 {
		args = append(args, lookup.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list banks with inventory: %w", err)
	}
	defer rows.Close()

	var (
		results []*repository.BankWithInventory
		byBank  = map[string]*repository.BankWithInventory{}
		bankIDs []string
	)
	for rows.Next() {
		var (
			b    entity.BloodBank
			city entity.City
		)
		if err := rows.Scan(
			&b.ID, &b.CityID, &b.HospitalName, &b.Name, &b.Address, &b.Phone,
			&b.EmergencyPhone, &b.Is24x7, &b.IsActive, &b.Latitude, &b.Longitude,
			&b.CreatedAt, &b.UpdatedAt,
			&city.ID, &city.Name, &city.State,
		); err != nil {
			return nil, fmt.Errorf("scan bank with city: %w", err)
		}
		item := &repository.BankWithInventory{Bank: b, City: city}
		results = append(results, item)
		byBank[b.ID] = item
		bankIDs = append(bankIDs, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(bankIDs) == 0 {
		return results, nil
	}

	invArgs := []any{bankIDs}
	invQuery := `SELECT ` + inventoryColumns + `
		FROM blood_inventory WHERE blood_bank_id = ANY($1)`
	if lookup.BloodType != "" {
		invArgs = append(invArgs, lookup.BloodType)
		invQuery += " AND blood_type = $2"
	}
	if lookup.OnlyAvailable {
		invQuery += " AND quantity > 0"
	}
	invQuery += " ORDER BY last_updated DESC"

	invRows, err := r.pool.Query(ctx, invQuery, invArgs...)
	if err != nil {
		return nil, fmt.Errorf("list inventory for banks: %w", err)
	}
	defer invRows.Close()

	for invRows.Next() {
		inv, err := scanInventory(invRows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		if item, ok := byBank[inv.BloodBankID]; ok {
			item.Inventory = append(item.Inventory, inv)
		}
	}
	return results, invRows.Err()
}

// CountActiveByCity número de bancos activos en una ciudad.
func (r *BloodBankRepo) CountActiveByCity(ctx context.Context, cityID string) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM blood_banks WHERE city_id = $1 AND is_active = TRUE`, cityID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count banks by city: %w", err)
	}
	return total, nil
}

// prefixColumns antepone el alias de tabla a cada columna de la lista.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

func scanBank(row pgx.Row) (*entity.BloodBank, error) {
	var b entity.BloodBank
	err := row.Scan(
		&b.ID, &b.CityID, &b.HospitalName, &b.Name, &b.Address, &b.Phone,
		&b.EmergencyPhone, &b.Is24x7, &b.IsActive, &b.Latitude, &b.Longitude,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
