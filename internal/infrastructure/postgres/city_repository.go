package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
)

var _ repository.CityRepository = (*CityRepo)(nil)

// CityRepo lectura del directorio de ciudades.
type CityRepo struct {
	pool *pgxpool.Pool
}

// NewCityRepository construye el adaptador.
func NewCityRepository(pool *pgxpool.Pool) *CityRepo {
	return &CityRepo{pool: pool}
}

// GetByID obtiene una ciudad por id; nil si no existe.
func (r *CityRepo) GetByID(ctx context.Context, id string) (*entity.City, error) {
	var c entity.City
	err := r.pool.QueryRow(ctx, `SELECT id, name, state FROM cities WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.State)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get city: %w", err)
	}
	return &c, nil
}

// List lista todas las ciudades ordenadas por nombre.
func (r *CityRepo) List(ctx context.Context) ([]*entity.City, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, state FROM cities ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var list []*entity.City
	for rows.Next() {
		var c entity.City
		if err := rows.Scan(&c.ID, &c.Name, &c.State); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
