package repository

import (
	"context"

	"github.com/tu-usuario/red-vital/internal/domain/entity"
)

// CityRepository puerto de lectura de ciudades (directorio externo al núcleo).
type CityRepository interface {
	GetByID(ctx context.Context, id string) (*entity.City, error)
	List(ctx context.Context) ([]*entity.City, error)
}
