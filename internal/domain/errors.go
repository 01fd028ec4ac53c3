package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrBankNotFound    = errors.New("banco de sangre no encontrado")
	ErrDuplicate       = errors.New("ya existe inventario para ese banco y tipo de sangre")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidQuantity = errors.New("la cantidad no puede ser negativa")
	ErrForbidden       = errors.New("acceso denegado")
)
