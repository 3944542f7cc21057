package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// CheckWithNames registro de conteo enriquecido con nombre de material y usuario.
type CheckWithNames struct {
	Record       entity.CheckRecord
	MaterialName string
	Username     string
}

// CheckRepository puerto de persistencia de conteos físicos (append-only).
type CheckRepository interface {
	Create(record *entity.CheckRecord) error
	// List filtra por nombre de material (keyword vacío = todos), más reciente primero.
	List(keyword string, limit, offset int) ([]*CheckWithNames, error)
}
