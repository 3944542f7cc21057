package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MovementFilter criterios del visor de movimientos (rango de fechas, tipo,
// material y usuario). Campos vacíos/nil no filtran.
type MovementFilter struct {
	From            *time.Time
	To              *time.Time
	Kind            string
	MaterialKeyword string
	UserKeyword     string
	Limit           int
	Offset          int
}

// MovementWithNames movimiento enriquecido con nombre de material y usuario.
type MovementWithNames struct {
	Record       entity.MovementRecord
	MaterialName string
	Username     string
}

// MovementRepository puerto de persistencia de movimientos (append-only).
type MovementRepository interface {
	Create(record *entity.MovementRecord) error
	List(filter MovementFilter) ([]*MovementWithNames, error)
}
