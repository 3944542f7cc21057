package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// AlertWithMaterial alerta enriquecida con el nombre del material.
type AlertWithMaterial struct {
	Alert        entity.Alert
	MaterialName string
}

// AlertRepository puerto de persistencia de alertas de stock.
type AlertRepository interface {
	Create(alert *entity.Alert) error
	// ResolveAllByMaterial marca como resueltas todas las alertas sin resolver
	// del material. Se llama siempre antes de evaluar el estado nuevo para
	// garantizar "a lo sumo una alerta sin resolver por material".
	ResolveAllByMaterial(materialID string) error
	// MarkResolved marca exactamente una alerta por ID; domain.ErrNotFound si no existe.
	MarkResolved(alertID string) error
	ListUnresolvedByMaterial(materialID string) ([]*entity.Alert, error)
	// List devuelve alertas con nombre de material, más reciente primero.
	List(includeResolved bool, limit, offset int) ([]*AlertWithMaterial, error)
}
