package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// MaterialRepository puerto de persistencia para el catálogo de materiales.
// GetByID devuelve (nil, nil) si el material no existe.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	Update(material *entity.Material) error
	Delete(id string) error
	// List filtra por nombre o proveedor (keyword vacío = todos).
	List(keyword string, limit, offset int) ([]*entity.Material, error)
}
