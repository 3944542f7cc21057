package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// LedgerRepository puerto para consultar/actualizar el stock actual por material.
// Get y GetForUpdate devuelven (nil, nil) si el material no tiene fila de stock:
// la ausencia de fila es significativa (una salida sobre material sin historial
// se rechaza, una entrada lo inicializa).
type LedgerRepository interface {
	Get(materialID string) (*entity.LedgerEntry, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); usar dentro
	// de una transacción para serializar mutadores concurrentes del mismo material.
	GetForUpdate(materialID string) (*entity.LedgerEntry, error)
	Upsert(entry *entity.LedgerEntry) error
	// ListWithMaterial devuelve stock actual junto con los datos del material
	// (pantalla de consulta de inventario). keyword filtra nombre/proveedor.
	ListWithMaterial(keyword string, limit, offset int) ([]*LedgerWithMaterial, error)
}

// LedgerWithMaterial fila de la consulta de inventario (stock + catálogo).
type LedgerWithMaterial struct {
	Entry    entity.LedgerEntry
	Material entity.Material
}
