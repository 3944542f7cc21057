package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// MaterialUseCase CRUD del catálogo de materiales.
type MaterialUseCase struct {
	materialRepo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso de catálogo.
func NewMaterialUseCase(materialRepo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{materialRepo: materialRepo}
}

// Create da de alta un material. Valida nombre y umbrales (min <= max).
func (uc *MaterialUseCase) Create(in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || in.MinQuantity < 0 || in.MaxQuantity < in.MinQuantity {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	material := &entity.Material{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Supplier:    in.Supplier,
		Unit:        in.Unit,
		MinQuantity: in.MinQuantity,
		MaxQuantity: in.MaxQuantity,
		Note:        in.Note,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.materialRepo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID devuelve un material; ErrMaterialNotFound si no existe.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	material, err := uc.materialRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrMaterialNotFound
	}
	return toMaterialResponse(material), nil
}

// Update modifica nombre, proveedor, unidad, umbrales y nota de un material.
// Los cambios de umbral NO retiran alertas abiertas: la siguiente mutación
// de ese material las reconcilia con los umbrales nuevos.
func (uc *MaterialUseCase) Update(id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || in.MinQuantity < 0 || in.MaxQuantity < in.MinQuantity {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materialRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrMaterialNotFound
	}
	material.Name = in.Name
	material.Supplier = in.Supplier
	material.Unit = in.Unit
	material.MinQuantity = in.MinQuantity
	material.MaxQuantity = in.MaxQuantity
	material.Note = in.Note
	material.UpdatedAt = time.Now()
	if err := uc.materialRepo.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// Delete elimina un material del catálogo.
func (uc *MaterialUseCase) Delete(id string) error {
	material, err := uc.materialRepo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrMaterialNotFound
	}
	return uc.materialRepo.Delete(id)
}

// List devuelve materiales filtrados por nombre/proveedor.
func (uc *MaterialUseCase) List(keyword string, limit, offset int) ([]dto.MaterialResponse, error) {
	materials, err := uc.materialRepo.List(keyword, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, *toMaterialResponse(m))
	}
	return out, nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Supplier:    m.Supplier,
		Unit:        m.Unit,
		MinQuantity: m.MinQuantity,
		MaxQuantity: m.MaxQuantity,
		Note:        m.Note,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
