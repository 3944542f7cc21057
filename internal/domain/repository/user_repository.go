package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
// FindByUsername devuelve (nil, nil) si no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	List(keyword string) ([]*entity.User, error)
}
