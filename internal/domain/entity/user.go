package entity

import "time"

// Niveles de permiso. Los endpoints de mutación exigen al menos Operator;
// la administración de usuarios y catálogo exige Admin.
const (
	LevelViewer   = 1
	LevelOperator = 2
	LevelAdmin    = 3
)

// User operador del sistema. PasswordHash es bcrypt.
type User struct {
	ID              string
	Username        string
	PasswordHash    string
	Role            string
	PermissionLevel int
	CreatedAt       time.Time
}
