// Package memory implementa los repositorios sobre mapas en memoria.
// Respalda los tests de los casos de uso y sirve como backend efímero
// en desarrollo; no persiste nada entre ejecuciones.
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Store estado compartido de los repositorios en memoria. El mutex serializa
// todas las operaciones, el equivalente grueso del bloqueo de fila de la BD.
type Store struct {
	mu        sync.Mutex
	materials map[string]entity.Material
	ledger    map[string]entity.LedgerEntry
	movements []entity.MovementRecord
	checks    []entity.CheckRecord
	alerts    []entity.Alert
	users     map[string]entity.User
}

// NewStore crea un estado vacío.
func NewStore() *Store {
	return &Store{
		materials: make(map[string]entity.Material),
		ledger:    make(map[string]entity.LedgerEntry),
		users:     make(map[string]entity.User),
	}
}

// ── Materiales ────────────────────────────────────────────────────────────────

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo catálogo en memoria.
type MaterialRepo struct{ s *Store }

// NewMaterialRepository construye el adaptador en memoria.
func NewMaterialRepository(s *Store) *MaterialRepo { return &MaterialRepo{s: s} }

func (r *MaterialRepo) Create(material *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.materials[material.ID] = *material
	return nil
}

func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.materials[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MaterialRepo) Update(material *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.materials[material.ID]; !ok {
		return domain.ErrMaterialNotFound
	}
	r.s.materials[material.ID] = *material
	return nil
}

func (r *MaterialRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.materials[id]; !ok {
		return domain.ErrMaterialNotFound
	}
	delete(r.s.materials, id)
	return nil
}

func (r *MaterialRepo) List(keyword string, limit, offset int) ([]*entity.Material, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Material
	for _, m := range r.s.materials {
		if keyword == "" || containsFold(m.Name, keyword) || containsFold(m.Supplier, keyword) {
			m := m
			out = append(out, &m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

// ── Ledger ────────────────────────────────────────────────────────────────────

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo stock actual en memoria.
type LedgerRepo struct{ s *Store }

// NewLedgerRepository construye el adaptador en memoria.
func NewLedgerRepository(s *Store) *LedgerRepo { return &LedgerRepo{s: s} }

func (r *LedgerRepo) Get(materialID string) (*entity.LedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.ledger[materialID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// GetForUpdate en memoria equivale a Get: el mutex del Store ya serializa.
func (r *LedgerRepo) GetForUpdate(materialID string) (*entity.LedgerEntry, error) {
	return r.Get(materialID)
}

func (r *LedgerRepo) Upsert(entry *entity.LedgerEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.ledger[entry.MaterialID] = *entry
	return nil
}

func (r *LedgerRepo) ListWithMaterial(keyword string, limit, offset int) ([]*repository.LedgerWithMaterial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*repository.LedgerWithMaterial
	for id, e := range r.s.ledger {
		m, ok := r.s.materials[id]
		if !ok {
			continue
		}
		if keyword != "" && !containsFold(m.Name, keyword) && !containsFold(m.Supplier, keyword) {
			continue
		}
		out = append(out, &repository.LedgerWithMaterial{Entry: e, Material: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Material.Name < out[j].Material.Name })
	return page(out, limit, offset), nil
}

// ── Movimientos ───────────────────────────────────────────────────────────────

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo registros de movimiento en memoria.
type MovementRepo struct{ s *Store }

// NewMovementRepository construye el adaptador en memoria.
func NewMovementRepository(s *Store) *MovementRepo { return &MovementRepo{s: s} }

func (r *MovementRepo) Create(record *entity.MovementRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements = append(r.s.movements, *record)
	return nil
}

func (r *MovementRepo) List(filter repository.MovementFilter) ([]*repository.MovementWithNames, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*repository.MovementWithNames
	for _, rec := range r.s.movements {
		if filter.From != nil && rec.Timestamp.Before(*filter.From) {
			continue
		}
		if filter.To != nil && rec.Timestamp.After(*filter.To) {
			continue
		}
		if filter.Kind != "" && rec.Kind != filter.Kind {
			continue
		}
		materialName := r.s.materials[rec.MaterialID].Name
		username := r.s.users[rec.UserID].Username
		if filter.MaterialKeyword != "" && !containsFold(materialName, filter.MaterialKeyword) {
			continue
		}
		if filter.UserKeyword != "" && !containsFold(username, filter.UserKeyword) {
			continue
		}
		out = append(out, &repository.MovementWithNames{
			Record:       rec,
			MaterialName: materialName,
			Username:     username,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Record.Timestamp.After(out[j].Record.Timestamp) })
	return page(out, filter.Limit, filter.Offset), nil
}

// ── Conteos ───────────────────────────────────────────────────────────────────

var _ repository.CheckRepository = (*CheckRepo)(nil)

// CheckRepo registros de conteo en memoria.
type CheckRepo struct{ s *Store }

// NewCheckRepository construye el adaptador en memoria.
func NewCheckRepository(s *Store) *CheckRepo { return &CheckRepo{s: s} }

func (r *CheckRepo) Create(record *entity.CheckRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.checks = append(r.s.checks, *record)
	return nil
}

func (r *CheckRepo) List(keyword string, limit, offset int) ([]*repository.CheckWithNames, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*repository.CheckWithNames
	for _, rec := range r.s.checks {
		materialName := r.s.materials[rec.MaterialID].Name
		if keyword != "" && !containsFold(materialName, keyword) {
			continue
		}
		out = append(out, &repository.CheckWithNames{
			Record:       rec,
			MaterialName: materialName,
			Username:     r.s.users[rec.AdjustedByUser].Username,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Record.Timestamp.After(out[j].Record.Timestamp) })
	return page(out, limit, offset), nil
}

// ── Alertas ───────────────────────────────────────────────────────────────────

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo alertas en memoria.
type AlertRepo struct{ s *Store }

// NewAlertRepository construye el adaptador en memoria.
func NewAlertRepository(s *Store) *AlertRepo { return &AlertRepo{s: s} }

func (r *AlertRepo) Create(alert *entity.Alert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.alerts = append(r.s.alerts, *alert)
	return nil
}

func (r *AlertRepo) ResolveAllByMaterial(materialID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.alerts {
		if r.s.alerts[i].MaterialID == materialID && !r.s.alerts[i].IsResolved {
			r.s.alerts[i].IsResolved = true
		}
	}
	return nil
}

func (r *AlertRepo) MarkResolved(alertID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.alerts {
		if r.s.alerts[i].ID == alertID {
			r.s.alerts[i].IsResolved = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *AlertRepo) ListUnresolvedByMaterial(materialID string) ([]*entity.Alert, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Alert
	for _, a := range r.s.alerts {
		if a.MaterialID == materialID && !a.IsResolved {
			a := a
			out = append(out, &a)
		}
	}
	return out, nil
}

func (r *AlertRepo) List(includeResolved bool, limit, offset int) ([]*repository.AlertWithMaterial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*repository.AlertWithMaterial
	for _, a := range r.s.alerts {
		if !includeResolved && a.IsResolved {
			continue
		}
		out = append(out, &repository.AlertWithMaterial{
			Alert:        a,
			MaterialName: r.s.materials[a.MaterialID].Name,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alert.GeneratedTime.After(out[j].Alert.GeneratedTime) })
	return page(out, limit, offset), nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

// NewUserRepository construye el adaptador en memoria.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(keyword string) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if keyword == "" || containsFold(u.Username, keyword) {
			u := u
			out = append(out, &u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
