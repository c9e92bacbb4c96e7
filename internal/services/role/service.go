package role

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kiliclub/clubdesk/internal/bus"
	"github.com/kiliclub/clubdesk/internal/dependencies/clock"
	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/storage"
)

// Service manages role configurations. The seeded default roles are
// read-only: they can neither be edited nor deleted.
type Service struct {
	storage storage.Storage
	bus     *bus.Bus
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a role service
func New(storage storage.Storage, b *bus.Bus, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		bus:     b,
		clock:   clk,
		logger:  logger.With(slog.String("component", "role")),
	}
}

// EnsureDefaults seeds the default roles into an empty role collection.
// Safe to call on every startup.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	roles, err := s.storage.LoadRoles(ctx)
	if err != nil {
		return err
	}
	if len(roles) > 0 {
		return nil
	}

	if err := s.storage.SaveRoles(ctx, model.DefaultRoles(s.clock.Now())); err != nil {
		return err
	}
	s.bus.Publish(model.TopicRoles)
	s.logger.Info("seeded default roles")
	return nil
}

// Params carries the editable role fields
type Params struct {
	Name        string
	Description string
	Permissions []string
}

// Create adds a custom role. Names must be unique, case-insensitively.
func (s *Service) Create(ctx context.Context, params Params) (*model.Role, error) {
	roles, err := s.storage.LoadRoles(ctx)
	if err != nil {
		return nil, err
	}

	for i := range roles {
		if strings.EqualFold(roles[i].Name, params.Name) {
			return nil, model.ErrRoleNameExists
		}
	}

	r := model.Role{
		ID:          model.RoleID(uuid.NewString()),
		Name:        params.Name,
		Description: params.Description,
		Permissions: params.Permissions,
		CreatedAt:   s.clock.Now(),
	}
	if r.Permissions == nil {
		r.Permissions = []string{}
	}

	roles = append(roles, r)
	if err := s.storage.SaveRoles(ctx, roles); err != nil {
		return nil, err
	}
	s.bus.Publish(model.TopicRoles)

	s.logger.Info("role created", slog.String("role_id", string(r.ID)), slog.String("name", r.Name))
	return &r, nil
}

// Get retrieves a role by id
func (s *Service) Get(ctx context.Context, id model.RoleID) (*model.Role, error) {
	roles, err := s.storage.LoadRoles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range roles {
		if roles[i].ID == id {
			return &roles[i], nil
		}
	}
	return nil, model.ErrRoleNotFound
}

// List returns all roles in insertion order
func (s *Service) List(ctx context.Context) ([]model.Role, error) {
	return s.storage.LoadRoles(ctx)
}

// Update edits a custom role. Default roles are locked.
func (s *Service) Update(ctx context.Context, id model.RoleID, params Params) (*model.Role, error) {
	roles, err := s.storage.LoadRoles(ctx)
	if err != nil {
		return nil, err
	}

	for i := range roles {
		if roles[i].ID != id {
			continue
		}
		if roles[i].IsDefault {
			return nil, model.ErrDefaultRoleLocked
		}
		for j := range roles {
			if j != i && strings.EqualFold(roles[j].Name, params.Name) {
				return nil, model.ErrRoleNameExists
			}
		}

		roles[i].Name = params.Name
		roles[i].Description = params.Description
		if params.Permissions != nil {
			roles[i].Permissions = params.Permissions
		}

		if err := s.storage.SaveRoles(ctx, roles); err != nil {
			return nil, err
		}
		s.bus.Publish(model.TopicRoles)

		updated := roles[i]
		return &updated, nil
	}
	return nil, model.ErrRoleNotFound
}

// Delete removes a custom role. Default roles are locked.
func (s *Service) Delete(ctx context.Context, id model.RoleID) error {
	roles, err := s.storage.LoadRoles(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range roles {
		if roles[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ErrRoleNotFound
	}
	if roles[idx].IsDefault {
		return model.ErrDefaultRoleLocked
	}

	roles = append(roles[:idx], roles[idx+1:]...)
	if err := s.storage.SaveRoles(ctx, roles); err != nil {
		return err
	}
	s.bus.Publish(model.TopicRoles)
	return nil
}
