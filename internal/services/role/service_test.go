package role

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/kiliclub/clubdesk/internal/bus"
	"github.com/kiliclub/clubdesk/internal/dependencies/mocks"
	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/storage/memory"
	"github.com/kiliclub/clubdesk/internal/testutil"
)

type RoleServiceSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
}

func TestRoleServiceSuite(t *testing.T) {
	suite.Run(t, new(RoleServiceSuite))
}

func (s *RoleServiceSuite) SetupTest() {
	clk := mocks.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(memory.New(), bus.New(testutil.NopLogger()), clk, testutil.NopLogger())
	s.ctx = context.Background()
	s.Require().NoError(s.service.EnsureDefaults(s.ctx))
}

func (s *RoleServiceSuite) TestEnsureDefaultsIdempotent() {
	s.Require().NoError(s.service.EnsureDefaults(s.ctx))

	roles, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(roles, 2)
	s.Equal(model.RoleIDAdministrator, roles[0].ID)
	s.Equal(model.RoleIDPlayer, roles[1].ID)
	s.True(roles[0].IsDefault)
	s.True(roles[1].IsDefault)
}

func (s *RoleServiceSuite) TestCreateCustomRole() {
	r, err := s.service.Create(s.ctx, Params{
		Name:        "Coach",
		Description: "Runs training sessions",
		Permissions: []string{"view_schedule", "manage_sessions"},
	})
	s.Require().NoError(err)

	s.NotEmpty(r.ID)
	s.False(r.IsDefault)

	roles, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(roles, 3)
}

func (s *RoleServiceSuite) TestCreateNilPermissionsBecomesEmpty() {
	r, err := s.service.Create(s.ctx, Params{Name: "Observer"})
	s.Require().NoError(err)
	s.NotNil(r.Permissions)
	s.Empty(r.Permissions)
}

func (s *RoleServiceSuite) TestCreateDuplicateNameRejected() {
	_, err := s.service.Create(s.ctx, Params{Name: "Coach"})
	s.Require().NoError(err)

	_, err = s.service.Create(s.ctx, Params{Name: "coach"})
	s.ErrorIs(err, model.ErrRoleNameExists)

	// Clashing with a seeded role counts too
	_, err = s.service.Create(s.ctx, Params{Name: "administrator"})
	s.ErrorIs(err, model.ErrRoleNameExists)
}

func (s *RoleServiceSuite) TestUpdateCustomRole() {
	r, err := s.service.Create(s.ctx, Params{Name: "Coach"})
	s.Require().NoError(err)

	updated, err := s.service.Update(s.ctx, r.ID, Params{
		Name:        "Head Coach",
		Description: "Senior coaching staff",
		Permissions: []string{"manage_sessions"},
	})
	s.Require().NoError(err)
	s.Equal("Head Coach", updated.Name)
	s.Equal([]string{"manage_sessions"}, updated.Permissions)
}

func (s *RoleServiceSuite) TestUpdateRejectsNameCollision() {
	a, err := s.service.Create(s.ctx, Params{Name: "Coach"})
	s.Require().NoError(err)
	_, err = s.service.Create(s.ctx, Params{Name: "Treasurer"})
	s.Require().NoError(err)

	_, err = s.service.Update(s.ctx, a.ID, Params{Name: "treasurer"})
	s.ErrorIs(err, model.ErrRoleNameExists)
}

func (s *RoleServiceSuite) TestDefaultRolesLocked() {
	_, err := s.service.Update(s.ctx, model.RoleIDAdministrator, Params{Name: "Root"})
	s.ErrorIs(err, model.ErrDefaultRoleLocked)

	s.ErrorIs(s.service.Delete(s.ctx, model.RoleIDPlayer), model.ErrDefaultRoleLocked)
}

func (s *RoleServiceSuite) TestDeleteCustomRole() {
	r, err := s.service.Create(s.ctx, Params{Name: "Coach"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, r.ID))

	_, err = s.service.Get(s.ctx, r.ID)
	s.ErrorIs(err, model.ErrRoleNotFound)
	s.ErrorIs(s.service.Delete(s.ctx, r.ID), model.ErrRoleNotFound)
}
