package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"

	"github.com/SlavaShagalov/blog-platform/internal/models"
)

type PolicySuite struct {
	suite.Suite
}

func (s *PolicySuite) TestCanAuthor(t provider.T) {
	t.Require().True(models.RoleAdmin.CanAuthor())
	t.Require().True(models.RoleEditor.CanAuthor())
	t.Require().False(models.RoleUser.CanAuthor())
	t.Require().False(models.Role("Moderator").CanAuthor())
	t.Require().False(models.Role("").CanAuthor())
}

func (s *PolicySuite) TestAdminBypassesOwnership(t provider.T) {
	actor := uuid.New()
	owner := uuid.New()

	t.Require().True(models.CanModify(actor, models.RoleAdmin, owner))
}

func (s *PolicySuite) TestOwnerCanModify(t provider.T) {
	owner := uuid.New()

	t.Require().True(models.CanModify(owner, models.RoleUser, owner))
	t.Require().True(models.CanModify(owner, models.RoleEditor, owner))
}

func (s *PolicySuite) TestNonOwnerCannotModify(t provider.T) {
	actor := uuid.New()
	owner := uuid.New()

	t.Require().False(models.CanModify(actor, models.RoleUser, owner))
	t.Require().False(models.CanModify(actor, models.RoleEditor, owner))
}

func (s *PolicySuite) TestRoleValid(t provider.T) {
	t.Require().True(models.RoleAdmin.Valid())
	t.Require().True(models.RoleEditor.Valid())
	t.Require().True(models.RoleUser.Valid())
	t.Require().False(models.Role("admin").Valid())
	t.Require().False(models.Role("").Valid())
}

func (s *PolicySuite) TestCategoryValid(t provider.T) {
	t.Require().True(models.CategoryGeneral.Valid())
	t.Require().True(models.CategoryTechnology.Valid())
	t.Require().False(models.Category("Sports").Valid())
	t.Require().False(models.Category("").Valid())
}

func TestPolicySuite(t *testing.T) {
	suite.RunSuite(t, new(PolicySuite))
}
