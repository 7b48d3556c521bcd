package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleSatisfies(t *testing.T) {
	assert.True(t, RoleAdmin.Satisfies(RoleAdmin))
	assert.True(t, RoleAdmin.Satisfies(RoleOperator))
	assert.True(t, RoleAdmin.Satisfies(RoleViewer))
	assert.True(t, RoleOperator.Satisfies(RoleViewer))

	assert.False(t, RoleViewer.Satisfies(RoleOperator))
	assert.False(t, RoleOperator.Satisfies(RoleAdmin))

	// Unknown roles rank below every valid role and satisfy nothing.
	assert.False(t, Role("SUPERVISOR").Satisfies(RoleViewer))
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleOperator.IsValid())
	assert.True(t, RoleViewer.IsValid())
	assert.False(t, Role("SUPERVISOR").IsValid())
	assert.False(t, Role("").IsValid())
}
