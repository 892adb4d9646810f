package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRoles_WithKeepsSetSemantics(t *testing.T) {
	roles := Roles{RoleUser}

	promoted := roles.With(RoleAdmin)
	assert.True(t, promoted.Contains(RoleAdmin))
	assert.Len(t, promoted, 2)

	// Adding a held role changes nothing
	assert.Len(t, promoted.With(RoleAdmin), 2)

	// The receiver is never mutated
	assert.False(t, roles.Contains(RoleAdmin))
}

func TestRoles_Without(t *testing.T) {
	roles := Roles{RoleUser, RoleAdmin}

	demoted := roles.Without(RoleAdmin)
	assert.False(t, demoted.Contains(RoleAdmin))
	assert.True(t, demoted.Contains(RoleUser))

	// Removing an absent role is a no-op
	assert.Equal(t, demoted, demoted.Without(RoleAdmin))
}

func TestRoles_NormalizedReassertsBaseRole(t *testing.T) {
	tests := []struct {
		name string
		in   Roles
		want Roles
	}{
		{name: "empty set gains the base role", in: Roles{}, want: Roles{RoleUser}},
		{name: "base role survives removal attempts", in: Roles{RoleAdmin}, want: Roles{RoleUser, RoleAdmin}},
		{name: "duplicates collapse", in: Roles{RoleUser, RoleUser, RoleAdmin}, want: Roles{RoleUser, RoleAdmin}},
		{name: "invalid entries are dropped", in: Roles{Role("root"), RoleAdmin}, want: Roles{RoleUser, RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalized())
		})
	}
}

func TestRoles_StringsRoundTrip(t *testing.T) {
	roles := Roles{RoleUser, RoleAdmin}

	ss := roles.ToStrings()
	assert.Equal(t, []string{"user", "admin"}, ss)

	back := RolesFromStrings(append(ss, "bogus"))
	assert.Equal(t, roles, back)
}

func TestAccount_IsAdmin(t *testing.T) {
	account := &Account{Roles: Roles{RoleUser}}
	assert.False(t, account.IsAdmin())

	account.Roles = account.Roles.With(RoleAdmin)
	assert.True(t, account.IsAdmin())
}
