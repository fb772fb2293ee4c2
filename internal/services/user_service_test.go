package services

import (
	"testing"

	"github.com/proplens/proplens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertUserPreservesLocalRole(t *testing.T) {
	db := newTestDB(t)

	email := "agent@example.com"
	first := "Ada"
	saved, err := UpsertUser(db, &models.User{ID: "u1", Email: &email, FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, saved.Role)

	// Promote locally, then mirror the profile again
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", "u1").
		Update("role", models.RoleAdmin).Error)

	renamed := "Grace"
	saved, err = UpsertUser(db, &models.User{ID: "u1", Email: &email, FirstName: &renamed})
	require.NoError(t, err)
	require.NotNil(t, saved.FirstName)
	assert.Equal(t, "Grace", *saved.FirstName)
	// Role is managed locally and survives the mirror
	assert.Equal(t, models.RoleAdmin, saved.Role)
}

func TestCanModifyProperty(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "owner", models.RoleAgent)
	createUser(t, db, "admin", models.RoleAdmin)
	createUser(t, db, "other", models.RoleAgent)

	owner := "owner"
	property := &models.Property{
		Title: "Owned", Price: 100000, Address: "St", City: "Austin", State: "TX",
		ZipCode: "78701", PropertyType: models.TypeCondo, Status: models.StatusForSale, AgentID: &owner,
	}
	require.NoError(t, db.Create(property).Error)

	allowed, err := CanModifyProperty(db, "owner", property)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = CanModifyProperty(db, "admin", property)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = CanModifyProperty(db, "other", property)
	require.NoError(t, err)
	assert.False(t, allowed)

	// Identities never mirrored locally get no admin shortcut
	allowed, err = CanModifyProperty(db, "stranger", property)
	require.NoError(t, err)
	assert.False(t, allowed)
}
