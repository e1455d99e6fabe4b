//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribelet/kit-service/internal/domain/model"
)

func TestTeamRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	team := model.Team{
		TeamID:    "team-1",
		TeamName:  "Thunder Bolts",
		Summary:   "Sunday league legends",
		LogoURL:   "https://cdn.example.com/logos/bolts.png",
		Email:     "captain@example.com",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Save(ctx, team))

	found, err := repo.FindByID(ctx, "team-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Thunder Bolts", found.TeamName)
	assert.Equal(t, "captain@example.com", found.Email)
	assert.Equal(t, "https://cdn.example.com/logos/bolts.png", found.LogoURL)
}

func TestTeamRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)

	found, err := repo.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTeamRepository_FindByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	for i, name := range []string{"Alpha", "Bravo"} {
		require.NoError(t, repo.Save(ctx, model.Team{
			TeamID:    name,
			TeamName:  name,
			Email:     "owner@example.com",
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, repo.Save(ctx, model.Team{
		TeamID:   "other",
		TeamName: "Other",
		Email:    "someone-else@example.com",
	}))

	teams, err := repo.FindByUser(ctx, "owner@example.com")
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Bravo", teams[0].TeamName, "newest first")
}

func TestTeamRepository_NameExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, model.Team{
		TeamID:   "team-1",
		TeamName: "Thunder Bolts",
		Email:    "captain@example.com",
	}))

	tests := []struct {
		name     string
		query    string
		expected bool
	}{
		{name: "exact match", query: "Thunder Bolts", expected: true},
		{name: "case insensitive", query: "thunder bolts", expected: true},
		{name: "surrounding whitespace", query: "  Thunder Bolts  ", expected: true},
		{name: "different name", query: "Lightning", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := repo.NameExists(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestTeamRepository_Save_DuplicateNameRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, model.Team{
		TeamID:   "team-1",
		TeamName: "Thunder Bolts",
		Email:    "a@example.com",
	}))

	err := repo.Save(ctx, model.Team{
		TeamID:   "team-2",
		TeamName: "THUNDER BOLTS",
		Email:    "b@example.com",
	})
	assert.Error(t, err, "normalized name index rejects duplicates")
}
