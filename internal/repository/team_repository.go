// Package repository provides data access for the team directory.
package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tribelet/kit-service/internal/domain/model"
)

// TeamDocument is a team directory entry as stored in MongoDB. The
// normalized name column backs case-insensitive availability checks.
type TeamDocument struct {
	TeamID             string    `bson:"team_id"`
	TeamName           string    `bson:"team_name"`
	TeamNameNormalized string    `bson:"team_name_normalized"`
	Summary            string    `bson:"summary,omitempty"`
	LogoURL            string    `bson:"logo_url,omitempty"`
	Email              string    `bson:"email"`
	TeamLead           string    `bson:"team_lead,omitempty"`
	CreatedAt          time.Time `bson:"created_at"`
}

func (d TeamDocument) toModel() model.Team {
	return model.Team{
		TeamID:    d.TeamID,
		TeamName:  d.TeamName,
		Summary:   d.Summary,
		LogoURL:   d.LogoURL,
		Email:     d.Email,
		TeamLead:  d.TeamLead,
		CreatedAt: d.CreatedAt,
	}
}

// normalizeTeamName lowercases and trims a name for uniqueness checks.
func normalizeTeamName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TeamRepository provides methods for team directory operations.
type TeamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(db *MongoDB) *TeamRepository {
	return &TeamRepository{
		collection: db.Teams,
	}
}

// FindByUser returns the teams created by the given user, newest first.
func (r *TeamRepository) FindByUser(ctx context.Context, email string) ([]model.Team, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []TeamDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	teams := make([]model.Team, len(docs))
	for i, doc := range docs {
		teams[i] = doc.toModel()
	}
	return teams, nil
}

// FindByID returns the team with the given ID, or nil when absent.
func (r *TeamRepository) FindByID(ctx context.Context, teamID string) (*model.Team, error) {
	var doc TeamDocument
	err := r.collection.FindOne(ctx, bson.M{"team_id": teamID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	team := doc.toModel()
	return &team, nil
}

// NameExists reports whether a team with the given name already exists.
// The comparison is case-insensitive.
func (r *TeamRepository) NameExists(ctx context.Context, name string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"team_name_normalized": normalizeTeamName(name),
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save stores a team directory entry.
func (r *TeamRepository) Save(ctx context.Context, team model.Team) error {
	createdAt := team.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	doc := TeamDocument{
		TeamID:             team.TeamID,
		TeamName:           team.TeamName,
		TeamNameNormalized: normalizeTeamName(team.TeamName),
		Summary:            team.Summary,
		LogoURL:            team.LogoURL,
		Email:              team.Email,
		TeamLead:           team.TeamLead,
		CreatedAt:          createdAt,
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}
