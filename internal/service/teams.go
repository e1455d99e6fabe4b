package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tribelet/kit-service/internal/domain/model"
	"github.com/tribelet/kit-service/internal/metrics"
	"github.com/tribelet/kit-service/internal/repository"
)

// ErrDirectoryNotConfigured is returned when the team directory is not configured.
var ErrDirectoryNotConfigured = errors.New("team directory not configured")

// ErrTeamNotFound is returned when a team ID does not resolve.
var ErrTeamNotFound = errors.New("team not found")

// TeamService provides team directory operations.
type TeamService interface {
	TeamsByUser(ctx context.Context, email string) ([]model.Team, error)
	TeamByID(ctx context.Context, teamID string) (*model.Team, error)
	NameAvailable(ctx context.Context, name string) bool
	SaveTeam(ctx context.Context, team model.Team) error
}

// TeamServiceImpl implements TeamService on top of a team repository.
type TeamServiceImpl struct {
	teamRepo repository.TeamRepositoryInterface
}

// NewTeamService creates a new team service. A nil repository yields a
// service whose operations report ErrDirectoryNotConfigured, except for
// NameAvailable which stays optimistic.
func NewTeamService(teamRepo repository.TeamRepositoryInterface) TeamService {
	if teamRepo == nil {
		return &TeamServiceImpl{}
	}
	return &TeamServiceImpl{
		teamRepo: teamRepo,
	}
}

func (s *TeamServiceImpl) TeamsByUser(ctx context.Context, email string) ([]model.Team, error) {
	if s.teamRepo == nil {
		return nil, ErrDirectoryNotConfigured
	}
	return s.teamRepo.FindByUser(ctx, email)
}

func (s *TeamServiceImpl) TeamByID(ctx context.Context, teamID string) (*model.Team, error) {
	if s.teamRepo == nil {
		return nil, ErrDirectoryNotConfigured
	}
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

// NameAvailable reports whether a team name is free to use. Lookup
// failures resolve to available: the check is advisory and must not
// block the creation flow when the directory is down.
func (s *TeamServiceImpl) NameAvailable(ctx context.Context, name string) bool {
	if s.teamRepo == nil {
		metrics.RecordNameCheck("error")
		return true
	}

	exists, err := s.teamRepo.NameExists(ctx, strings.TrimSpace(name))
	if err != nil {
		log.Warn().Err(err).Str("team_name", name).Msg("Name availability check failed, assuming available")
		metrics.RecordNameCheck("error")
		return true
	}

	if exists {
		metrics.RecordNameCheck("taken")
		return false
	}
	metrics.RecordNameCheck("available")
	return true
}

func (s *TeamServiceImpl) SaveTeam(ctx context.Context, team model.Team) error {
	if s.teamRepo == nil {
		return ErrDirectoryNotConfigured
	}
	return s.teamRepo.Save(ctx, team)
}
