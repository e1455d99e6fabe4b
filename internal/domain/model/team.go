package model

import "time"

// Team is a previously created team as stored in the team directory.
type Team struct {
	TeamID    string    `json:"team_id" bson:"team_id"`
	TeamName  string    `json:"team_name" bson:"team_name"`
	Summary   string    `json:"summary,omitempty" bson:"summary,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	Email     string    `json:"email" bson:"email"`
	TeamLead  string    `json:"team_lead,omitempty" bson:"team_lead,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// Binding converts the team to the reference carried in kit state.
func (t Team) Binding() TeamBinding {
	return TeamBinding{
		TeamID:   t.TeamID,
		TeamName: t.TeamName,
		LogoURL:  t.LogoURL,
	}
}
