package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tribelet/kit-service/internal/domain/model"
)

// NameCheckDebounce is how long name edits are coalesced before the
// directory is asked about availability.
const NameCheckDebounce = 400 * time.Millisecond

// Flow step counts. The kit flow is three steps (choose, customize,
// order); the team creation flow is six.
const (
	KitFlowSteps  = 3
	TeamFlowSteps = 6
)

// Kit flow steps.
const (
	KitStepChoose = iota + 1
	KitStepCustomize
	KitStepOrder
)

// Team creation flow steps.
const (
	TeamStepPrompt = iota + 1
	TeamStepName
	TeamStepSummary
	TeamStepLogo
	TeamStepReview
	TeamStepDone
)

// ErrFlowComplete is returned when advancing past the final step.
var ErrFlowComplete = errors.New("flow already complete")

// ErrTeamDraftIncomplete is returned when confirming a team before the
// draft has a name.
var ErrTeamDraftIncomplete = errors.New("team draft is incomplete")

// FlowKind identifies which wizard a step operation targets.
type FlowKind string

const (
	FlowKit  FlowKind = "kit"
	FlowTeam FlowKind = "team"
)

// Wizard tracks progress through one linear flow. Steps are 1-based.
type Wizard struct {
	Kind  FlowKind `json:"kind"`
	Step  int      `json:"step"`
	Total int      `json:"total"`
}

// NewKitWizard returns the kit configuration flow at its first step.
func NewKitWizard() *Wizard {
	return &Wizard{Kind: FlowKit, Step: 1, Total: KitFlowSteps}
}

// NewTeamWizard returns the team creation flow at its first step.
func NewTeamWizard() *Wizard {
	return &Wizard{Kind: FlowTeam, Step: 1, Total: TeamFlowSteps}
}

// Reset returns the wizard to its first step.
func (w *Wizard) Reset() {
	w.Step = 1
}

// Done reports whether the flow has reached its final step.
func (w *Wizard) Done() bool {
	return w.Step >= w.Total
}

// NameCheck is the state of the debounced team name availability check.
type NameCheck struct {
	Pending bool `json:"pending"`
	Taken   bool `json:"taken"`

	seq   uint64
	timer *time.Timer
}

// TeamDraft accumulates the inputs of the team creation flow. Candidate
// names and logos are generated elsewhere and handed in as options; the
// draft only records what the user picked.
type TeamDraft struct {
	Prompt       string    `json:"prompt"`
	NameOptions  []string  `json:"name_options,omitempty"`
	SelectedName string    `json:"selected_name"`
	Summary      string    `json:"summary,omitempty"`
	LogoOptions  []string  `json:"logo_options,omitempty"`
	SelectedLogo string    `json:"selected_logo"`
	NameCheck    NameCheck `json:"name_check"`
}

// NewTeamDraft returns an empty draft.
func NewTeamDraft() *TeamDraft {
	return &TeamDraft{}
}

// Reset clears the draft. A scheduled name check is cancelled; one
// already in flight is invalidated by the sequence bump.
func (d *TeamDraft) Reset() {
	if d.NameCheck.timer != nil {
		d.NameCheck.timer.Stop()
	}
	seq := d.NameCheck.seq + 1
	*d = TeamDraft{}
	d.NameCheck.seq = seq
}

// StepStatus describes where a flow stands and whether it can advance.
type StepStatus struct {
	Flow       FlowKind `json:"flow"`
	Step       int      `json:"step"`
	Total      int      `json:"total"`
	CanAdvance bool     `json:"can_advance"`
	Reason     string   `json:"reason,omitempty"`
}

// WizardService drives the kit and team creation flows for a session.
type WizardService interface {
	Status(sess *Session, kind FlowKind) *StepStatus
	Advance(sess *Session, kind FlowKind) (*StepStatus, error)
	Back(sess *Session, kind FlowKind) *StepStatus

	SetPrompt(sess *Session, prompt string)
	SetNameOptions(sess *Session, options []string)
	ChooseName(sess *Session, name string)
	SetSummary(sess *Session, summary string)
	SetLogoOptions(sess *Session, options []string)
	ChooseLogo(sess *Session, logoURL string)
	NameCheckState(sess *Session) NameCheck

	ConfirmTeam(ctx context.Context, sess *Session, email string) (*model.Team, error)
}

// WizardServiceImpl implements WizardService.
type WizardServiceImpl struct {
	teams TeamService

	// debounce is swapped in tests to run checks synchronously.
	debounce time.Duration
}

// NewWizardService creates a wizard service.
func NewWizardService(teams TeamService) *WizardServiceImpl {
	return &WizardServiceImpl{
		teams:    teams,
		debounce: NameCheckDebounce,
	}
}

func (s *WizardServiceImpl) wizard(sess *Session, kind FlowKind) *Wizard {
	if kind == FlowTeam {
		return sess.TeamFlow
	}
	return sess.KitFlow
}

// Status reports the flow position and its advance gate.
func (s *WizardServiceImpl) Status(sess *Session, kind FlowKind) *StepStatus {
	sess.Lock()
	defer sess.Unlock()
	return s.statusLocked(sess, kind)
}

func (s *WizardServiceImpl) statusLocked(sess *Session, kind FlowKind) *StepStatus {
	w := s.wizard(sess, kind)
	status := &StepStatus{Flow: w.Kind, Step: w.Step, Total: w.Total}
	status.CanAdvance, status.Reason = s.gate(sess, w)
	return status
}

// gate evaluates whether the current step's requirements are met.
func (s *WizardServiceImpl) gate(sess *Session, w *Wizard) (bool, string) {
	if w.Done() {
		return false, "flow complete"
	}

	if w.Kind == FlowKit {
		if w.Step == KitStepChoose && !sess.Kit.KitType.Orderable() {
			if sess.Kit.KitType == model.KitTShirt {
				return false, "t-shirt kits are coming soon"
			}
			return false, "select a kit type"
		}
		return true, ""
	}

	draft := sess.TeamDraft
	switch w.Step {
	case TeamStepPrompt:
		if strings.TrimSpace(draft.Prompt) == "" {
			return false, "describe your team first"
		}
	case TeamStepName:
		if draft.SelectedName == "" {
			return false, "pick a team name"
		}
		if draft.NameCheck.Pending {
			return false, "name check in progress"
		}
		if draft.NameCheck.Taken {
			return false, "team name is already taken"
		}
	case TeamStepLogo:
		if draft.SelectedLogo == "" {
			return false, "pick a logo"
		}
	}
	return true, ""
}

// Advance moves the flow one step forward if its gate allows.
func (s *WizardServiceImpl) Advance(sess *Session, kind FlowKind) (*StepStatus, error) {
	sess.Lock()
	defer sess.Unlock()

	w := s.wizard(sess, kind)
	if w.Done() {
		return s.statusLocked(sess, kind), ErrFlowComplete
	}

	ok, reason := s.gate(sess, w)
	if !ok {
		return s.statusLocked(sess, kind), model.NewPreconditionViolation("advance", reason)
	}

	w.Step++
	return s.statusLocked(sess, kind), nil
}

// Back moves the flow one step backward, never below the first step.
// Going back is always allowed and loses no state.
func (s *WizardServiceImpl) Back(sess *Session, kind FlowKind) *StepStatus {
	sess.Lock()
	defer sess.Unlock()

	w := s.wizard(sess, kind)
	if w.Step > 1 {
		w.Step--
	}
	return s.statusLocked(sess, kind)
}

func (s *WizardServiceImpl) SetPrompt(sess *Session, prompt string) {
	sess.Lock()
	defer sess.Unlock()
	sess.TeamDraft.Prompt = prompt
}

func (s *WizardServiceImpl) SetNameOptions(sess *Session, options []string) {
	sess.Lock()
	defer sess.Unlock()
	sess.TeamDraft.NameOptions = options
}

// ChooseName records the picked name and schedules an availability
// check after the debounce window. Rapid re-picks cancel the previous
// timer, and a check completing after a newer pick is discarded.
func (s *WizardServiceImpl) ChooseName(sess *Session, name string) {
	sess.Lock()
	defer sess.Unlock()

	draft := sess.TeamDraft
	draft.SelectedName = name
	draft.NameCheck.seq++
	seq := draft.NameCheck.seq

	if draft.NameCheck.timer != nil {
		draft.NameCheck.timer.Stop()
	}

	if strings.TrimSpace(name) == "" {
		draft.NameCheck.Pending = false
		draft.NameCheck.Taken = false
		return
	}

	draft.NameCheck.Pending = true
	draft.NameCheck.Taken = false
	draft.NameCheck.timer = time.AfterFunc(s.debounce, func() {
		s.runNameCheck(sess, name, seq)
	})
}

// runNameCheck performs the availability lookup and applies the result
// if it is still the latest check for the draft.
func (s *WizardServiceImpl) runNameCheck(sess *Session, name string, seq uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	available := s.teams.NameAvailable(ctx, name)

	sess.Lock()
	defer sess.Unlock()
	if sess.TeamDraft.NameCheck.seq != seq {
		return
	}
	sess.TeamDraft.NameCheck.Pending = false
	sess.TeamDraft.NameCheck.Taken = !available
}

func (s *WizardServiceImpl) SetSummary(sess *Session, summary string) {
	sess.Lock()
	defer sess.Unlock()
	sess.TeamDraft.Summary = summary
}

func (s *WizardServiceImpl) SetLogoOptions(sess *Session, options []string) {
	sess.Lock()
	defer sess.Unlock()
	sess.TeamDraft.LogoOptions = options
}

func (s *WizardServiceImpl) ChooseLogo(sess *Session, logoURL string) {
	sess.Lock()
	defer sess.Unlock()
	sess.TeamDraft.SelectedLogo = logoURL
}

// NameCheckState returns the current availability check state.
func (s *WizardServiceImpl) NameCheckState(sess *Session) NameCheck {
	sess.Lock()
	defer sess.Unlock()
	return sess.TeamDraft.NameCheck
}

// ConfirmTeam finalizes the draft: the team is saved to the directory
// and bound to the kit. Saving is best-effort when the directory is not
// configured; the binding still applies so the flow can finish offline.
func (s *WizardServiceImpl) ConfirmTeam(ctx context.Context, sess *Session, email string) (*model.Team, error) {
	sess.Lock()
	draft := sess.TeamDraft
	if draft.SelectedName == "" {
		sess.Unlock()
		return nil, ErrTeamDraftIncomplete
	}

	team := model.Team{
		TeamID:    uuid.New().String(),
		TeamName:  draft.SelectedName,
		Summary:   draft.Summary,
		LogoURL:   draft.SelectedLogo,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	sess.Unlock()

	if err := s.teams.SaveTeam(ctx, team); err != nil && !errors.Is(err, ErrDirectoryNotConfigured) {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Kit.ApplyTeam(team.Binding())
	sess.TeamFlow.Step = TeamStepDone
	return &team, nil
}
