package service

import (
	"context"
	"errors"
	"time"

	"github.com/tribelet/kit-service/internal/domain/model"
	"github.com/tribelet/kit-service/internal/metrics"
)

// Special team selector values alongside real team IDs.
const (
	TeamSelectNone      = "no-team"
	TeamSelectCreateNew = "create-new"
)

// ErrStaleUpload is returned when an upload finishes validating after a
// newer upload was started for the same slot. The result is discarded.
var ErrStaleUpload = errors.New("upload superseded by a newer one")

// TeamSelection is the outcome of selecting a team for the kit.
type TeamSelection struct {
	// RequiresSetup is true when the selection asks for a new team; no
	// state changes until the creation flow confirms.
	RequiresSetup bool
	Team          *model.TeamBinding
}

// KitService applies customization operations to a session's kit state.
// All mutations run under the session lock; methods return the resulting
// state so handlers can echo it back in one round trip.
type KitService interface {
	SetKitType(sess *Session, kitType model.KitType) error
	SetColor(sess *Session, color model.GarmentColor)
	SetEmblemManual(sess *Session, color model.EmblemColor) error
	SetEmblemAuto(sess *Session)
	AttachPlacementImage(sess *Session, side model.PlacementSide, data []byte) (model.ImageAsset, error)
	AttachTeamLogo(sess *Session, data []byte) (model.ImageAsset, error)
	UseTeamLogo(sess *Session, side model.PlacementSide, use bool) error
	SetPlacementVisible(sess *Session, side model.PlacementSide, visible bool)
	SetPlacementScale(sess *Session, side model.PlacementSide, percent int)
	SetBackPrintEnabled(sess *Session, enabled bool)
	SetBackPrintText(sess *Session, text string) error
	SetBackPrintFont(sess *Session, font model.BackPrintFont) error
	SetBackPrintScale(sess *Session, percent int)
	SetBackPrintPosition(sess *Session, percent int)
	SetDesignName(sess *Session, name string)
	SelectTeam(ctx context.Context, sess *Session, selection string) (*TeamSelection, error)
	Layers(sess *Session) []model.Layer
}

// KitServiceImpl implements KitService.
type KitServiceImpl struct {
	validator  *UploadValidator
	compositor *LayerCompositor
	teams      TeamService
}

// NewKitService creates a kit service.
func NewKitService(validator *UploadValidator, compositor *LayerCompositor, teams TeamService) KitService {
	return &KitServiceImpl{
		validator:  validator,
		compositor: compositor,
		teams:      teams,
	}
}

func (s *KitServiceImpl) SetKitType(sess *Session, kitType model.KitType) error {
	sess.Lock()
	defer sess.Unlock()
	return sess.Kit.SetKitType(kitType)
}

func (s *KitServiceImpl) SetColor(sess *Session, color model.GarmentColor) {
	sess.Lock()
	defer sess.Unlock()
	sess.Kit.SetColor(color)
}

func (s *KitServiceImpl) SetEmblemManual(sess *Session, color model.EmblemColor) error {
	sess.Lock()
	defer sess.Unlock()
	return sess.Kit.SetEmblemManual(color)
}

func (s *KitServiceImpl) SetEmblemAuto(sess *Session) {
	sess.Lock()
	defer sess.Unlock()
	sess.Kit.SetEmblemAuto()
}

// AttachPlacementImage validates uploaded artwork and assigns it to a
// placement slot. If a newer upload for the same slot starts while this
// one is validating, the result is dropped and ErrStaleUpload returned,
// so slow responses can never clobber the latest choice.
func (s *KitServiceImpl) AttachPlacementImage(sess *Session, side model.PlacementSide, data []byte) (model.ImageAsset, error) {
	slot := uploadSlotFront
	if side == model.PlacementBack {
		slot = uploadSlotBack
	}
	seq := sess.BeginUpload(slot)

	asset, err := s.validator.Validate(data)
	if err != nil {
		return model.ImageAsset{}, err
	}

	sess.Lock()
	defer sess.Unlock()
	if !sess.uploadCurrent(slot, seq) {
		return model.ImageAsset{}, ErrStaleUpload
	}
	sess.Kit.SetPlacementImage(side, asset)
	return asset, nil
}

// AttachTeamLogo validates uploaded artwork and stores it as the team
// logo, with the same stale-response guard as placement uploads.
func (s *KitServiceImpl) AttachTeamLogo(sess *Session, data []byte) (model.ImageAsset, error) {
	seq := sess.BeginUpload(uploadSlotLogo)

	asset, err := s.validator.Validate(data)
	if err != nil {
		return model.ImageAsset{}, err
	}

	sess.Lock()
	defer sess.Unlock()
	if !sess.uploadCurrent(uploadSlotLogo, seq) {
		return model.ImageAsset{}, ErrStaleUpload
	}
	sess.Kit.SetTeamLogo(asset)
	return asset, nil
}

func (s *KitServiceImpl) UseTeamLogo(sess *Session, side model.PlacementSide, use bool) error {
	sess.Lock()
	defer sess.Unlock()
	return sess.Kit.SetPlacementUseTeamLogo(side, use)
}

func (s *KitServiceImpl) SetPlacementVisible(sess *Session, side model.PlacementSide, visible bool) {
	sess.Lock()
	defer sess.Unlock()
	sess.Kit.SetPlacementVisible(side, visible)
}

func (s *KitServiceImpl) SetPlacementScale(sess *Session, side model.PlacementSide, percent int) {
	sess.Lock()
	defer sess.Unlock()
	sess.Kit.SetPlacementScale(side, percent)
}

func (s *KitServiceImpl) SetBackPrintEnabled(sess *Session, enabled bool) {
	sess.Lock()
	defer sess.Unlock()
	sess.Kit.SetBackPrintEnabled(enabled)
}

func (s *KitServiceImpl) SetBackPrintText(sess *Session, text string) error {
	sess.Lock()
	defer sess.Unlock()
	return sess.Kit.SetBackPrintText(text)
}

func (s *KitServiceImpl) SetBackPrintFont(sess *Session, font model.BackPrintFont) error {
	sess.Lock()
	defer sess.Unlock()
	return sess.Kit.SetBackPrintFont(font)
}

func (s *KitServiceImpl) SetBackPrintScale(sess *Session, percent int) {
	sess.Lock()
	defer sess.Unlock()
	sess.Kit.SetBackPrintScale(percent)
}

func (s *KitServiceImpl) SetBackPrintPosition(sess *Session, percent int) {
	sess.Lock()
	defer sess.Unlock()
	sess.Kit.SetBackPrintPosition(percent)
}

func (s *KitServiceImpl) SetDesignName(sess *Session, name string) {
	sess.Lock()
	defer sess.Unlock()
	sess.Kit.SetDesignName(name)
}

// SelectTeam resolves a team selector and applies it to the kit state.
// "no-team" clears any binding, "create-new" only signals that the team
// creation flow should start, and anything else is looked up in the
// directory and bound.
func (s *KitServiceImpl) SelectTeam(ctx context.Context, sess *Session, selection string) (*TeamSelection, error) {
	switch selection {
	case TeamSelectNone:
		sess.Lock()
		defer sess.Unlock()
		sess.Kit.ClearTeam()
		return &TeamSelection{}, nil

	case TeamSelectCreateNew:
		return &TeamSelection{RequiresSetup: true}, nil

	default:
		team, err := s.teams.TeamByID(ctx, selection)
		if err != nil {
			return nil, err
		}

		binding := team.Binding()
		sess.Lock()
		defer sess.Unlock()
		sess.Kit.ApplyTeam(binding)
		return &TeamSelection{Team: &binding}, nil
	}
}

// Layers computes the current preview layer sequence.
func (s *KitServiceImpl) Layers(sess *Session) []model.Layer {
	sess.Lock()
	defer sess.Unlock()

	start := time.Now()
	layers := s.compositor.ComputeLayers(sess.Kit)
	metrics.RecordLayerComputation(time.Since(start))
	return layers
}
