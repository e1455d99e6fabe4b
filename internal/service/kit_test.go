package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribelet/kit-service/internal/domain/model"
)

func newTestKitService(repo *stubTeamRepo) (KitService, *Session) {
	var teams TeamService
	if repo != nil {
		teams = NewTeamService(repo)
	} else {
		teams = NewTeamService(nil)
	}
	svc := NewKitService(
		NewUploadValidator(0, 0),
		NewLayerCompositor(NewAssetResolver("/assets/polos")),
		teams,
	)
	return svc, newSession()
}

func TestKitService_AttachPlacementImage(t *testing.T) {
	svc, sess := newTestKitService(nil)

	asset, err := svc.AttachPlacementImage(sess, model.PlacementFront, testPNG(t, 20, 20))
	require.NoError(t, err)
	assert.Equal(t, 20, asset.Width)
	assert.Equal(t, asset, sess.Kit.Front.Image)
	assert.Equal(t, model.SourceUploadedImage, sess.Kit.Front.Source)
}

func TestKitService_AttachPlacementImage_Rejected(t *testing.T) {
	svc, sess := newTestKitService(nil)

	_, err := svc.AttachPlacementImage(sess, model.PlacementBack, []byte("not an image"))
	var rejection *UploadRejection
	require.ErrorAs(t, err, &rejection)

	// A rejected upload never touches the slot.
	assert.True(t, sess.Kit.Back.Image.IsEmpty())
}

func TestKitService_AttachPlacementImage_StaleGuard(t *testing.T) {
	svc, sess := newTestKitService(nil)

	// A newer upload starting for the slot invalidates anything begun
	// earlier, even before its validation completes.
	stale := sess.BeginUpload(uploadSlotFront)

	_, err := svc.AttachPlacementImage(sess, model.PlacementFront, testPNG(t, 10, 10))
	require.NoError(t, err)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	assert.False(t, sess.uploadCurrent(uploadSlotFront, stale))
}

func TestKitService_AttachTeamLogo(t *testing.T) {
	svc, sess := newTestKitService(nil)

	asset, err := svc.AttachTeamLogo(sess, testPNG(t, 32, 32))
	require.NoError(t, err)
	assert.Equal(t, asset, sess.Kit.TeamLogo)

	// With a logo present the placement can source from it.
	require.NoError(t, svc.UseTeamLogo(sess, model.PlacementFront, true))
	assert.Equal(t, model.SourceTeamLogo, sess.Kit.Front.Source)
}

func TestKitService_UseTeamLogo_WithoutLogo(t *testing.T) {
	svc, sess := newTestKitService(nil)

	err := svc.UseTeamLogo(sess, model.PlacementFront, true)
	var precond *model.PreconditionViolation
	require.ErrorAs(t, err, &precond)
}

func TestKitService_SelectTeam(t *testing.T) {
	repo := &stubTeamRepo{teams: map[string]model.Team{
		"team-1": {
			TeamID:   "team-1",
			TeamName: "Thunder Bolts",
			LogoURL:  "https://cdn.example.com/logo.png",
		},
	}}
	svc, sess := newTestKitService(repo)
	ctx := context.Background()

	selection, err := svc.SelectTeam(ctx, sess, "team-1")
	require.NoError(t, err)
	require.NotNil(t, selection.Team)
	assert.False(t, selection.RequiresSetup)
	assert.Equal(t, "Thunder Bolts", sess.Kit.TeamName)
	assert.Equal(t, "THUNDER BOLTS", sess.Kit.BackPrint.Text)

	selection, err = svc.SelectTeam(ctx, sess, TeamSelectNone)
	require.NoError(t, err)
	assert.Nil(t, selection.Team)
	assert.Nil(t, sess.Kit.Team)
	assert.Empty(t, sess.Kit.BackPrint.Text)
}

func TestKitService_SelectTeam_CreateNew(t *testing.T) {
	svc, sess := newTestKitService(nil)

	selection, err := svc.SelectTeam(context.Background(), sess, TeamSelectCreateNew)
	require.NoError(t, err)
	assert.True(t, selection.RequiresSetup)

	// Asking for a new team changes nothing until the flow confirms.
	assert.Nil(t, sess.Kit.Team)
}

func TestKitService_SelectTeam_Unknown(t *testing.T) {
	svc, sess := newTestKitService(&stubTeamRepo{})

	_, err := svc.SelectTeam(context.Background(), sess, "no-such-team")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestKitService_Layers(t *testing.T) {
	svc, sess := newTestKitService(nil)
	svc.SetColor(sess, model.ColorBlack)

	layers := svc.Layers(sess)
	require.Len(t, layers, 6)
	assert.Equal(t, "/assets/polos/TR505_Black_FRONTo.png", layers[0].Asset.Ref)
}
