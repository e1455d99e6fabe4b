package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKitState_Defaults(t *testing.T) {
	state := NewKitState()

	assert.Equal(t, ColorWhite, state.Color)
	assert.False(t, state.Emblem.Manual)
	assert.Nil(t, state.Team)
	assert.True(t, state.TeamLogo.IsEmpty())

	for _, slot := range []PlacementSlot{state.Front, state.Back} {
		assert.True(t, slot.Visible)
		assert.Equal(t, SourceUploadedImage, slot.Source)
		assert.Equal(t, 100, slot.ScalePercent)
	}

	assert.False(t, state.BackPrint.Enabled)
	assert.Equal(t, FontArial, state.BackPrint.Font)
	assert.Equal(t, 50, state.BackPrint.ScalePercent)
	assert.Equal(t, 50, state.BackPrint.PositionPercent)
}

func TestKitState_SetKitType(t *testing.T) {
	state := NewKitState()

	require.NoError(t, state.SetKitType(KitPolo))
	assert.Equal(t, KitPolo, state.KitType)

	err := state.SetKitType(KitType("hoodie"))
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "kit_type", valErr.Field)
	assert.Equal(t, KitPolo, state.KitType)
}

func TestKitType_Orderable(t *testing.T) {
	assert.True(t, KitPolo.Orderable())
	assert.False(t, KitTShirt.Orderable())
	assert.False(t, KitType("").Orderable())
}

func TestKitState_SetColor_FallsBackToWhite(t *testing.T) {
	state := NewKitState()

	state.SetColor(ColorNavy)
	assert.Equal(t, ColorNavy, state.Color)

	state.SetColor(GarmentColor("lime"))
	assert.Equal(t, ColorWhite, state.Color)
}

func TestKitState_EmblemChoices(t *testing.T) {
	state := NewKitState()

	err := state.SetEmblemManual(EmblemColor("red"))
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	require.NoError(t, state.SetEmblemManual(EmblemBlack))
	assert.True(t, state.Emblem.Manual)
	assert.Equal(t, EmblemBlack, state.Emblem.Resolve(ColorBlack))

	// Changing the garment color never reverts a manual choice.
	state.SetColor(ColorBlack)
	assert.True(t, state.Emblem.Manual)

	state.SetEmblemAuto()
	assert.False(t, state.Emblem.Manual)
	assert.Equal(t, EmblemWhite, state.Emblem.Resolve(ColorBlack))
}

func TestKitState_ApplyTeam(t *testing.T) {
	state := NewKitState()

	state.ApplyTeam(TeamBinding{
		TeamID:   "team-1",
		TeamName: "Thunder Bolts",
		LogoURL:  "https://cdn.example.com/logo.png",
	})

	require.NotNil(t, state.Team)
	assert.Equal(t, "Thunder Bolts", state.TeamName)
	assert.Equal(t, "https://cdn.example.com/logo.png", state.TeamLogo.Ref)
	assert.Equal(t, SourceTeamLogo, state.Front.Source)
	assert.True(t, state.BackPrint.Enabled)
	assert.Equal(t, "THUNDER BOLTS", state.BackPrint.Text)
}

func TestKitState_ApplyTeam_WithoutLogo(t *testing.T) {
	state := NewKitState()

	state.ApplyTeam(TeamBinding{TeamID: "team-2", TeamName: "Nologos"})

	assert.True(t, state.TeamLogo.IsEmpty())
	assert.Equal(t, SourceUploadedImage, state.Front.Source)
	assert.Equal(t, "NOLOGOS", state.BackPrint.Text)
}

func TestKitState_ClearTeam_DropsAutoBackPrint(t *testing.T) {
	state := NewKitState()
	state.ApplyTeam(TeamBinding{
		TeamID:   "team-1",
		TeamName: "Thunder Bolts",
		LogoURL:  "https://cdn.example.com/logo.png",
	})

	state.ClearTeam()

	assert.Nil(t, state.Team)
	assert.True(t, state.TeamLogo.IsEmpty())
	assert.Equal(t, SourceUploadedImage, state.Front.Source)
	assert.False(t, state.BackPrint.Enabled)
	assert.Empty(t, state.BackPrint.Text)
}

func TestKitState_ClearTeam_KeepsUserText(t *testing.T) {
	state := NewKitState()
	state.ApplyTeam(TeamBinding{TeamID: "team-1", TeamName: "Thunder Bolts"})

	// Editing the text after binding makes it user-owned.
	require.NoError(t, state.SetBackPrintText("GO BOLTS"))
	state.ClearTeam()

	assert.False(t, state.BackPrint.Enabled)
	assert.Equal(t, "GO BOLTS", state.BackPrint.Text)
}

func TestKitState_SetTeamLogo_EmptyDropsSources(t *testing.T) {
	state := NewKitState()
	state.SetTeamLogo(AssetFromURL("https://cdn.example.com/logo.png"))
	require.NoError(t, state.SetPlacementUseTeamLogo(PlacementFront, true))
	require.NoError(t, state.SetPlacementUseTeamLogo(PlacementBack, true))

	state.SetTeamLogo(ImageAsset{})

	assert.Equal(t, SourceUploadedImage, state.Front.Source)
	assert.Equal(t, SourceUploadedImage, state.Back.Source)
}

func TestKitState_SetPlacementUseTeamLogo(t *testing.T) {
	state := NewKitState()

	err := state.SetPlacementUseTeamLogo(PlacementFront, true)
	var precond *PreconditionViolation
	require.ErrorAs(t, err, &precond)
	assert.Equal(t, SourceUploadedImage, state.Front.Source)

	state.SetTeamLogo(AssetFromURL("https://cdn.example.com/logo.png"))
	require.NoError(t, state.SetPlacementUseTeamLogo(PlacementFront, true))
	assert.Equal(t, SourceTeamLogo, state.Front.Source)

	// Switching off never needs a logo present.
	require.NoError(t, state.SetPlacementUseTeamLogo(PlacementFront, false))
	assert.Equal(t, SourceUploadedImage, state.Front.Source)
}

func TestKitState_EffectiveImage(t *testing.T) {
	state := NewKitState()
	uploaded := ImageAsset{Ref: "data:image/png;base64,Zm9v", Width: 10, Height: 10}
	state.SetPlacementImage(PlacementFront, uploaded)

	assert.Equal(t, uploaded, state.EffectiveImage(PlacementFront))

	state.SetTeamLogo(AssetFromURL("https://cdn.example.com/logo.png"))
	require.NoError(t, state.SetPlacementUseTeamLogo(PlacementFront, true))
	assert.Equal(t, state.TeamLogo, state.EffectiveImage(PlacementFront))

	// Uploading a new image overrides the team-logo selection.
	state.SetPlacementImage(PlacementFront, uploaded)
	assert.Equal(t, SourceUploadedImage, state.Front.Source)
	assert.Equal(t, uploaded, state.EffectiveImage(PlacementFront))
}

func TestKitState_SetPlacementScale_Clamps(t *testing.T) {
	tests := []struct {
		name     string
		side     PlacementSide
		percent  int
		expected int
	}{
		{name: "front within range", side: PlacementFront, percent: 60, expected: 60},
		{name: "front below minimum", side: PlacementFront, percent: 10, expected: 25},
		{name: "front above maximum", side: PlacementFront, percent: 120, expected: 100},
		{name: "back allows larger scale", side: PlacementBack, percent: 140, expected: 140},
		{name: "back above maximum", side: PlacementBack, percent: 200, expected: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewKitState()
			state.SetPlacementScale(tt.side, tt.percent)
			assert.Equal(t, tt.expected, state.Slot(tt.side).ScalePercent)
		})
	}
}

func TestKitState_SetBackPrintText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "empty", text: ""},
		{name: "at character limit", text: "ABCDEFGHIJKLMNOPQRST"},
		{name: "over character limit", text: "ABCDEFGHIJKLMNOPQRSTU", wantErr: true},
		{name: "multibyte counts runes", text: "ÅÄÖÅÄÖÅÄÖÅÄÖÅÄÖÅÄÖÅÄ"},
		{name: "four words still stored", text: "A B C D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewKitState()
			err := state.SetBackPrintText(tt.text)
			if tt.wantErr {
				var valErr *ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Empty(t, state.BackPrint.Text)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.text, state.BackPrint.Text)
		})
	}
}

func TestBackPrint_RenderVisible(t *testing.T) {
	tests := []struct {
		name     string
		print    BackPrint
		expected bool
	}{
		{name: "enabled with valid text", print: BackPrint{Enabled: true, Text: "GO TEAM"}, expected: true},
		{name: "disabled", print: BackPrint{Text: "GO TEAM"}, expected: false},
		{name: "enabled empty text", print: BackPrint{Enabled: true}, expected: false},
		{name: "three words allowed", print: BackPrint{Enabled: true, Text: "ONE TWO THREE"}, expected: true},
		{name: "four words suppressed", print: BackPrint{Enabled: true, Text: "ONE TWO THREE FOUR"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.print.RenderVisible())
		})
	}
}

func TestKitState_SetBackPrintFontAndPosition(t *testing.T) {
	state := NewKitState()

	require.NoError(t, state.SetBackPrintFont(FontGeorgia))
	assert.Equal(t, FontGeorgia, state.BackPrint.Font)

	err := state.SetBackPrintFont(BackPrintFont("Comic Sans"))
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, FontGeorgia, state.BackPrint.Font)

	state.SetBackPrintScale(150)
	assert.Equal(t, 100, state.BackPrint.ScalePercent)
	state.SetBackPrintScale(10)
	assert.Equal(t, 25, state.BackPrint.ScalePercent)

	state.SetBackPrintPosition(-5)
	assert.Equal(t, 0, state.BackPrint.PositionPercent)
	state.SetBackPrintPosition(130)
	assert.Equal(t, 100, state.BackPrint.PositionPercent)
}
