package model

import "strings"

// KitType identifies the garment being customized.
type KitType string

const (
	KitPolo   KitType = "polo"
	KitTShirt KitType = "tshirt"
)

// IsValid reports whether t is a known kit type.
func (t KitType) IsValid() bool {
	return t == KitPolo || t == KitTShirt
}

// Orderable reports whether the kit type can currently be customized
// and ordered. The t-shirt variant is announced but not yet available.
func (t KitType) Orderable() bool {
	return t == KitPolo
}

// PlacementSide identifies a fixed location on the garment that can
// carry an image.
type PlacementSide string

const (
	PlacementFront PlacementSide = "front"
	PlacementBack  PlacementSide = "back"
)

// IsValid reports whether s is a known placement side.
func (s PlacementSide) IsValid() bool {
	return s == PlacementFront || s == PlacementBack
}

// SourceMode selects where a placement slot takes its image from.
type SourceMode string

const (
	SourceUploadedImage SourceMode = "uploaded_image"
	SourceTeamLogo      SourceMode = "team_logo"
)

// Placement scale bounds, percent.
const (
	PlacementScaleMin      = 25
	FrontPlacementScaleMax = 100
	BackPlacementScaleMax  = 150
)

// PlacementSlot holds the image choice for one side of the garment.
type PlacementSlot struct {
	Visible      bool       `json:"visible"`
	Source       SourceMode `json:"source"`
	Image        ImageAsset `json:"image"`
	ScalePercent int        `json:"scale_percent"`
}

// BackPrintFont is the typeface used for the back-print text.
type BackPrintFont string

const (
	FontArial     BackPrintFont = "Arial"
	FontHelvetica BackPrintFont = "Helvetica"
	FontTimes     BackPrintFont = "Times"
	FontGeorgia   BackPrintFont = "Georgia"
)

// BackPrintFonts lists the available typefaces.
var BackPrintFonts = []BackPrintFont{FontArial, FontHelvetica, FontTimes, FontGeorgia}

// IsValid reports whether f is an available typeface.
func (f BackPrintFont) IsValid() bool {
	for _, font := range BackPrintFonts {
		if f == font {
			return true
		}
	}
	return false
}

// Back-print limits. Text length is enforced at the input boundary;
// word count is only a derived flag checked at render and order time.
const (
	BackPrintMaxChars = 20
	BackPrintMaxWords = 3
	BackPrintScaleMin = 25
	BackPrintScaleMax = 100
)

// BackPrint holds the short text rendered on the back of the garment.
type BackPrint struct {
	Enabled         bool          `json:"enabled"`
	Text            string        `json:"text"`
	Font            BackPrintFont `json:"font"`
	ScalePercent    int           `json:"scale_percent"`
	PositionPercent int           `json:"position_percent"`
}

// WordCount returns the number of whitespace-delimited words in the text.
func (b BackPrint) WordCount() int {
	return len(strings.Fields(b.Text))
}

// TextValid reports whether the stored text is within the word limit.
// Over-limit text stays in state but is suppressed from rendering and
// order confirmation until corrected.
func (b BackPrint) TextValid() bool {
	return b.WordCount() <= BackPrintMaxWords
}

// RenderVisible reports whether the back-print layer should render.
// This is a hard gate distinct from the stored Enabled flag.
func (b BackPrint) RenderVisible() bool {
	return b.Enabled && b.Text != "" && b.TextValid()
}

// TeamBinding references a previously created team bound to the kit.
type TeamBinding struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	LogoURL  string `json:"logo_url,omitempty"`
}

// KitState is the single source of truth for all customization choices
// of one kit session. All mutations go through the setters below, which
// carry the required side effects; plain field assignment is not part
// of the contract.
type KitState struct {
	KitType    KitType       `json:"kit_type"`
	Color      GarmentColor  `json:"color"`
	Emblem     EmblemChoice  `json:"emblem"`
	TeamLogo   ImageAsset    `json:"team_logo"`
	Team       *TeamBinding  `json:"team,omitempty"`
	Front      PlacementSlot `json:"front"`
	Back       PlacementSlot `json:"back"`
	BackPrint  BackPrint     `json:"back_print"`
	TeamName   string        `json:"team_name,omitempty"`
	DesignName string        `json:"design_name,omitempty"`

	// autoBackPrint marks back-print text that was assigned by a team
	// selection and has not been edited since. Only auto-assigned text
	// is cleared when the team binding is removed.
	autoBackPrint bool
}

// NewKitState returns a KitState with the initial customization defaults.
func NewKitState() *KitState {
	return &KitState{
		Color: ColorWhite,
		Front: PlacementSlot{
			Visible:      true,
			Source:       SourceUploadedImage,
			ScalePercent: 100,
		},
		Back: PlacementSlot{
			Visible:      true,
			Source:       SourceUploadedImage,
			ScalePercent: 100,
		},
		BackPrint: BackPrint{
			Font:            FontArial,
			ScalePercent:    50,
			PositionPercent: 50,
		},
	}
}

// SetKitType selects the garment to customize.
func (k *KitState) SetKitType(t KitType) error {
	if !t.IsValid() {
		return NewValidationError("kit_type", "unknown", "unknown kit type")
	}
	k.KitType = t
	return nil
}

// SetColor updates the garment color. Undefined input falls back to
// white rather than failing. Emblem art is never stored, so an auto
// emblem choice re-derives naturally at render time.
func (k *KitState) SetColor(c GarmentColor) {
	if !c.IsValid() {
		c = ColorWhite
	}
	k.Color = c
}

// SetEmblemManual fixes the emblem color regardless of garment color.
// Once manual, the choice never silently reverts to auto.
func (k *KitState) SetEmblemManual(c EmblemColor) error {
	if !c.IsValid() {
		return NewValidationError("emblem_color", "unknown", "emblem color must be white or black")
	}
	k.Emblem = EmblemChoice{Manual: true, Color: c}
	return nil
}

// SetEmblemAuto reverts the emblem color to the garment contrast rule.
// This is an explicit user action, never an implicit side effect.
func (k *KitState) SetEmblemAuto() {
	k.Emblem = EmblemChoice{}
}

// SetTeamLogo assigns the team logo asset. An empty asset clears the
// logo and forces any slot sourcing from it back to uploaded images.
func (k *KitState) SetTeamLogo(asset ImageAsset) {
	k.TeamLogo = asset
	if asset.IsEmpty() {
		k.dropTeamLogoSources()
	}
}

// ApplyTeam binds a team to the kit: the team logo is populated, the
// front placement switches to it, and the back print is enabled with
// the uppercased team name. Applying the same team twice yields the
// same state.
func (k *KitState) ApplyTeam(team TeamBinding) {
	k.Team = &team
	k.TeamName = team.TeamName

	if team.LogoURL != "" {
		k.TeamLogo = AssetFromURL(team.LogoURL)
		k.Front.Source = SourceTeamLogo
	}

	k.BackPrint.Enabled = true
	k.BackPrint.Text = strings.ToUpper(team.TeamName)
	k.autoBackPrint = true
}

// ClearTeam removes the team binding: the team logo is cleared, slots
// sourcing from it fall back to uploaded images, and an auto-assigned
// back print is disabled and emptied. Text the user typed themselves is
// left in place, only disabled.
func (k *KitState) ClearTeam() {
	k.Team = nil
	k.TeamLogo = ImageAsset{}
	k.dropTeamLogoSources()

	k.BackPrint.Enabled = false
	if k.autoBackPrint {
		k.BackPrint.Text = ""
		k.autoBackPrint = false
	}
}

// dropTeamLogoSources reverts any slot using the team logo to uploaded
// images. Invariant: SourceTeamLogo requires a non-empty team logo.
func (k *KitState) dropTeamLogoSources() {
	if k.Front.Source == SourceTeamLogo {
		k.Front.Source = SourceUploadedImage
	}
	if k.Back.Source == SourceTeamLogo {
		k.Back.Source = SourceUploadedImage
	}
}

// Slot returns the placement slot for the given side. Unknown sides
// resolve to the front slot.
func (k *KitState) Slot(side PlacementSide) *PlacementSlot {
	if side == PlacementBack {
		return &k.Back
	}
	return &k.Front
}

// SetPlacementImage assigns an uploaded image to a slot, overriding any
// previous team-logo selection for that slot.
func (k *KitState) SetPlacementImage(side PlacementSide, asset ImageAsset) {
	slot := k.Slot(side)
	slot.Image = asset
	slot.Source = SourceUploadedImage
}

// SetPlacementUseTeamLogo switches a slot between the team logo and the
// uploaded image. Enabling the team logo with no logo present is a
// precondition violation.
func (k *KitState) SetPlacementUseTeamLogo(side PlacementSide, use bool) error {
	slot := k.Slot(side)
	if !use {
		slot.Source = SourceUploadedImage
		return nil
	}
	if k.TeamLogo.IsEmpty() {
		return NewPreconditionViolation("use_team_logo", "no team logo is set")
	}
	slot.Source = SourceTeamLogo
	return nil
}

// SetPlacementVisible toggles a slot's visibility.
func (k *KitState) SetPlacementVisible(side PlacementSide, visible bool) {
	k.Slot(side).Visible = visible
}

// SetPlacementScale sets a slot's scale, clamped to the per-slot bounds
// (front 25-100, back 25-150).
func (k *KitState) SetPlacementScale(side PlacementSide, percent int) {
	max := FrontPlacementScaleMax
	if side == PlacementBack {
		max = BackPlacementScaleMax
	}
	k.Slot(side).ScalePercent = clamp(percent, PlacementScaleMin, max)
}

// EffectiveImage returns the image a slot currently resolves to: the
// team logo when selected and present, otherwise the uploaded image.
func (k *KitState) EffectiveImage(side PlacementSide) ImageAsset {
	slot := k.Slot(side)
	if slot.Source == SourceTeamLogo && !k.TeamLogo.IsEmpty() {
		return k.TeamLogo
	}
	return slot.Image
}

// SetBackPrintEnabled toggles the back print. Disabling does not clear
// stored text, valid or not.
func (k *KitState) SetBackPrintEnabled(enabled bool) {
	k.BackPrint.Enabled = enabled
}

// SetBackPrintText stores text verbatim up to the character limit.
// Longer input is rejected at this boundary, leaving state unchanged.
// Word count is not enforced here; it only gates rendering.
func (k *KitState) SetBackPrintText(text string) error {
	if len([]rune(text)) > BackPrintMaxChars {
		return NewValidationError("back_print_text", "too_long", "text must be at most 20 characters")
	}
	k.BackPrint.Text = text
	k.autoBackPrint = false
	return nil
}

// SetBackPrintFont selects the back-print typeface.
func (k *KitState) SetBackPrintFont(f BackPrintFont) error {
	if !f.IsValid() {
		return NewValidationError("back_print_font", "unknown", "unknown font")
	}
	k.BackPrint.Font = f
	return nil
}

// SetBackPrintScale sets the text scale, clamped to 25-100.
func (k *KitState) SetBackPrintScale(percent int) {
	k.BackPrint.ScalePercent = clamp(percent, BackPrintScaleMin, BackPrintScaleMax)
}

// SetBackPrintPosition sets the vertical text position, clamped to 0-100.
func (k *KitState) SetBackPrintPosition(percent int) {
	k.BackPrint.PositionPercent = clamp(percent, 0, 100)
}

// SetDesignName records the user's name for this design.
func (k *KitState) SetDesignName(name string) {
	k.DesignName = name
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
