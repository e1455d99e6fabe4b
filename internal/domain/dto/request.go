// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// KitTypeRequest selects the garment to customize.
// @Description Request to select the kit type
type KitTypeRequest struct {
	// KitType is the garment variant, "polo" or "tshirt".
	KitType string `json:"kit_type" binding:"required" example:"polo"`
} // @name KitTypeRequest

// ColorRequest changes the garment color.
// @Description Request to change the garment color
type ColorRequest struct {
	// Color is a color name or hex value.
	Color string `json:"color" binding:"required" example:"navy"`
} // @name ColorRequest

// EmblemRequest changes the emblem color mode.
// @Description Request to set the brand emblem color
type EmblemRequest struct {
	// Mode is "auto" for the garment contrast rule, "manual" for a fixed color.
	Mode string `json:"mode" binding:"required,oneof=auto manual" example:"manual"`
	// Color is required in manual mode: "white" or "black".
	Color string `json:"color,omitempty" example:"black"`
} // @name EmblemRequest

// PlacementVisibleRequest toggles a placement slot.
type PlacementVisibleRequest struct {
	Visible *bool `json:"visible" binding:"required"`
} // @name PlacementVisibleRequest

// PlacementScaleRequest sets a placement slot's scale.
type PlacementScaleRequest struct {
	ScalePercent int `json:"scale_percent" binding:"required" example:"75"`
} // @name PlacementScaleRequest

// UseTeamLogoRequest switches a slot between team logo and uploaded image.
type UseTeamLogoRequest struct {
	UseTeamLogo *bool `json:"use_team_logo" binding:"required"`
} // @name UseTeamLogoRequest

// BackPrintEnabledRequest toggles the back print.
type BackPrintEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
} // @name BackPrintEnabledRequest

// BackPrintTextRequest updates the back-print text.
type BackPrintTextRequest struct {
	// Text may be empty to clear the print. At most 20 characters.
	Text *string `json:"text" binding:"required" example:"THUNDER BOLTS"`
} // @name BackPrintTextRequest

// BackPrintFontRequest selects the back-print typeface.
type BackPrintFontRequest struct {
	Font string `json:"font" binding:"required" example:"Arial"`
} // @name BackPrintFontRequest

// BackPrintScaleRequest sets the back-print text scale.
type BackPrintScaleRequest struct {
	ScalePercent int `json:"scale_percent" binding:"required" example:"50"`
} // @name BackPrintScaleRequest

// BackPrintPositionRequest sets the back-print vertical position.
type BackPrintPositionRequest struct {
	PositionPercent int `json:"position_percent" binding:"required" example:"50"`
} // @name BackPrintPositionRequest

// DesignNameRequest names the design.
type DesignNameRequest struct {
	Name string `json:"name" binding:"required" example:"Home kit 2026"`
} // @name DesignNameRequest

// TeamSelectRequest picks a team for the kit: a team ID, "no-team", or
// "create-new".
type TeamSelectRequest struct {
	Selection string `json:"selection" binding:"required" example:"no-team"`
} // @name TeamSelectRequest

// QuantityRequest sets the quantity for one size.
// @Description Request to set the order quantity for a size
type QuantityRequest struct {
	// Size is one of XS, S, M, L, XL, XXL.
	Size string `json:"size" binding:"required" example:"M"`
	// Quantity is clamped to zero when negative.
	Quantity *int `json:"quantity" binding:"required" example:"2"`
} // @name QuantityRequest

// PlaceOrderRequest finalizes the order.
// @Description Request to place the order
type PlaceOrderRequest struct {
	CustomerEmail string `json:"customer_email" binding:"required,email" example:"buyer@example.com"`
	CustomerName  string `json:"customer_name" binding:"required" example:"Sam Buyer"`
} // @name PlaceOrderRequest

// WizardStepRequest targets one of the two flows.
type WizardStepRequest struct {
	Flow string `json:"flow" binding:"required,oneof=kit team" example:"kit"`
} // @name WizardStepRequest

// TeamPromptRequest records the team description prompt.
type TeamPromptRequest struct {
	Prompt string `json:"prompt" binding:"required" example:"A sunday league team from the docks"`
} // @name TeamPromptRequest

// TeamNameOptionsRequest supplies the generated name candidates.
type TeamNameOptionsRequest struct {
	Options []string `json:"options" binding:"required,min=1"`
} // @name TeamNameOptionsRequest

// TeamNameChoiceRequest picks the team name.
type TeamNameChoiceRequest struct {
	Name string `json:"name" binding:"required" example:"Thunder Bolts"`
} // @name TeamNameChoiceRequest

// TeamSummaryRequest records the team summary.
type TeamSummaryRequest struct {
	Summary string `json:"summary" binding:"required"`
} // @name TeamSummaryRequest

// TeamLogoOptionsRequest supplies the generated logo candidates.
type TeamLogoOptionsRequest struct {
	Options []string `json:"options" binding:"required,min=1"`
} // @name TeamLogoOptionsRequest

// TeamLogoChoiceRequest picks the team logo.
type TeamLogoChoiceRequest struct {
	LogoURL string `json:"logo_url" binding:"required" example:"https://cdn.example.com/logos/bolts.png"`
} // @name TeamLogoChoiceRequest

// ConfirmTeamRequest finalizes team creation.
type ConfirmTeamRequest struct {
	Email string `json:"email" binding:"required,email" example:"captain@example.com"`
} // @name ConfirmTeamRequest
