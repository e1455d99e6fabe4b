package model

// Size is a garment size.
type Size string

// Sizes is the fixed ordered size run for every garment.
var Sizes = []Size{"XS", "S", "M", "L", "XL", "XXL"}

// IsValid reports whether s is part of the size run.
func (s Size) IsValid() bool {
	for _, size := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// OrderLine maps garment sizes to non-negative quantities.
type OrderLine map[Size]int

// NewOrderLine returns an order line with every size at zero.
func NewOrderLine() OrderLine {
	line := make(OrderLine, len(Sizes))
	for _, size := range Sizes {
		line[size] = 0
	}
	return line
}

// SetQuantity updates the quantity for a size, clamping negative input
// to zero. Unknown sizes are ignored. Returns the stored value.
func (l OrderLine) SetQuantity(size Size, quantity int) int {
	if !size.IsValid() {
		return 0
	}
	if quantity < 0 {
		quantity = 0
	}
	l[size] = quantity
	return quantity
}

// TotalItems returns the sum of all quantities.
func (l OrderLine) TotalItems() int {
	total := 0
	for _, qty := range l {
		total += qty
	}
	return total
}

// OrderTotals is the derived pricing for an order line. Internal
// arithmetic keeps full precision; rounding to two decimal places is a
// presentation concern.
type OrderTotals struct {
	TotalItems int     `json:"total_items"`
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

// OrderPayload is the itemized order handed to the order-submission
// collaborator once totals are valid.
type OrderPayload struct {
	OrderID       string `json:"order_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerName  string `json:"customer_name"`

	KitType       KitType `json:"kit_type"`
	TeamwearColor string  `json:"teamwear_color"`
	EmblemColor   string  `json:"emblem_color"`
	TeamName      string  `json:"team_name"`
	DesignName    string  `json:"design_name"`

	FrontImage        bool   `json:"front_image"`
	BackImage         bool   `json:"back_image"`
	BackPrintEnabled  bool   `json:"back_print_enabled"`
	BackPrintText     string `json:"back_print_text,omitempty"`
	BackPrintPosition int    `json:"back_print_position"`

	Quantities OrderLine `json:"quantities"`
	Subtotal   float64   `json:"subtotal"`
	Tax        float64   `json:"tax"`
	Total      float64   `json:"total"`
}
