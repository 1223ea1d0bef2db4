package render

// Symbol maps a currency code to the symbol shown on confirmation pages.
// Unknown currencies render without a symbol.
func Symbol(currency string) string {
	switch currency {
	case "USD", "AUD", "CAD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	default:
		return ""
	}
}
