package pricing

// TaxRate is flat, with no zone variation.
const TaxRate = 0.19

// CalculateTax returns the tax portion of an amount.
func CalculateTax(amount float64) float64 {
	return amount * TaxRate
}
