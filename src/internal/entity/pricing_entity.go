package entity

// PriceTable maps waste-type labels to price per kilogram plus the platform
// fee rate. Read-only to everything outside config; submissions snapshot the
// price at creation so later table changes never touch existing records.
type PriceTable struct {
	Prices  map[string]float64
	FeeRate float64
}

func (p PriceTable) PriceFor(wasteType string) (float64, bool) {
	price, ok := p.Prices[wasteType]
	return price, ok
}
