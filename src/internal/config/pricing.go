package config

import (
	"bank-sampah-service/src/internal/entity"

	"github.com/spf13/viper"
)

// Defaults in rupiah per kilogram. Override via the pricing.prices map in
// config.json when the buyback rates change.
var defaultPrices = map[string]float64{
	"Botol Plastik":   3000,
	"Kertas":          2000,
	"Kardus":          2500,
	"Kaleng":          4000,
	"Besi":            5000,
	"Botol Kaca":      1500,
	"Elektronik":      10000,
	"Minyak Jelantah": 6000,
}

const defaultFeeRate = 0.10

func NewPriceTable(v *viper.Viper) entity.PriceTable {
	prices := make(map[string]float64, len(defaultPrices))
	for wasteType, price := range defaultPrices {
		prices[wasteType] = price
	}

	for wasteType, price := range v.GetStringMap("pricing.prices") {
		if value, ok := price.(float64); ok && value > 0 {
			prices[wasteType] = value
		}
	}

	feeRate := v.GetFloat64("pricing.fee_rate")
	if feeRate <= 0 || feeRate >= 1 {
		feeRate = defaultFeeRate
	}

	return entity.PriceTable{
		Prices:  prices,
		FeeRate: feeRate,
	}
}
