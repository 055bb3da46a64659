package utils_test

import (
	"testing"

	"bank-sampah-service/src/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	// Simpang Lima to Tugu Muda, Semarang, roughly 3.2 km apart
	d := utils.Haversine(-6.9930, 110.4203, -6.9660, 110.4103)
	assert.InDelta(t, 3.2, d, 0.1)
}

func TestHaversineZeroDistance(t *testing.T) {
	d := utils.Haversine(-6.9930, 110.4203, -6.9930, 110.4203)
	assert.Equal(t, 0.0, d)
}

func TestHaversineSymmetric(t *testing.T) {
	a := utils.Haversine(-6.2088, 106.8456, -6.9930, 110.4203)
	b := utils.Haversine(-6.9930, 110.4203, -6.2088, 106.8456)
	assert.InDelta(t, a, b, 1e-9)
}
