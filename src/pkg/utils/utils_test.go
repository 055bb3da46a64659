package utils_test

import (
	"testing"

	"bank-sampah-service/src/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 6000.0, utils.Round2(6000.0000001))
	assert.Equal(t, 4860.0, utils.Round2(4859.999999))
	assert.Equal(t, 3.18, utils.Round2(3.1849))
	assert.Equal(t, 3.19, utils.Round2(3.186))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 4.3, utils.Round1(13.0/3.0))
	assert.Equal(t, 4.5, utils.Round1(4.46))
	assert.Equal(t, 0.0, utils.Round1(0))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, utils.Paginate(items, 1, 2))
	assert.Equal(t, []int{3, 4}, utils.Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, utils.Paginate(items, 3, 2))
	assert.Empty(t, utils.Paginate(items, 4, 2))
}

func TestPaginateDefaults(t *testing.T) {
	items := []int{1, 2, 3}

	// page and limit below 1 fall back to page 1, limit 10
	assert.Equal(t, items, utils.Paginate(items, 0, 0))
	assert.Empty(t, utils.Paginate([]int{}, 1, 10))
}
