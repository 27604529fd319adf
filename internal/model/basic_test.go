package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceFromFloatTruncates(t *testing.T) {
	// 50000.12 has no exact float64 form; 50000.12*100 lands just below
	// 5000012 and must truncate down, not round up.
	assert.Equal(t, Price(5000011), PriceFromFloat(50000.12))
	assert.Equal(t, Price(0), PriceFromFloat(0))
	assert.Equal(t, Price(10000), PriceFromFloat(100))
	assert.Equal(t, Price(9999), PriceFromFloat(99.999))
}

func TestQuantityFromFloatTruncates(t *testing.T) {
	assert.Equal(t, Quantity(5), QuantityFromFloat(0.005))
	assert.Equal(t, Quantity(0), QuantityFromFloat(0))
	assert.Equal(t, Quantity(1500), QuantityFromFloat(1.5))
	assert.Equal(t, Quantity(0), QuantityFromFloat(0.0009))
}

func TestScaledStrings(t *testing.T) {
	assert.Equal(t, "50000.11", Price(5000011).String())
	assert.Equal(t, "0.05", Price(5).String())
	assert.Equal(t, "-1.50", Price(-150).String())
	assert.Equal(t, "0.005", Quantity(5).String())
	assert.Equal(t, "12.000", Quantity(12000).String())
}
