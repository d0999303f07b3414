package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(5, 0))
	assert.Equal(t, 100.0, Percent(10, 10))
	assert.Equal(t, 50.0, Percent(5, 10))
	assert.Equal(t, 33.33, Percent(1, 3))
	assert.Equal(t, 66.67, Percent(2, 3))
	assert.Equal(t, 83.33, Percent(25, 30))
}

func TestDecimalPercent(t *testing.T) {
	d := func(s string) decimal.Decimal {
		v, _ := decimal.NewFromString(s)
		return v
	}

	assert.Equal(t, 0.0, DecimalPercent(d("100"), d("0")))
	assert.Equal(t, 40.0, DecimalPercent(d("2000"), d("5000")))
	assert.Equal(t, 66.67, DecimalPercent(d("2"), d("3")))
	assert.Equal(t, 33.33, DecimalPercent(d("3333.00"), d("10000.00")))
}
