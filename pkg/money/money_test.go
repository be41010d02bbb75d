package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/badassgarage/inventory-api/pkg/money"
)

func TestDisplay(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"450", "$450.00"},
		{"2500", "$2,500.00"},
		{"45000", "$45,000.00"},
		{"799.999", "$800.00"},
		{"0.5", "$0.50"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, money.Display(d))
	}
}
