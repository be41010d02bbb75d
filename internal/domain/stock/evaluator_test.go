package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/badassgarage/inventory-api/internal/domain/entity"
	"github.com/badassgarage/inventory-api/internal/domain/stock"
)

func TestIsLowStock_Escenarios(t *testing.T) {
	cases := []struct {
		name string
		qty  int
		min  int
		want bool
	}{
		{"por debajo del umbral", 1, 2, true},
		{"por encima del umbral", 5, 3, false},
		{"frontera cero-cero", 0, 0, true},
		{"frontera exacta", 3, 3, true},
		{"sin umbral configurado", 4, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := entity.InventoryItem{ID: "x", Name: "x", Quantity: tc.qty, MinQuantity: tc.min}
			assert.Equal(t, tc.want, stock.IsLowStock(item))
		})
	}
}

// Frontera inclusiva: quantity == minQuantity siempre cuenta como stock bajo.
func TestIsLowStock_FronteraInclusiva(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 1_000_000).Draw(t, "n")
		item := entity.InventoryItem{ID: "x", Name: "x", Quantity: n, MinQuantity: n}
		assert.True(t, stock.IsLowStock(item))
	})
}

// Propiedad: para todo item válido, IsLowStock == (quantity <= minQuantity).
func TestIsLowStock_Propiedad(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		qty := rapid.IntRange(0, 1_000_000).Draw(t, "qty")
		min := rapid.IntRange(0, 1_000_000).Draw(t, "min")
		item := entity.InventoryItem{ID: "x", Name: "x", Quantity: qty, MinQuantity: min}
		assert.Equal(t, qty <= min, stock.IsLowStock(item))
	})
}
