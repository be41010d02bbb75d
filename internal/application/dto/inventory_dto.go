package dto

import "github.com/shopspring/decimal"

// ItemResponse un item del catálogo anotado con su estado de stock.
// Los campos opcionales se omiten cuando están ausentes (nil), que es un
// estado distinto de cadena vacía. PriceDisplay se omite con precio 0
// ("sin precio"): la vista no muestra $0.00.
type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	Category     *string         `json:"category,omitempty"`
	Location     *string         `json:"location,omitempty"`
	SKU          *string         `json:"sku,omitempty"`
	ImageURL     *string         `json:"image_url,omitempty"`
	Quantity     int             `json:"quantity"`
	MinQuantity  int             `json:"min_quantity"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display,omitempty"`
	LowStock     bool            `json:"low_stock"`
}

// InventoryResponse vista completa del catálogo. Empty marca explícitamente el
// estado "sin items" para que el consumidor muestre un vacío intencional y no
// una lista de cero filas.
type InventoryResponse struct {
	Items        []ItemResponse `json:"items"`
	Count        int            `json:"count"`
	Empty        bool           `json:"empty"`
	EmptyMessage string         `json:"empty_message,omitempty"`
}

// EditIntentResponse acuse de un edit intent despachado al editor externo.
type EditIntentResponse struct {
	IntentID string `json:"intent_id"`
	ItemID   string `json:"item_id"`
}
