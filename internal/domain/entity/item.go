package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/badassgarage/inventory-api/internal/domain"
)

// InventoryItem representa una unidad física (o lote) del inventario del negocio:
// vehículos, repuestos, memorabilia, letreros. Los campos descriptivos opcionales
// usan puntero: nil significa "ausente", distinto de cadena vacía.
type InventoryItem struct {
	ID          string
	Name        string
	Description *string
	Category    *string
	Location    *string
	SKU         *string
	ImageURL    *string // locator opaco; el core nunca lo descarga ni lo valida
	Quantity    int
	MinQuantity int             // umbral de reorden
	Price       decimal.Decimal // decimal para evitar deriva binaria; 0 = "sin precio"
}

// NewItem construye un InventoryItem validando los invariantes en la frontera.
// Falla con *domain.ValidationError si name está vacío o alguna cantidad es
// negativa; no existe el estado "item a medio validar". Un id vacío se genera.
// No se valida Quantity contra MinQuantity: sobre-stock y sub-stock son estados
// válidos, no errores.
func NewItem(id, name string, quantity, minQuantity int, price decimal.Decimal) (*InventoryItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "es requerido"}
	}
	if quantity < 0 {
		return nil, &domain.ValidationError{Field: "quantity", Message: "no puede ser negativo"}
	}
	if minQuantity < 0 {
		return nil, &domain.ValidationError{Field: "min_quantity", Message: "no puede ser negativo"}
	}
	if price.IsNegative() {
		return nil, &domain.ValidationError{Field: "price", Message: "no puede ser negativo"}
	}
	if id == "" {
		id = uuid.New().String()
	}
	return &InventoryItem{
		ID:          id,
		Name:        name,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		Price:       price,
	}, nil
}

// Priced indica si el item tiene precio asignado; precio cero suprime la
// visualización de precio en la capa de presentación.
func (i *InventoryItem) Priced() bool {
	return i.Price.IsPositive()
}

// Snapshot devuelve una copia por valor del item, para emitir hacia
// colaboradores externos sin exponer el puntero del catálogo.
func (i *InventoryItem) Snapshot() InventoryItem {
	return *i
}
