package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/badassgarage/inventory-api/internal/domain/catalog"
	"github.com/badassgarage/inventory-api/internal/domain/entity"
)

// itemRecord forma JSON de un item en el archivo de siembra.
type itemRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	Location    *string         `json:"location"`
	SKU         *string         `json:"sku"`
	ImageURL    *string         `json:"image_url"`
	Quantity    int             `json:"quantity"`
	MinQuantity int             `json:"min_quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Load construye el Catalog Store de la sesión: desde el archivo JSON dado, o
// con el inventario de muestra del taller si path está vacío. La validación de
// invariantes ocurre en los constructores del dominio y falla rápido.
func Load(path string) (*catalog.Store, error) {
	if path == "" {
		return builtin()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer seed %s: %w", path, err)
	}
	var records []itemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parsear seed %s: %w", path, err)
	}
	items := make([]entity.InventoryItem, 0, len(records))
	for _, r := range records {
		it, err := entity.NewItem(r.ID, r.Name, r.Quantity, r.MinQuantity, r.Price)
		if err != nil {
			return nil, fmt.Errorf("seed item %q: %w", r.Name, err)
		}
		it.Description = r.Description
		it.Category = r.Category
		it.Location = r.Location
		it.SKU = r.SKU
		it.ImageURL = r.ImageURL
		items = append(items, *it)
	}
	return catalog.NewStore(items)
}

func strptr(s string) *string { return &s }

// builtin inventario de muestra del taller.
func builtin() (*catalog.Store, error) {
	type row struct {
		id, name, desc, cat, loc, sku string
		img                           string
		qty, min                      int
		price                         int64
	}
	rows := []row{
		{"1", "1967 Mustang Fastback", "Classic muscle car in excellent condition", "Vehicles", "Bay 3", "CAR-001",
			"https://images.unsplash.com/photo-1584345604476-8ec5f4d6c952?w=200", 1, 1, 45000},
		{"2", "Vintage Gas Pump", "Restored 1950s Shell gas pump", "Memorabilia", "Showroom A", "PUMP-045",
			"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=200", 2, 1, 2500},
		{"3", "Chrome Bumper Set", "Universal chrome bumper kit", "Parts", "Shelf B2", "PART-128",
			"", 5, 3, 450},
		{"4", "Neon Bar Sign", "Custom Route 66 neon sign", "Signs", "Storage", "SIGN-009",
			"https://images.unsplash.com/photo-1518895949257-7621c3c786d7?w=200", 1, 2, 800},
	}
	items := make([]entity.InventoryItem, 0, len(rows))
	for _, r := range rows {
		it, err := entity.NewItem(r.id, r.name, r.qty, r.min, decimal.NewFromInt(r.price))
		if err != nil {
			return nil, err
		}
		it.Description = strptr(r.desc)
		it.Category = strptr(r.cat)
		it.Location = strptr(r.loc)
		it.SKU = strptr(r.sku)
		if r.img != "" {
			it.ImageURL = strptr(r.img)
		}
		items = append(items, *it)
	}
	return catalog.NewStore(items)
}
