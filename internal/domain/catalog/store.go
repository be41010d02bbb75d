package catalog

import (
	"github.com/badassgarage/inventory-api/internal/domain"
	"github.com/badassgarage/inventory-api/internal/domain/entity"
)

// Store contenedor puro del snapshot de inventario de una sesión.
// Una vez construido es siempre válido y de solo lectura: sin altas ni bajas
// dentro de este alcance. El orden de inserción se preserva tal cual.
type Store struct {
	items []entity.InventoryItem
}

// NewStore valida el snapshot completo y falla rápido: cantidades negativas o
// IDs duplicados producen *domain.ValidationError y ningún Store parcial.
func NewStore(items []entity.InventoryItem) (*Store, error) {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.Name == "" {
			return nil, &domain.ValidationError{Field: "name", Message: "es requerido"}
		}
		if it.Quantity < 0 {
			return nil, &domain.ValidationError{Field: "quantity", Message: "no puede ser negativo"}
		}
		if it.MinQuantity < 0 {
			return nil, &domain.ValidationError{Field: "min_quantity", Message: "no puede ser negativo"}
		}
		if _, dup := seen[it.ID]; dup {
			return nil, &domain.ValidationError{Field: "id", Message: "duplicado en el snapshot: " + it.ID}
		}
		seen[it.ID] = struct{}{}
	}
	s := &Store{items: make([]entity.InventoryItem, len(items))}
	copy(s.items, items)
	return s, nil
}

// List devuelve los items en orden de inserción. La copia protege el snapshot:
// el presentador solo toma lectura prestada, nunca muta el catálogo.
func (s *Store) List() []entity.InventoryItem {
	out := make([]entity.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count cantidad de items; siempre igual a len(List()).
func (s *Store) Count() int {
	return len(s.items)
}

// Get busca un item por id. Devuelve domain.ErrItemNotFound si no existe.
func (s *Store) Get(id string) (entity.InventoryItem, error) {
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return entity.InventoryItem{}, domain.ErrItemNotFound
}
