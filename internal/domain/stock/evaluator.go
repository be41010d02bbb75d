package stock

import "github.com/badassgarage/inventory-api/internal/domain/entity"

// IsLowStock servicio de dominio puro: un item está en stock bajo cuando la
// cantidad disponible alcanzó o cayó bajo el umbral de reorden.
// La frontera es inclusiva (quantity == minQuantity cuenta como bajo):
// preferimos falsos positivos de alerta temprana a quedarnos sin stock.
// Se recalcula en cada lectura y nunca se almacena con el item, así no puede
// divergir del par quantity/minQuantity vigente.
func IsLowStock(item entity.InventoryItem) bool {
	return item.Quantity <= item.MinQuantity
}
