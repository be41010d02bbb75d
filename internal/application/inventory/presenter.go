package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/badassgarage/inventory-api/internal/application/dto"
	"github.com/badassgarage/inventory-api/internal/application/ports"
	"github.com/badassgarage/inventory-api/internal/domain"
	"github.com/badassgarage/inventory-api/internal/domain/catalog"
	"github.com/badassgarage/inventory-api/internal/domain/entity"
	"github.com/badassgarage/inventory-api/internal/domain/stock"
	"github.com/badassgarage/inventory-api/pkg/logger"
	"github.com/badassgarage/inventory-api/pkg/money"
)

// EmptyMessage texto del estado vacío explícito: el consumidor debe renderizar
// un vacío intencional, no una lista de cero filas.
const EmptyMessage = "Aún no hay artículos en el inventario"

// AnnotatedItem un item del catálogo emparejado con su flag de stock bajo.
type AnnotatedItem struct {
	Item     entity.InventoryItem
	LowStock bool
}

// Presenter compone Catalog Store + evaluador de stock en una vista ordenada
// lista para renderizar, y reenvía los edit intents al colaborador editor.
// Solo toma lectura prestada del Store; nunca muta items ni catálogo.
type Presenter struct {
	store *catalog.Store
	sink  ports.EditIntentSink
	log   *logger.Logger
}

// NewPresenter construye el presentador sobre un Store ya validado.
func NewPresenter(store *catalog.Store, sink ports.EditIntentSink, log *logger.Logger) *Presenter {
	return &Presenter{store: store, sink: sink, log: log}
}

// View empareja cada item del Store con IsLowStock, en el mismo orden y con la
// misma cardinalidad: len(View()) == store.Count() siempre, incluido el
// catálogo vacío. El flag se recalcula en cada llamada, nunca se cachea.
func (p *Presenter) View() []AnnotatedItem {
	items := p.store.List()
	out := make([]AnnotatedItem, len(items))
	for i, it := range items {
		out[i] = AnnotatedItem{Item: it, LowStock: stock.IsLowStock(it)}
	}
	return out
}

// Response vista completa en DTO de transporte, con precio formateado (y
// suprimido cuando es 0) y el contrato explícito de estado vacío.
func (p *Presenter) Response() dto.InventoryResponse {
	view := p.View()
	resp := dto.InventoryResponse{
		Items: make([]dto.ItemResponse, len(view)),
		Count: p.store.Count(),
	}
	for i, a := range view {
		resp.Items[i] = toItemResponse(a)
	}
	if len(view) == 0 {
		resp.Empty = true
		resp.EmptyMessage = EmptyMessage
	}
	return resp
}

// RequestEdit resuelve el item y despacha EditIntent{item} al editor externo.
// El intent lleva el snapshot completo; ni el item ni el Store se modifican.
// Un fallo del colaborador se contiene aquí: se registra y se devuelve
// domain.ErrEditorUnavailable sin tocar el estado del catálogo.
func (p *Presenter) RequestEdit(ctx context.Context, itemID, sessionID string) (*ports.EditIntent, error) {
	item, err := p.store.Get(itemID)
	if err != nil {
		return nil, err
	}
	intent := ports.EditIntent{
		ID:          uuid.New().String(),
		SessionID:   sessionID,
		Item:        item.Snapshot(),
		RequestedAt: time.Now(),
	}
	if err := p.sink.Dispatch(ctx, intent); err != nil {
		p.log.Error().Err(err).Str("item_id", itemID).Msg("despacho de edit intent falló")
		return nil, fmt.Errorf("%w: %v", domain.ErrEditorUnavailable, err)
	}
	p.log.Info().Str("item_id", itemID).Str("intent_id", intent.ID).Msg("edit intent despachado")
	return &intent, nil
}

func toItemResponse(a AnnotatedItem) dto.ItemResponse {
	r := dto.ItemResponse{
		ID:          a.Item.ID,
		Name:        a.Item.Name,
		Description: a.Item.Description,
		Category:    a.Item.Category,
		Location:    a.Item.Location,
		SKU:         a.Item.SKU,
		ImageURL:    a.Item.ImageURL,
		Quantity:    a.Item.Quantity,
		MinQuantity: a.Item.MinQuantity,
		Price:       a.Item.Price,
		LowStock:    a.LowStock,
	}
	// Precio 0 significa "sin precio": se suprime la visualización.
	if a.Item.Priced() {
		r.PriceDisplay = money.Display(a.Item.Price)
	}
	return r
}
