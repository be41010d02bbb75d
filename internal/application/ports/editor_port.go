package ports

import (
	"context"
	"time"

	"github.com/badassgarage/inventory-api/internal/domain/entity"
)

// EditIntent solicitud de edición: señala que un usuario quiere modificar un
// item. Lleva el snapshot completo; la mutación real es responsabilidad del
// colaborador editor, nunca de este sistema.
type EditIntent struct {
	ID          string               `json:"id"`
	SessionID   string               `json:"session_id"`
	Item        entity.InventoryItem `json:"item"`
	RequestedAt time.Time            `json:"requested_at"`
}

// EditIntentSink define el puerto de salida hacia el colaborador editor.
// Los errores del sink se contienen en el presentador (se convierten en
// estado local); nunca llegan a la capa del catálogo.
type EditIntentSink interface {
	Dispatch(ctx context.Context, intent EditIntent) error
}
