package editor

import (
	"context"

	"github.com/badassgarage/inventory-api/internal/application/ports"
	"github.com/badassgarage/inventory-api/pkg/logger"
)

// LogSink colaborador editor por defecto: registra el intent y no hace nada
// más (el sistema observado solo alerta al solicitar edición). La mutación
// real siempre queda del lado del editor externo.
type LogSink struct {
	log *logger.Logger
}

// NewLogSink construye el sink de log.
func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log}
}

// Dispatch registra el edit intent recibido.
func (s *LogSink) Dispatch(_ context.Context, intent ports.EditIntent) error {
	s.log.Info().
		Str("intent_id", intent.ID).
		Str("item_id", intent.Item.ID).
		Str("item_name", intent.Item.Name).
		Str("session_id", intent.SessionID).
		Msg("edit intent recibido")
	return nil
}
