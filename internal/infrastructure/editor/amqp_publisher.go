package editor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"

	"github.com/badassgarage/inventory-api/internal/application/ports"
	"github.com/badassgarage/inventory-api/pkg/logger"
)

// AMQPConfig conexión al broker del editor externo.
type AMQPConfig struct {
	URL        string
	Exchange   string // exchange tipo topic; por defecto "inventory.edits"
	RoutingKey string // por defecto "inventory.edit.requested"
}

// AMQPPublisher publica los edit intents en un exchange AMQP para que el
// editor externo los consuma. Se habilita por configuración; el despliegue
// standalone usa LogSink.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     AMQPConfig
	log     *logger.Logger
}

// NewAMQPPublisher conecta al broker y declara el exchange.
func NewAMQPPublisher(cfg AMQPConfig, log *logger.Logger) (*AMQPPublisher, error) {
	if cfg.Exchange == "" {
		cfg.Exchange = "inventory.edits"
	}
	if cfg.RoutingKey == "" {
		cfg.RoutingKey = "inventory.edit.requested"
	}
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("conectar a RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("abrir canal: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declarar exchange: %w", err)
	}
	return &AMQPPublisher{conn: conn, channel: ch, cfg: cfg, log: log}, nil
}

// Dispatch publica el intent como JSON persistente. El error regresa al
// presentador, que lo contiene como estado local; aquí no se reintenta.
func (p *AMQPPublisher) Dispatch(_ context.Context, intent ports.EditIntent) error {
	body, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("serializar edit intent: %w", err)
	}
	err = p.channel.Publish(
		p.cfg.Exchange,
		p.cfg.RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    intent.ID,
			Timestamp:    intent.RequestedAt,
			Headers: amqp.Table{
				"item_id":    intent.Item.ID,
				"session_id": intent.SessionID,
			},
		},
	)
	if err != nil {
		return fmt.Errorf("publicar edit intent: %w", err)
	}
	p.log.Debug().Str("intent_id", intent.ID).Str("routing_key", p.cfg.RoutingKey).Msg("edit intent publicado")
	return nil
}

// Close libera canal y conexión.
func (p *AMQPPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
