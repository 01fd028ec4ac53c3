// Package redis adaptador de Pub/Sub para el fan-out de cambios de inventario.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/application/inventory"
	"github.com/tu-usuario/red-vital/pkg/config"
)

var _ inventory.EventPublisher = (*Publisher)(nil)

// Publisher publica eventos de inventario en canales Redis.
// Pub/Sub de Redis ya es fire-and-forget: un suscriptor lento o ausente nunca
// bloquea al publicador, que es exactamente el contrato del puerto.
type Publisher struct {
	client *redis.Client
}

// NewClient crea el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewPublisher construye el adaptador sobre un cliente existente.
func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish serializa el evento a JSON y lo publica en el canal indicado.
func (p *Publisher) Publish(ctx context.Context, topic string, event dto.InventoryChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, topic, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}
