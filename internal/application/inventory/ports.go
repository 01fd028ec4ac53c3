package inventory

import (
	"context"

	"github.com/tu-usuario/red-vital/internal/application/dto"
)

// Tópicos lógicos del fan-out: uno por ciudad y uno por banco de sangre.
// Los suscriptores se unen explícitamente por id antes de recibir eventos.
func CityTopic(cityID string) string { return "city:" + cityID }
func BankTopic(bankID string) string { return "bloodbank:" + bankID }

// EventPublisher puerto de publicación a un tópico. El núcleo solo conoce esta
// interfaz; el transporte concreto (Redis Pub/Sub) vive en infrastructure.
// La publicación es best-effort: sin ack, sin reintentos, sin backpressure.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event dto.InventoryChangeEvent) error
}
