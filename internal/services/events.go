package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// EventPublisher publica eventos de dominio después de una escritura exitosa
type EventPublisher interface {
	Publish(ctx context.Context, name string, data map[string]any) error
}

// publishTimeout acota el tiempo que una publicación puede agregar a un request
const publishTimeout = 3 * time.Second

// publish envía el evento si hay publicador; los fallos solo se registran
func publish(ctx context.Context, publisher EventPublisher, logger logrus.FieldLogger, name string, data map[string]any) {
	if publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := publisher.Publish(ctx, name, data); err != nil {
		logger.WithError(err).WithField("event", name).Error("Error publishing event")
	}
}
