package rabbitmq

import (
	"sync"
	"time"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/pkg/utilities"

	amqp "github.com/rabbitmq/amqp091-go"
)

type PublisherAlias string

var (
	publisherRegistry map[PublisherAlias]IRabbitmqPublisher
	oncePublisher     sync.Once
)

// GetPublisher returns the configured publisher for the alias, or a noop
// publisher when no broker is configured. Event delivery is best-effort; the
// platform works without a broker.
func GetPublisher(alias PublisherAlias) IRabbitmqPublisher {
	if publisher, ok := publisherRegistry[alias]; ok {
		return publisher
	}
	return noopPublisher{}
}

func InitializePublisherRegistry(conn *amqp.Connection, publisherConfig []RabbitmqPublishersConfig) {
	oncePublisher.Do(func() {
		publisherRegistry = make(map[PublisherAlias]IRabbitmqPublisher)

		for _, publisher := range publisherConfig {
			channel, err := conn.Channel()
			if err != nil {
				logger.Default().Panicf(err, "Could not obtain channel for publisher")
			}

			publisherRegistry[publisher.PublisherAlias] = NewPublisher(
				channel,
				publisher.Exchange,
				publisher.RoutingKey,
			)
		}
	})
}

type IRabbitmqPublisher interface {
	Publish(body utilities.Serializable) error
}

type RabbitmqPublisher struct {
	Channel    *amqp.Channel
	Exchange   string
	RoutingKey string
}

func NewPublisher(ch *amqp.Channel, exchange, routingKey string) *RabbitmqPublisher {
	return &RabbitmqPublisher{
		Channel:    ch,
		Exchange:   exchange,
		RoutingKey: routingKey,
	}
}

func (rp *RabbitmqPublisher) Publish(body utilities.Serializable) error {
	payload, err := body.Serialize()
	if err != nil {
		return err
	}

	return rp.Channel.Publish(
		rp.Exchange,
		rp.RoutingKey,
		false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			Timestamp:    time.Now(),
			DeliveryMode: amqp.Persistent,
		},
	)
}

type noopPublisher struct{}

func (noopPublisher) Publish(utilities.Serializable) error {
	return nil
}
