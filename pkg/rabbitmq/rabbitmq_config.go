package rabbitmq

import "github.com/uncefact/tests-untp-sub002/pkg/utilities"

type RabbitmqConfigJson struct {
	User             string                         `json:"user"`
	Password         string                         `json:"password"`
	Host             string                         `json:"host"`
	PublishersConfig []RabbitmqPublishersConfigJson `json:"publishers"`
}

type RabbitmqConfig struct {
	User             string
	Password         string
	Host             string
	PublishersConfig []RabbitmqPublishersConfig
}

// Enabled reports whether a broker is configured at all. An empty host means
// the application runs without messaging.
func (rc RabbitmqConfig) Enabled() bool {
	return rc.Host != ""
}

func (rcj RabbitmqConfigJson) ConvertToDomain() RabbitmqConfig {
	return RabbitmqConfig{
		User:     rcj.User,
		Password: rcj.Password,
		Host:     rcj.Host,
		PublishersConfig: utilities.ConvertJsonArrayToDomain[
			RabbitmqPublishersConfigJson,
			RabbitmqPublishersConfig,
		](rcj.PublishersConfig),
	}
}

type RabbitmqPublishersConfigJson struct {
	PublisherAlias string `json:"publisher_alias"`
	Exchange       string `json:"exchange"`
	RoutingKey     string `json:"routing_key"`
}

type RabbitmqPublishersConfig struct {
	PublisherAlias PublisherAlias
	Exchange       string
	RoutingKey     string
}

func (rpcj RabbitmqPublishersConfigJson) ConvertToDomain() RabbitmqPublishersConfig {
	return RabbitmqPublishersConfig{
		PublisherAlias: PublisherAlias(rpcj.PublisherAlias),
		Exchange:       rpcj.Exchange,
		RoutingKey:     rpcj.RoutingKey,
	}
}
