// Package events publishes review events to subscribers outside the service.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/jsamuelsen/quotations-service/internal/domain"
	"github.com/jsamuelsen/quotations-service/internal/platform/config"
	"github.com/jsamuelsen/quotations-service/internal/platform/logging"
	"github.com/jsamuelsen/quotations-service/internal/ports"
)

const (
	serviceName       = "mqtt"
	connectTimeout    = 30 * time.Second
	disconnectQuiesce = 250
)

// mqttClient is the part of mqtt.Client the publisher needs.
type mqttClient interface {
	Connect() mqtt.Token
	IsConnected() bool
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// MQTTPublisher implements ports.EventPublisher and ports.HealthChecker over an MQTT broker.
// Each event goes to "<prefix>/<type with dots as slashes>", e.g. quotations/quotation/approved.
type MQTTPublisher struct {
	client  mqttClient
	prefix  string
	qos     byte
	timeout time.Duration
}

// NewMQTTPublisher connects to the configured broker. The client reconnects on its own after
// the initial connection succeeds.
func NewMQTTPublisher(cfg *config.EventsConfig) (*MQTTPublisher, error) {
	logger := logging.FromContext(context.Background()).With(slog.String("component", "events"))

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetOnConnectHandler(func(mqtt.Client) {
		logger.Info("connected to mqtt broker", slog.String("broker", cfg.Broker))
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("connection to mqtt broker lost", slog.String("broker", cfg.Broker), slog.Any("error", err))
	})

	p := newMQTTPublisher(mqtt.NewClient(opts), cfg)

	token := p.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		p.client.Disconnect(0)
		return nil, fmt.Errorf("connect to mqtt broker %s: timeout", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to mqtt broker %s: %w", cfg.Broker, err)
	}

	return p, nil
}

func newMQTTPublisher(client mqttClient, cfg *config.EventsConfig) *MQTTPublisher {
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &MQTTPublisher{
		client:  client,
		prefix:  strings.TrimSuffix(cfg.TopicPrefix, "/"),
		qos:     cfg.QoS,
		timeout: timeout,
	}
}

// Topic returns the topic an event of eventType is published to.
func (p *MQTTPublisher) Topic(eventType string) string {
	return p.prefix + "/" + strings.ReplaceAll(eventType, ".", "/")
}

func (p *MQTTPublisher) Publish(ctx context.Context, event ports.Event) error {
	if !p.client.IsConnected() {
		return domain.NewUnavailableError(serviceName, "not connected")
	}

	payload, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event.EventType(), err)
	}

	topic := p.Topic(event.EventType())
	token := p.client.Publish(topic, p.qos, false, payload)

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return domain.NewUnavailableError(serviceName, "publish to "+topic+" timed out")
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}

	logging.FromContext(ctx).Debug("event published", slog.String("topic", topic))

	return nil
}

func (p *MQTTPublisher) Name() string { return serviceName }

func (p *MQTTPublisher) Check(context.Context) error {
	if !p.client.IsConnected() {
		return domain.NewUnavailableError(serviceName, "not connected")
	}
	return nil
}

// Close disconnects from the broker, letting in-flight work finish.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(disconnectQuiesce)
}
