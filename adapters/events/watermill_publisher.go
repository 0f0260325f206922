// Package events publishes auth state changes over a Watermill
// message bus so other instances and audit consumers can react.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Crystara-Markets/supra-multiwallet/ports"
)

const (
	// TopicLogin carries successful wallet authentications.
	TopicLogin = "auth.login"

	// TopicLogout carries explicit logouts.
	TopicLogout = "auth.logout"
)

// AuthEvent is the payload published on both topics.
type AuthEvent struct {
	Address string    `json:"address"`
	At      time.Time `json:"at"`
}

// WatermillPublisher implements the EventPublisher interface using
// Watermill.
type WatermillPublisher struct {
	publisher message.Publisher
}

// NewWatermillPublisher creates a new Watermill-backed publisher.
func NewWatermillPublisher(publisher message.Publisher) ports.EventPublisher {
	return &WatermillPublisher{publisher: publisher}
}

// PublishLogin publishes a login event.
func (p *WatermillPublisher) PublishLogin(ctx context.Context, address string) error {
	return p.publish(TopicLogin, address)
}

// PublishLogout publishes a logout event.
func (p *WatermillPublisher) PublishLogout(ctx context.Context, address string) error {
	return p.publish(TopicLogout, address)
}

func (p *WatermillPublisher) publish(topic, address string) error {
	payload, err := json.Marshal(AuthEvent{Address: address, At: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", topic, err)
	}

	return nil
}
