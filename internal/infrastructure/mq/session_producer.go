package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"vidcall_server/internal/model"

	"github.com/segmentio/kafka-go"
)

// PublishSessionEvent writes event to the login or logout topic, keyed by
// user so one user's events stay ordered.
func (k *KafkaClient) PublishSessionEvent(ctx context.Context, event model.SessionEvent) error {
	var topic string
	switch event.Type {
	case model.SessionSignedIn:
		topic = k.cfg.LoginTopic
	case model.SessionSignedOut:
		topic = k.cfg.LogoutTopic
	default:
		return fmt.Errorf("unknown session event type %q", event.Type)
	}
	if topic == "" {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Producer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(event.UserID),
		Value: value,
	})
}
