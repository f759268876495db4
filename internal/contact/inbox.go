// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/tomtom215/cropwise/internal/logging"
	"github.com/tomtom215/cropwise/internal/metrics"
)

// Inbox publishes contact messages to a topic.
type Inbox struct {
	publisher message.Publisher
	topic     string
	logger    watermill.LoggerAdapter
	now       func() time.Time
}

// NewInbox creates an Inbox publishing to topic.
func NewInbox(publisher message.Publisher, topic string, logger watermill.LoggerAdapter) (*Inbox, error) {
	if publisher == nil {
		return nil, ErrNilPubSub
	}
	if logger == nil {
		logger = watermill.NewStdLogger(false, false)
	}
	return &Inbox{
		publisher: publisher,
		topic:     topic,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Publish assigns m an ID and receive time if it has none and publishes it.
// Request and correlation IDs from ctx travel as message metadata.
func (i *Inbox) Publish(ctx context.Context, m Message) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.ReceivedAt.IsZero() {
		m.ReceivedAt = i.now().UTC()
	}

	payload, err := m.Marshal()
	if err != nil {
		metrics.RecordContactMessage(metrics.ContactStagePublishFailed)
		return fmt.Errorf("encode contact message: %w", err)
	}

	msg := message.NewMessage(m.ID, payload)
	msg.SetContext(ctx)
	if id := logging.RequestIDFromContext(ctx); id != "" {
		msg.Metadata.Set(MetadataRequestID, id)
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set(MetadataCorrelationID, id)
	}

	if err := i.publisher.Publish(i.topic, msg); err != nil {
		metrics.RecordContactMessage(metrics.ContactStagePublishFailed)
		i.logger.Error("Failed to publish contact message", err, watermill.LogFields{
			"message_uuid": m.ID,
			"topic":        i.topic,
		})
		return fmt.Errorf("publish contact message: %w", err)
	}

	metrics.RecordContactMessage(metrics.ContactStagePublished)
	return nil
}
