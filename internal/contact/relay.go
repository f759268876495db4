// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package contact

import (
	"context"
	"errors"
	"sync/atomic"
	"unicode/utf8"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/cropwise/internal/logging"
	"github.com/tomtom215/cropwise/internal/metrics"
)

// errSubscriptionClosed is returned from Serve when the subscriber closes the
// channel while ctx is still live, so suture restarts the relay.
var errSubscriptionClosed = errors.New("contact: subscription closed")

// Relay consumes contact messages and logs them. It implements suture.Service.
type Relay struct {
	subscriber  message.Subscriber
	topic       string
	logger      watermill.LoggerAdapter
	redactEmail bool

	relayed   atomic.Int64
	malformed atomic.Int64
}

// RelayOption configures a Relay.
type RelayOption func(*Relay)

// WithEmailRedaction masks sender addresses in relay logs.
func WithEmailRedaction(enabled bool) RelayOption {
	return func(r *Relay) { r.redactEmail = enabled }
}

// NewRelay creates a relay subscribed to topic.
func NewRelay(subscriber message.Subscriber, topic string, logger watermill.LoggerAdapter, opts ...RelayOption) (*Relay, error) {
	if subscriber == nil {
		return nil, ErrNilPubSub
	}
	if logger == nil {
		logger = watermill.NewStdLogger(false, false)
	}
	r := &Relay{
		subscriber: subscriber,
		topic:      topic,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Serve subscribes and handles messages until ctx is canceled.
func (r *Relay) Serve(ctx context.Context) error {
	msgs, err := r.subscriber.Subscribe(ctx, r.topic)
	if err != nil {
		return err
	}

	r.logger.Info("Contact relay subscribed", watermill.LogFields{"topic": r.topic})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return errSubscriptionClosed
			}
			r.handle(msg)
		}
	}
}

// handle logs and acks msg. Malformed payloads are acked too; redelivery
// would not fix them.
func (r *Relay) handle(msg *message.Message) {
	defer msg.Ack()

	m, err := UnmarshalMessage(msg.Payload)
	if err != nil {
		r.malformed.Add(1)
		r.logger.Error("Failed to decode contact message", err, watermill.LogFields{
			"message_uuid": msg.UUID,
		})
		return
	}

	email := logging.SanitizeValue(m.Email)
	if r.redactEmail {
		email = logging.SanitizeEmail(m.Email)
	}

	r.logger.Debug("Contact message relayed", watermill.LogFields{
		"message_uuid":   msg.UUID,
		"request_id":     msg.Metadata.Get(MetadataRequestID),
		"correlation_id": msg.Metadata.Get(MetadataCorrelationID),
		"name":           logging.SanitizeValue(m.Name),
		"email":          email,
		"message_chars":  utf8.RuneCountInString(m.Body),
	})

	r.relayed.Add(1)
	metrics.RecordContactMessage(metrics.ContactStageRelayed)
}

// Relayed returns how many messages were handled successfully.
func (r *Relay) Relayed() int64 {
	return r.relayed.Load()
}

// Malformed returns how many payloads could not be decoded.
func (r *Relay) Malformed() int64 {
	return r.malformed.Load()
}

func (r *Relay) String() string {
	return "contact-relay"
}
