// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package contact

import (
	"errors"
	"time"

	"github.com/goccy/go-json"
)

// ErrNilPubSub is returned when an Inbox or Relay is built without a transport.
var ErrNilPubSub = errors.New("contact: publisher or subscriber cannot be nil")

// Metadata keys set on every published message.
const (
	MetadataRequestID     = "request_id"
	MetadataCorrelationID = "correlation_id"
)

// Message is a single contact-form submission. Every field is free-form and
// may be empty.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Body       string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// Marshal encodes m as a Watermill payload.
func (m *Message) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

// UnmarshalMessage decodes a payload produced by Marshal.
func UnmarshalMessage(payload []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(payload, &m); err != nil {
		return Message{}, err
	}
	return m, nil
}
