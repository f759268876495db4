// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package contact

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// NewPubSub returns a non-persistent in-memory GoChannel. buffer is the
// per-subscriber output channel size.
func NewPubSub(buffer int64, logger watermill.LoggerAdapter) *gochannel.GoChannel {
	if logger == nil {
		logger = watermill.NewStdLogger(false, false)
	}
	if buffer < 0 {
		buffer = 0
	}
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: buffer,
		Persistent:          false,
	}, logger)
}
