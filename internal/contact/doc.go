// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

/*
Package contact carries contact-form submissions from the HTTP handler to an
in-process relay.

The Inbox publishes each Message as JSON on a Watermill topic. The Relay is a
suture service that subscribes to the same topic, logs every message at debug
level and acknowledges it. Both sides usually share one GoChannel:

	pubsub := contact.NewPubSub(cfg.Contact.Buffer, logging.NewWatermillAdapter())
	inbox, _ := contact.NewInbox(pubsub, cfg.Contact.Topic, nil)
	relay, _ := contact.NewRelay(pubsub, cfg.Contact.Topic, nil)
	tree.AddMessagingService(relay)

Nothing is persisted. A message published while no relay is subscribed is
dropped, and a process restart loses anything still buffered.
*/
package contact
