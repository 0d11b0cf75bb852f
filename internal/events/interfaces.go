// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events fans change notifications out to in-process listeners.
// Delivery is best-effort and at-most-once; the local cache stays the source
// of truth.
package events

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/voucher-sync/models"
)

// Notifier is what the sync orchestrator calls after every state change.
type Notifier interface {
	Publish(ctx context.Context, kind models.EventKind, data any)
}

// Handler receives one event. A returned error is logged and otherwise
// ignored.
type Handler func(ctx context.Context, event models.Event) error

// Subscriber hands out buffered event streams, e.g. for a server-sent
// events endpoint.
type Subscriber interface {
	SubscribeChan(buffer int, kinds ...models.EventKind) (<-chan models.Event, func())
}
