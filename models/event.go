// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventKind names a change notification.
type EventKind string

const (
	EventVoucherCreated     EventKind = "voucherCreated"
	EventVoucherUpdated     EventKind = "voucherUpdated"
	EventVoucherDeleted     EventKind = "voucherDeleted"
	EventVoucherConverted   EventKind = "voucherConverted"
	EventVoucherKindChanged EventKind = "voucherKindChanged"
	EventSyncProgress       EventKind = "syncProgress"
	EventSyncCompleted      EventKind = "syncCompleted"
	EventSyncFailed         EventKind = "syncFailed"
)

// Event is one best-effort change notification.
type Event struct {
	ID   string    `json:"id"`
	Kind EventKind `json:"event_kind"`
	Data any       `json:"data"`
	At   time.Time `json:"at"`
}

// ConversionEvent is the payload of EventVoucherConverted.
type ConversionEvent struct {
	GlobalID          string `json:"global_id"`
	ConvertedToKind   string `json:"converted_to_kind"`
	SuccessorGlobalID string `json:"successor_global_id"`
}

// DeletionEvent is the payload of EventVoucherDeleted.
type DeletionEvent struct {
	GlobalIDs []string `json:"global_ids"`
	Reason    string   `json:"reason"`
}

// ProgressEvent is the payload of EventSyncProgress and EventSyncCompleted.
type ProgressEvent struct {
	Pass    string `json:"pass"`
	Message string `json:"message"`
	Done    int    `json:"done"`
	Total   int    `json:"total,omitempty"`
}
