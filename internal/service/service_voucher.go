// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/voucher-sync/internal/adapter"
	"github.com/MKhiriev/voucher-sync/internal/events"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/internal/store"
	"github.com/MKhiriev/voucher-sync/internal/utils"
	"github.com/MKhiriev/voucher-sync/internal/validators"
	"github.com/MKhiriev/voucher-sync/models"
)

// ReasonDeletedLocally is stored on vouchers deleted through the write-back path.
const ReasonDeletedLocally = "deleted locally"

type voucherService struct {
	adapter   adapter.LedgerAdapter
	vouchers  store.VoucherRepository
	pending   store.PendingRepository
	notifier  events.Notifier
	validator validators.Validator
	newID     func() string

	logger *logger.Logger
}

func NewVoucherService(ledger adapter.LedgerAdapter, storages *store.Storages, notifier events.Notifier, log *logger.Logger) VoucherService {
	return &voucherService{
		adapter:   ledger,
		vouchers:  storages.Vouchers,
		pending:   storages.Pending,
		notifier:  notifier,
		validator: validators.NewVoucherValidator(),
		newID:     utils.NewUUIDGenerator().Generate,
		logger:    log,
	}
}

func (s *voucherService) Get(ctx context.Context, globalID string) (models.Voucher, error) {
	v, err := s.vouchers.GetVoucherByGlobalID(ctx, globalID)
	if errors.Is(err, store.ErrVoucherNotFound) {
		return models.Voucher{}, ErrVoucherNotFound
	}
	return v, err
}

// Detail returns the voucher with its line items. Cached line items are
// served as is, otherwise they are fetched from the remote ledger and cached.
func (s *voucherService) Detail(ctx context.Context, globalID string) models.VoucherDetailResult {
	v, err := s.Get(ctx, globalID)
	if err != nil {
		return models.VoucherDetailResult{Error: err.Error()}
	}
	if len(v.LineItems) > 0 {
		return models.VoucherDetailResult{Success: true, Voucher: &v}
	}

	detail, err := s.adapter.FetchVoucherDetail(ctx, v.RemoteID)
	if err != nil {
		s.logger.Err(err).
			Str("func", "voucherService.Detail").
			Str("global_id", globalID).
			Str("kind", string(adapter.KindOf(err))).
			Msg("error fetching voucher detail")
		return models.VoucherDetailResult{Error: err.Error()}
	}

	if len(detail.LineItems) > 0 {
		if err = s.vouchers.ReplaceLineItems(ctx, globalID, detail.LineItems); err != nil {
			s.logger.Err(err).Str("func", "voucherService.Detail").Str("global_id", globalID).Msg("error caching line items")
		}
	}
	v.LineItems = detail.LineItems
	return models.VoucherDetailResult{Success: true, Voucher: &v}
}

// Create pushes a new voucher. When the remote ledger is unreachable the
// payload is queued and retried by the next master-data pass.
func (s *voucherService) Create(ctx context.Context, payload models.VoucherPayload) models.VoucherWriteResult {
	if err := s.validator.Validate(ctx, payload, validators.CreatePayloadFields...); err != nil {
		return models.VoucherWriteResult{Error: fmt.Errorf("%w: %w", ErrInvalidPayload, err).Error()}
	}

	result, err := s.adapter.CreateVoucher(ctx, payload)
	if adapter.IsTransport(err) {
		return s.enqueue(ctx, payload, err)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "voucherService.Create").Msg("remote ledger did not create the voucher")
		return models.VoucherWriteResult{Error: err.Error()}
	}
	if !result.Success {
		return models.VoucherWriteResult{Error: result.Error}
	}

	s.logger.Info().Str("func", "voucherService.Create").Str("remote_id", result.RemoteID).Msg("voucher created")
	return models.VoucherWriteResult{Success: true, RemoteID: result.RemoteID}
}

func (s *voucherService) enqueue(ctx context.Context, payload models.VoucherPayload, cause error) models.VoucherWriteResult {
	pending := models.PendingVoucher{
		ID:        s.newID(),
		Payload:   payload,
		LastError: cause.Error(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.pending.Enqueue(ctx, pending); err != nil {
		s.logger.Err(err).Str("func", "voucherService.enqueue").Msg("error queueing voucher")
		return models.VoucherWriteResult{Error: fmt.Sprintf("%s; queueing failed: %s", cause, err)}
	}

	s.logger.Warn().
		Str("func", "voucherService.enqueue").
		Str("pending_id", pending.ID).
		Str("kind", string(adapter.KindOf(cause))).
		Msg("remote ledger unreachable, voucher queued")
	return models.VoucherWriteResult{Success: true, Queued: true, PendingID: pending.ID}
}

// Update pushes an alteration and then fully replaces the cached line items.
func (s *voucherService) Update(ctx context.Context, payload models.VoucherPayload) models.VoucherWriteResult {
	if err := s.validator.Validate(ctx, payload, validators.UpdatePayloadFields...); err != nil {
		return models.VoucherWriteResult{Error: fmt.Errorf("%w: %w", ErrInvalidPayload, err).Error()}
	}

	result, err := s.adapter.UpdateVoucher(ctx, payload)
	if err != nil {
		s.logger.Err(err).Str("func", "voucherService.Update").Str("global_id", payload.GlobalID).Msg("remote ledger did not alter the voucher")
		return models.VoucherWriteResult{Error: err.Error()}
	}
	if !result.Success {
		return models.VoucherWriteResult{Error: result.Error}
	}

	if err = s.vouchers.ReplaceLineItems(ctx, payload.GlobalID, payload.LineItems); err != nil && !errors.Is(err, store.ErrVoucherNotFound) {
		s.logger.Err(err).Str("func", "voucherService.Update").Str("global_id", payload.GlobalID).Msg("error replacing cached line items")
		return models.VoucherWriteResult{Success: true, RemoteID: payload.RemoteID, Error: err.Error()}
	}

	s.notifier.Publish(ctx, models.EventVoucherUpdated, models.VoucherIdentity{
		GlobalID: payload.GlobalID, RemoteID: payload.RemoteID, Kind: payload.Kind, Number: payload.Number,
	})
	return models.VoucherWriteResult{Success: true, RemoteID: payload.RemoteID}
}

// Delete removes the voucher remotely and soft-deletes the cached row.
func (s *voucherService) Delete(ctx context.Context, globalID string) models.VoucherWriteResult {
	v, err := s.Get(ctx, globalID)
	if err != nil {
		return models.VoucherWriteResult{Error: err.Error()}
	}

	result, err := s.adapter.DeleteVoucher(ctx, v.RemoteID)
	if err != nil {
		s.logger.Err(err).Str("func", "voucherService.Delete").Str("global_id", globalID).Msg("remote ledger did not delete the voucher")
		return models.VoucherWriteResult{Error: err.Error()}
	}
	if !result.Success {
		return models.VoucherWriteResult{Error: result.Error}
	}

	batch, err := s.vouchers.MarkDeleted(ctx, []string{globalID}, ReasonDeletedLocally)
	if err != nil || batch.Applied == 0 {
		s.logger.Warn().Err(err).Str("func", "voucherService.Delete").Str("global_id", globalID).Msg("remote delete succeeded but cached voucher was not flagged")
	} else {
		s.notifier.Publish(ctx, models.EventVoucherDeleted, models.DeletionEvent{GlobalIDs: []string{globalID}, Reason: ReasonDeletedLocally})
	}

	return models.VoucherWriteResult{Success: true, RemoteID: v.RemoteID}
}

// Purge hard-deletes vouchers that are already soft-deleted.
func (s *voucherService) Purge(ctx context.Context, globalIDs []string) models.PurgeResult {
	result, err := s.vouchers.PurgeDeleted(ctx, globalIDs)
	if err != nil {
		s.logger.Err(err).Str("func", "voucherService.Purge").Int("requested", len(globalIDs)).Msg("purge failed")
		if result.Error == "" {
			result.Error = err.Error()
		}
		return result
	}

	s.logger.Info().Str("func", "voucherService.Purge").Int("purged", result.Purged).Int("failed", result.Failed).Msg("purge done")
	return result
}
