// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/voucher-sync/internal/config"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/models"
)

// ReasonMissingFromRemote is stored on vouchers soft-deleted by reconciliation.
const ReasonMissingFromRemote = "missing from remote ledger"

// RunDeletionReconciliation diffs the remote identity set against the local
// active vouchers. Local vouchers missing remotely are marked converted when
// they are drafts with a unique successor, otherwise deleted. Vouchers whose
// kind changed remotely are updated in place.
func (s *syncService) RunDeletionReconciliation(ctx context.Context, kinds []string) models.ReconciliationResult {
	if !s.state.begin(passReconcile) {
		return models.ReconciliationResult{Error: ErrAlreadySyncing.Error()}
	}

	log := s.logger.ForPass(passReconcile)
	var res models.ReconciliationResult
	err := s.runGuarded(ctx, passReconcile, log, func() (summary string, err error) {
		res, err = s.reconcilePass(ctx, kinds, log)
		return fmt.Sprintf("remote %d, local %d, deleted %d, converted %d, kind changed %d, ambiguous %d, pulled %d, deferred %d, failed %d",
			res.RemoteCount, res.LocalCount, res.Deleted, res.Converted, res.KindChanged, res.Ambiguous, res.Pulled, res.Deferred, res.Failed), err
	})
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

func (s *syncService) reconcilePass(ctx context.Context, kinds []string, log *logger.Logger) (models.ReconciliationResult, error) {
	var res models.ReconciliationResult

	remote, err := s.adapter.FetchAllVoucherIdentities(ctx, kinds)
	if err != nil {
		log.Err(err).Str("func", "syncService.reconcilePass").Msg("error fetching remote identities")
		return res, err
	}
	local, err := s.vouchers.ListIdentitiesForReconciliation(ctx, kinds)
	if err != nil {
		return res, fmt.Errorf("error listing local identities: %w", err)
	}
	res.RemoteCount, res.LocalCount = len(remote), len(local)

	if len(remote) == 0 && len(local) > 0 {
		log.Error().Str("func", "syncService.reconcilePass").Int("local", len(local)).Msg("remote identity set is empty, refusing to soft-delete the cache")
		return res, ErrEmptyRemoteSet
	}

	remoteByID := make(map[string]models.VoucherIdentity, len(remote))
	for _, r := range remote {
		remoteByID[r.GlobalID] = r
	}
	localIDs := make(map[string]struct{}, len(local))
	for _, l := range local {
		localIDs[l.GlobalID] = struct{}{}
	}

	var missing []models.VoucherIdentity
	for _, l := range local {
		r, ok := remoteByID[l.GlobalID]
		if !ok {
			missing = append(missing, l)
			continue
		}
		if r.Kind != "" && r.Kind != l.Kind {
			if err = s.vouchers.UpdateKind(ctx, l.GlobalID, r.Kind); err != nil {
				res.Failed++
				log.Err(err).Str("func", "syncService.reconcilePass").Str("global_id", l.GlobalID).Msg("error updating voucher kind")
				continue
			}
			res.KindChanged++
			s.notifier.Publish(ctx, models.EventVoucherKindChanged, models.VoucherIdentity{
				GlobalID: l.GlobalID, RemoteID: r.RemoteID, Kind: r.Kind, Number: r.Number,
			})
		}
	}

	// a successor created since the last pull is not cached yet; without it
	// a converted draft would look deleted
	resolved := true
	if s.hasDraft(missing) {
		var unknown []models.VoucherIdentity
		for _, r := range remote {
			if _, ok := localIDs[r.GlobalID]; !ok {
				unknown = append(unknown, r)
			}
		}
		var pulled int
		pulled, resolved = s.pullUnknown(ctx, unknown, log)
		res.Pulled = pulled
	}

	conversions, convEvents, deletions, ambiguous, deferred := s.classifyMissing(ctx, missing, resolved, log)
	res.Ambiguous = ambiguous
	res.Deferred = deferred

	if len(conversions) > 0 {
		batch, err := s.vouchers.MarkConverted(ctx, conversions)
		res.Converted += batch.Applied
		res.Failed += batch.Failed
		if err != nil {
			return res, fmt.Errorf("error marking vouchers converted: %w", err)
		}
		for _, e := range convEvents {
			if !slices.Contains(batch.FailedIDs, e.GlobalID) {
				s.notifier.Publish(ctx, models.EventVoucherConverted, e)
			}
		}
	}

	if len(deletions) > 0 {
		batch, err := s.vouchers.MarkDeleted(ctx, deletions, ReasonMissingFromRemote)
		res.Deleted += batch.Applied
		res.Failed += batch.Failed
		if err != nil {
			return res, fmt.Errorf("error marking vouchers deleted: %w", err)
		}
		if deleted := without(deletions, batch.FailedIDs); len(deleted) > 0 {
			s.notifier.Publish(ctx, models.EventVoucherDeleted, models.DeletionEvent{GlobalIDs: deleted, Reason: ReasonMissingFromRemote})
		}
	}

	return res, nil
}

// pullUnknown caches remote vouchers that have no local row so they can be
// matched as conversion successors. It reports false when any of them could
// not be cached.
func (s *syncService) pullUnknown(ctx context.Context, unknown []models.VoucherIdentity, log *logger.Logger) (int, bool) {
	var stats passStats
	resolved := true

	for _, u := range unknown {
		v, err := s.adapter.FetchVoucherDetail(ctx, u.RemoteID)
		if err != nil {
			resolved = false
			log.Err(err).Str("func", "syncService.pullUnknown").Str("global_id", u.GlobalID).Msg("error fetching uncached remote voucher")
			if ctx.Err() != nil {
				break
			}
			continue
		}
		before := stats.FailedCount
		s.applyVouchers(ctx, []models.Voucher{v}, &stats, log)
		if stats.FailedCount > before {
			resolved = false
		}
	}

	return stats.NewCount + stats.UpdatedCount, resolved
}

func (s *syncService) hasDraft(ids []models.VoucherIdentity) bool {
	return slices.ContainsFunc(ids, func(id models.VoucherIdentity) bool { return s.isDraftKind(id.Kind) })
}

// classifyMissing splits vouchers missing from the remote set into
// conversions and deletions. Only drafts are candidates for conversion and
// every successor can be claimed once. When the remote set is not fully
// cached drafts are left for the next pass.
func (s *syncService) classifyMissing(ctx context.Context, missing []models.VoucherIdentity, resolved bool, log *logger.Logger) (
	conversions []models.Conversion,
	convEvents []models.ConversionEvent,
	deletions []string,
	ambiguous int,
	deferred int,
) {
	missingIDs := make(map[string]struct{}, len(missing))
	for _, m := range missing {
		missingIDs[m.GlobalID] = struct{}{}
	}
	claimed := make(map[string]struct{})

	for _, m := range missing {
		if !s.isDraftKind(m.Kind) {
			deletions = append(deletions, m.GlobalID)
			continue
		}
		if !resolved {
			deferred++
			log.Warn().Str("func", "syncService.classifyMissing").Str("global_id", m.GlobalID).Msg("remote set not fully cached, draft left for next pass")
			continue
		}

		draft, err := s.vouchers.GetVoucherByGlobalID(ctx, m.GlobalID)
		if err != nil {
			log.Err(err).Str("func", "syncService.classifyMissing").Str("global_id", m.GlobalID).Msg("error loading draft, treating as deleted")
			deletions = append(deletions, m.GlobalID)
			continue
		}

		sameDay, err := s.vouchers.ListActiveByDate(ctx, draft.Date)
		if err != nil {
			log.Err(err).Str("func", "syncService.classifyMissing").Str("global_id", m.GlobalID).Msg("error loading conversion candidates, treating as deleted")
			deletions = append(deletions, m.GlobalID)
			continue
		}

		candidates := make([]models.Voucher, 0, len(sameDay))
		for _, c := range sameDay {
			_, gone := missingIDs[c.GlobalID]
			_, taken := claimed[c.GlobalID]
			if gone || taken || s.isDraftKind(c.Kind) {
				continue
			}
			candidates = append(candidates, c)
		}

		match := MatchConversion(draft, candidates)
		if !match.Matched {
			if match.Candidates > 1 {
				ambiguous++
				log.Warn().
					Str("func", "syncService.classifyMissing").
					Str("global_id", m.GlobalID).
					Int("candidates", match.Candidates).
					Msg("ambiguous conversion match, treating as deleted")
			}
			deletions = append(deletions, m.GlobalID)
			continue
		}

		claimed[match.Candidate.GlobalID] = struct{}{}
		conversions = append(conversions, models.Conversion{GlobalID: m.GlobalID, NewKind: match.Candidate.Kind})
		convEvents = append(convEvents, models.ConversionEvent{
			GlobalID:          m.GlobalID,
			ConvertedToKind:   match.Candidate.Kind,
			SuccessorGlobalID: match.Candidate.GlobalID,
		})
		log.Info().
			Str("func", "syncService.classifyMissing").
			Str("global_id", m.GlobalID).
			Str("successor", match.Candidate.GlobalID).
			Str("kind", match.Candidate.Kind).
			Msg("draft converted")
	}

	return conversions, convEvents, deletions, ambiguous, deferred
}

func (s *syncService) isDraftKind(kind string) bool {
	kinds := s.syncCfg.DraftKinds
	if len(kinds) == 0 {
		kinds = config.DefaultDraftKinds
	}
	return slices.Contains(kinds, kind)
}

func without(ids, exclude []string) []string {
	if len(exclude) == 0 {
		return ids
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(exclude, id) {
			out = append(out, id)
		}
	}
	return out
}
