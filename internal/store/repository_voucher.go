// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/models"
)

const (
	vouchersTable  = "vouchers"
	lineItemsTable = "voucher_line_items"
)

var voucherColumns = []string{
	"global_id", "remote_id", "change_sequence", "kind", "number", "voucher_date",
	"counterparty_name", "amount", "note", "remote_created_at", "remote_modified_at",
	"is_deleted", "deleted_reason", "is_converted", "converted_to_kind", "audit_flag",
	"pay_cash", "pay_bank", "pay_upi", "pay_cheque",
}

var lineItemColumns = []string{"item_name", "quantity", "unit", "rate", "amount", "warehouse"}

type voucherRepository struct {
	*DB
	logger *logger.Logger
}

// NewVoucherRepository returns a [VoucherRepository] backed by db.
func NewVoucherRepository(db *DB, log *logger.Logger) VoucherRepository {
	return &voucherRepository{DB: db, logger: log}
}

func (r *voucherRepository) UpsertVoucher(ctx context.Context, v models.Voucher) (models.UpsertOutcome, error) {
	var outcome models.UpsertOutcome

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		current, found, err := r.currentSequence(ctx, tx, v.GlobalID)
		if err != nil {
			return err
		}

		switch {
		case !found:
			outcome = models.UpsertInserted
			err = r.insertVoucher(ctx, tx, v)
		case v.ChangeSequence <= current:
			outcome = models.UpsertStale
			return nil
		default:
			outcome = models.UpsertUpdated
			err = r.updateVoucher(ctx, tx, v)
		}
		if err != nil {
			return err
		}

		// an edited voucher never keeps its old lines; an empty set is
		// fetched again on the next detail read
		if outcome == models.UpsertUpdated || len(v.LineItems) > 0 {
			return r.replaceLineItemsTx(ctx, tx, v.GlobalID, v.LineItems)
		}
		return nil
	})
	if err != nil {
		r.logger.Err(err).
			Str("func", "voucherRepository.UpsertVoucher").
			Str("global_id", v.GlobalID).
			Msg("error upserting voucher")
		return 0, err
	}

	return outcome, nil
}

func (r *voucherRepository) currentSequence(ctx context.Context, tx *sql.Tx, globalID string) (int64, bool, error) {
	query, args, err := r.builder.
		Select("change_sequence").
		From(vouchersTable).
		Where(sq.Eq{"global_id": globalID}).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seq int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return seq, true, nil
}

func (r *voucherRepository) insertVoucher(ctx context.Context, tx *sql.Tx, v models.Voucher) error {
	query, args, err := r.builder.
		Insert(vouchersTable).
		Columns(append(voucherColumns, "synced_at")...).
		Values(append(voucherValues(v), time.Now().UTC())...).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// updateVoucher overwrites every mutable field. A voucher reported again by
// the remote ledger is active, so the deleted and converted flags are reset.
func (r *voucherRepository) updateVoucher(ctx context.Context, tx *sql.Tx, v models.Voucher) error {
	values := voucherValues(v)
	update := r.builder.Update(vouchersTable)
	for i, column := range voucherColumns {
		if column == "global_id" {
			continue
		}
		update = update.Set(column, values[i])
	}

	query, args, err := update.
		Set("is_deleted", false).
		Set("deleted_reason", "").
		Set("deleted_at", nil).
		Set("is_converted", false).
		Set("converted_to_kind", "").
		Set("synced_at", time.Now().UTC()).
		Where(sq.Eq{"global_id": v.GlobalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *voucherRepository) GetVoucherByGlobalID(ctx context.Context, globalID string) (models.Voucher, error) {
	query, args, err := r.builder.
		Select(voucherColumns...).
		From(vouchersTable).
		Where(sq.Eq{"global_id": globalID}).
		ToSql()
	if err != nil {
		return models.Voucher{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	v, err := scanVoucher(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Voucher{}, ErrVoucherNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "voucherRepository.GetVoucherByGlobalID").Msg("error scanning voucher")
		return models.Voucher{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	v.LineItems, err = r.GetLineItems(ctx, globalID)
	if err != nil {
		return models.Voucher{}, err
	}
	return v, nil
}

func (r *voucherRepository) ListIdentitiesForReconciliation(ctx context.Context, kinds []string) ([]models.VoucherIdentity, error) {
	builder := r.builder.
		Select("global_id", "remote_id", "kind", "number").
		From(vouchersTable).
		Where(activeOnly()).
		OrderBy("global_id")
	if len(kinds) > 0 {
		builder = builder.Where(sq.Eq{"kind": kinds})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "voucherRepository.ListIdentitiesForReconciliation").Msg("error listing identities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var identities []models.VoucherIdentity
	for rows.Next() {
		var id models.VoucherIdentity
		if err = rows.Scan(&id.GlobalID, &id.RemoteID, &id.Kind, &id.Number); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		identities = append(identities, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return identities, nil
}

func (r *voucherRepository) ListActiveByDate(ctx context.Context, day time.Time) ([]models.Voucher, error) {
	from := truncateDay(day)
	query, args, err := r.builder.
		Select(voucherColumns...).
		From(vouchersTable).
		Where(activeOnly()).
		Where(sq.GtOrEq{"voucher_date": from}).
		Where(sq.Lt{"voucher_date": from.AddDate(0, 0, 1)}).
		OrderBy("global_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "voucherRepository.ListActiveByDate").Msg("error listing vouchers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var vouchers []models.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		vouchers = append(vouchers, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vouchers, nil
}

func (r *voucherRepository) MarkDeleted(ctx context.Context, globalIDs []string, reason string) (models.BatchResult, error) {
	now := time.Now().UTC()
	return r.markBatch(ctx, "voucherRepository.MarkDeleted", globalIDs, func(id string) sq.UpdateBuilder {
		return r.builder.Update(vouchersTable).
			Set("is_deleted", true).
			Set("deleted_reason", reason).
			Set("deleted_at", now).
			Where(sq.Eq{"global_id": id, "is_deleted": false, "is_converted": false})
	})
}

func (r *voucherRepository) MarkConverted(ctx context.Context, conversions []models.Conversion) (models.BatchResult, error) {
	kinds := make(map[string]string, len(conversions))
	ids := make([]string, 0, len(conversions))
	for _, c := range conversions {
		kinds[c.GlobalID] = c.NewKind
		ids = append(ids, c.GlobalID)
	}

	return r.markBatch(ctx, "voucherRepository.MarkConverted", ids, func(id string) sq.UpdateBuilder {
		return r.builder.Update(vouchersTable).
			Set("is_converted", true).
			Set("converted_to_kind", kinds[id]).
			Where(sq.Eq{"global_id": id, "is_deleted": false})
	})
}

// markBatch applies one UPDATE per id inside a single transaction. Ids whose
// UPDATE matched no row are reported in FailedIDs. An SQL error rolls the
// whole batch back and every id is reported as failed.
func (r *voucherRepository) markBatch(ctx context.Context, fn string, ids []string, update func(id string) sq.UpdateBuilder) (models.BatchResult, error) {
	result := models.BatchResult{Requested: len(ids)}
	if len(ids) == 0 {
		return result, nil
	}

	var failed []string
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		failed = failed[:0]
		for _, id := range ids {
			query, args, err := update(id).ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if affected == 0 {
				failed = append(failed, id)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", fn).Int("batch", len(ids)).Msg("batch rolled back")
		result.Failed = len(ids)
		result.FailedIDs = append([]string(nil), ids...)
		return result, err
	}

	result.Failed = len(failed)
	result.Applied = len(ids) - len(failed)
	if len(failed) > 0 {
		result.FailedIDs = append([]string(nil), failed...)
		r.logger.Warn().Str("func", fn).Strs("failed_ids", failed).Msg("some vouchers were not in a markable state")
	}
	return result, nil
}

func (r *voucherRepository) UpdateKind(ctx context.Context, globalID, kind string) error {
	query, args, err := r.builder.
		Update(vouchersTable).
		Set("kind", kind).
		Set("synced_at", time.Now().UTC()).
		Where(sq.Eq{"global_id": globalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "voucherRepository.UpdateKind").Msg("error updating kind")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrVoucherNotFound
	}
	return nil
}

func (r *voucherRepository) ReplaceLineItems(ctx context.Context, globalID string, items []models.LineItem) error {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		_, found, err := r.currentSequence(ctx, tx, globalID)
		if err != nil {
			return err
		}
		if !found {
			return ErrVoucherNotFound
		}
		return r.replaceLineItemsTx(ctx, tx, globalID, items)
	})
	if err != nil && !errors.Is(err, ErrVoucherNotFound) {
		r.logger.Err(err).Str("func", "voucherRepository.ReplaceLineItems").Msg("error replacing line items")
	}
	return err
}

func (r *voucherRepository) replaceLineItemsTx(ctx context.Context, tx *sql.Tx, globalID string, items []models.LineItem) error {
	query, args, err := r.builder.
		Delete(lineItemsTable).
		Where(sq.Eq{"voucher_global_id": globalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(items) == 0 {
		return nil
	}

	insert := r.builder.
		Insert(lineItemsTable).
		Columns(append([]string{"voucher_global_id", "position"}, lineItemColumns...)...)
	for i, item := range items {
		insert = insert.Values(globalID, i, item.ItemName, item.Quantity, item.Unit, item.Rate, item.Amount, item.Warehouse)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *voucherRepository) GetLineItems(ctx context.Context, globalID string) ([]models.LineItem, error) {
	query, args, err := r.builder.
		Select(lineItemColumns...).
		From(lineItemsTable).
		Where(sq.Eq{"voucher_global_id": globalID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "voucherRepository.GetLineItems").Msg("error querying line items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.LineItem
	for rows.Next() {
		var item models.LineItem
		if err = rows.Scan(&item.ItemName, &item.Quantity, &item.Unit, &item.Rate, &item.Amount, &item.Warehouse); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *voucherRepository) PurgeDeleted(ctx context.Context, globalIDs []string) (models.PurgeResult, error) {
	result := models.PurgeResult{}
	if len(globalIDs) == 0 {
		result.Success = true
		return result, nil
	}

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		purged := 0
		for _, id := range globalIDs {
			query, args, err := r.builder.
				Delete(lineItemsTable).
				Where(sq.Expr("voucher_global_id IN (SELECT global_id FROM vouchers WHERE global_id = ? AND is_deleted = ?)", id, true)).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			query, args, err = r.builder.
				Delete(vouchersTable).
				Where(sq.Eq{"global_id": id, "is_deleted": true}).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if affected, _ := res.RowsAffected(); affected > 0 {
				purged++
			}
		}
		result.Purged = purged
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "voucherRepository.PurgeDeleted").Msg("purge rolled back")
		return models.PurgeResult{Failed: len(globalIDs), Error: err.Error()}, err
	}

	result.Failed = len(globalIDs) - result.Purged
	result.Success = result.Failed == 0
	if result.Failed > 0 {
		result.Error = ErrNotSoftDeleted.Error()
	}
	return result, nil
}

func activeOnly() sq.Eq {
	return sq.Eq{"is_deleted": false, "is_converted": false}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nullableTime(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.UTC()
}

func voucherValues(v models.Voucher) []any {
	var date any
	if !v.Date.IsZero() {
		date = v.Date.UTC()
	}

	return []any{
		v.GlobalID, v.RemoteID, v.ChangeSequence, v.Kind, v.Number, date,
		v.CounterpartyName, v.Amount, v.Note, nullableTime(v.CreatedAt), nullableTime(v.LastModifiedAt),
		v.IsDeleted, v.DeletedReason, v.IsConverted, v.ConvertedToKind, v.AuditFlag,
		v.PaymentModes.Cash, v.PaymentModes.Bank, v.PaymentModes.UPI, v.PaymentModes.Cheque,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVoucher(row rowScanner) (models.Voucher, error) {
	var (
		v                           models.Voucher
		date, createdAt, modifiedAt sql.NullTime
	)

	err := row.Scan(
		&v.GlobalID, &v.RemoteID, &v.ChangeSequence, &v.Kind, &v.Number, &date,
		&v.CounterpartyName, &v.Amount, &v.Note, &createdAt, &modifiedAt,
		&v.IsDeleted, &v.DeletedReason, &v.IsConverted, &v.ConvertedToKind, &v.AuditFlag,
		&v.PaymentModes.Cash, &v.PaymentModes.Bank, &v.PaymentModes.UPI, &v.PaymentModes.Cheque,
	)
	if err != nil {
		return models.Voucher{}, err
	}

	if date.Valid {
		v.Date = date.Time.UTC()
	}
	if createdAt.Valid {
		t := createdAt.Time.UTC()
		v.CreatedAt = &t
	}
	if modifiedAt.Valid {
		t := modifiedAt.Time.UTC()
		v.LastModifiedAt = &t
	}
	return v, nil
}
