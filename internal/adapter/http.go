// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/voucher-sync/internal/config"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/internal/utils"
	"github.com/MKhiriev/voucher-sync/models"
	"github.com/clbanning/mxj/v2"
)

const (
	voucherCollection  = "VoucherSyncCollection"
	identityCollection = "VoucherIdentityCollection"
	detailCollection   = "VoucherDetailCollection"
	stockCollection    = "StockItemSyncCollection"
	partyCollection    = "PartySyncCollection"
	companyCollection  = "CompanyListCollection"

	partyGroupsFormula = "$$IsLedOfGrp:$Name:$$GroupSundryDebtors OR $$IsLedOfGrp:$Name:$$GroupSundryCreditors"
)

type tallyAdapter struct {
	client   *utils.HTTPClient
	throttle *throttle
	company  string

	logger *logger.Logger
}

// NewHTTPLedgerAdapter constructs the XML-over-HTTP implementation of
// [LedgerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the request timeout and the shared
// throttle from adapterCfg.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPLedgerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (LedgerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &tallyAdapter{
		client:   client,
		throttle: newThrottle(adapterCfg.MinInterval),
		company:  strings.TrimSpace(adapterCfg.Company),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// post sends one envelope through the throttle and parses the reply.
func (t *tallyAdapter) post(ctx context.Context, op string, env envelope) (mxj.Map, error) {
	body, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode %s envelope: %w", op, err)
	}

	var mv mxj.Map
	err = t.throttle.do(ctx, func() error {
		started := time.Now()
		resp, err := t.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "text/xml; charset=utf-8").
			SetBody(body).
			Post("/")
		if err != nil {
			return classifyTransportError(err)
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}

		mv, err = parseResponse(resp.Body())
		t.logger.Debug().
			Str("op", op).
			Dur("took", time.Since(started)).
			Int("bytes", len(resp.Body())).
			Msg("remote call completed")
		return err
	})
	if err != nil {
		t.logger.Err(err).
			Str("func", "tallyAdapter.post").
			Str("op", op).
			Str("kind", string(KindOf(err))).
			Msg("remote call failed")
		return nil, err
	}

	return mv, nil
}

// CheckConnectivity implements [LedgerAdapter].
func (t *tallyAdapter) CheckConnectivity(ctx context.Context) models.Connectivity {
	req := newCollectionRequest(companyCollection, "Company", "", companyFetch)

	mv, err := t.post(ctx, "checkConnectivity", req.envelope())
	if err != nil {
		return models.Connectivity{Connected: false, Error: err.Error()}
	}

	companies := make([]string, 0)
	for _, c := range records(mv, "COMPANY") {
		if name := extractScalar(c, fieldName); name != "" {
			companies = append(companies, name)
		}
	}

	return models.Connectivity{Connected: true, AvailableCompanies: companies}
}

// FetchVouchersSince implements [LedgerAdapter].
func (t *tallyAdapter) FetchVouchersSince(ctx context.Context, cursor int64, kinds []string) ([]models.Voucher, error) {
	req := newCollectionRequest(voucherCollection, "Voucher", t.company, voucherFetch).
		filter("SinceAlterID", alterIDFormula(cursor)).
		filter("ActiveOnly", activeOnlyFormula).
		filter("KindFilter", kindFormula(kinds))

	mv, err := t.post(ctx, "fetchVouchersSince", req.envelope())
	if err != nil {
		return nil, err
	}

	return vouchersFrom(mv)
}

// FetchVouchersInRange implements [LedgerAdapter].
func (t *tallyAdapter) FetchVouchersInRange(ctx context.Context, from, to time.Time, kinds []string) ([]models.Voucher, error) {
	req := newCollectionRequest(voucherCollection, "Voucher", t.company, voucherFetch).
		between(from, to).
		filter("InRange", dateRangeFormula(from, to)).
		filter("ActiveOnly", activeOnlyFormula).
		filter("KindFilter", kindFormula(kinds))

	mv, err := t.post(ctx, "fetchVouchersInRange", req.envelope())
	if err != nil {
		return nil, err
	}

	return vouchersFrom(mv)
}

// FetchAllVoucherIdentities implements [LedgerAdapter].
func (t *tallyAdapter) FetchAllVoucherIdentities(ctx context.Context, kinds []string) ([]models.VoucherIdentity, error) {
	req := newCollectionRequest(identityCollection, "Voucher", t.company, identityFetch).
		filter("ActiveOnly", activeOnlyFormula).
		filter("KindFilter", kindFormula(kinds))

	mv, err := t.post(ctx, "fetchAllVoucherIdentities", req.envelope())
	if err != nil {
		return nil, err
	}

	recs := records(mv, "VOUCHER")
	if len(recs) == 0 {
		if err = remoteLineError(mv); err != nil {
			return nil, err
		}
	}

	ids := make([]models.VoucherIdentity, 0, len(recs))
	for _, r := range recs {
		if isExcluded(r) {
			continue
		}
		ids = append(ids, normalizeIdentity(r))
	}
	return ids, nil
}

// FetchVoucherDetail implements [LedgerAdapter].
func (t *tallyAdapter) FetchVoucherDetail(ctx context.Context, remoteID string) (models.Voucher, error) {
	remoteID = strings.TrimSpace(remoteID)
	if !isNumericID(remoteID) {
		return models.Voucher{}, fmt.Errorf("fetch voucher detail: %w", errMissingRemoteID)
	}

	mv, err := t.post(ctx, "fetchVoucherDetail", objectRequest("Voucher", remoteID, t.company, detailFetch))
	if err != nil && IsTransport(err) {
		return models.Voucher{}, err
	}
	if err == nil {
		if v, ok := firstVoucher(mv); ok {
			return v, nil
		}
	}

	t.logger.Debug().
		Str("func", "tallyAdapter.FetchVoucherDetail").
		Str("remote_id", remoteID).
		Msg("object read returned nothing, trying filtered collection")

	req := newCollectionRequest(detailCollection, "Voucher", t.company, detailFetch).
		filter("ByMasterID", masterIDFormula(remoteID))
	mv, err = t.post(ctx, "fetchVoucherDetailFallback", req.envelope())
	if err != nil {
		return models.Voucher{}, err
	}
	if v, ok := firstVoucher(mv); ok {
		return v, nil
	}

	return models.Voucher{}, fmt.Errorf("voucher %s: %w", remoteID, ErrNotFound)
}

// CreateVoucher implements [LedgerAdapter].
func (t *tallyAdapter) CreateVoucher(ctx context.Context, payload models.VoucherPayload) (models.MutationResult, error) {
	return t.mutate(ctx, "createVoucher", actionCreate, importVoucherFrom(payload, actionCreate))
}

// UpdateVoucher implements [LedgerAdapter].
func (t *tallyAdapter) UpdateVoucher(ctx context.Context, payload models.VoucherPayload) (models.MutationResult, error) {
	if strings.TrimSpace(payload.RemoteID) == "" {
		err := fmt.Errorf("update voucher: %w", errMissingRemoteID)
		return models.MutationResult{Error: err.Error()}, err
	}
	return t.mutate(ctx, "updateVoucher", actionAlter, importVoucherFrom(payload, actionAlter))
}

// DeleteVoucher implements [LedgerAdapter].
func (t *tallyAdapter) DeleteVoucher(ctx context.Context, remoteID string) (models.MutationResult, error) {
	if strings.TrimSpace(remoteID) == "" {
		err := fmt.Errorf("delete voucher: %w", errMissingRemoteID)
		return models.MutationResult{Error: err.Error()}, err
	}
	v := importVoucher{Action: actionDelete, TagName: "MASTERID", TagValue: strings.TrimSpace(remoteID)}
	return t.mutate(ctx, "deleteVoucher", actionDelete, v)
}

func (t *tallyAdapter) mutate(ctx context.Context, op, action string, v importVoucher) (models.MutationResult, error) {
	mv, err := t.post(ctx, op, importRequest(t.company, v))
	if err != nil {
		return models.MutationResult{Error: err.Error()}, err
	}

	result, err := resolveMutation(mv, action)
	if err != nil {
		t.logger.Warn().
			Str("func", "tallyAdapter.mutate").
			Str("op", op).
			Str("reason", result.Error).
			Msg("remote ledger did not confirm the write")
	}
	return result, err
}

// FetchStockItemsSince implements [LedgerAdapter].
func (t *tallyAdapter) FetchStockItemsSince(ctx context.Context, cursor int64) ([]models.StockItem, error) {
	req := newCollectionRequest(stockCollection, "StockItem", t.company, stockFetch).
		filter("SinceAlterID", alterIDFormula(cursor))

	mv, err := t.post(ctx, "fetchStockItemsSince", req.envelope())
	if err != nil {
		return nil, err
	}

	recs := records(mv, "STOCKITEM")
	if len(recs) == 0 {
		if err = remoteLineError(mv); err != nil {
			return nil, err
		}
	}

	items := make([]models.StockItem, 0, len(recs))
	for _, r := range recs {
		items = append(items, normalizeStockItem(r))
	}
	return items, nil
}

// FetchPartiesSince implements [LedgerAdapter].
func (t *tallyAdapter) FetchPartiesSince(ctx context.Context, cursor int64) ([]models.Party, error) {
	req := newCollectionRequest(partyCollection, "Ledger", t.company, partyFetch).
		filter("SinceAlterID", alterIDFormula(cursor)).
		filter("PartyGroups", partyGroupsFormula)

	mv, err := t.post(ctx, "fetchPartiesSince", req.envelope())
	if err != nil {
		return nil, err
	}

	recs := records(mv, "LEDGER")
	if len(recs) == 0 {
		if err = remoteLineError(mv); err != nil {
			return nil, err
		}
	}

	parties := make([]models.Party, 0, len(recs))
	for _, r := range recs {
		parties = append(parties, normalizeParty(r))
	}
	return parties, nil
}

func vouchersFrom(mv mxj.Map) ([]models.Voucher, error) {
	recs := records(mv, "VOUCHER")
	if len(recs) == 0 {
		if err := remoteLineError(mv); err != nil {
			return nil, err
		}
	}

	vouchers := make([]models.Voucher, 0, len(recs))
	for _, r := range recs {
		if isExcluded(r) {
			continue
		}
		vouchers = append(vouchers, normalizeVoucher(r))
	}
	return vouchers, nil
}

func firstVoucher(mv mxj.Map) (models.Voucher, bool) {
	for _, r := range records(mv, "VOUCHER") {
		v := normalizeVoucher(r)
		if v.GlobalID != "" || v.RemoteID != "" {
			return v, true
		}
	}
	return models.Voucher{}, false
}

func isNumericID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
