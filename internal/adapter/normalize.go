// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/voucher-sync/models"
	"github.com/shopspring/decimal"
)

// remote field names
const (
	fieldGUID          = "GUID"
	fieldMasterID      = "MASTERID"
	fieldAlterID       = "ALTERID"
	fieldKind          = "VOUCHERTYPENAME"
	fieldKindAttr      = "VCHTYPE"
	fieldNumber        = "VOUCHERNUMBER"
	fieldDate          = "DATE"
	fieldParty         = "PARTYLEDGERNAME"
	fieldAmount        = "AMOUNT"
	fieldNarration     = "NARRATION"
	fieldCancelled     = "ISCANCELLED"
	fieldOptional      = "ISOPTIONAL"
	fieldAudited       = "ISAUDITED"
	fieldCreatedOn     = "CREATEDON"
	fieldAlteredOn     = "ALTEREDON"
	fieldCashAmount    = "CASHAMOUNT"
	fieldBankAmount    = "BANKAMOUNT"
	fieldUPIAmount     = "UPIAMOUNT"
	fieldChequeAmount  = "CHEQUEAMOUNT"
	fieldInventory     = "ALLINVENTORYENTRIES.LIST"
	fieldInventoryAlt  = "INVENTORYENTRIES.LIST"
	fieldStockItemName = "STOCKITEMNAME"
	fieldActualQty     = "ACTUALQTY"
	fieldBilledQty     = "BILLEDQTY"
	fieldRate          = "RATE"
	fieldBatches       = "BATCHALLOCATIONS.LIST"
	fieldGodown        = "GODOWNNAME"
	fieldName          = "NAME"
	fieldParent        = "PARENT"
	fieldBaseUnits     = "BASEUNITS"
	fieldPhone         = "LEDGERPHONE"
	fieldTaxID         = "PARTYGSTIN"
)

var (
	voucherFetch = []string{
		fieldGUID, fieldMasterID, fieldAlterID, fieldKind, fieldNumber, fieldDate,
		fieldParty, fieldAmount, fieldNarration, fieldCancelled, fieldOptional,
		fieldAudited, fieldCreatedOn, fieldAlteredOn,
		fieldCashAmount, fieldBankAmount, fieldUPIAmount, fieldChequeAmount,
	}
	identityFetch = []string{
		fieldGUID, fieldMasterID, fieldKind, fieldNumber, fieldCancelled, fieldOptional,
	}
	detailFetch  = append(append([]string(nil), voucherFetch...), "ALLINVENTORYENTRIES")
	stockFetch   = []string{fieldGUID, fieldName, fieldBaseUnits, fieldParent, fieldAlterID}
	partyFetch   = []string{fieldGUID, fieldName, fieldParent, fieldPhone, fieldTaxID, fieldAlterID}
	companyFetch = []string{fieldName}
)

func normalizeVoucher(m map[string]any) models.Voucher {
	v := models.Voucher{
		GlobalID:         extractScalar(m, fieldGUID),
		RemoteID:         extractScalar(m, fieldMasterID),
		ChangeSequence:   parseInt64(extractScalar(m, fieldAlterID)),
		Kind:             firstScalar(m, fieldKind, fieldKindAttr),
		Number:           extractScalar(m, fieldNumber),
		Date:             parseDate(extractScalar(m, fieldDate)),
		CounterpartyName: extractScalar(m, fieldParty),
		Amount:           parseAmount(extractScalar(m, fieldAmount)),
		Note:             extractScalar(m, fieldNarration),
		CreatedAt:        parseDatePtr(extractScalar(m, fieldCreatedOn)),
		LastModifiedAt:   parseDatePtr(extractScalar(m, fieldAlteredOn)),
		AuditFlag:        parseYes(extractScalar(m, fieldAudited)),
		PaymentModes: models.PaymentBreakdown{
			Cash:   parseAmount(extractScalar(m, fieldCashAmount)),
			Bank:   parseAmount(extractScalar(m, fieldBankAmount)),
			UPI:    parseAmount(extractScalar(m, fieldUPIAmount)),
			Cheque: parseAmount(extractScalar(m, fieldChequeAmount)),
		},
	}
	v.LineItems = normalizeLineItems(m)
	return v
}

func normalizeIdentity(m map[string]any) models.VoucherIdentity {
	return models.VoucherIdentity{
		GlobalID: extractScalar(m, fieldGUID),
		RemoteID: extractScalar(m, fieldMasterID),
		Kind:     firstScalar(m, fieldKind, fieldKindAttr),
		Number:   extractScalar(m, fieldNumber),
	}
}

// isExcluded reports cancelled and optional records. The export filter
// already drops them; older remote builds ignore that filter.
func isExcluded(m map[string]any) bool {
	return parseYes(extractScalar(m, fieldCancelled)) || parseYes(extractScalar(m, fieldOptional))
}

func normalizeLineItems(m map[string]any) []models.LineItem {
	entries := children(m, fieldInventory)
	if len(entries) == 0 {
		entries = children(m, fieldInventoryAlt)
	}
	if len(entries) == 0 {
		return nil
	}

	items := make([]models.LineItem, 0, len(entries))
	for _, e := range entries {
		qty, unit := parseQuantity(firstScalar(e, fieldActualQty, fieldBilledQty))
		rate, rateUnit := parseRate(extractScalar(e, fieldRate))
		if unit == "" {
			unit = rateUnit
		}

		item := models.LineItem{
			ItemName: extractScalar(e, fieldStockItemName),
			Quantity: qty,
			Unit:     unit,
			Rate:     rate,
			Amount:   parseAmount(extractScalar(e, fieldAmount)),
		}
		if batches := children(e, fieldBatches); len(batches) > 0 {
			item.Warehouse = extractScalar(batches[0], fieldGodown)
		}
		items = append(items, item)
	}
	return items
}

func normalizeStockItem(m map[string]any) models.StockItem {
	return models.StockItem{
		GlobalID:       extractScalar(m, fieldGUID),
		Name:           extractScalar(m, fieldName),
		Unit:           extractScalar(m, fieldBaseUnits),
		Group:          extractScalar(m, fieldParent),
		ChangeSequence: parseInt64(extractScalar(m, fieldAlterID)),
	}
}

func normalizeParty(m map[string]any) models.Party {
	return models.Party{
		GlobalID:       extractScalar(m, fieldGUID),
		Name:           extractScalar(m, fieldName),
		Group:          extractScalar(m, fieldParent),
		Phone:          extractScalar(m, fieldPhone),
		TaxID:          extractScalar(m, fieldTaxID),
		ChangeSequence: parseInt64(extractScalar(m, fieldAlterID)),
	}
}

func parseInt64(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseAmount accepts "1,250.50", "-500", "500.00 Dr" and returns zero for
// anything unparsable.
func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseQuantity splits "5 Nos" into 5 and "Nos".
func parseQuantity(s string) (decimal.Decimal, string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return decimal.Zero, ""
	}

	qty := parseAmount(fields[0])
	unit := ""
	if len(fields) > 1 {
		unit = strings.Join(fields[1:], " ")
	}
	return qty, unit
}

// parseRate splits "100.00/Nos" into 100 and "Nos".
func parseRate(s string) (decimal.Decimal, string) {
	value, unit, _ := strings.Cut(s, "/")
	return parseAmount(value), strings.TrimSpace(unit)
}

var dateLayouts = []string{remoteDateLayout, "2006-01-02", "2-Jan-2006", "2-Jan-06"}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseDatePtr(s string) *time.Time {
	t := parseDate(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func parseYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}
