// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/voucher-sync/internal/config"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт tallyAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *tallyAdapter {
	t.Helper()
	a, err := NewHTTPLedgerAdapter(config.Adapter{
		HTTPAddress:    serverURL,
		Company:        "Acme Traders",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*tallyAdapter)
}

// xmlServer отвечает фиксированным телом и сохраняет последний запрос
func xmlServer(t *testing.T, body string, captured *envelope) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		if captured != nil {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, xml.Unmarshal(raw, captured))
		}
		w.Header().Set("Content-Type", "text/xml")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func formulaValues(env envelope) map[string]string {
	out := make(map[string]string)
	if env.Body.Desc.TDL == nil {
		return out
	}
	for _, f := range env.Body.Desc.TDL.Message.Formulae {
		out[f.Name] = f.Value
	}
	return out
}

const threeVouchers = `<ENVELOPE><BODY><DATA><COLLECTION>
<VOUCHER VCHTYPE="Sales"><GUID>g-101</GUID><MASTERID>11</MASTERID><ALTERID>101</ALTERID><VOUCHERTYPENAME>Sales</VOUCHERTYPENAME><VOUCHERNUMBER>S-1</VOUCHERNUMBER><DATE>20260105</DATE><PARTYLEDGERNAME>Ravi Stores</PARTYLEDGERNAME><AMOUNT>1,250.50</AMOUNT><NARRATION>first</NARRATION><CASHAMOUNT>250.50</CASHAMOUNT><UPIAMOUNT>1000</UPIAMOUNT></VOUCHER>
<VOUCHER VCHTYPE="Sales"><GUID>g-103</GUID><MASTERID>13</MASTERID><ALTERID>103</ALTERID><VOUCHERTYPENAME>Sales</VOUCHERTYPENAME><DATE>20260106</DATE><AMOUNT>-20</AMOUNT></VOUCHER>
<VOUCHER VCHTYPE="Receipt"><GUID>g-102</GUID><MASTERID>12</MASTERID><ALTERID>102</ALTERID><DATE>20260107</DATE></VOUCHER>
</COLLECTION></DATA></BODY></ENVELOPE>`

// ── FetchVouchersSince ──────────────────────────────────────────────────────

func TestFetchVouchersSince_Success(t *testing.T) {
	var got envelope
	srv := xmlServer(t, threeVouchers, &got)

	a := newTestAdapter(t, srv.URL)
	vouchers, err := a.FetchVouchersSince(context.Background(), 100, []string{"Sales", "Receipt"})

	require.NoError(t, err)
	require.Len(t, vouchers, 3)

	assert.Equal(t, "Export", got.Header.Request)
	assert.Equal(t, "Acme Traders", got.Body.Desc.Static.Company)
	formulae := formulaValues(got)
	assert.Equal(t, "$AlterID > 100", formulae["SinceAlterID"])
	assert.Equal(t, activeOnlyFormula, formulae["ActiveOnly"])
	assert.Equal(t, `$VoucherTypeName = "Sales" OR $VoucherTypeName = "Receipt"`, formulae["KindFilter"])

	first := vouchers[0]
	assert.Equal(t, "g-101", first.GlobalID)
	assert.Equal(t, "11", first.RemoteID)
	assert.Equal(t, int64(101), first.ChangeSequence)
	assert.Equal(t, "Sales", first.Kind)
	assert.Equal(t, "S-1", first.Number)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "Ravi Stores", first.CounterpartyName)
	assert.True(t, decimal.RequireFromString("1250.50").Equal(first.Amount))
	assert.True(t, decimal.RequireFromString("250.50").Equal(first.PaymentModes.Cash))
	assert.True(t, decimal.NewFromInt(1000).Equal(first.PaymentModes.UPI))
	assert.True(t, first.PaymentModes.Bank.IsZero())

	// kind falls back to the VCHTYPE attribute
	assert.Equal(t, "Receipt", vouchers[2].Kind)
	assert.Equal(t, "", vouchers[2].CounterpartyName)
	assert.True(t, vouchers[2].Amount.IsZero())
}

func TestFetchVouchersSince_SingleObject(t *testing.T) {
	srv := xmlServer(t, `<ENVELOPE><BODY><DATA><COLLECTION>
<VOUCHER><GUID>only</GUID><ALTERID>7</ALTERID></VOUCHER>
</COLLECTION></DATA></BODY></ENVELOPE>`, nil)

	vouchers, err := newTestAdapter(t, srv.URL).FetchVouchersSince(context.Background(), 0, nil)

	require.NoError(t, err)
	require.Len(t, vouchers, 1)
	assert.Equal(t, "only", vouchers[0].GlobalID)
}

// Scenario: AMOUNT arrives as a typed wrapper object
func TestFetchVouchersSince_WrappedAmount(t *testing.T) {
	srv := xmlServer(t, `<ENVELOPE><BODY><DATA><COLLECTION>
<VOUCHER><GUID>g-1</GUID><ALTERID>5</ALTERID><AMOUNT TYPE="Amount">500.00</AMOUNT></VOUCHER>
</COLLECTION></DATA></BODY></ENVELOPE>`, nil)

	vouchers, err := newTestAdapter(t, srv.URL).FetchVouchersSince(context.Background(), 0, nil)

	require.NoError(t, err)
	require.Len(t, vouchers, 1)
	assert.True(t, decimal.NewFromInt(500).Equal(vouchers[0].Amount), "got %s", vouchers[0].Amount)
}

func TestFetchVouchersSince_DropsCancelledAndOptional(t *testing.T) {
	srv := xmlServer(t, `<ENVELOPE><BODY><DATA><COLLECTION>
<VOUCHER><GUID>keep</GUID><ISCANCELLED>No</ISCANCELLED></VOUCHER>
<VOUCHER><GUID>cancelled</GUID><ISCANCELLED>Yes</ISCANCELLED></VOUCHER>
<VOUCHER><GUID>optional</GUID><ISOPTIONAL>Yes</ISOPTIONAL></VOUCHER>
</COLLECTION></DATA></BODY></ENVELOPE>`, nil)

	vouchers, err := newTestAdapter(t, srv.URL).FetchVouchersSince(context.Background(), 0, nil)

	require.NoError(t, err)
	require.Len(t, vouchers, 1)
	assert.Equal(t, "keep", vouchers[0].GlobalID)
}

func TestFetchVouchersSince_EmptyCollection(t *testing.T) {
	srv := xmlServer(t, `<ENVELOPE><BODY><DATA><COLLECTION/></DATA></BODY></ENVELOPE>`, nil)

	vouchers, err := newTestAdapter(t, srv.URL).FetchVouchersSince(context.Background(), 0, nil)

	require.NoError(t, err)
	assert.Empty(t, vouchers)
}

func TestFetchVouchersSince_LineError(t *testing.T) {
	srv := xmlServer(t, `<ENVELOPE><LINEERROR>Could not find Company 'Acme Traders'</LINEERROR></ENVELOPE>`, nil)

	_, err := newTestAdapter(t, srv.URL).FetchVouchersSince(context.Background(), 0, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteRejected)
	assert.Equal(t, KindRemoteRejected, KindOf(err))
	assert.Contains(t, err.Error(), "Could not find Company")
}

func TestFetchVouchersSince_Malformed(t *testing.T) {
	srv := xmlServer(t, `<ENVELOPE><BODY><DATA>`, nil)

	_, err := newTestAdapter(t, srv.URL).FetchVouchersSince(context.Background(), 0, nil)

	require.Error(t, err)
	assert.Equal(t, KindMalformedResponse, KindOf(err))
}

func TestFetchVouchersSince_ControlCharacterEntities(t *testing.T) {
	srv := xmlServer(t, `<ENVELOPE><BODY><DATA><COLLECTION>
<VOUCHER><GUID>g-1</GUID><NARRATION>paid&#4; in full&#x1F;</NARRATION></VOUCHER>
</COLLECTION></DATA></BODY></ENVELOPE>`, nil)

	vouchers, err := newTestAdapter(t, srv.URL).FetchVouchersSince(context.Background(), 0, nil)

	require.NoError(t, err)
	require.Len(t, vouchers, 1)
	assert.Equal(t, "paid in full", vouchers[0].Note)
}

func TestFetchVouchersSince_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("engine crashed"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchVouchersSince(context.Background(), 0, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteRejected)
	assert.Contains(t, err.Error(), "engine crashed")
}

func TestFetchVouchersSince_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).FetchVouchersSince(context.Background(), 0, nil)

	require.Error(t, err)
	assert.Equal(t, KindConnectionRefused, KindOf(err))
	assert.True(t, IsTransport(err))
}

func TestFetchVouchersSince_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a, err := NewHTTPLedgerAdapter(config.Adapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 50 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.FetchVouchersSince(context.Background(), 0, nil)

	require.Error(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
}

// ── FetchVouchersInRange ────────────────────────────────────────────────────

func TestFetchVouchersInRange_SendsDates(t *testing.T) {
	var got envelope
	srv := xmlServer(t, threeVouchers, &got)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	vouchers, err := newTestAdapter(t, srv.URL).FetchVouchersInRange(context.Background(), from, to, nil)

	require.NoError(t, err)
	assert.Len(t, vouchers, 3)
	assert.Equal(t, "20260101", got.Body.Desc.Static.FromDate)
	assert.Equal(t, "20260107", got.Body.Desc.Static.ToDate)
	formulae := formulaValues(got)
	assert.Contains(t, formulae["InRange"], `"20260101"`)
	_, hasKind := formulae["KindFilter"]
	assert.False(t, hasKind, "no kind filter expected for an empty kind list")
}

// ── FetchAllVoucherIdentities ───────────────────────────────────────────────

func TestFetchAllVoucherIdentities_NoLineItemsRequested(t *testing.T) {
	var got envelope
	srv := xmlServer(t, `<ENVELOPE><BODY><DATA><COLLECTION>
<VOUCHER><GUID>g-1</GUID><MASTERID>1</MASTERID><VOUCHERTYPENAME>Sales</VOUCHERTYPENAME><VOUCHERNUMBER>S-1</VOUCHERNUMBER></VOUCHER>
<VOUCHER><GUID>g-2</GUID><MASTERID>2</MASTERID><VOUCHERTYPENAME>Pending Sale</VOUCHERTYPENAME><VOUCHERNUMBER>P-9</VOUCHERNUMBER></VOUCHER>
</COLLECTION></DATA></BODY></ENVELOPE>`, &got)

	ids, err := newTestAdapter(t, srv.URL).FetchAllVoucherIdentities(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, []models.VoucherIdentity{
		{GlobalID: "g-1", RemoteID: "1", Kind: "Sales", Number: "S-1"},
		{GlobalID: "g-2", RemoteID: "2", Kind: "Pending Sale", Number: "P-9"},
	}, ids)
	require.NotNil(t, got.Body.Desc.TDL)
	assert.NotContains(t, got.Body.Desc.TDL.Message.Collection.Fetch, "INVENTORY")
}

// ── FetchVoucherDetail ──────────────────────────────────────────────────────

const detailVoucher = `<ENVELOPE><BODY><DATA><COLLECTION>
<VOUCHER><GUID>g-42</GUID><MASTERID>42</MASTERID><ALTERID>9</ALTERID><VOUCHERTYPENAME>Sales</VOUCHERTYPENAME>
<ALLINVENTORYENTRIES.LIST><STOCKITEMNAME>Widget</STOCKITEMNAME><ACTUALQTY> 5 Nos</ACTUALQTY><RATE>100.00/Nos</RATE><AMOUNT>500.00</AMOUNT>
<BATCHALLOCATIONS.LIST><GODOWNNAME>Main Location</GODOWNNAME></BATCHALLOCATIONS.LIST></ALLINVENTORYENTRIES.LIST>
<ALLINVENTORYENTRIES.LIST><STOCKITEMNAME>Bolt</STOCKITEMNAME><BILLEDQTY>2 kg</BILLEDQTY><RATE>10/kg</RATE><AMOUNT>20</AMOUNT></ALLINVENTORYENTRIES.LIST>
</VOUCHER></COLLECTION></DATA></BODY></ENVELOPE>`

func TestFetchVoucherDetail_PrimaryPath(t *testing.T) {
	var got envelope
	srv := xmlServer(t, detailVoucher, &got)

	v, err := newTestAdapter(t, srv.URL).FetchVoucherDetail(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "Object", got.Header.Type)
	assert.Equal(t, "ID:42", got.Header.ID.Value)
	assert.Equal(t, "g-42", v.GlobalID)
	require.Len(t, v.LineItems, 2)

	assert.Equal(t, "Widget", v.LineItems[0].ItemName)
	assert.True(t, decimal.NewFromInt(5).Equal(v.LineItems[0].Quantity))
	assert.Equal(t, "Nos", v.LineItems[0].Unit)
	assert.True(t, decimal.NewFromInt(100).Equal(v.LineItems[0].Rate))
	assert.True(t, decimal.NewFromInt(500).Equal(v.LineItems[0].Amount))
	assert.Equal(t, "Main Location", v.LineItems[0].Warehouse)

	assert.Equal(t, "kg", v.LineItems[1].Unit)
	assert.Equal(t, "", v.LineItems[1].Warehouse)
}

func TestFetchVoucherDetail_FallsBackToCollection(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var env envelope
		require.NoError(t, xml.Unmarshal(raw, &env))

		calls.Add(1)
		if env.Header.Type == "Object" {
			_, _ = io.WriteString(w, `<ENVELOPE><BODY><DATA><TALLYMESSAGE/></DATA></BODY></ENVELOPE>`)
			return
		}
		assert.Equal(t, "$MasterID = 42", formulaValues(env)["ByMasterID"])
		_, _ = io.WriteString(w, detailVoucher)
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL).FetchVoucherDetail(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "g-42", v.GlobalID)
	assert.Len(t, v.LineItems, 2)
}

func TestFetchVoucherDetail_NotFound(t *testing.T) {
	srv := xmlServer(t, `<ENVELOPE><BODY><DATA/></BODY></ENVELOPE>`, nil)

	_, err := newTestAdapter(t, srv.URL).FetchVoucherDetail(context.Background(), "42")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrRemoteRejected)
}

func TestFetchVoucherDetail_InvalidRemoteID(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := a.FetchVoucherDetail(context.Background(), "42; DROP")

	require.Error(t, err)
	assert.ErrorIs(t, err, errMissingRemoteID)
}

// ── Mutations ───────────────────────────────────────────────────────────────

func TestCreateVoucher_Created(t *testing.T) {
	var got envelope
	srv := xmlServer(t, `<RESPONSE><CREATED>1</CREATED><ALTERED>0</ALTERED><LASTVCHID>77</LASTVCHID><ERRORS>0</ERRORS></RESPONSE>`, &got)

	payload := models.VoucherPayload{
		Kind:             "Sales",
		Date:             time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		CounterpartyName: "Ravi Stores",
		Amount:           decimal.RequireFromString("500"),
		LineItems: []models.LineItem{{
			ItemName: "Widget", Quantity: decimal.NewFromInt(5), Unit: "Nos",
			Rate: decimal.NewFromInt(100), Amount: decimal.NewFromInt(500), Warehouse: "Main Location",
		}},
	}
	res, err := newTestAdapter(t, srv.URL).CreateVoucher(context.Background(), payload)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "77", res.RemoteID)
	assert.Equal(t, 1, res.ChangedCount)

	assert.Equal(t, "Import", got.Header.Request)
	require.NotNil(t, got.Body.Data)
	require.Len(t, got.Body.Data.Messages, 1)
	v := got.Body.Data.Messages[0].Voucher
	assert.Equal(t, actionCreate, v.Action)
	assert.Equal(t, "20260201", v.Date)
	assert.Equal(t, "500.00", v.Amount)
	require.Len(t, v.Inventory, 1)
	assert.Equal(t, "5 Nos", v.Inventory[0].ActualQty)
	assert.Equal(t, "100.00/Nos", v.Inventory[0].Rate)
	require.Len(t, v.Inventory[0].Batches, 1)
	assert.Equal(t, "Main Location", v.Inventory[0].Batches[0].Godown)
}

func TestUpdateVoucher_Altered(t *testing.T) {
	var got envelope
	srv := xmlServer(t, `<ENVELOPE><BODY><DATA><IMPORTRESULT><CREATED>0</CREATED><ALTERED>1</ALTERED></IMPORTRESULT></DATA></BODY></ENVELOPE>`, &got)

	res, err := newTestAdapter(t, srv.URL).UpdateVoucher(context.Background(), models.VoucherPayload{RemoteID: "42", Kind: "Sales"})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.ChangedCount)
	v := got.Body.Data.Messages[0].Voucher
	assert.Equal(t, actionAlter, v.Action)
	assert.Equal(t, "MASTERID", v.TagName)
	assert.Equal(t, "42", v.TagValue)
}

func TestUpdateVoucher_RequiresRemoteID(t *testing.T) {
	res, err := newTestAdapter(t, "http://127.0.0.1:1").UpdateVoucher(context.Background(), models.VoucherPayload{})

	require.Error(t, err)
	assert.False(t, res.Success)
	assert.ErrorIs(t, err, errMissingRemoteID)
}

func TestDeleteVoucher_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		success bool
		errPart string
	}{
		{name: "deleted counter", body: `<RESPONSE><DELETED>1</DELETED></RESPONSE>`, success: true},
		{name: "line error", body: `<RESPONSE><CREATED>0</CREATED><LINEERROR>Voucher not found</LINEERROR></RESPONSE>`, errPart: "Voucher not found"},
		{name: "error counter", body: `<RESPONSE><DELETED>0</DELETED><ERRORS>1</ERRORS></RESPONSE>`, errPart: "1 errors"},
		{name: "ambiguous accept", body: `<RESPONSE><CREATED>0</CREATED><ALTERED>0</ALTERED><ERRORS>0</ERRORS></RESPONSE>`, errPart: "not confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := xmlServer(t, tt.body, nil)

			res, err := newTestAdapter(t, srv.URL).DeleteVoucher(context.Background(), "42")

			assert.Equal(t, tt.success, res.Success)
			if tt.success {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, KindRemoteRejected, KindOf(err))
			assert.Contains(t, res.Error, tt.errPart)
		})
	}
}

// ── Master data ─────────────────────────────────────────────────────────────

func TestFetchStockItemsSince(t *testing.T) {
	var got envelope
	srv := xmlServer(t, `<ENVELOPE><BODY><DATA><COLLECTION>
<STOCKITEM NAME="Widget"><GUID>s-1</GUID><BASEUNITS>Nos</BASEUNITS><PARENT>Hardware</PARENT><ALTERID>15</ALTERID></STOCKITEM>
</COLLECTION></DATA></BODY></ENVELOPE>`, &got)

	items, err := newTestAdapter(t, srv.URL).FetchStockItemsSince(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, []models.StockItem{{GlobalID: "s-1", Name: "Widget", Unit: "Nos", Group: "Hardware", ChangeSequence: 15}}, items)
	assert.Equal(t, "$AlterID > 10", formulaValues(got)["SinceAlterID"])
}

func TestFetchPartiesSince(t *testing.T) {
	srv := xmlServer(t, `<ENVELOPE><BODY><DATA><COLLECTION>
<LEDGER NAME="Ravi Stores"><GUID>p-1</GUID><PARENT>Sundry Debtors</PARENT><LEDGERPHONE>98450</LEDGERPHONE><PARTYGSTIN>29ABCDE</PARTYGSTIN><ALTERID>3</ALTERID></LEDGER>
<LEDGER NAME="Kumar Supplies"><GUID>p-2</GUID><PARENT>Sundry Creditors</PARENT><ALTERID>4</ALTERID></LEDGER>
</COLLECTION></DATA></BODY></ENVELOPE>`, nil)

	parties, err := newTestAdapter(t, srv.URL).FetchPartiesSince(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, parties, 2)
	assert.Equal(t, models.Party{GlobalID: "p-1", Name: "Ravi Stores", Group: "Sundry Debtors", Phone: "98450", TaxID: "29ABCDE", ChangeSequence: 3}, parties[0])
	assert.Equal(t, int64(4), parties[1].ChangeSequence)
}

// ── Connectivity ────────────────────────────────────────────────────────────

func TestCheckConnectivity_Success(t *testing.T) {
	srv := xmlServer(t, `<ENVELOPE><BODY><DATA><COLLECTION>
<COMPANY NAME="Acme Traders"/><COMPANY><NAME>Beta Retail</NAME></COMPANY>
</COLLECTION></DATA></BODY></ENVELOPE>`, nil)

	c := newTestAdapter(t, srv.URL).CheckConnectivity(context.Background())

	assert.True(t, c.Connected)
	assert.Equal(t, []string{"Acme Traders", "Beta Retail"}, c.AvailableCompanies)
	assert.Empty(t, c.Error)
}

func TestCheckConnectivity_Refused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newTestAdapter(t, url).CheckConnectivity(context.Background())

	assert.False(t, c.Connected)
	assert.NotEmpty(t, c.Error)
}

// ── Throttle ────────────────────────────────────────────────────────────────

func TestAdapter_ThrottleSpacesCalls(t *testing.T) {
	srv := xmlServer(t, `<ENVELOPE/>`, nil)

	const minInterval = 60 * time.Millisecond
	a, err := NewHTTPLedgerAdapter(config.Adapter{HTTPAddress: srv.URL, MinInterval: minInterval}, logger.Nop())
	require.NoError(t, err)

	started := time.Now()
	for range 3 {
		_, err = a.FetchStockItemsSince(context.Background(), 0)
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, time.Since(started), 2*minInterval)
}

// ── NewHTTPLedgerAdapter ────────────────────────────────────────────────────

func TestNewHTTPLedgerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPLedgerAdapter(config.Adapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "localhost:9000", want: "http://localhost:9000"},
		{raw: "http://10.0.0.5:9000/", want: "http://10.0.0.5:9000"},
		{raw: " https://ledger.local ", want: "https://ledger.local"},
	}
	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
