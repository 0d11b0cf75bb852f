// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/voucher-sync/models"
	"github.com/shopspring/decimal"
)

const remoteDateLayout = "20060102"

// request envelope layout shared by export (read) and import (write) calls
type envelope struct {
	XMLName xml.Name       `xml:"ENVELOPE"`
	Header  envelopeHeader `xml:"HEADER"`
	Body    envelopeBody   `xml:"BODY"`
}

type envelopeHeader struct {
	Version int       `xml:"VERSION"`
	Request string    `xml:"TALLYREQUEST"`
	Type    string    `xml:"TYPE"`
	SubType string    `xml:"SUBTYPE,omitempty"`
	ID      *headerID `xml:"ID,omitempty"`
}

type headerID struct {
	Type  string `xml:"TYPE,attr,omitempty"`
	Value string `xml:",chardata"`
}

type envelopeBody struct {
	Desc envelopeDesc  `xml:"DESC"`
	Data *envelopeData `xml:"DATA,omitempty"`
}

type envelopeDesc struct {
	Static    staticVariables `xml:"STATICVARIABLES"`
	FetchList *fetchList      `xml:"FETCHLIST,omitempty"`
	TDL       *tdl            `xml:"TDL,omitempty"`
}

type staticVariables struct {
	ExportFormat string `xml:"SVEXPORTFORMAT,omitempty"`
	Company      string `xml:"SVCURRENTCOMPANY,omitempty"`
	FromDate     string `xml:"SVFROMDATE,omitempty"`
	ToDate       string `xml:"SVTODATE,omitempty"`
}

type fetchList struct {
	Fetch []string `xml:"FETCH"`
}

type tdl struct {
	Message tdlMessage `xml:"TDLMESSAGE"`
}

type tdlMessage struct {
	Collection tdlCollection `xml:"COLLECTION"`
	Formulae   []tdlFormula  `xml:"SYSTEM"`
}

type tdlCollection struct {
	Name     string `xml:"NAME,attr"`
	IsModify string `xml:"ISMODIFY,attr"`
	Type     string `xml:"TYPE"`
	Fetch    string `xml:"FETCH"`
	Filter   string `xml:"FILTER,omitempty"`
}

type tdlFormula struct {
	Type  string `xml:"TYPE,attr"`
	Name  string `xml:"NAME,attr"`
	Value string `xml:",chardata"`
}

type envelopeData struct {
	Messages []tallyMessage `xml:"TALLYMESSAGE"`
}

type tallyMessage struct {
	Voucher importVoucher `xml:"VOUCHER"`
}

type importVoucher struct {
	VchType   string            `xml:"VCHTYPE,attr,omitempty"`
	Action    string            `xml:"ACTION,attr"`
	TagName   string            `xml:"TAGNAME,attr,omitempty"`
	TagValue  string            `xml:"TAGVALUE,attr,omitempty"`
	Date      string            `xml:"DATE,omitempty"`
	GUID      string            `xml:"GUID,omitempty"`
	Kind      string            `xml:"VOUCHERTYPENAME,omitempty"`
	Number    string            `xml:"VOUCHERNUMBER,omitempty"`
	Party     string            `xml:"PARTYLEDGERNAME,omitempty"`
	Narration string            `xml:"NARRATION,omitempty"`
	Amount    string            `xml:"AMOUNT,omitempty"`
	Inventory []importInventory `xml:"ALLINVENTORYENTRIES.LIST"`
}

type importInventory struct {
	StockItem string          `xml:"STOCKITEMNAME"`
	ActualQty string          `xml:"ACTUALQTY"`
	BilledQty string          `xml:"BILLEDQTY"`
	Rate      string          `xml:"RATE,omitempty"`
	Amount    string          `xml:"AMOUNT"`
	Batches   []importBatches `xml:"BATCHALLOCATIONS.LIST,omitempty"`
}

type importBatches struct {
	Godown    string `xml:"GODOWNNAME"`
	ActualQty string `xml:"ACTUALQTY"`
	Amount    string `xml:"AMOUNT"`
}

const (
	actionCreate = "Create"
	actionAlter  = "Alter"
	actionDelete = "Delete"
)

// collectionRequest describes one filtered export of a remote collection.
type collectionRequest struct {
	name     string
	objType  string
	fetch    []string
	company  string
	from, to time.Time
	filters  []tdlFormula
}

func newCollectionRequest(name, objType, company string, fetch []string) *collectionRequest {
	return &collectionRequest{name: name, objType: objType, company: company, fetch: fetch}
}

func (r *collectionRequest) filter(name, formula string) *collectionRequest {
	if formula == "" {
		return r
	}
	r.filters = append(r.filters, tdlFormula{Type: "Formulae", Name: name, Value: formula})
	return r
}

func (r *collectionRequest) between(from, to time.Time) *collectionRequest {
	r.from, r.to = from, to
	return r
}

func (r *collectionRequest) envelope() envelope {
	names := make([]string, 0, len(r.filters))
	for _, f := range r.filters {
		names = append(names, f.Name)
	}

	static := staticVariables{ExportFormat: "$$SysName:XML", Company: r.company}
	if !r.from.IsZero() {
		static.FromDate = r.from.Format(remoteDateLayout)
	}
	if !r.to.IsZero() {
		static.ToDate = r.to.Format(remoteDateLayout)
	}

	return envelope{
		Header: envelopeHeader{
			Version: 1,
			Request: "Export",
			Type:    "Collection",
			ID:      &headerID{Value: r.name},
		},
		Body: envelopeBody{
			Desc: envelopeDesc{
				Static: static,
				TDL: &tdl{Message: tdlMessage{
					Collection: tdlCollection{
						Name:     r.name,
						IsModify: "No",
						Type:     r.objType,
						Fetch:    strings.Join(r.fetch, ", "),
						Filter:   strings.Join(names, ","),
					},
					Formulae: r.filters,
				}},
			},
		},
	}
}

func objectRequest(subType, remoteID, company string, fetch []string) envelope {
	return envelope{
		Header: envelopeHeader{
			Version: 1,
			Request: "Export",
			Type:    "Object",
			SubType: subType,
			ID:      &headerID{Type: "Name", Value: "ID:" + remoteID},
		},
		Body: envelopeBody{
			Desc: envelopeDesc{
				Static:    staticVariables{ExportFormat: "$$SysName:XML", Company: company},
				FetchList: &fetchList{Fetch: fetch},
			},
		},
	}
}

func importRequest(company string, v importVoucher) envelope {
	return envelope{
		Header: envelopeHeader{
			Version: 1,
			Request: "Import",
			Type:    "Data",
			ID:      &headerID{Value: "Vouchers"},
		},
		Body: envelopeBody{
			Desc: envelopeDesc{Static: staticVariables{Company: company}},
			Data: &envelopeData{Messages: []tallyMessage{{Voucher: v}}},
		},
	}
}

func importVoucherFrom(p models.VoucherPayload, action string) importVoucher {
	v := importVoucher{
		VchType:   p.Kind,
		Action:    action,
		Kind:      p.Kind,
		Number:    p.Number,
		Party:     p.CounterpartyName,
		Narration: p.Note,
		Amount:    formatAmount(p.Amount),
	}
	if !p.Date.IsZero() {
		v.Date = p.Date.Format(remoteDateLayout)
	}
	if action != actionCreate {
		v.TagName = "MASTERID"
		v.TagValue = p.RemoteID
	}

	for _, item := range p.LineItems {
		qty := formatQuantity(item.Quantity, item.Unit)
		entry := importInventory{
			StockItem: item.ItemName,
			ActualQty: qty,
			BilledQty: qty,
			Amount:    formatAmount(item.Amount),
		}
		if !item.Rate.IsZero() {
			entry.Rate = formatRate(item.Rate, item.Unit)
		}
		if item.Warehouse != "" {
			entry.Batches = []importBatches{{Godown: item.Warehouse, ActualQty: qty, Amount: entry.Amount}}
		}
		v.Inventory = append(v.Inventory, entry)
	}

	return v
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatQuantity(q decimal.Decimal, unit string) string {
	if unit == "" {
		return q.String()
	}
	return q.String() + " " + unit
}

func formatRate(r decimal.Decimal, unit string) string {
	if unit == "" {
		return r.StringFixed(2)
	}
	return r.StringFixed(2) + "/" + unit
}

// kindFormula builds an OR of voucher type equalities, or "" for no filter.
func kindFormula(kinds []string) string {
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		k = strings.TrimSpace(strings.ReplaceAll(k, `"`, ""))
		if k == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf(`$VoucherTypeName = "%s"`, k))
	}
	return strings.Join(parts, " OR ")
}

func alterIDFormula(cursor int64) string {
	return fmt.Sprintf("$AlterID > %d", cursor)
}

func masterIDFormula(remoteID string) string {
	return "$MasterID = " + remoteID
}

func dateRangeFormula(from, to time.Time) string {
	return fmt.Sprintf(`$Date >= $$Date:"%s" AND $Date <= $$Date:"%s"`,
		from.Format(remoteDateLayout), to.Format(remoteDateLayout))
}

const activeOnlyFormula = "NOT $IsCancelled AND NOT $IsOptional"
