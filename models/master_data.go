// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StockItem is a catalog entry of the remote ledger.
type StockItem struct {
	GlobalID       string `json:"global_id"`
	Name           string `json:"name"`
	Unit           string `json:"unit"`
	Group          string `json:"group"`
	ChangeSequence int64  `json:"change_sequence"`
}

// Party is a counterparty ledger (customer, supplier) of the remote ledger.
type Party struct {
	GlobalID       string `json:"global_id"`
	Name           string `json:"name"`
	Group          string `json:"group"`
	Phone          string `json:"phone,omitempty"`
	TaxID          string `json:"tax_id,omitempty"`
	ChangeSequence int64  `json:"change_sequence"`
}
