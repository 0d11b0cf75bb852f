// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/voucher-sync/models"
)

// ConversionMatch is the outcome of [MatchConversion].
type ConversionMatch struct {
	Matched   bool
	Candidate *models.Voucher
	// Candidates is the number of vouchers that matched the triple. More
	// than one is an ambiguity and never counts as a match.
	Candidates int
}

// MatchConversion looks for the voucher a vanished draft was finalized into.
// A candidate matches when the counterparty (case-insensitive, trimmed), the
// absolute amount and the calendar day are equal. This is a heuristic: only
// a unique match is reported. Zero or several candidates, or a draft without
// a counterparty, leave Matched false.
func MatchConversion(missing models.Voucher, candidates []models.Voucher) ConversionMatch {
	var (
		match ConversionMatch
		found models.Voucher
	)

	party := normalizeParty(missing.CounterpartyName)
	if party == "" {
		return match
	}
	amount := missing.Amount.Abs()
	y, m, d := missing.Date.UTC().Date()

	for _, c := range candidates {
		if c.GlobalID == missing.GlobalID || c.IsDeleted || c.IsConverted {
			continue
		}
		if normalizeParty(c.CounterpartyName) != party || !c.Amount.Abs().Equal(amount) {
			continue
		}
		cy, cm, cd := c.Date.UTC().Date()
		if cy != y || cm != m || cd != d {
			continue
		}

		match.Candidates++
		found = c
	}

	if match.Candidates == 1 {
		match.Matched = true
		match.Candidate = &found
	}
	return match
}

func normalizeParty(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
