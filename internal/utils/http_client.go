// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client the ledger adapter posts XML envelopes with.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient bounds every request by timeout; zero keeps resty's default
// of no client-side limit.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().SetHeader("User-Agent", "voucher-sync")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
