// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the `env`/`envPrefix` tags of [StructuredConfig].
// Unset variables leave fields zero so later sources and defaults apply.
func parseEnv(cfg *StructuredConfig) error {
	// list values such as SYNC_VOUCHER_KINDS use the default "," separator
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing environment: %w", err)
	}
	return nil
}
