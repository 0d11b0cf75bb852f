// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when neither a control
// handler nor a listen address is available.
var errNoServersAreCreated = errors.New("no servers are created: control surface is not configured")
