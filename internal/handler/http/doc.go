// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the control surface of the sync daemon.
//
// It exposes JSON endpoints to start and stop the orchestrator, trigger
// individual passes, read the run state and push vouchers back to the remote
// ledger. Request tracing, access logging and response compression are
// handled here before requests are delegated to the service layer.
package http
