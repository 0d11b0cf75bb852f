// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the control-surface HTTP listener.
//
// It handles startup, signal handling and graceful shutdown. The sync
// orchestrator is stopped by the caller once Run returns.
package server
