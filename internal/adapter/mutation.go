// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/voucher-sync/models"
	"github.com/clbanning/mxj/v2"
)

// counters that confirm each import action
var mutationCounters = map[string][]string{
	actionCreate: {"CREATED"},
	actionAlter:  {"ALTERED", "COMBINED"},
	actionDelete: {"DELETED", "ALTERED"},
}

// resolveMutation decides whether an import response confirms the write.
// The remote engine accepts malformed requests without applying them, so
// only an explicit positive signal counts. Checked in order: the action's
// counter, the last written voucher id, a line error, the error counter.
func resolveMutation(mv mxj.Map, action string) (models.MutationResult, error) {
	changed := 0
	for _, key := range mutationCounters[action] {
		changed += counter(mv, key)
	}
	lastID := findScalar(mv, "LASTVCHID")

	switch {
	case changed > 0:
		return models.MutationResult{Success: true, RemoteID: nonZeroID(lastID), ChangedCount: changed}, nil
	case nonZeroID(lastID) != "":
		return models.MutationResult{Success: true, RemoteID: lastID, ChangedCount: 1}, nil
	}

	var err error
	switch lineErr, errCount := findScalar(mv, "LINEERROR"), counter(mv, "ERRORS"); {
	case lineErr != "":
		err = fmt.Errorf("%w: %s", ErrRemoteRejected, lineErr)
	case errCount > 0:
		err = fmt.Errorf("%w: %d errors reported", ErrRemoteRejected, errCount)
	default:
		err = fmt.Errorf("%w: %s not confirmed by the remote ledger", ErrRemoteRejected, action)
	}

	return models.MutationResult{Success: false, Error: err.Error()}, err
}

func counter(mv mxj.Map, key string) int {
	n, err := strconv.Atoi(findScalar(mv, key))
	if err != nil {
		return 0
	}
	return n
}

func nonZeroID(id string) string {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil && n == 0 {
		return ""
	}
	return id
}
