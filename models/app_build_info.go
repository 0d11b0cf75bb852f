// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo is the linker-stamped identity of the daemon binary.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo substitutes "N/A" for every value the linker left empty.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.Version, a.Date, a.Commit)
}

// AppInfo is returned by the control surface's info endpoint.
type AppInfo struct {
	Build   AppBuildInfo `json:"build"`
	Company string       `json:"company,omitempty"`
	Storage string       `json:"storage"`
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
