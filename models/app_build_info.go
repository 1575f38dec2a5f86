// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries build metadata injected with -ldflags and shown by the
// client on the login screen footer and by both binaries at startup.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo builds [AppBuildInfo], replacing empty values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

// Version returns the release version of the binary.
func (a AppBuildInfo) Version() string { return a.version }

// Date returns the build date.
func (a AppBuildInfo) Date() string { return a.date }

// Commit returns the source commit.
func (a AppBuildInfo) Commit() string { return a.commit }

// String renders the metadata on a single line.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version %s (%s, %s)", a.version, a.commit, a.date)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
