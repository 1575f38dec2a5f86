// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle of the terminal client.
type Client interface {
	// Run starts the client and blocks until the user quits or ctx is
	// cancelled.
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
