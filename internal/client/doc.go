// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It opens the local key-value store, builds the onboarding gate and the
// session store, scopes them into the context and runs the TUI.
package client
