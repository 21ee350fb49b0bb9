// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// The client either hands control to the interactive UI or, in print mode,
// loads the directory once, applies the configured search term and sort
// mode, prints the result as a table and exits.
package client
