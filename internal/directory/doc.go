// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package directory holds the client-side view logic of the user directory.
//
// A [Controller] owns the authoritative in-memory record set together with
// the current [Criteria] (search term and sort mode). Every change of either
// input recomputes a [View] from scratch through [Apply]; the view is never
// patched incrementally and never stored as authoritative state.
//
// Rendering is left to the caller: a View exposes structured [Row]
// descriptors, a summary line and an empty-state placeholder.
package directory
