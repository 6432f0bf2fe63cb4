// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swatch extracts the effective, user-perceived color of UI elements
// (form borders, container backgrounds) from a live, rendered document, for
// automation agents that replicate a page's visual theme. The hard part is
// not the color math but resolving what a human actually sees in the
// presence of interactive state (focus, CSS transitions) and layered,
// partially transparent backgrounds; see [Extractor.RestingBorderColor] and
// [Extractor.ContainerBackground] for the two resolution protocols.
package swatch

import (
	"errors"
	"time"

	"cogentcore.org/swatch/dom"
)

var (
	// ErrElementNotFound indicates that a selector matched no element.
	// It is always raised before any focus mutation.
	ErrElementNotFound = errors.New("element not found")

	// ErrContainerNotFound indicates that background resolution exhausted
	// the ancestor walk without recording a usable candidate.
	ErrContainerNotFound = errors.New("container not found")
)

var (
	// DefaultSettleDelay is the default [Extractor.SettleDelay].
	// The value is empirical: long enough for typical focus transition
	// effects to complete, short enough to keep extraction responsive.
	DefaultSettleDelay = 200 * time.Millisecond

	// DefaultMaxAncestors is the default [Extractor.MaxAncestors].
	// The value is empirical; deeper chains are page scaffolding,
	// not logical containers.
	DefaultMaxAncestors = 15
)

// Extractor runs the extraction protocols against one document.
// It is stateless across calls, but both protocols read and mutate ambient
// document state (focus, computed styles), so correctness is guaranteed
// only for one in-flight extraction at a time per document; concurrent
// calls racing on focus are out of contract.
type Extractor struct {

	// Doc is the rendering collaborator that owns the live document.
	Doc dom.Document

	// SettleDelay is how long [Extractor.RestingBorderColor] waits after
	// clearing focus before reading computed styles, so that time-based
	// transition effects have completed. The wait is unconditional; no
	// polling or transition-event detection is performed.
	SettleDelay time.Duration

	// MaxAncestors is how many ancestor levels
	// [Extractor.ContainerBackground] ascends beyond the target element.
	MaxAncestors int
}

// NewExtractor returns a new [Extractor] for the given document,
// with the default settle delay and ancestor cap.
func NewExtractor(doc dom.Document) *Extractor {
	return &Extractor{
		Doc:          doc,
		SettleDelay:  DefaultSettleDelay,
		MaxAncestors: DefaultMaxAncestors,
	}
}

// Result is the outcome of one extraction.
type Result struct {

	// Color is the extracted color in canonical uppercase hex form
	// (#RRGGBB or #RRGGBBAA), or the raw sample when hex conversion
	// was not applicable.
	Color string

	// Element is a best-effort descriptor of the element the color was
	// read from: its class list or tag name. Not a stable key.
	Element string

	// Width is the computed border width of the border-bearing element.
	// It is only set by [Extractor.RestingBorderColor].
	Width string
}
