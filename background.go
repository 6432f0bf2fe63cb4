// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/swatch/colors"
	"cogentcore.org/swatch/dom"
)

// containerMarkers are the class substrings that identify an ancestor as a
// semantic dialog/modal/form wrapper.
var containerMarkers = []string{"modal", "dialog", "form"}

// candidate is one non-transparent background found on the ancestor chain,
// tagged during the single ancestor pass with everything the selection
// rules need.
type candidate struct {
	depth     int
	sample    string
	el        dom.Element
	solid     bool
	rootLevel bool
}

// ContainerBackground resolves the background color of the logical container
// holding the element matching the given selector: the color a human
// perceives as "behind" it. It ascends the ancestor chain from the target
// (depth 0) up to [Extractor.MaxAncestors] levels, recording every
// non-transparent computed background as a candidate and noting the first
// ancestor marked as a semantic container (a modal/dialog/form class marker
// or a dialog role). Selection, first rule that matches wins:
//
//  1. the lowest-depth solid candidate at or inside the marked container:
//     the innermost solid background within a dialog is the true dialog
//     background;
//  2. the highest-depth solid candidate, excluding the top-level page
//     elements: the outermost solid background is the most likely visual
//     page behind the form, while html/body represent the page itself;
//  3. the highest-depth candidate regardless of opacity or position.
//
// It fails with [ErrElementNotFound] when the selector matches nothing and
// with [ErrContainerNotFound] when the walk records no candidate at all.
func (ex *Extractor) ContainerBackground(selector string) (*Result, error) {
	el := ex.Doc.QuerySelector(selector)
	if el == nil {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, selector)
	}

	var cands []candidate
	containerDepth := -1
	cur := el
	for depth := 0; cur != nil && depth <= ex.MaxAncestors; depth++ {
		if containerDepth < 0 && isContainer(cur) {
			containerDepth = depth
		}
		bg := cur.Style("background-color")
		if !colors.IsTransparent(bg) {
			cands = append(cands, candidate{
				depth:     depth,
				sample:    bg,
				el:        cur,
				solid:     colors.IsSolid(bg),
				rootLevel: dom.IsRootLevel(cur),
			})
		}
		cur = cur.Parent()
	}

	// innermost solid background at or inside the marked container
	if containerDepth >= 0 {
		for _, c := range cands {
			if c.depth <= containerDepth && c.solid {
				return selected(c, "container"), nil
			}
		}
	}

	// outermost solid background below the page root
	for i := len(cands) - 1; i >= 0; i-- {
		if cands[i].solid && !cands[i].rootLevel {
			return selected(cands[i], "outermost solid"), nil
		}
	}

	// outermost background of any kind
	if len(cands) > 0 {
		return selected(cands[len(cands)-1], "outermost"), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrContainerNotFound, selector)
}

func selected(c candidate, rule string) *Result {
	logx.PrintlnDebug("swatch: background candidate selected by rule:", rule, "depth:", c.depth)
	return &Result{
		Color:   colors.RGBToHex(c.sample),
		Element: dom.Describe(c.el),
	}
}

// isContainer reports whether the given element is marked as a semantic
// container: its class list contains a modal/dialog/form marker, its tag is
// form or dialog, or it carries a dialog role.
func isContainer(el dom.Element) bool {
	for _, class := range el.Classes() {
		class = strings.ToLower(class)
		for _, marker := range containerMarkers {
			if strings.Contains(class, marker) {
				return true
			}
		}
	}
	if slices.Contains([]string{"form", "dialog"}, el.Tag()) {
		return true
	}
	return el.Attr("role") == "dialog"
}
