// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dom defines the collaborator surface that the extraction
// heuristics run against: a live, rendered document that can look up
// elements, report final computed style values, and control focus.
// The rendering engine behind it (a real browser session or the synthetic
// [cogentcore.org/swatch/htmldom] implementation) owns all of the ambient
// state; implementations of these interfaces only read and poke it.
package dom

import "strings"

// Element is an opaque handle to a live element in a rendered document.
// Handles are transient: they are only valid for the extraction call
// that obtained them.
type Element interface {

	// Style returns the final computed value of the given CSS property
	// as rendered, independent of which stylesheet rule produced it.
	Style(property string) string

	// Parent returns the structural parent element, or nil at the root.
	Parent() Element

	// Tag returns the lowercase tag name.
	Tag() string

	// Classes returns the class list, which may be empty.
	Classes() []string

	// Attr returns the value of the given attribute, or "" if it is unset.
	Attr(name string) string

	// Focus gives the element input focus.
	Focus()

	// Blur removes input focus from the element.
	// It is a no-op if the element is not focused.
	Blur()
}

// Document is a live document provided by the rendering collaborator.
type Document interface {

	// QuerySelector returns the first element matching the given CSS
	// selector, or nil if nothing matches.
	QuerySelector(sel string) Element

	// ActiveElement returns the element currently holding input focus,
	// or nil if no element is focused.
	ActiveElement() Element

	// DismissFocus performs a neutral interaction outside any focusable
	// element, guaranteeing that no element re-acquires focus as a side
	// effect of defocus handling.
	DismissFocus()
}

// Describe returns a best-effort identifier for the given element:
// its joined class list if it has one, otherwise its tag name.
// It is not a stable key.
func Describe(el Element) string {
	if cls := el.Classes(); len(cls) > 0 {
		return strings.Join(cls, " ")
	}
	return el.Tag()
}

// IsRootLevel reports whether the given element is one of the document's
// top-level page elements (html or body, or anything with no parent),
// whose background represents the page, not a logical container.
func IsRootLevel(el Element) bool {
	switch el.Tag() {
	case "html", "body":
		return true
	}
	return el.Parent() == nil
}
