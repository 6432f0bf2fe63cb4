// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/swatch/colors"
	"cogentcore.org/swatch/dom"
)

// RestingBorderColor extracts the border color of the element matching the
// given selector in its resting state: no element holds input focus and all
// focus transition effects have completed. The protocol is to blur the
// active element and the target, dismiss focus with a neutral interaction,
// wait [Extractor.SettleDelay], and only then read computed styles; reading
// earlier risks sampling an interpolated mid-transition color.
//
// If the target's own computed border width is zero, the border is assumed
// to live on its structural parent, a common pattern where a wrapper element
// renders the visible border, and the parent's color and width are reported
// instead.
//
// RestingBorderColor mutates UI focus state as an intentional, unavoidable
// part of measurement; callers must not assume focus is preserved across
// the call. It fails with [ErrElementNotFound], before any focus mutation,
// when the selector matches nothing.
func (ex *Extractor) RestingBorderColor(selector string) (*Result, error) {
	el := ex.Doc.QuerySelector(selector)
	if el == nil {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, selector)
	}

	if active := ex.Doc.ActiveElement(); active != nil {
		active.Blur()
	}
	el.Blur()
	ex.Doc.DismissFocus()
	time.Sleep(ex.SettleDelay)

	bearer := el
	if widthPx(el.Style("border-width")) == 0 {
		if parent := el.Parent(); parent != nil {
			bearer = parent
			logx.PrintlnDebug("swatch: target has no border; reading parent:", dom.Describe(parent))
		}
	}

	return &Result{
		Color:   colors.RGBToHex(bearer.Style("border-color")),
		Element: dom.Describe(bearer),
		Width:   bearer.Style("border-width"),
	}, nil
}

// widthPx parses the leading numeric part of a computed dimension such as
// "1.5px", returning 0 for anything non-numeric.
func widthPx(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.' || s[end] == '-') {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}
