// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"testing"

	"cogentcore.org/swatch/htmldom"
	"github.com/stretchr/testify/assert"
)

// testExtractor returns an [Extractor] for the given document with no
// settle delay, since the synthetic document has no time-based transitions.
func testExtractor(doc *htmldom.Document) *Extractor {
	ex := NewExtractor(doc)
	ex.SettleDelay = 0
	return ex
}

func TestRestingBorderColorSelf(t *testing.T) {
	doc := htmldom.MustNew(`<html><body>
	<input class="field" style="border: 2px solid rgb(7, 39, 31)">
	</body></html>`)
	res, err := testExtractor(doc).RestingBorderColor(".field")
	assert.NoError(t, err)
	assert.Equal(t, "#07271F", res.Color)
	assert.Equal(t, "field", res.Element)
	assert.Equal(t, "2px", res.Width)
}

func TestRestingBorderColorParent(t *testing.T) {
	// the input has no border of its own; the wrapper renders it
	doc := htmldom.MustNew(`<html><body>
	<div class="field-wrap" style="border: 1px solid rgb(7, 39, 31)">
		<input class="field">
	</div>
	</body></html>`)
	res, err := testExtractor(doc).RestingBorderColor(".field")
	assert.NoError(t, err)
	assert.Equal(t, "#07271F", res.Color)
	assert.Equal(t, "field-wrap", res.Element)
	assert.Equal(t, "1px", res.Width)
}

func TestRestingBorderColorFocused(t *testing.T) {
	doc := htmldom.MustNew(`<html><head><style>
	.field { border-width: 2px; border-color: rgb(10, 20, 30); }
	.field:focus { border-color: rgb(200, 0, 0); }
	</style></head><body><input class="field" autofocus></body></html>`)

	// the focused sample is what a naive immediate read would return
	assert.Equal(t, "rgb(200, 0, 0)", doc.ActiveElement().Style("border-color"))

	res, err := testExtractor(doc).RestingBorderColor(".field")
	assert.NoError(t, err)
	assert.Equal(t, "#0A141E", res.Color)

	// focus is not preserved across the call
	assert.Nil(t, doc.ActiveElement())
}

func TestRestingBorderColorNotFound(t *testing.T) {
	doc := htmldom.MustNew(`<html><body><input class="field" autofocus></body></html>`)
	_, err := testExtractor(doc).RestingBorderColor(".missing")
	assert.ErrorIs(t, err, ErrElementNotFound)

	// the failure comes before any focus mutation
	assert.NotNil(t, doc.ActiveElement())
}

func TestWidthPx(t *testing.T) {
	assert.Equal(t, 1.5, widthPx("1.5px"))
	assert.Equal(t, 2.0, widthPx(" 2px "))
	assert.Equal(t, 0.0, widthPx("0px"))
	assert.Equal(t, 0.0, widthPx(""))
	assert.Equal(t, 0.0, widthPx("medium"))
}
