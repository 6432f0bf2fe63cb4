// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"testing"

	"cogentcore.org/swatch/htmldom"
	"github.com/stretchr/testify/assert"
)

func TestContainerBackgroundDialog(t *testing.T) {
	// the dialog's own solid background wins over the equally solid outer
	// page background: container membership is checked before depth
	doc := htmldom.MustNew(`<html><body style="background-color: rgb(255, 255, 255)">
	<div class="page" style="background-color: rgb(255, 255, 255)">
		<div class="modal-dialog" role="dialog" style="background-color: rgb(250, 250, 250)">
			<input class="field" style="background-color: rgba(0, 0, 0, 0)">
		</div>
	</div>
	</body></html>`)
	res, err := testExtractor(doc).ContainerBackground(".field")
	assert.NoError(t, err)
	assert.Equal(t, "#FAFAFA", res.Color)
	assert.Equal(t, "modal-dialog", res.Element)
}

func TestContainerBackgroundFormMarker(t *testing.T) {
	doc := htmldom.MustNew(`<html><body style="background-color: rgb(255, 255, 255)">
	<form style="background-color: rgb(240, 240, 240)">
		<input class="field">
	</form>
	</body></html>`)
	res, err := testExtractor(doc).ContainerBackground(".field")
	assert.NoError(t, err)
	assert.Equal(t, "#F0F0F0", res.Color)
	assert.Equal(t, "form", res.Element)
}

func TestContainerBackgroundOutermostSolid(t *testing.T) {
	// no container marker anywhere: the outermost solid background below
	// the page root is the most likely visual page behind the form
	doc := htmldom.MustNew(`<html><body style="background-color: rgb(255, 255, 255)">
	<div class="page" style="background-color: rgb(238, 238, 238)">
		<div class="overlay" style="background-color: rgba(0, 0, 0, 0.4)">
			<div class="card" style="background-color: rgb(250, 250, 250)">
				<input class="field">
			</div>
		</div>
	</div>
	</body></html>`)
	res, err := testExtractor(doc).ContainerBackground(".field")
	assert.NoError(t, err)
	assert.Equal(t, "#EEEEEE", res.Color)
	assert.Equal(t, "page", res.Element)
}

func TestContainerBackgroundTranslucentFallback(t *testing.T) {
	// nothing solid: the outermost candidate wins regardless of opacity,
	// and its alpha byte survives into the hex form
	doc := htmldom.MustNew(`<html><body>
	<div class="scrim" style="background-color: rgba(0, 0, 0, 0.19)">
		<input class="field">
	</div>
	</body></html>`)
	res, err := testExtractor(doc).ContainerBackground(".field")
	assert.NoError(t, err)
	assert.Equal(t, "#00000030", res.Color)
	assert.Equal(t, "scrim", res.Element)
}

func TestContainerBackgroundBodyFallback(t *testing.T) {
	// only the page body carries a background: rules (a) and (b) find
	// nothing and the final fallback reports it
	doc := htmldom.MustNew(`<html><body style="background-color: rgb(255, 255, 255)">
	<input class="field">
	</body></html>`)
	res, err := testExtractor(doc).ContainerBackground(".field")
	assert.NoError(t, err)
	assert.Equal(t, "#FFFFFF", res.Color)
	assert.Equal(t, "body", res.Element)
}

func TestContainerBackgroundNotFound(t *testing.T) {
	doc := htmldom.MustNew(`<html><body><input class="field"></body></html>`)
	ex := testExtractor(doc)

	_, err := ex.ContainerBackground(".field")
	assert.ErrorIs(t, err, ErrContainerNotFound)

	_, err = ex.ContainerBackground(".missing")
	assert.ErrorIs(t, err, ErrElementNotFound)
}

func TestContainerBackgroundMaxAncestors(t *testing.T) {
	doc := htmldom.MustNew(`<html><body style="background-color: rgb(255, 255, 255)">
	<div class="a"><div class="b"><div class="c">
		<input class="field">
	</div></div></div>
	</body></html>`)
	ex := testExtractor(doc)

	// the body background is 4 levels up, beyond a cap of 2
	ex.MaxAncestors = 2
	_, err := ex.ContainerBackground(".field")
	assert.ErrorIs(t, err, ErrContainerNotFound)

	ex.MaxAncestors = 4
	res, err := ex.ContainerBackground(".field")
	assert.NoError(t, err)
	assert.Equal(t, "#FFFFFF", res.Color)
}

func TestNewExtractor(t *testing.T) {
	ex := NewExtractor(htmldom.MustNew(`<html><body></body></html>`))
	assert.Equal(t, DefaultSettleDelay, ex.SettleDelay)
	assert.Equal(t, DefaultMaxAncestors, ex.MaxAncestors)
}
