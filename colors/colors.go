// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors converts the color samples reported by a rendering engine
// (rgb(r,g,b) and rgba(r,g,b,a) strings) into canonical uppercase hex form,
// and classifies them as solid or transparent for the extraction heuristics.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
)

// sample is a parsed rgb()/rgba() color sample. The alpha is kept as the
// original real number because solidity is defined by alpha being exactly 1,
// which is not recoverable from the rounded byte.
type sample struct {
	r, g, b  int
	a        float32
	hasAlpha bool
}

// parse parses an rgb(r,g,b) or rgba(r,g,b,a) string with integer channels
// in [0,255] and an optional real alpha in [0,1]. It reports ok = false for
// anything else, including out-of-range channels.
func parse(s string) (sm sample, ok bool) {
	str := strings.TrimSpace(s)
	inner := ""
	switch {
	case strings.HasPrefix(str, "rgba(") && strings.HasSuffix(str, ")"):
		inner = str[len("rgba(") : len(str)-1]
	case strings.HasPrefix(str, "rgb(") && strings.HasSuffix(str, ")"):
		inner = str[len("rgb(") : len(str)-1]
	default:
		return
	}
	parts := strings.Split(inner, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return
	}
	chans := [3]int{}
	for i := range 3 {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return
		}
		chans[i] = v
	}
	sm.r, sm.g, sm.b = chans[0], chans[1], chans[2]
	sm.a = 1
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 32)
		if err != nil || a < 0 || a > 1 {
			return
		}
		sm.a = float32(a)
		sm.hasAlpha = true
	}
	return sm, true
}

// NRGBA returns the sample as a standard straight-alpha color value.
func (sm sample) NRGBA() color.NRGBA {
	return color.NRGBA{uint8(sm.r), uint8(sm.g), uint8(sm.b), AlphaByte(sm.a)}
}

// RGBToHex converts an rgb(r,g,b) or rgba(r,g,b,a) color sample to canonical
// uppercase hex form (#RRGGBB or #RRGGBBAA). The alpha digits are appended
// only when alpha is present in the input and not exactly 1, with the byte
// value round(a*255); alpha 0 is still encoded as 00, never omitted, since a
// transparent color differs from solid black only by its alpha byte.
// A string that does not match the pattern is returned unchanged, so callers
// must treat a non-hex result as "conversion not applicable". This makes
// RGBToHex idempotent: hex output does not match the rgb pattern.
func RGBToHex(s string) string {
	sm, ok := parse(s)
	if !ok {
		return s
	}
	return AsHex(sm.NRGBA(), sm.hasAlpha && sm.a != 1)
}

// AsHex returns the given color in canonical uppercase hex form:
// #RRGGBB, or #RRGGBBAA when withAlpha is set. The channels are straight
// (non-premultiplied), as in CSS hex notation.
func AsHex(c color.NRGBA, withAlpha bool) string {
	if withAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// AlphaByte converts a real alpha in [0,1] to its rounded byte value.
func AlphaByte(a float32) uint8 {
	return uint8(math32.Clamp(math32.Round(a*255), 0, 255))
}

// ParseRGB parses an rgb()/rgba() color sample into a [color.NRGBA]
// (straight, non-premultiplied channels, matching the sample), additionally
// reporting whether the sample carried an alpha channel and whether it
// matched the pattern at all. An absent alpha yields A = 255. It is for
// callers that need the sample as a numeric color value rather than the
// hex form; note that the rounded alpha byte cannot distinguish alpha
// exactly 1 from alpha near 1, which is why [IsSolid] exists.
func ParseRGB(s string) (c color.NRGBA, hasAlpha bool, ok bool) {
	sm, ok := parse(s)
	if !ok {
		return
	}
	return sm.NRGBA(), sm.hasAlpha, true
}

// IsSolid reports whether the given color sample is solid: it parses as an
// rgb()/rgba() color and has no alpha channel or alpha exactly 1.
// Unparsable input is not solid.
func IsSolid(s string) bool {
	sm, ok := parse(s)
	return ok && (!sm.hasAlpha || sm.a == 1)
}

// IsTransparent reports whether the given color sample is fully transparent:
// the literal transparent keyword, or an rgba() color with alpha exactly 0.
func IsTransparent(s string) bool {
	if strings.EqualFold(strings.TrimSpace(s), "transparent") {
		return true
	}
	sm, ok := parse(s)
	return ok && sm.hasAlpha && sm.a == 0
}
