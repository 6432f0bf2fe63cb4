// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://bottosson.github.io/posts/oklab
// Copyright (c) 2020 Björn Ottosson, MIT license

// Package oklab implements the OKLab perceptual color space and its
// conversion to and from gamma-corrected sRGB.
package oklab

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
)

// Lab is a color in the OKLab color space, with a perceptually uniform
// lightness L nominally in [0,1] and unbounded chroma axes A (green-red)
// and B (blue-yellow).
type Lab struct {

	// L is the perceived lightness
	L float32

	// A is the green-red chroma axis
	A float32

	// B is the blue-yellow chroma axis
	B float32

	// Alpha is the transparency, not part of the OKLab model itself
	Alpha float32
}

// New returns a new fully opaque [Lab] color for the given channel values.
func New(l, a, b float32) Lab {
	return Lab{l, a, b, 1}
}

// FromColor constructs a [Lab] color from a standard [color.Color].
func FromColor(c color.Color) Lab {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Lab{Alpha: 0}
	}
	fa := float32(a) / 65535
	fr := (float32(r) / 65535) / fa
	fg := (float32(g) / 65535) / fa
	fb := (float32(b) / 65535) / fa
	l, la, lb := FromSRGB(fr, fg, fb)
	return Lab{l, la, lb, fa}
}

// Model is the standard [color.Model] that converts colors to OKLab.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if l, ok := c.(Lab); ok {
		return l
	}
	return FromColor(c)
}

// RGBA implements the [color.Color] interface, premultiplying the
// RGB components by alpha.
func (l Lab) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := srgb(l.L, l.A, l.B)
	r = uint32(math32.Clamp(fr, 0, 1)*l.Alpha*65535 + 0.5)
	g = uint32(math32.Clamp(fg, 0, 1)*l.Alpha*65535 + 0.5)
	b = uint32(math32.Clamp(fb, 0, 1)*l.Alpha*65535 + 0.5)
	a = uint32(l.Alpha*65535 + 0.5)
	return
}

// AsRGBA returns the color as a standard [color.RGBA].
func (l Lab) AsRGBA() color.RGBA {
	fr, fg, fb := srgb(l.L, l.A, l.B)
	return color.RGBA{
		uint8(math32.Clamp(fr, 0, 1)*l.Alpha*255 + 0.5),
		uint8(math32.Clamp(fg, 0, 1)*l.Alpha*255 + 0.5),
		uint8(math32.Clamp(fb, 0, 1)*l.Alpha*255 + 0.5),
		uint8(l.Alpha*255 + 0.5),
	}
}

func (l Lab) String() string {
	return fmt.Sprintf("oklab(%g, %g, %g)", l.L, l.A, l.B)
}

// srgb converts OKLab channel values to gamma-corrected sRGB components,
// nominally in [0,1] but unclamped: out-of-gamut inputs yield out-of-range
// components. The pipeline is the fixed OKLab matrix to cube-root LMS,
// a per-channel cube undoing the cube-root compression, the second fixed
// matrix to linear sRGB, and the sRGB transfer function.
func srgb(l, a, b float32) (r, g, bl float32) {
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	l3 := lp * lp * lp
	m3 := mp * mp * mp
	s3 := sp * sp * sp

	rl := 4.0767416621*l3 - 3.3077115913*m3 + 0.2309699292*s3
	gl := -1.2684380046*l3 + 2.6097574011*m3 - 0.3413193965*s3
	bb := -0.0041960863*l3 - 0.7034186147*m3 + 1.7076147010*s3

	return SRGBFromLinearComp(rl), SRGBFromLinearComp(gl), SRGBFromLinearComp(bb)
}

// ToRGB converts the given OKLab channel values to 8-bit sRGB channels,
// rounding to the nearest integer and clamping each channel independently
// to [0,255]. It is total: any real inputs produce in-range bytes.
func ToRGB(l, a, b float32) (r, g, bl uint8) {
	fr, fg, fb := srgb(l, a, b)
	return toByte(fr), toByte(fg), toByte(fb)
}

// FromSRGB converts gamma-corrected sRGB components in [0,1]
// to OKLab channel values.
func FromSRGB(r, g, b float32) (l, la, lb float32) {
	rl := SRGBToLinearComp(r)
	gl := SRGBToLinearComp(g)
	bl := SRGBToLinearComp(b)

	lp := math32.Cbrt(0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl)
	mp := math32.Cbrt(0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl)
	sp := math32.Cbrt(0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl)

	l = 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	la = 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	lb = 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return
}

// FromRGB converts 8-bit sRGB channels to OKLab channel values.
func FromRGB(r, g, b uint8) (l, la, lb float32) {
	return FromSRGB(float32(r)/255, float32(g)/255, float32(b)/255)
}

// SRGBFromLinearComp converts a linear sRGB component
// to its gamma-corrected form.
func SRGBFromLinearComp(v float32) float32 {
	if v > 0.0031308 {
		return 1.055*math32.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

// SRGBToLinearComp converts a gamma-corrected sRGB component
// to its linear form.
func SRGBToLinearComp(v float32) float32 {
	if v > 0.04045 {
		return math32.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func toByte(v float32) uint8 {
	return uint8(math32.Clamp(math32.Round(v*255), 0, 255))
}
