// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmldom implements [dom.Document] over a parsed
// [golang.org/x/net/html] tree, computing style values from <style> sheets
// and inline style attributes, including rules gated on :focus. It lets the
// extraction heuristics run against static HTML without a rendering engine,
// which is how the package tests exercise them; it is not a CSS cascade:
// rules apply in source order, with inline styles after sheet rules and
// focus rules last, and no specificity beyond that.
package htmldom

import (
	"io"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/swatch/dom"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	selcss "github.com/ericchiang/css"
	"golang.org/x/net/html"
)

// Document is a synthetic [dom.Document] over a parsed HTML tree.
type Document struct {
	root  *html.Node
	focus *html.Node

	// styles are the applicable declarations for each node, in application
	// order: sheet rules in source order, then inline style attributes.
	styles map[*html.Node][]*css.Declaration

	// focusStyles are declarations from :focus rules, contributing to
	// computed values only while the node holds focus.
	focusStyles map[*html.Node][]*css.Declaration
}

// New parses the HTML document from the given reader and compiles its
// styles. An element carrying an autofocus attribute starts with focus,
// as it would in a browser.
func New(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	d := &Document{
		root:        root,
		styles:      map[*html.Node][]*css.Declaration{},
		focusStyles: map[*html.Node][]*css.Declaration{},
	}
	d.compile()
	return d, nil
}

// MustNew parses the given HTML string, panicking on error.
// It is intended for tests and examples.
func MustNew(s string) *Document {
	d, err := New(strings.NewReader(s))
	if err != nil {
		panic("htmldom.MustNew: " + err.Error())
	}
	return d
}

// QuerySelector returns the first element matching the given CSS selector,
// or nil if nothing matches or the selector does not parse.
func (d *Document) QuerySelector(sel string) dom.Element {
	s, err := selcss.Parse(sel)
	if errors.Log(err) != nil {
		return nil
	}
	for _, n := range s.Select(d.root) {
		if n.Type == html.ElementNode {
			return &element{d, n}
		}
	}
	return nil
}

// ActiveElement returns the element currently holding input focus, or nil.
func (d *Document) ActiveElement() dom.Element {
	if d.focus == nil {
		return nil
	}
	return &element{d, d.focus}
}

// DismissFocus clears focus without giving it to any other element,
// modeling a click on a neutral, non-interactive region.
func (d *Document) DismissFocus() {
	d.focus = nil
}

// compile collects the document's <style> sheets and inline style
// attributes into per-node declaration lists, and applies autofocus.
func (d *Document) compile() {
	var sheets []string
	walk(d.root, func(n *html.Node) {
		if n.Data == "style" {
			sheets = append(sheets, textContent(n))
		}
	})
	for _, sheet := range sheets {
		d.addSheet(sheet)
	}
	walk(d.root, func(n *html.Node) {
		if style := attr(n, "style"); style != "" {
			// our CSS parser is strict about semicolons, but
			// they aren't needed in normal inline styles in HTML
			if !strings.HasSuffix(style, ";") {
				style += ";"
			}
			decls, err := parser.ParseDeclarations(style)
			if errors.Log(err) != nil {
				return
			}
			d.styles[n] = append(d.styles[n], decls...)
		}
		if d.focus == nil && hasAttr(n, "autofocus") {
			d.focus = n
		}
	})
}

// addSheet compiles one stylesheet, matching each rule's selectors against
// the tree. A selector ending in :focus is matched without the suffix and
// its declarations are held aside for focused nodes.
func (d *Document) addSheet(sheet string) {
	ss, err := parser.Parse(sheet)
	if errors.Log(err) != nil {
		return
	}
	for _, rule := range ss.Rules {
		for _, sel := range rule.Selectors {
			sel = strings.TrimSpace(sel)
			focus := strings.HasSuffix(sel, ":focus")
			if focus {
				sel = strings.TrimSuffix(sel, ":focus")
			}
			s, err := selcss.Parse(sel)
			if errors.Log(err) != nil {
				continue
			}
			for _, match := range s.Select(d.root) {
				if focus {
					d.focusStyles[match] = append(d.focusStyles[match], rule.Declarations...)
				} else {
					d.styles[match] = append(d.styles[match], rule.Declarations...)
				}
			}
		}
	}
}

// declared returns the last applicable declared value of the given property
// for the given node, with :focus declarations taking effect only while the
// node holds focus.
func (d *Document) declared(n *html.Node, property string) (string, bool) {
	v, ok := "", false
	for _, decl := range d.styles[n] {
		if decl.Property == property {
			v, ok = decl.Value, true
		}
	}
	if n == d.focus {
		for _, decl := range d.focusStyles[n] {
			if decl.Property == property {
				v, ok = decl.Value, true
			}
		}
	}
	return v, ok
}

// styleValue resolves the computed value of the given property for the
// given node, expanding the border shorthand when the longhand properties
// are not declared.
func (d *Document) styleValue(n *html.Node, property string) (string, bool) {
	if v, ok := d.declared(n, property); ok {
		return v, true
	}
	switch property {
	case "border-width", "border-color":
		if border, ok := d.declared(n, "border"); ok {
			return borderPart(border, property)
		}
	}
	return "", false
}

// borderPart extracts the width or color part of a border shorthand value
// such as "1px solid rgb(7, 39, 31)".
func borderPart(border, property string) (string, bool) {
	switch property {
	case "border-width":
		for _, f := range strings.Fields(border) {
			if strings.HasSuffix(f, "px") {
				return f, true
			}
		}
	case "border-color":
		if i := strings.Index(border, "rgb"); i >= 0 {
			return border[i:], true
		}
		fields := strings.Fields(border)
		if len(fields) == 0 {
			break
		}
		switch last := fields[len(fields)-1]; last {
		case "none", "hidden", "solid", "dashed", "dotted", "double":
		default:
			return last, true
		}
	}
	return "", false
}

// styleDefault returns the initial computed value reported when no rule
// declares the given property, matching what rendering engines report.
func styleDefault(property string) string {
	switch property {
	case "background-color":
		return "rgba(0, 0, 0, 0)"
	case "border-color":
		return "rgb(0, 0, 0)"
	case "border-width":
		return "0px"
	}
	return ""
}

// element is a handle to one node of a [Document].
type element struct {
	doc *Document
	n   *html.Node
}

func (e *element) Style(property string) string {
	if v, ok := e.doc.styleValue(e.n, property); ok {
		return v
	}
	return styleDefault(property)
}

func (e *element) Parent() dom.Element {
	for p := e.n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return &element{e.doc, p}
		}
	}
	return nil
}

func (e *element) Tag() string {
	return e.n.Data
}

func (e *element) Classes() []string {
	return strings.Fields(attr(e.n, "class"))
}

func (e *element) Attr(name string) string {
	return attr(e.n, name)
}

func (e *element) Focus() {
	e.doc.focus = e.n
}

func (e *element) Blur() {
	if e.doc.focus == e.n {
		e.doc.focus = nil
	}
}

// walk calls f on every element node under n, including n itself.
func walk(n *html.Node, f func(n *html.Node)) {
	if n.Type == html.ElementNode {
		f(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, f)
	}
}

// textContent returns the concatenated text children of the given node.
func textContent(n *html.Node) string {
	b := strings.Builder{}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// attr returns the value of the given attribute of the given node,
// or "" if it is unset.
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// hasAttr reports whether the given node carries the given attribute,
// including valueless boolean attributes such as autofocus.
func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}
