// Package goldmarkext turns bare links in Markdown text into links when rendering
// with goldmark.
//
//	md := goldmark.New(goldmark.WithExtensions(goldmarkext.Linkify))
//
// Text inside links, images, code spans, code blocks and raw HTML is left alone.
package goldmarkext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"pkt.systems/autolink"
)

const transformerPriority = 100

// Linkify links URLs, www addresses and email addresses using autolink.Default().
var Linkify goldmark.Extender = New(nil)

// Option configures the extension.
type Option func(*linkify)

// WithWWWProtocol sets the scheme used for links to bare www addresses. It defaults
// to "http".
func WithWWWProtocol(protocol string) Option {
	return func(l *linkify) {
		l.wwwProtocol = []byte(protocol)
	}
}

type linkify struct {
	extractor   *autolink.Extractor
	wwwProtocol []byte
}

// New returns an extension that links the text found by ex. A nil ex uses
// autolink.Default().
func New(ex *autolink.Extractor, opts ...Option) goldmark.Extender {
	l := &linkify{extractor: ex, wwwProtocol: []byte("http")}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Extend implements goldmark.Extender.
func (l *linkify) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&transformer{linkify: l}, transformerPriority),
	))
}

type transformer struct {
	linkify *linkify
}

// Transform implements parser.ASTTransformer.
func (t *transformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	ex := t.linkify.extractor
	if ex == nil {
		ex = autolink.Default()
	}
	source := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Link, *ast.AutoLink, *ast.Image, *ast.CodeSpan, *ast.RawHTML,
			*ast.CodeBlock, *ast.FencedCodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		t.linkifyChildren(ex, n, source)
		return ast.WalkContinue, nil
	})
}

// linkifyChildren scans runs of adjacent text children of parent. Inline parsing can
// split one word into several text nodes (for example at an unmatched '_'), so a run is
// scanned as a whole.
func (t *transformer) linkifyChildren(ex *autolink.Extractor, parent ast.Node, source []byte) {
	for c := parent.FirstChild(); c != nil; {
		first, ok := c.(*ast.Text)
		if !ok || first.IsRaw() {
			c = c.NextSibling()
			continue
		}
		run := []*ast.Text{first}
		next := first.NextSibling()
		for next != nil {
			tn, ok := next.(*ast.Text)
			prev := run[len(run)-1]
			if !ok || tn.IsRaw() || prev.SoftLineBreak() || prev.HardLineBreak() || prev.Segment.Stop != tn.Segment.Start {
				break
			}
			run = append(run, tn)
			next = next.NextSibling()
		}
		t.linkifyRun(ex, parent, run, source)
		c = next
	}
}

func (t *transformer) linkifyRun(ex *autolink.Extractor, parent ast.Node, run []*ast.Text, source []byte) {
	start, stop := run[0].Segment.Start, run[len(run)-1].Segment.Stop
	value := string(source[start:stop])
	links := ex.Extract(value)
	if len(links) == 0 {
		return
	}
	anchor := run[0]
	insert := func(n ast.Node) {
		parent.InsertBefore(parent, anchor, n)
	}
	pos := 0
	for _, link := range links {
		if link.Start() > pos {
			insert(ast.NewTextSegment(text.NewSegment(start+pos, start+link.Start())))
		}
		label := ast.NewTextSegment(text.NewSegment(start+link.Start(), start+link.End()))
		insert(t.autoLink(link.Kind(), label))
		pos = link.End()
	}
	last := run[len(run)-1]
	if pos < len(value) || last.SoftLineBreak() || last.HardLineBreak() {
		tail := ast.NewTextSegment(text.NewSegment(start+pos, stop))
		tail.SetSoftLineBreak(last.SoftLineBreak())
		tail.SetHardLineBreak(last.HardLineBreak())
		insert(tail)
	}
	for _, n := range run {
		parent.RemoveChild(parent, n)
	}
}

func (t *transformer) autoLink(kind autolink.LinkKind, label *ast.Text) *ast.AutoLink {
	if kind == autolink.KindEmail {
		return ast.NewAutoLink(ast.AutoLinkEmail, label)
	}
	link := ast.NewAutoLink(ast.AutoLinkURL, label)
	if kind == autolink.KindWWW {
		link.Protocol = t.linkify.wwwProtocol
	}
	return link
}
