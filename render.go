package autolink

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

var writerPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(nil, 4096)
	},
}

// LinkRenderer writes the pieces of a text with links.
type LinkRenderer interface {
	RenderText(w io.Writer, text string) error
	RenderLink(w io.Writer, link Span, text string) error
}

// RenderRequest configures Render.
type RenderRequest struct {
	Input    string
	Writer   io.Writer
	Renderer LinkRenderer
	// Extractor defaults to Default().
	Extractor *Extractor
}

// Render extracts the links of Input and writes Input with every link passed through
// Renderer.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	if req.Renderer == nil {
		return fmt.Errorf("render: renderer is nil")
	}
	ex := req.Extractor
	if ex == nil {
		ex = Default()
	}
	return RenderLinks(req.Writer, req.Input, ex.Links(req.Input), req.Renderer)
}

// RenderLinks writes input with the given links passed through r. links must be ordered
// and non-overlapping, as produced by Extractor.Links.
func RenderLinks(w io.Writer, input string, links iter.Seq[Span], r LinkRenderer) error {
	bw := writerPool.Get().(*bufio.Writer)
	bw.Reset(w)
	defer func() {
		bw.Reset(nil)
		writerPool.Put(bw)
	}()
	pos := 0
	for link := range links {
		if !link.validFor(input) || link.start < pos {
			return fmt.Errorf("render: link %s out of order or out of range", link)
		}
		if link.start > pos {
			if err := r.RenderText(bw, input[pos:link.start]); err != nil {
				return err
			}
		}
		if err := r.RenderLink(bw, link, link.Text(input)); err != nil {
			return err
		}
		pos = link.end
	}
	if pos < len(input) {
		if err := r.RenderText(bw, input[pos:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Href returns the target of a link: email addresses get "mailto:" and bare web addresses
// get "http://".
func Href(kind LinkKind, text string) string {
	switch kind {
	case KindEmail:
		return "mailto:" + text
	case KindWWW:
		return "http://" + text
	default:
		return text
	}
}

var defaultHTMLSchemes = []string{"http", "https", "ftp", "ftps"}

// HTMLRenderer renders links as HTML anchors and escapes the text around them.
type HTMLRenderer struct {
	// Rel is written as the rel attribute when set, e.g. "nofollow".
	Rel string
	// Target is written as the target attribute when set, e.g. "_blank".
	Target string
	// Schemes lists the URL schemes written as anchors, compared without regard to case.
	// Nil means http, https, ftp and ftps. A URL link with any other scheme, such as
	// "javascript://", is written as escaped text. Email and www links are always anchors.
	Schemes []string
}

func (r HTMLRenderer) allowed(link Span, text string) bool {
	if link.Kind() != KindURL {
		return true
	}
	scheme, _, ok := strings.Cut(text, "://")
	if !ok {
		return false
	}
	schemes := r.Schemes
	if schemes == nil {
		schemes = defaultHTMLSchemes
	}
	for _, s := range schemes {
		if strings.EqualFold(s, scheme) {
			return true
		}
	}
	return false
}

// RenderText implements LinkRenderer.
func (r HTMLRenderer) RenderText(w io.Writer, text string) error {
	_, err := io.WriteString(w, html.EscapeString(text))
	return err
}

// RenderLink implements LinkRenderer.
func (r HTMLRenderer) RenderLink(w io.Writer, link Span, text string) error {
	if !r.allowed(link, text) {
		return r.RenderText(w, text)
	}
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(html.EscapeString(Href(link.Kind(), text)))
	b.WriteByte('"')
	if r.Rel != "" {
		b.WriteString(` rel="`)
		b.WriteString(html.EscapeString(r.Rel))
		b.WriteByte('"')
	}
	if r.Target != "" {
		b.WriteString(` target="`)
		b.WriteString(html.EscapeString(r.Target))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(html.EscapeString(text))
	b.WriteString("</a>")
	_, err := io.WriteString(w, b.String())
	return err
}

// ANSIRenderer highlights links for terminals, optionally as OSC 8 hyperlinks.
type ANSIRenderer struct {
	Styles Styles
	OSC8   bool
}

// RenderText implements LinkRenderer.
func (r ANSIRenderer) RenderText(w io.Writer, text string) error {
	return writeStyled(w, r.Styles.Text, text)
}

// RenderLink implements LinkRenderer.
func (r ANSIRenderer) RenderLink(w io.Writer, link Span, text string) error {
	if r.OSC8 {
		if _, err := io.WriteString(w, osc8Start+Href(link.Kind(), text)+"\x1b\\"); err != nil {
			return err
		}
	}
	if err := writeStyled(w, r.Styles.ForKind(link.Kind()), text); err != nil {
		return err
	}
	if r.OSC8 {
		if _, err := io.WriteString(w, osc8End); err != nil {
			return err
		}
	}
	return nil
}

func writeStyled(w io.Writer, s Style, text string) error {
	if s.Prefix == "" {
		_, err := io.WriteString(w, text)
		return err
	}
	_, err := io.WriteString(w, s.Prefix+text+ansiReset)
	return err
}
