package autolink

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"unicode/utf8"
)

var (
	// ErrNilScanner reports a nil scanner passed to a Builder.
	ErrNilScanner = errors.New("scanner must not be nil")
	// ErrDuplicateTrigger reports a trigger character registered twice.
	ErrDuplicateTrigger = errors.New("trigger already used by another scanner")
	// ErrNoScanners reports a Builder finalized without any scanner.
	ErrNoScanners = errors.New("no scanners have been defined")
	// ErrIteratorExhausted reports a call to Iterator.Next after the last link.
	ErrIteratorExhausted = errors.New("iterator exhausted")
)

// Builder assembles an Extractor from (trigger, Scanner) pairs.
// The zero value is ready to use.
type Builder struct {
	scanners map[rune]Scanner
	err      error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Register adds s under trigger and reports configuration errors immediately.
func (b *Builder) Register(trigger rune, s Scanner) error {
	if s == nil {
		return fmt.Errorf("autolink: trigger %q: %w", trigger, ErrNilScanner)
	}
	if _, ok := b.scanners[trigger]; ok {
		return fmt.Errorf("autolink: trigger %q: %w", trigger, ErrDuplicateTrigger)
	}
	if b.scanners == nil {
		b.scanners = make(map[rune]Scanner)
	}
	b.scanners[trigger] = s
	return nil
}

// WithScanner is the chaining form of Register. The first error is kept and returned
// by Build.
func (b *Builder) WithScanner(trigger rune, s Scanner) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.Register(trigger, s)
	return b
}

// Build returns the configured Extractor. The Builder may be reused afterwards;
// later registrations do not affect extractors already built.
func (b *Builder) Build() (*Extractor, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.scanners) == 0 {
		return nil, fmt.Errorf("autolink: %w", ErrNoScanners)
	}
	return &Extractor{scanners: maps.Clone(b.scanners)}, nil
}

// Extractor finds links in text in a single left-to-right pass.
//
// An Extractor is immutable and safe for concurrent use; every traversal keeps its own
// cursor.
type Extractor struct {
	scanners map[rune]Scanner
}

// Triggers returns the registered trigger characters in ascending order.
func (e *Extractor) Triggers() []rune {
	out := make([]rune, 0, len(e.scanners))
	for trigger := range e.scanners {
		out = append(out, trigger)
	}
	slices.Sort(out)
	return out
}

// step scans input from cursor and returns the next link. rewind is the end of the
// previous link. When no link remains, ok is false.
func (e *Extractor) step(input string, cursor, rewind int) (Span, bool) {
	for cursor < len(input) {
		r, size := rune(input[cursor]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRuneInString(input[cursor:])
		}
		if s, ok := e.scanners[r]; ok {
			if span, ok := s.Scan(input, cursor, rewind); ok && span.validFor(input) && span.start >= rewind && span.end > cursor {
				return span, true
			}
		}
		cursor += size
	}
	return Span{}, false
}

// Links returns the links of input in order of appearance. The sequence is lazy: each
// iteration step scans only up to the next link. It may be ranged over any number of
// times; each range starts a fresh traversal.
func (e *Extractor) Links(input string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		cursor := 0
		for {
			span, ok := e.step(input, cursor, cursor)
			if !ok {
				return
			}
			if !yield(span) {
				return
			}
			cursor = span.end
		}
	}
}

// Extract returns all links of input.
func (e *Extractor) Extract(input string) []Span {
	var out []Span
	for span := range e.Links(input) {
		out = append(out, span)
	}
	return out
}

// Segments returns input split into links and the plain text between them. Adjacent
// segments share their boundary; together they cover input exactly.
func (e *Extractor) Segments(input string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		pos := 0
		for span := range e.Links(input) {
			if span.start > pos {
				if !yield(Segment{Start: pos, End: span.start}) {
					return
				}
			}
			if !yield(Segment{Start: span.start, End: span.end, Kind: span.kind}) {
				return
			}
			pos = span.end
		}
		if pos < len(input) {
			yield(Segment{Start: pos, End: len(input)})
		}
	}
}

// Iterator returns a pull iterator over the links of input.
func (e *Extractor) Iterator(input string) *Iterator {
	return &Iterator{extractor: e, input: input}
}

// Iterator pulls links one at a time. It is not safe for concurrent use.
type Iterator struct {
	extractor *Extractor
	input     string
	cursor    int
	next      Span
	pending   bool
	done      bool
}

// HasNext reports whether another link follows.
func (it *Iterator) HasNext() bool {
	if it.pending {
		return true
	}
	if it.done {
		return false
	}
	span, ok := it.extractor.step(it.input, it.cursor, it.cursor)
	if !ok {
		it.done = true
		it.cursor = len(it.input)
		return false
	}
	it.next = span
	it.pending = true
	it.cursor = span.end
	return true
}

// Next returns the next link. It returns ErrIteratorExhausted once every link has been
// returned; use HasNext to detect the end of the sequence.
func (it *Iterator) Next() (Span, error) {
	if !it.HasNext() {
		return Span{}, ErrIteratorExhausted
	}
	it.pending = false
	return it.next, nil
}
