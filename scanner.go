package autolink

// Scanner recognizes one kind of link around a trigger character.
//
// Scan is called with the byte offset of a trigger character in input and the rewind
// offset, the end of the previous match (or 0). A scanner may read anything to the right of
// the trigger but must not base look-behind decisions on input before rewind, since that
// text already belongs to an earlier link. Scan reports false when there is no link at the
// trigger; malformed input is never an error.
//
// Implementations must be safe for concurrent use.
type Scanner interface {
	Scan(input string, trigger, rewind int) (Span, bool)
}

// ScannerFunc adapts a function to the Scanner interface.
type ScannerFunc func(input string, trigger, rewind int) (Span, bool)

// Scan calls f.
func (f ScannerFunc) Scan(input string, trigger, rewind int) (Span, bool) {
	return f(input, trigger, rewind)
}
