// Package autolink finds links in plain text.
//
// It recognizes URLs with a scheme ("https://example.org"), bare web addresses
// ("www.example.org") and email addresses ("foo@example.org") without a single
// monolithic regular expression. Each kind of link has a Scanner that is consulted only
// when the extractor reaches its trigger character (':', 'w' or '@'), so text without
// those characters costs a single pass.
//
// Core properties:
//   - One left-to-right pass; links are produced lazily and never overlap
//   - Links embedded in punctuation, quotes and brackets are trimmed, so
//     "(see www.example.org/)" yields "www.example.org/"
//   - Internationalized host names and paths are matched as is
//   - Extractors are immutable and safe for concurrent use
//
// Example:
//
//	ex, err := autolink.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	input := "wow, so example: http://test.com"
//	for link := range ex.Links(input) {
//		fmt.Println(link.Kind(), link.Text(input))
//	}
//
// Offsets in a Span are byte offsets into the input string. The engine is
// markup-agnostic; it does not know about HTML or Markdown. Package goldmarkext adds
// links to Markdown documents rendered with goldmark.
package autolink
