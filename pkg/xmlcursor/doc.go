// Package xmlcursor provides the forward-only XML cursor consumed by the
// schema serializer and the writer used to emit schema documents.
//
// A Cursor is positioned on one node at a time (start element, end element,
// text value or end of document) and only moves forward. Reader is the
// encoding/xml backed implementation: it skips comments, processing
// instructions and directives, coalesces adjacent text, and by default
// drops whitespace-only text.
package xmlcursor
