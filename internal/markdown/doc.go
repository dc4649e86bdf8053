// Package markdown implements the line-oriented Markdown front end of the
// converter: Setext title detection, style-requirement scanning, and the
// block/inline parser that feeds the document writer. A separate goldmark
// renderer provides HTML previews.
//
// The dialect is intentionally small: ATX headings, flat bullet/numbered
// lists, blockquotes, back-tick code spans, and asterisk emphasis. Tables,
// footnotes, nested lists and link syntax are out of scope.
package markdown
