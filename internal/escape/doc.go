// Package escape implements the text-safe escaping used to carry native path
// units inside textual interchange formats.
//
// Units in the printable ASCII range are written verbatim, except the
// introducer '%', the double quote and the backslash. Every other unit is
// written as '%' followed by a fixed number of uppercase hex digits: two for
// 8-bit units and four for 16-bit units. The encoding is total and
// deterministic, and decoding accepts exactly the texts that encoding can
// produce, so the mapping is a bijection in both directions.
//
// Example (8-bit units):
//
//	/tmp/a b.txt     -> /tmp/a b.txt
//	/tmp/100%        -> /tmp/100%25
//	/tmp/\xff.bin    -> /tmp/%FF.bin
package escape
