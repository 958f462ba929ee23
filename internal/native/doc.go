// Package native exposes a path string as the platform's native unit
// sequence and binds it to the escape codec of matching width.
//
// The unit width is fixed per build target: 8-bit bytes everywhere except
// Windows, where paths are sequences of 16-bit code units that may contain
// unpaired surrogates. Exactly one implementation is compiled in.
package native
