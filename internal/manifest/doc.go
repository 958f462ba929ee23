// Package manifest reads and writes path manifests: documents with a single
// "paths" field holding an ordered list of serialized paths.
//
// The document format follows the file extension:
//
//	.json         encoding/json
//	.yaml, .yml   gopkg.in/yaml.v3
//	.toml         github.com/pelletier/go-toml/v2
//	.cue          cuelang.org/go
//
// Every list element is decoded on its own, so a failure is reported with
// the index of the offending value. LoadModeFailFast stops at the first
// failure; LoadModeCollectAll keeps going and returns every valid entry
// along with one error per invalid one.
package manifest
