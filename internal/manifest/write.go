package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/roach88/pathabs/internal/pathabs"
)

// Manifest is the document shape shared by every format.
type Manifest struct {
	Paths []pathabs.Path `json:"paths" yaml:"paths" toml:"paths"`
}

// Write stores paths as a manifest in the format implied by file's
// extension. Order is preserved.
func Write(file string, paths []pathabs.Path) error {
	f, err := FormatFromPath(file)
	if err != nil {
		return err
	}
	data, err := Marshal(f, paths)
	if err != nil {
		return documentError(ErrCodeWriteFailed, err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return documentError(ErrCodeWriteFailed, err)
	}
	return nil
}

// Marshal renders paths as a manifest document.
func Marshal(f Format, paths []pathabs.Path) ([]byte, error) {
	if paths == nil {
		paths = []pathabs.Path{}
	}
	doc := Manifest{Paths: paths}

	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatCUE:
		return marshalCUE(paths)
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

func marshalCUE(paths []pathabs.Path) ([]byte, error) {
	texts := make([]string, len(paths))
	for i, p := range paths {
		texts[i] = pathabs.Serialize(p)
	}

	value := cuecontext.New().Encode(map[string]any{"paths": texts})
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("encoding CUE value: %w", err)
	}
	node := value.Syntax()
	if st, ok := node.(*ast.StructLit); ok {
		node = &ast.File{Decls: st.Elts}
	}
	data, err := format.Node(node)
	if err != nil {
		return nil, fmt.Errorf("formatting CUE: %w", err)
	}
	return append(data, '\n'), nil
}
