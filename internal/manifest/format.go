package manifest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a manifest document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatCUE  Format = "cue"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatCUE}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(file string) (Format, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".cue":
		return FormatCUE, nil
	}
	return "", &LoadError{
		Code:    ErrCodeUnknownFormat,
		Index:   -1,
		Message: fmt.Sprintf("unsupported manifest extension %q (want one of %v)", filepath.Ext(file), Formats),
	}
}
