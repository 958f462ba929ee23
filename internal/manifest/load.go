package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/roach88/pathabs/internal/pathabs"
)

// LoadMode controls how invalid list elements are handled.
type LoadMode int

const (
	// LoadModeFailFast stops on the first invalid element.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll decodes every element and reports each failure.
	LoadModeCollectAll
)

// Entry is a decoded path and its position in the manifest.
type Entry struct {
	Index int
	Path  pathabs.Path
}

// LoadResult contains the decoded entries of a manifest, in document order.
type LoadResult struct {
	File    string
	Format  Format
	Total   int // number of list elements in the document
	Entries []Entry
}

// Paths returns the decoded paths in document order.
func (r *LoadResult) Paths() []pathabs.Path {
	out := make([]pathabs.Path, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Path
	}
	return out
}

// element decodes one list element into a path.
type element func() (pathabs.Path, error)

// Load reads a manifest. A nil result means the document itself could not
// be used; otherwise the result holds every element decoded so far.
func Load(file string, mode LoadMode) (*LoadResult, []error) {
	format, err := FormatFromPath(file)
	if err != nil {
		return nil, []error{err}
	}

	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Index: -1, Message: fmt.Sprintf("manifest not found: %s", file), Err: err}}
	}
	if err != nil {
		return nil, []error{documentError(ErrCodeReadFailed, err)}
	}

	elems, err := parse(format, file, data)
	if err != nil {
		return nil, []error{documentError(ErrCodeParseFailed, err)}
	}

	result := &LoadResult{File: file, Format: format, Total: len(elems)}
	var errs []error
	for i, decode := range elems {
		p, err := decode()
		if err != nil {
			errs = append(errs, elementError(i, err))
			if mode == LoadModeFailFast {
				return result, errs
			}
			continue
		}
		result.Entries = append(result.Entries, Entry{Index: i, Path: p})
	}
	return result, errs
}

var (
	errMissingPaths = errors.New(`missing "paths" list`)
	errTrailingData = errors.New("unexpected data after JSON document")
)

func parse(format Format, file string, data []byte) ([]element, error) {
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatYAML:
		return parseYAML(data)
	case FormatTOML:
		return parseTOML(data)
	case FormatCUE:
		return parseCUE(file, data)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

func parseJSON(data []byte) ([]element, error) {
	var doc struct {
		Paths *[]json.RawMessage `json:"paths"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errTrailingData
	}
	if doc.Paths == nil {
		return nil, errMissingPaths
	}

	elems := make([]element, len(*doc.Paths))
	for i, raw := range *doc.Paths {
		elems[i] = func() (pathabs.Path, error) {
			var p pathabs.Path
			err := p.UnmarshalJSON(raw)
			return p, err
		}
	}
	return elems, nil
}

func parseYAML(data []byte) ([]element, error) {
	var doc struct {
		Paths *[]yaml.Node `yaml:"paths"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc.Paths == nil {
		return nil, errMissingPaths
	}

	elems := make([]element, len(*doc.Paths))
	for i := range *doc.Paths {
		node := &(*doc.Paths)[i]
		elems[i] = func() (pathabs.Path, error) {
			var p pathabs.Path
			err := p.UnmarshalYAML(node)
			return p, err
		}
	}
	return elems, nil
}

func parseTOML(data []byte) ([]element, error) {
	var doc struct {
		Paths *[]any `toml:"paths"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}
	if doc.Paths == nil {
		return nil, errMissingPaths
	}

	elems := make([]element, len(*doc.Paths))
	for i, v := range *doc.Paths {
		elems[i] = func() (pathabs.Path, error) {
			text, ok := v.(string)
			if !ok {
				return pathabs.Path{}, &pathabs.DecodeError{Text: fmt.Sprint(v), Err: fmt.Errorf("expected a string, got %T", v)}
			}
			var p pathabs.Path
			err := p.UnmarshalText([]byte(text))
			return p, err
		}
	}
	return elems, nil
}

func parseCUE(file string, data []byte) ([]element, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(file))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("building CUE value: %w", err)
	}

	list := value.LookupPath(cue.ParsePath("paths"))
	if !list.Exists() {
		return nil, errMissingPaths
	}
	iter, err := list.List()
	if err != nil {
		return nil, fmt.Errorf("iterating paths: %w", err)
	}

	var elems []element
	for iter.Next() {
		v := iter.Value()
		elems = append(elems, func() (pathabs.Path, error) {
			text, err := v.String()
			if err != nil {
				return pathabs.Path{}, &pathabs.DecodeError{Text: fmt.Sprint(v), Err: err}
			}
			return pathabs.Deserialize(text)
		})
	}
	return elems, nil
}
