package menu

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// document is the shape of YAML and TOML menu files:
//
//	entries:
//	  - label: Games
//	    children:
//	      - label: Chess
//	        command: chess.exe
type document struct {
	Entries []rawEntry `yaml:"entries" toml:"entries"`
}

var entryFields = map[string]bool{"label": true, "dir": true, "command": true, "children": true}

type unknownFieldError struct {
	line  int
	field string
}

func (e *unknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.field)
}

// UnmarshalYAML records the line each entry starts on. node.Decode does not
// inherit KnownFields, so unknown keys are rejected here.
func (r *rawEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if key := node.Content[i]; !entryFields[key.Value] {
				return &unknownFieldError{line: key.Line, field: key.Value}
			}
		}
	}
	type plain rawEntry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = rawEntry(p)
	r.line = node.Line
	return nil
}

func decodeYAML(path string, data []byte) ([]rawEntry, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		line := 0
		var fieldErr *unknownFieldError
		if errors.As(err, &fieldErr) {
			line = fieldErr.line
		}
		return nil, configErr(path, line, fmt.Errorf("%w: %v", ErrMalformedRow, err))
	}
	return doc.Entries, nil
}

// decodeTOML reports a line for syntax and type errors only. go-toml does not
// expose positions for decoded tables, so later validation errors name the
// file without a line.
func decodeTOML(path string, data []byte) ([]rawEntry, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		line := 0
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			line, _ = derr.Position()
		}
		return nil, configErr(path, line, fmt.Errorf("%w: %v", ErrMalformedRow, err))
	}
	return doc.Entries, nil
}
