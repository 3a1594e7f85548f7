package menu

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRow     = errors.New("malformed row")
	ErrEmptyLabel       = errors.New("entry has no label")
	ErrEmptySubMenu     = errors.New("sub-menu has no command and no children")
	ErrLeafWithChildren = errors.New("entry with a command cannot have children")
	ErrIncludeCycle     = errors.New("menu file includes itself")
)

// ConfigError reports why a menu file could not be turned into a Tree.
// Line is 1-based and zero when the problem is not tied to a row.
type ConfigError struct {
	Path string
	Line int
	Err  error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Path == "":
		return e.Err.Error()
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(path string, line int, err error) error {
	var existing *ConfigError
	if errors.As(err, &existing) {
		return err
	}
	return &ConfigError{Path: path, Line: line, Err: err}
}
