package menu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// DefaultFile is the menu file looked up in the working directory.
const DefaultFile = "menu.csv"

var errNoEntries = errors.New("menu has no entries")

// rawEntry is the format-neutral row shape produced by every decoder before
// the tree is validated and tagged.
type rawEntry struct {
	Label    string     `yaml:"label" toml:"label"`
	Dir      string     `yaml:"dir" toml:"dir"`
	Command  string     `yaml:"command" toml:"command"`
	Children []rawEntry `yaml:"children" toml:"children"`

	line int
}

type decodeFunc func(path string, data []byte) ([]rawEntry, error)

func decoderFor(path string) decodeFunc {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML
	case ".toml":
		return decodeTOML
	default:
		return decodeCSV
	}
}

// Load reads the menu file at path and resolves it, including any
// directory-based sub-menu files, into an immutable Tree. Every failure is
// returned as a *ConfigError.
func Load(path string) (Tree, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultFile
	}
	l := &loader{visiting: make(map[string]struct{})}
	root, err := l.loadFile(path, "", "")
	if err != nil {
		return Tree{}, err
	}
	return Tree{Source: path, Root: root}, nil
}

type loader struct {
	visiting map[string]struct{}
}

// loadFile reads and builds one menu file. inherited is the working directory
// of the entry that pulled the file in, handed to rows with no dir of their own.
func (l *loader) loadFile(path, idPrefix, inherited string) ([]Entry, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, configErr(path, 0, fmt.Errorf("resolve path: %w", err))
	}
	if _, seen := l.visiting[abs]; seen {
		return nil, configErr(path, 0, ErrIncludeCycle)
	}
	l.visiting[abs] = struct{}{}
	defer delete(l.visiting, abs)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configErr(path, 0, fmt.Errorf("read menu: %w", err))
	}
	raws, err := decoderFor(path)(path, data)
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, configErr(path, 0, errNoEntries)
	}
	return l.build(path, filepath.Dir(abs), inherited, raws, idPrefix)
}

// build validates raw rows and tags each one as a leaf or a sub-menu. base is
// the directory relative dirs resolve against; inherited is the working
// directory handed down from an enclosing sub-menu.
func (l *loader) build(path, base, inherited string, raws []rawEntry, idPrefix string) ([]Entry, error) {
	entries := make([]Entry, 0, len(raws))
	for i, raw := range raws {
		id := strconv.Itoa(i)
		if idPrefix != "" {
			id = idPrefix + "/" + id
		}
		label := strings.TrimSpace(raw.Label)
		if label == "" {
			return nil, configErr(path, raw.line, ErrEmptyLabel)
		}
		dir := resolveDir(base, inherited, raw.Dir)
		command := strings.TrimSpace(raw.Command)

		if command != "" {
			if len(raw.Children) > 0 {
				return nil, configErr(path, raw.line, fmt.Errorf("%w: %q", ErrLeafWithChildren, label))
			}
			argv, err := shlex.Split(command)
			if err != nil {
				return nil, configErr(path, raw.line, fmt.Errorf("%w: command %q: %v", ErrMalformedRow, command, err))
			}
			if len(argv) == 0 {
				return nil, configErr(path, raw.line, fmt.Errorf("%w: command %q has no program", ErrMalformedRow, command))
			}
			entries = append(entries, NewLeaf(id, label, Command{Raw: command, Argv: argv, Dir: dir}))
			continue
		}

		var (
			children []Entry
			err      error
		)
		switch {
		case len(raw.Children) > 0:
			childBase := base
			if dir != "" {
				childBase = dir
			}
			children, err = l.build(path, childBase, dir, raw.Children, id)
		case strings.TrimSpace(raw.Dir) != "":
			children, err = l.loadFile(filepath.Join(dir, filepath.Base(path)), id, dir)
		}
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, configErr(path, raw.line, fmt.Errorf("%w: %q", ErrEmptySubMenu, label))
		}
		entries = append(entries, NewSubMenu(id, label, children))
	}
	return entries, nil
}

func resolveDir(base, inherited, dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return inherited
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(base, dir)
}
