package menu

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	csvFields = 3
	tabWidth  = 4
)

type csvRow struct {
	indent int
	raw    rawEntry
}

// decodeCSV reads label,dir,command rows. Nesting is expressed by indenting
// the label field; a row indented deeper than the one before it is that
// row's child.
func decodeCSV(path string, data []byte) ([]rawEntry, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comment = '#'
	r.FieldsPerRecord = -1

	rows := make([]csvRow, 0, 16)
	first := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.StartLine
				err = perr.Err
			}
			return nil, configErr(path, line, fmt.Errorf("%w: %v", ErrMalformedRow, err))
		}
		line, _ := r.FieldPos(0)
		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}
		if len(record) != csvFields {
			return nil, configErr(path, line, fmt.Errorf("%w: expected %d fields (label,dir,command), got %d", ErrMalformedRow, csvFields, len(record)))
		}
		indent, label := splitIndent(record[0])
		rows = append(rows, csvRow{
			indent: indent,
			raw: rawEntry{
				Label:   label,
				Dir:     strings.TrimSpace(record[1]),
				Command: strings.TrimSpace(record[2]),
				line:    line,
			},
		})
	}
	return nestRows(path, rows)
}

func isHeader(record []string) bool {
	if len(record) != csvFields {
		return false
	}
	want := []string{"label", "dir", "command"}
	for i, field := range record {
		if !strings.EqualFold(strings.TrimSpace(field), want[i]) {
			return false
		}
	}
	return true
}

func splitIndent(field string) (int, string) {
	indent := 0
	for i, r := range field {
		switch r {
		case ' ':
			indent++
		case '\t':
			indent += tabWidth
		default:
			return indent, strings.TrimSpace(field[i:])
		}
	}
	return indent, ""
}

type csvNode struct {
	row      csvRow
	children []*csvNode
}

func nestRows(path string, rows []csvRow) ([]rawEntry, error) {
	root := &csvNode{row: csvRow{indent: -1}}
	stack := []*csvNode{root}
	for _, row := range rows {
		for len(stack) > 1 && row.indent <= stack[len(stack)-1].row.indent {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		if n := len(parent.children); n > 0 && parent.children[n-1].row.indent != row.indent {
			return nil, configErr(path, row.raw.line, fmt.Errorf("%w: indentation of %q does not line up with an enclosing menu", ErrMalformedRow, row.raw.Label))
		}
		node := &csvNode{row: row}
		parent.children = append(parent.children, node)
		stack = append(stack, node)
	}
	return flattenNodes(root.children), nil
}

func flattenNodes(nodes []*csvNode) []rawEntry {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]rawEntry, len(nodes))
	for i, node := range nodes {
		out[i] = node.row.raw
		out[i].Children = flattenNodes(node.children)
	}
	return out
}
