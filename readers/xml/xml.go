// Package xml reads XML documents where the children of the root element
// are the records and their child elements are the columns. One level of
// element nesting flattens into parent_child columns; repeated tags form a
// collection and are excluded, leaving a null column behind.
package xml

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/Greg89/PythonGenerateSQL/readers"
	"github.com/Greg89/PythonGenerateSQL/readers/common"
)

func init() {
	readers.Register("xml", &xmlDriver{})
}

type xmlDriver struct{}

type element struct {
	name     string
	text     strings.Builder
	children []*element
}

func (d *xmlDriver) Read(r io.Reader, opts readers.Options) (*common.Table, error) {
	dec := xml.NewDecoder(bufio.NewReaderSize(common.DecodeReader(r, opts.AutoDetectEncoding), 65536))

	root, err := parseTree(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing XML: %v", common.ErrInvalidFormat, err)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", common.ErrEmptyFile)
	}

	set := common.NewRecordSet()
	for _, record := range root.children {
		keys, values := flattenRecord(record)
		set.Add(keys, values)
	}
	return set.Table(), nil
}

// parseTree consumes the token stream and returns the document root.
func parseTree(dec *xml.Decoder) (*element, error) {
	var root *element
	var stack []*element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected closing tag </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unclosed element <%s>", stack[len(stack)-1].name)
	}
	return root, nil
}

// flattenRecord reduces a record element to scalar columns. A tag name that
// repeats under the same parent is a collection and yields a null cell.
func flattenRecord(record *element) ([]string, map[string]common.Cell) {
	var keys []string
	values := make(map[string]common.Cell)

	for _, field := range record.children {
		if countName(record.children, field.name) > 1 {
			if _, seen := values[field.name]; !seen {
				keys = append(keys, field.name)
				values[field.name] = common.Null()
			}
			continue
		}
		if len(field.children) == 0 {
			keys = append(keys, field.name)
			values[field.name] = common.String(strings.TrimSpace(field.text.String()))
			continue
		}
		for _, nested := range field.children {
			name := field.name + "_" + nested.name
			if countName(field.children, nested.name) > 1 || len(nested.children) > 0 {
				if _, seen := values[name]; !seen {
					keys = append(keys, name)
					values[name] = common.Null()
				}
				continue
			}
			keys = append(keys, name)
			values[name] = common.String(strings.TrimSpace(nested.text.String()))
		}
	}
	return keys, values
}

func countName(els []*element, name string) int {
	n := 0
	for _, el := range els {
		if el.name == name {
			n++
		}
	}
	return n
}
