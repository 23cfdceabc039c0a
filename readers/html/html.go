// Package html reads the first <table> element of an HTML document. The
// first row supplies the column names; th and td cells are treated alike.
package html

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/Greg89/PythonGenerateSQL/readers"
	"github.com/Greg89/PythonGenerateSQL/readers/common"
)

func init() {
	readers.Register("html", &htmlDriver{})
}

type htmlDriver struct{}

func (d *htmlDriver) Read(r io.Reader, opts readers.Options) (*common.Table, error) {
	doc, err := html.Parse(bufio.NewReaderSize(common.DecodeReader(r, opts.AutoDetectEncoding), 65536))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing HTML: %v", common.ErrInvalidFormat, err)
	}

	table := findTable(doc)
	if table == nil {
		return nil, fmt.Errorf("%w: no table element found", common.ErrInvalidFormat)
	}

	rows := extractRows(table)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: table has no rows", common.ErrEmptyFile)
	}

	tbl := &common.Table{Columns: rows[0]}
	for _, raw := range rows[1:] {
		row := make([]common.Cell, len(raw))
		for i, v := range raw {
			row[i] = common.String(v)
		}
		tbl.Rows = append(tbl.Rows, common.PadRow(row, len(tbl.Columns)))
	}
	return tbl, nil
}

func findTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTable(c); t != nil {
			return t
		}
	}
	return nil
}

func extractRows(table *html.Node) [][]string {
	var rows [][]string
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "tr" {
			var row []string
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					row = append(row, extractText(c))
				}
			}
			rows = append(rows, row)
			return // don't look for TRs inside TRs
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			// Don't traverse into nested tables
			if c.Type == html.ElementNode && c.Data == "table" {
				continue
			}
			visit(c)
		}
	}
	visit(table)
	return rows
}

func extractText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
