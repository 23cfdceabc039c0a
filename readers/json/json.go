// Package json reads JSON files whose root is an array of objects or a
// single object. Nested objects flatten into parent_child column names;
// nested collections are excluded, leaving a null column behind.
package json

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Greg89/PythonGenerateSQL/readers"
	"github.com/Greg89/PythonGenerateSQL/readers/common"
)

func init() {
	readers.Register("json", &jsonDriver{})
}

type jsonDriver struct{}

// orderedObject preserves member order, which Go maps discard. Column order
// must match the order keys first appear in the document.
type orderedObject struct {
	keys   []string
	values map[string]interface{}
}

func (d *jsonDriver) Read(r io.Reader, opts readers.Options) (*common.Table, error) {
	dec := json.NewDecoder(bufio.NewReaderSize(common.DecodeReader(r, opts.AutoDetectEncoding), 65536))
	dec.UseNumber()

	root, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing JSON: %v", common.ErrInvalidFormat, err)
	}

	set := common.NewRecordSet()
	switch v := root.(type) {
	case []interface{}:
		for _, item := range v {
			if obj, ok := item.(*orderedObject); ok {
				keys, values := flattenObject(obj, "")
				set.Add(keys, values)
			}
		}
	case *orderedObject:
		keys, values := flattenObject(v, "")
		set.Add(keys, values)
	default:
		return nil, fmt.Errorf("%w: JSON root must be an object or an array of objects", common.ErrInvalidFormat)
	}

	return set.Table(), nil
}

// flattenObject reduces an object to scalar columns. Nested objects recurse
// with a parent_child name; arrays and explicit nulls become null cells.
func flattenObject(obj *orderedObject, prefix string) ([]string, map[string]common.Cell) {
	var keys []string
	values := make(map[string]common.Cell)

	for _, k := range obj.keys {
		name := k
		if prefix != "" {
			name = prefix + "_" + k
		}
		switch v := obj.values[k].(type) {
		case *orderedObject:
			nestedKeys, nestedValues := flattenObject(v, name)
			keys = append(keys, nestedKeys...)
			for nk, nv := range nestedValues {
				values[nk] = nv
			}
		case []interface{}:
			keys = append(keys, name)
			values[name] = common.Null()
		case nil:
			keys = append(keys, name)
			values[name] = common.Null()
		case string:
			keys = append(keys, name)
			values[name] = common.String(v)
		case json.Number:
			keys = append(keys, name)
			values[name] = common.String(v.String())
		case bool:
			keys = append(keys, name)
			values[name] = common.String(strconv.FormatBool(v))
		default:
			keys = append(keys, name)
			values[name] = common.String(fmt.Sprintf("%v", v))
		}
	}
	return keys, values
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (interface{}, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool or nil
		return tok, nil
	}

	switch delim {
	case '{':
		obj := &orderedObject{values: make(map[string]interface{})}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("expected string key, got %v", keyTok)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			if _, dup := obj.values[key]; !dup {
				obj.keys = append(obj.keys, key)
			}
			obj.values[key] = val
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return obj, nil

	case '[':
		var arr []interface{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, err
		}
		if arr == nil {
			arr = []interface{}{}
		}
		return arr, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %v", delim)
}
