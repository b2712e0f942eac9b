package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// ParseJSON reads a catalog shaped as {"name": [[0,1,...], ...], ...}. Cells
// may be 0/1 or true/false. Document order is kept. The returned error is
// only for a document that cannot be read at all; bad entries land in
// Result.Rejected.
func ParseJSON(data []byte) (*Result, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "[ParseJSON] failed to read catalog")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("[ParseJSON] catalog must be a JSON object")
	}

	res := &Result{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "[ParseJSON] failed to read template name")
		}
		name, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrapf(err, "[ParseJSON] failed to read template %q", name)
		}

		cells, err := decodeJSONCells(raw)
		if err != nil {
			res.reject(name, err)
			continue
		}
		res.add(name, cells)
	}
	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, "[ParseJSON] unterminated catalog")
	}
	return res, nil
}

func decodeJSONCells(raw json.RawMessage) ([][]bool, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, ErrMalformed
	}
	cells := make([][]bool, len(rows))
	for i, rawRow := range rows {
		var row []any
		if err := json.Unmarshal(rawRow, &row); err != nil {
			return nil, ErrMalformed
		}
		cells[i] = make([]bool, len(row))
		for j, v := range row {
			on, err := jsonCell(v)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %d", i, j)
			}
			cells[i][j] = on
		}
	}
	return cells, nil
}

func jsonCell(v any) (bool, error) {
	switch c := v.(type) {
	case bool:
		return c, nil
	case float64:
		switch c {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	}
	return false, ErrNotBoolean
}
