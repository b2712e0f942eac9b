package catalog

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
)

// hclFile is the root of an HCL catalog:
//
//	template "glider" {
//	  cells = [
//	    [0, 1, 0],
//	    [0, 0, 1],
//	    [1, 1, 1],
//	  ]
//	}
type hclFile struct {
	Templates []*hclTemplate `hcl:"template,block"`
	Remain    hcl.Body       `hcl:",remain"`
}

type hclTemplate struct {
	Name  string         `hcl:"name,label"`
	Cells hcl.Expression `hcl:"cells,optional"`
}

var (
	ctyZero = cty.NumberIntVal(0)
	ctyOne  = cty.NumberIntVal(1)
)

// ParseHCL reads a catalog of `template "name" { cells = [...] }` blocks.
// Syntax errors fail the whole document; a block whose cells do not form a
// rectangular 0/1 or bool matrix is rejected on its own.
func ParseHCL(data []byte, filename string) (*Result, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "[ParseHCL] failed to parse %s", filename)
	}

	var root hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "[ParseHCL] failed to decode %s", filename)
	}

	res := &Result{}
	for _, tmpl := range root.Templates {
		val, diags := tmpl.Cells.Value(nil)
		if diags.HasErrors() {
			res.reject(tmpl.Name, errors.Wrap(ErrMalformed, diags.Error()))
			continue
		}
		cells, err := decodeCtyCells(val)
		if err != nil {
			res.reject(tmpl.Name, err)
			continue
		}
		res.add(tmpl.Name, cells)
	}
	return res, nil
}

func isSequence(v cty.Value) bool {
	if v.IsNull() || !v.IsKnown() {
		return false
	}
	ty := v.Type()
	return ty.IsTupleType() || ty.IsListType()
}

func decodeCtyCells(val cty.Value) ([][]bool, error) {
	if !isSequence(val) {
		return nil, ErrMalformed
	}

	var cells [][]bool
	for it := val.ElementIterator(); it.Next(); {
		_, rowVal := it.Element()
		if !isSequence(rowVal) {
			return nil, ErrMalformed
		}
		i := len(cells)
		row := make([]bool, 0, rowVal.LengthInt())
		for cit := rowVal.ElementIterator(); cit.Next(); {
			_, cell := cit.Element()
			on, err := ctyCell(cell)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %d", i, len(row))
			}
			row = append(row, on)
		}
		cells = append(cells, row)
	}
	return cells, nil
}

func ctyCell(v cty.Value) (bool, error) {
	if v.IsNull() || !v.IsKnown() {
		return false, ErrNotBoolean
	}
	ty := v.Type()
	switch {
	case ty.Equals(cty.Bool):
		return v.True(), nil
	case ty.Equals(cty.Number):
		if v.Equals(ctyZero).True() {
			return false, nil
		}
		if v.Equals(ctyOne).True() {
			return true, nil
		}
	}
	return false, ErrNotBoolean
}
