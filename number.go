package dbotjson

import (
	"github.com/valyala/fastjson/fastfloat"

	"github.com/olagood/dbotjson/internal/numstate"
)

// number parses a number value. neg is true when d.sc.Cur() is a
// leading '-', which number steps past itself before scanning the
// digits; otherwise d.sc.Cur() must be the first digit.
func (d *decoder) number(neg bool) (Value, error) {
	startPos := d.sc.Pos() - 1
	if neg {
		c := d.sc.Next()
		if c < '0' || c > '9' {
			return Value{}, errSyntax(d.sc.Pos()-1, "in negative numeric literal")
		}
	}

	res, err := numstate.Scan(d.sc, startPos)
	if err != nil {
		if ne, ok := err.(*numstate.Error); ok {
			return Value{}, errSyntax(ne.Pos, "in numeric literal")
		}
		return Value{}, err
	}

	text := string(res.Text)
	if res.IsFloat {
		return Value{kind: Float, f: fastfloat.ParseBestEffort(text)}, nil
	}
	return Value{kind: Integer, i: fastfloat.ParseInt64BestEffort(text)}, nil
}
