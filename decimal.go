package cubepack

import "github.com/shopspring/decimal"

// Float2Dec converts a float to a fixed-point decimal with the given number
// of digits after the decimal point, rounding up so a dimension never loses
// the sliver that would make a placement overlap.
func Float2Dec(value float64, digits int32) decimal.Decimal {
	return decimal.NewFromFloat(value).RoundUp(digits)
}

// Float2Units converts a float to an integer count of 10^-digits units,
// rounding up. Use it to express decimal dimensions on the packer's integer
// coordinate space: pack in units, divide results by 10^digits.
func Float2Units(value float64, digits int32) int {
	return int(Float2Dec(value, digits).Shift(digits).IntPart())
}

// vim: ts=4
