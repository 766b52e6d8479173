package measure

import "errors"

var (
	ErrInvalidOperand       = errors.New("invalid operand")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrUnparsableUnitString = errors.New("unparsable unit string")
	ErrUnknownUnitSymbol    = errors.New("unknown unit symbol")
	ErrInvalidUnitFormat    = errors.New("invalid unit format")
	ErrExternalParseFailure = errors.New("length parse failure")
)
