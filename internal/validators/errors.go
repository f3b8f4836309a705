package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidInput wraps every failed struct rule. The message lists the
	// offending fields in request order.
	ErrInvalidInput = errors.New("invalid input data")
)
