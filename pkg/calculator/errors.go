package calculator

import "errors"

var (
	// ErrInvalidArgument is the only error kind the calculator reports
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero is returned by Divide when the divisor is zero
	ErrDivisionByZero = &invalidArgumentError{msg: "Division by zero is not allowed"}

	// ErrUnknownOperation is returned by ParseOperation and Apply for names
	// that are not one of the four operations
	ErrUnknownOperation = &invalidArgumentError{msg: "unknown operation"}
)

// invalidArgumentError carries a fixed message and matches ErrInvalidArgument
type invalidArgumentError struct {
	msg string
}

func (e *invalidArgumentError) Error() string {
	return e.msg
}

func (e *invalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
