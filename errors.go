package num

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is wrapped by a ParseError when the input string is empty.
	ErrEmpty = errors.New("empty string")

	// ErrLoneSign is wrapped by a ParseError when the input is a sign
	// character with no digits after it.
	ErrLoneSign = errors.New("sign without digits")

	// ErrSyntax is wrapped by a ParseError when the input contains anything
	// other than an optional leading sign followed by decimal digits.
	ErrSyntax = errors.New("invalid syntax")

	// ErrDivisionByZero is the value passed to panic() when a BigInt is
	// divided by zero.
	ErrDivisionByZero = errors.New("num: division by zero")
)

// ParseError records a failed conversion of a decimal string to a BigInt.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("num: bigint string %q invalid: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
