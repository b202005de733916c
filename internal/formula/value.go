package formula

import (
	"errors"
	"fmt"
)

// Reason classifies why a cell has no numeric value.
type Reason int

const (
	// ReasonParse means the formula text is not a valid expression.
	ReasonParse Reason = iota + 1
	// ReasonUndefined means an operation has no defined result, e.g. division by zero.
	ReasonUndefined
	// ReasonCycle means the cell participates in, or reads from, a reference cycle.
	ReasonCycle
	// ReasonRange means the result overflowed to a non-finite number.
	ReasonRange
)

// Sentinel errors for use with errors.Is.
var (
	ErrParse              = errors.New("parse error")
	ErrUndefinedOperation = errors.New("undefined operation")
	ErrCycle              = errors.New("reference cycle")
	ErrOutOfRange         = errors.New("number out of range")
)

func (r Reason) String() string {
	switch r {
	case ReasonParse:
		return "parse"
	case ReasonUndefined:
		return "undefined"
	case ReasonCycle:
		return "cycle"
	case ReasonRange:
		return "range"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Marker is the display marker for the reason.
func (r Reason) Marker() string {
	switch r {
	case ReasonParse:
		return "#PARSE!"
	case ReasonUndefined:
		return "#DIV/0!"
	case ReasonCycle:
		return "#CYCLE!"
	case ReasonRange:
		return "#NUM!"
	default:
		return "#ERROR!"
	}
}

func (r Reason) sentinel() error {
	switch r {
	case ReasonParse:
		return ErrParse
	case ReasonUndefined:
		return ErrUndefinedOperation
	case ReasonCycle:
		return ErrCycle
	case ReasonRange:
		return ErrOutOfRange
	default:
		return nil
	}
}

// Error is an evaluation failure stored as a cell value.
type Error struct {
	Reason Reason
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Reason.sentinel().Error()
	}
	return fmt.Sprintf("%s: %s", e.Reason.sentinel(), e.Detail)
}

// Unwrap lets errors.Is match the sentinel for the reason.
func (e *Error) Unwrap() error {
	return e.Reason.sentinel()
}

// Value is the result of evaluating a cell: a number, or an error.
type Value struct {
	Number float64
	Err    *Error
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{Number: n}
}

// Fail returns an error value with the given reason.
func Fail(reason Reason, format string, args ...any) Value {
	return Value{Err: &Error{Reason: reason, Detail: fmt.Sprintf(format, args...)}}
}

// Cycle is the value held by every member of a reference cycle.
func Cycle() Value {
	return Value{Err: &Error{Reason: ReasonCycle, Detail: "cell is part of a reference cycle"}}
}

// IsError reports whether the value is an error.
func (v Value) IsError() bool {
	return v.Err != nil
}

// Equal reports whether two values are identical, including error details.
func (v Value) Equal(other Value) bool {
	if v.Err == nil || other.Err == nil {
		return v.Err == nil && other.Err == nil && v.Number == other.Number
	}
	return *v.Err == *other.Err
}
