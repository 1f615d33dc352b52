package option

import (
	"errors"
	"math"
	"strconv"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

// MaybeOption labels the cases of a match.
type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if evaluating one of the other cases produced an error.
type Maybe map[MaybeOption]interface{}

// Of is a type used for matching of optional types.
// It will first try to match concrete values, and in case of no match will
// fall back to the `Some` case.
type Of map[interface{}]interface{}

// Type is a type for optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Expr is the signature of a case expression. It receives the option
// being matched.
type Expr = func(interface{}) (interface{}, error)

// Match will do a standard matching of o against choices.
// Choices are expected to be of type Maybe or Of. Case values may either be
// plain values, which are returned as-is, or of type Expr, which are called
// with o.
//
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
func Match(o Type, choices interface{}) (interface{}, error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

// Match matches o against concrete values first, then against `Some`.
func (of Of) Match(o Type) (interface{}, error) {
	if o.IsNone() {
		return evalCase(of[None], o, ErrCannotMatchUnsetValue, of[Error])
	}
	for k, expr := range of {
		if _, isLabel := k.(MaybeOption); isLabel {
			continue
		}
		if o.Equals(k) {
			return evalCase(expr, o, nil, of[Error])
		}
	}
	return evalCase(of[Some], o, ErrCannotMatchValue, of[Error])
}

// Match matches o against `None` or `Some`.
func (maybe Maybe) Match(o Type) (interface{}, error) {
	if o.IsNone() {
		return evalCase(maybe[None], o, ErrCannotMatchUnsetValue, maybe[Error])
	}
	return evalCase(maybe[Some], o, ErrCannotMatchValue, maybe[Error])
}

// evalCase evaluates a case expression. A missing case results in
// errMissing; an error from the expression is routed to the error case,
// if one is present.
func evalCase(expr interface{}, o Type, errMissing error, onError interface{}) (interface{}, error) {
	if expr == nil {
		if errMissing != nil {
			return nil, errMissing
		}
		return nil, nil
	}
	value, err := eval(expr, o)
	if err != nil && onError != nil {
		tracer().Debugf("option match failed, trying error case: %v", err)
		return eval(onError, o)
	}
	return value, err
}

func eval(expr interface{}, o Type) (interface{}, error) {
	if f, ok := expr.(Expr); ok {
		return f(o)
	}
	return expr, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//	_, err := level.Match(option.Maybe{
//	     option.None: option.Fail(errNoLevel),
//	     option.Some: …,
//	})
func Fail(err error) Expr {
	return func(interface{}) (interface{}, error) {
		return nil, err
	}
}

// Safe wraps a Match's return values and drops the error value.
func Safe(x interface{}, err error) interface{} {
	return x
}

// --- Int64T-----------------------------------------------------------------

// Int64T is an option type for int64.
type Int64T int64

// Int64None is used as an in-band null value for type int64 for optional integers.
const Int64None int64 = math.MaxInt64

// SomeInt64 creates an optional int64 with an initial value of x.
func SomeInt64(x int) Int64T {
	return Int64T(x)
}

// Int64 creates an optional int64 without an initial value.
func Int64() Int64T {
	return Int64T(Int64None)
}

// Int64FromValue creates an optional int64 from a value of unknown type,
// as found in decoded property maps. Values which are not integral numbers
// result in an unset option.
func Int64FromValue(v interface{}) Int64T {
	switch n := v.(type) {
	case Int64T:
		return n
	case int:
		return Int64T(n)
	case int8:
		return Int64T(n)
	case int16:
		return Int64T(n)
	case int32:
		return Int64T(n)
	case int64:
		return Int64T(n)
	case uint8:
		return Int64T(n)
	case uint16:
		return Int64T(n)
	case uint32:
		return Int64T(n)
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < math.MaxInt32 {
			return Int64T(int64(n))
		}
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return Int64T(i)
		}
	}
	return Int64()
}

// Match matches o against choices of type Maybe or Of.
func (o Int64T) Match(choices interface{}) (interface{}, error) {
	return Match(o, choices)
}

// Equals compares o to integral values.
func (o Int64T) Equals(other interface{}) bool {
	if o.IsNone() {
		return false
	}
	switch i := other.(type) {
	case Int64T:
		return o == i
	case int64:
		return int64(o) == i
	case int32:
		return int64(o) == int64(i)
	case int:
		return int64(o) == int64(i)
	}
	return false
}

// Unwrap returns the raw value of o.
func (o Int64T) Unwrap() int64 {
	return int64(o)
}

// IsNone returns true if o is unset.
func (o Int64T) IsNone() bool {
	return o == Int64T(Int64None)
}

func (o Int64T) String() string {
	if o.IsNone() {
		return "Int64.None"
	}
	return strconv.FormatInt(int64(o), 10)
}

var _ Type = Int64T(0)
