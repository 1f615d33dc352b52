package convert

import (
	"errors"
	"fmt"

	"github.com/npillmayer/hexpress/core"
	"github.com/npillmayer/hexpress/input/kramdown"
)

// ErrUnsupportedNodeType is the sentinel matched by errors.Is for every
// UnsupportedNodeTypeError.
var ErrUnsupportedNodeType = errors.New("unsupported node type")

// ErrNilElement is returned when a nil element is handed to the converter.
var ErrNilElement = errors.New("element is nil")

// UnsupportedNodeTypeError is returned for elements whose type has no rule
// in the dispatch table.
type UnsupportedNodeTypeError struct {
	Type kramdown.Type
}

func (e *UnsupportedNodeTypeError) Error() string {
	return fmt.Sprintf("unsupported node type: %q", string(e.Type))
}

// Is makes errors.Is(err, ErrUnsupportedNodeType) succeed.
func (e *UnsupportedNodeTypeError) Is(target error) bool {
	return target == ErrUnsupportedNodeType
}

// ErrorCode is part of interface core.AppError.
func (e *UnsupportedNodeTypeError) ErrorCode() int {
	return core.EUNSUPPORTED
}

// UserMessage is part of interface core.AppError.
func (e *UnsupportedNodeTypeError) UserMessage() string {
	return fmt.Sprintf("no conversion rule for element type %q", string(e.Type))
}

var _ core.AppError = &UnsupportedNodeTypeError{}
