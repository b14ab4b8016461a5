package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iw2rmb/treelist/tree"
)

// ErrorKind classifies failed operations.
type ErrorKind uint8

const (
	KindNotFound ErrorKind = iota + 1
	KindCycleDetected
	KindInvalidOperation
	KindStructuralInconsistency
)

var (
	ErrNotFound                = errors.New("node not found")
	ErrCycleDetected           = errors.New("cycle detected")
	ErrInvalidOperation        = errors.New("invalid operation")
	ErrStructuralInconsistency = errors.New("structural inconsistency")
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindCycleDetected:
		return "cycle_detected"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindStructuralInconsistency:
		return "structural_inconsistency"
	default:
		return "unknown"
	}
}

// Error is the structured failure returned by State operations and Flatten.
//
// It unwraps to one of the Err* sentinels, so callers can use errors.Is.
type Error struct {
	Kind   ErrorKind
	Op     string
	ID     tree.NodeID
	Reason string
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Op != "" {
		sb.WriteString(e.Op)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Unwrap().Error())
	if e.ID != "" {
		fmt.Fprintf(&sb, " %q", string(e.ID))
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindNotFound:
		return ErrNotFound
	case KindCycleDetected:
		return ErrCycleDetected
	case KindInvalidOperation:
		return ErrInvalidOperation
	default:
		return ErrStructuralInconsistency
	}
}

// KindOf returns the kind of a view error, or 0 for nil and foreign errors.
func KindOf(err error) ErrorKind {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return 0
}

func notFound(op string, id tree.NodeID) error {
	return &Error{Kind: KindNotFound, Op: op, ID: id}
}

func cycleDetected(op string, id tree.NodeID, reason string) error {
	return &Error{Kind: KindCycleDetected, Op: op, ID: id, Reason: reason}
}

func invalidOperation(op string, id tree.NodeID, reason string) error {
	return &Error{Kind: KindInvalidOperation, Op: op, ID: id, Reason: reason}
}

func structural(id tree.NodeID, reason string) error {
	return &Error{Kind: KindStructuralInconsistency, Op: "flatten", ID: id, Reason: reason}
}
