// Package errkind defines the error taxonomy surfaced by the mask engine,
// the smartlist/entropy analyzer and the tokenizer orchestration layer.
//
// Every kind is a concrete type so callers can recover it with errors.As;
// every kind is constructed wrapped with github.com/pkg/errors so a stack
// trace survives to --debug mode.
package errkind

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaskSyntax reports a malformed '?'-sequence in a mask string.
type MaskSyntax struct {
	Mask   string
	Offset int
	Reason string
}

func (e *MaskSyntax) Error() string {
	return fmt.Sprintf("mask syntax error at byte %d of %q: %s", e.Offset, e.Mask, e.Reason)
}

// NewMaskSyntax builds a MaskSyntax error wrapped with a stack trace.
func NewMaskSyntax(mask string, offset int, reason string) error {
	return errors.WithStack(&MaskSyntax{Mask: mask, Offset: offset, Reason: reason})
}

// UnboundSlot reports a ?N / ?wN reference with no matching -c/-w declaration.
type UnboundSlot struct {
	Kind  string // "custom-charset" or "wordlist"
	Index int
}

func (e *UnboundSlot) Error() string {
	return fmt.Sprintf("unbound %s slot ?%d: no value was supplied for this index", e.Kind, e.Index)
}

// NewUnboundSlot builds an UnboundSlot error wrapped with a stack trace.
func NewUnboundSlot(kind string, index int) error {
	return errors.WithStack(&UnboundSlot{Kind: kind, Index: index})
}

// EmptyAlphabet reports a resolved slot with zero candidates.
type EmptyAlphabet struct {
	Kind  string
	Index int
}

func (e *EmptyAlphabet) Error() string {
	return fmt.Sprintf("%s at index %d resolves to an empty alphabet", e.Kind, e.Index)
}

// NewEmptyAlphabet builds an EmptyAlphabet error wrapped with a stack trace.
func NewEmptyAlphabet(kind string, index int) error {
	return errors.WithStack(&EmptyAlphabet{Kind: kind, Index: index})
}

// BoundsOutOfRange reports an invalid minlen/maxlen combination.
type BoundsOutOfRange struct {
	Reason string
}

func (e *BoundsOutOfRange) Error() string {
	return "invalid length bounds: " + e.Reason
}

// NewBoundsOutOfRange builds a BoundsOutOfRange error wrapped with a stack trace.
func NewBoundsOutOfRange(reason string) error {
	return errors.WithStack(&BoundsOutOfRange{Reason: reason})
}

// IOReadFailed wraps an OS error that occurred while reading a path.
type IOReadFailed struct {
	Path string
	Err  error
}

func (e *IOReadFailed) Error() string {
	return fmt.Sprintf("failed to read %q: %s", e.Path, e.Err.Error())
}

func (e *IOReadFailed) Unwrap() error { return e.Err }

// NewIOReadFailed builds an IOReadFailed error wrapped with a stack trace.
func NewIOReadFailed(path string, err error) error {
	return errors.WithStack(&IOReadFailed{Path: path, Err: err})
}

// IOWriteFailed wraps an OS error that occurred while writing a path.
type IOWriteFailed struct {
	Path string
	Err  error
}

func (e *IOWriteFailed) Error() string {
	return fmt.Sprintf("failed to write %q: %s", e.Path, e.Err.Error())
}

func (e *IOWriteFailed) Unwrap() error { return e.Err }

// NewIOWriteFailed builds an IOWriteFailed error wrapped with a stack trace.
func NewIOWriteFailed(path string, err error) error {
	return errors.WithStack(&IOWriteFailed{Path: path, Err: err})
}

// TokenizerFailed wraps a failure surfaced by an external tokenizer trainer.
type TokenizerFailed struct {
	Algorithm string
	RunID     string
	Err       error
}

func (e *TokenizerFailed) Error() string {
	return fmt.Sprintf("tokenizer %q failed (run %s): %s", e.Algorithm, e.RunID, e.Err.Error())
}

func (e *TokenizerFailed) Unwrap() error { return e.Err }

// NewTokenizerFailed builds a TokenizerFailed error wrapped with a stack trace.
func NewTokenizerFailed(algorithm, runID string, err error) error {
	return errors.WithStack(&TokenizerFailed{Algorithm: algorithm, RunID: runID, Err: err})
}

// IsUserError reports whether err represents a user-input mistake (exit code 1)
// as opposed to an I/O failure during emission (exit code 2).
func IsUserError(err error) bool {
	var (
		maskSyntax  *MaskSyntax
		unbound     *UnboundSlot
		empty       *EmptyAlphabet
		bounds      *BoundsOutOfRange
		ioRead      *IOReadFailed
		tokenFailed *TokenizerFailed
	)

	switch {
	case errors.As(err, &maskSyntax):
		return true
	case errors.As(err, &unbound):
		return true
	case errors.As(err, &empty):
		return true
	case errors.As(err, &bounds):
		return true
	case errors.As(err, &ioRead):
		return true
	case errors.As(err, &tokenFailed):
		return true
	default:
		return false
	}
}
