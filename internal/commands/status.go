package commands

import (
	"errors"

	"treectl/internal/objtree"
	"treectl/pkg/treetypes"
)

// ErrFailed is a plain failure without a message, as returned by "false".
var ErrFailed = errors.New("command failed")

// Exit statuses reported to clients, one per error kind.
const (
	StatusSuccess           = 0
	StatusUnknownError      = 1
	StatusCommandNotFound   = 2
	StatusInvalidArgument   = 3
	StatusSettingNotFound   = 4
	StatusForbidden         = 6
	StatusTooManyArguments  = 7
	StatusNeedMoreArguments = 9
)

// ExitStatus maps an Execute error to the status a client should exit with.
func ExitStatus(err error) int {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrUnknownCommand), errors.Is(err, treetypes.ErrEmptyCommand):
		return StatusCommandNotFound
	case errors.Is(err, treetypes.ErrInvalidArgument), errors.Is(err, treetypes.ErrOutOfRange):
		return StatusInvalidArgument
	case errors.Is(err, objtree.ErrNoSuchAttribute), errors.Is(err, objtree.ErrNoSuchObject):
		return StatusSettingNotFound
	case errors.Is(err, objtree.ErrReadOnly):
		return StatusForbidden
	case errors.Is(err, treetypes.ErrTrailingArguments):
		return StatusTooManyArguments
	case errors.Is(err, treetypes.ErrExhausted):
		return StatusNeedMoreArguments
	default:
		return StatusUnknownError
	}
}
