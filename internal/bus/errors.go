package bus

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnmapped       = errors.New("unmapped address")
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
)

// AddressError reports an access outside every mapped region.
type AddressError struct {
	Op   string
	Addr uint16
}

func newAddressError(op string, addr uint16) *AddressError {
	return &AddressError{Op: op, Addr: addr}
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("bus: %s at $%04X: %s", e.Op, e.Addr, ErrUnmapped)
}

func (e *AddressError) Unwrap() error {
	return ErrUnmapped
}

// StackError reports a push on a full stack page or a pop on an empty one.
type StackError struct {
	Err error
	SP  uint8
}

func newStackError(err error, sp uint8) *StackError {
	return &StackError{Err: err, SP: sp}
}

func (e *StackError) Error() string {
	return fmt.Sprintf("bus: %s (SP=$%02X)", e.Err, e.SP)
}

func (e *StackError) Unwrap() error {
	return e.Err
}
