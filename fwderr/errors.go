package fwderr

import (
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
	"strings"
	"text/scanner"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	NotAlike
	NotConstructible
	NestedForwarder
	Parse
)

// Error is a coded boundary error: every rejection this module can produce
// carries one of the ErrCode values above.
type Error interface {
	error
	Code() ErrCode

	withStack([]byte) Error
	getStack() []byte
}

func FormatWithCode(e Error) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E Error](err E) Error {
	return err.withStack(debug.Stack())
}

// CodeOf extracts the code from err, unwrapping as needed; None when err
// carries no code.
func CodeOf(err error) ErrCode {
	var e Error
	if errors.As(err, &e) {
		return e.Code()
	}
	return None
}

// NewNotAlike rejects a construction whose source type is not alike the
// declared type. From and To are rendered type descriptions.
type NewNotAlike struct {
	From  string
	To    string
	stack []byte
}

func (e NewNotAlike) Error() string {
	return fmt.Sprintf("cannot forward '%v' as '%v': types are not alike", e.From, e.To)
}
func (e NewNotAlike) Code() ErrCode    { return NotAlike }
func (e NewNotAlike) getStack() []byte { return e.stack }
func (e NewNotAlike) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewNotConstructible rejects a construction where the equivalence gate
// accepts the pair but the target cannot actually be built from the source.
type NewNotConstructible struct {
	From  reflect.Type
	To    reflect.Type
	stack []byte
}

func (e NewNotConstructible) Error() string {
	return fmt.Sprintf("'%v' is not constructible from a value of '%v'", e.To, e.From)
}
func (e NewNotConstructible) Code() ErrCode    { return NotConstructible }
func (e NewNotConstructible) getStack() []byte { return e.stack }
func (e NewNotConstructible) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewNestedForwarder rejects the shorthand that would wrap a forwarder
// inside another forwarder.
type NewNestedForwarder struct {
	Type  reflect.Type
	stack []byte
}

func (e NewNestedForwarder) Error() string {
	return fmt.Sprintf("'%v' is already a forwarder: construct from it directly instead of wrapping it", e.Type)
}
func (e NewNestedForwarder) Code() ErrCode    { return NestedForwarder }
func (e NewNestedForwarder) getStack() []byte { return e.stack }
func (e NewNestedForwarder) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewParse reports a malformed type notation.
type NewParse struct {
	Pos     scanner.Position
	Message string
	Hint    string
	stack   []byte
}

func (e NewParse) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("at %v: %v (%v)", e.Pos, e.Message, e.Hint)
	}
	return fmt.Sprintf("at %v: %v", e.Pos, e.Message)
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) Error {
	e.stack = stack
	return e
}
