package visaio

/*
MIT License

Copyright (c) 2015-2018 University Corporation for Atmospheric Research

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

import (
	"errors"
	"fmt"
)

var (
	/*ErrUnknownResource is returned by Create when the canonical resource
	address does not start with any known transport prefix.  This is a fatal
	configuration error and is never silently defaulted.*/
	ErrUnknownResource = errors.New("unknown resource kind")

	/*ErrInvalidConfig is returned when a serial line parameter (data bits,
	parity, stop bits) is outside its allowed set.  Fatal at construction.*/
	ErrInvalidConfig = errors.New("invalid transport configuration")

	/*ErrDrainIncomplete is returned by drain-mode RawRecv when the configured
	maximum read count is reached before the Session produced a short read.*/
	ErrDrainIncomplete = errors.New("drain receive incomplete: no short read within the read limit")

	/*ErrCountReached is the benign Session status raised when a read completed
	exactly at the requested byte count.  It is an expected outcome of reading
	fixed small counts, not a fault, and carries the read data alongside.*/
	ErrCountReached = errors.New("read terminated at requested count")

	/*ErrUnsupportedTransport is returned by SystemProvider for resource kinds
	it has no native backend for (GPIB, USB).*/
	ErrUnsupportedTransport = errors.New("no native backend for this transport")

	//ErrBytesArgs means a Command prototype was rendered with missing/extra/wrong arguments
	ErrBytesArgs = errors.New("mismatched Prototype and arguments")

	//ErrBytesFormat means a rendered Command did not match its CommandRegexp
	ErrBytesFormat = errors.New("rendered command does not match CommandRegexp")
)

/*BlockHeaderError is returned by ReadBlock when the byte read where the '#'
header was expected holds anything else.  The offending byte is carried so the
caller can decide whether to retry the whole exchange.*/
type BlockHeaderError struct {
	Got byte
}

//Error implements the error interface
func (b *BlockHeaderError) Error() string {
	return fmt.Sprintf("unexpected block header: %d", b.Got)
}

/*Error is the package-wide error wrapper.  It conforms to net.Error so
callers can sort timeouts and temporary conditions from hard failures without
caring what the underlying transport was.*/
type Error struct {
	timeout, temporary bool
	err                error
}

/*newErr wraps err, marking it as a timeout and/or temporary condition*/
func newErr(timeout, temporary bool, err error) *Error {
	return &Error{timeout: timeout, temporary: temporary, err: err}
}

//Error implements the error interface
func (e *Error) Error() string { return e.err.Error() }

//Timeout conforms to net.Error
func (e *Error) Timeout() bool { return e.timeout }

//Temporary conforms to net.Error
func (e *Error) Temporary() bool { return e.temporary }

//Unwrap exposes the wrapped error to errors.Is / errors.As
func (e *Error) Unwrap() error { return e.err }

/*IsTimeout returns true if the passed error is a timeout condition.  Panics
if handed a nil error: asking whether nothing timed out is a caller bug.*/
func IsTimeout(err error) bool {
	if err == nil {
		panic("IsTimeout called with a nil error")
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Timeout()
	}
	return false
}

/*IsTemporary returns true if the passed error is a temporary condition.
Panics if handed a nil error.*/
func IsTemporary(err error) bool {
	if err == nil {
		panic("IsTemporary called with a nil error")
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Temporary()
	}
	return false
}
