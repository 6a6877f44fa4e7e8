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

/*Attr is a transport attribute key.  The numbering and the value encodings
below follow the VISA specification so an external Provider bridging to a
vendor VISA library can pass them straight through.*/
type Attr uint32

//Transport attribute keys
const (
	AttrBaud        Attr = 0x3FFF0021 //serial baud rate
	AttrDataBits    Attr = 0x3FFF0022 //serial data bits per frame
	AttrParity      Attr = 0x3FFF0023 //serial parity mode
	AttrStopBits    Attr = 0x3FFF0024 //serial stop bits
	AttrFlowControl Attr = 0x3FFF0025 //serial flow control mask
	AttrAvailNum    Attr = 0x3FFF002C //bytes currently available to read
	AttrEndIn       Attr = 0x3FFF00B3 //read termination method
	AttrTermChar    Attr = 0x3FFF0018 //read termination character
)

//AttrParity values
const (
	ParityNone uint32 = iota
	ParityOdd
	ParityEven
	ParityMark
	ParitySpace
)

//AttrStopBits values, in tenths of a stop bit
const (
	StopOne     uint32 = 10
	StopOneFive uint32 = 15
	StopTwo     uint32 = 20
)

//AttrFlowControl values, OR-able
const (
	FlowNone    uint32 = 0
	FlowXonXoff uint32 = 1
	FlowRtsCts  uint32 = 2
	FlowDtrDsr  uint32 = 4
)

//AttrEndIn values
const (
	EndInNone     uint32 = 0
	EndInTermChar uint32 = 2
)

/*Session is an open communication handle bound to one resource address for
its lifetime.  It is the capability contract this package requires from a
transport provider; the package never implements instrument semantics on top
of it, only byte plumbing.

A Session is exclusively owned by exactly one driver instance while open and
must not be shared across goroutines without external locking.

ReadRaw may return fewer bytes than requested: that is how a Session reports
a timeout or a transport-level terminator, and callers must treat it as "no
more data right now", never as an error.  A read that stops because exactly
max bytes arrived may return the data together with ErrCountReached.*/
type Session interface {
	//Live reports whether the underlying handle is still usable
	Live() bool

	//WriteRaw pushes raw bytes at the instrument
	WriteRaw(b []byte) (int, error)

	//ReadRaw reads up to max bytes; short results signal timeout/terminator
	ReadRaw(max int) ([]byte, error)

	//GetAttribute reads a transport attribute
	GetAttribute(key Attr) (uint32, error)

	//SetAttribute sets a transport attribute
	SetAttribute(key Attr, value uint32) error

	//ReadStatusByte reads the instrument status byte over the side channel (GPIB)
	ReadStatusByte() (byte, error)

	//AssertTrigger asserts a protocol-level software trigger
	AssertTrigger() error

	//Close releases the handle; the Session is dead afterwards
	Close() error
}

/*Provider opens Sessions from resource address strings.  It is the analog of
a VISA resource manager: CanonicalAddress resolves whatever the caller handed
in (possibly an alias) to the canonical form whose prefix names the transport
family, and Open hands out a live Session for a canonical address.*/
type Provider interface {
	CanonicalAddress(resource string) (string, error)
	Open(canonical string) (Session, error)
}
