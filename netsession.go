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
	"bytes"
	"io"
	"net"
	"time"

	"github.com/pkg/errors"
)

var _ Session = &netSession{}

/*netSession is a Session over an outgoing socket.  Raw reads run under a
deadline; an expired deadline yields whatever arrived so far as a short read
with a nil error.*/
type netSession struct {
	address  string
	timeout  time.Duration
	conn     net.Conn
	attrs    map[Attr]uint32
	termChar byte
	termSet  bool
}

func openNetSession(address string, timeout time.Duration) (*netSession, error) {
	dialer := net.Dialer{Timeout: timeout, KeepAlive: 1 * time.Second}
	conn, err := dialer.Dial("tcp", address)
	if err != nil {
		return nil, newErr(false, false, errors.Wrapf(err, "unable to connect to %q", address))
	}
	return &netSession{
		address: address,
		timeout: timeout,
		conn:    conn,
		attrs:   map[Attr]uint32{},
	}, nil
}

//Live reports whether the socket is still usable
func (ns *netSession) Live() bool { return ns.conn != nil }

//WriteRaw pushes raw bytes down the socket under a write deadline
func (ns *netSession) WriteRaw(b []byte) (int, error) {
	if ns.conn == nil {
		return 0, newErr(false, false, errors.New("broken connection"))
	}
	ns.conn.SetWriteDeadline(time.Now().Add(ns.timeout))
	n, err := ns.conn.Write(b)
	if err != nil {
		return n, newErr(false, false, errors.Wrapf(err, "write to %q failed", ns.address))
	}
	return n, nil
}

/*ReadRaw reads up to max bytes, accumulating socket reads until the buffer
is full, the read termination character arrives (when configured), or the
deadline expires.  Deadline expiry is not an error: the bytes gathered so far
come back as a short result.*/
func (ns *netSession) ReadRaw(max int) ([]byte, error) {
	if ns.conn == nil {
		return nil, newErr(false, false, errors.New("broken connection"))
	}
	buf := make([]byte, max)
	total := 0
	ns.conn.SetReadDeadline(time.Now().Add(ns.timeout))
	for total < max {
		n, err := ns.conn.Read(buf[total:])
		total += n
		if err != nil {
			if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
				return buf[:total], nil
			}
			if err == io.EOF && total > 0 {
				return buf[:total], nil
			}
			return buf[:total], newErr(false, false, errors.Wrapf(err, "read from %q failed", ns.address))
		}
		if ns.termSet && bytes.IndexByte(buf[total-n:total], ns.termChar) >= 0 {
			return buf[:total], nil
		}
	}
	return buf[:total], nil
}

//GetAttribute reads back a previously set attribute; sockets expose nothing else
func (ns *netSession) GetAttribute(key Attr) (uint32, error) {
	if v, ok := ns.attrs[key]; ok {
		return v, nil
	}
	return 0, newErr(false, false, errors.Errorf("attribute %#x not available on socket session", uint32(key)))
}

/*SetAttribute records the attribute.  Read termination takes effect on
subsequent ReadRaw calls; serial line attributes are meaningless on a socket
and are stored without further effect.*/
func (ns *netSession) SetAttribute(key Attr, value uint32) error {
	ns.attrs[key] = value
	switch key {
	case AttrTermChar:
		ns.termChar = byte(value)
	case AttrEndIn:
		ns.termSet = value == EndInTermChar
	}
	return nil
}

//ReadStatusByte is a GPIB side channel; a raw socket has none
func (ns *netSession) ReadStatusByte() (byte, error) {
	return 0, newErr(false, false, errors.Wrap(ErrUnsupportedTransport, "status byte over socket"))
}

//AssertTrigger is not available on a raw socket session
func (ns *netSession) AssertTrigger() error {
	return newErr(false, false, errors.Wrap(ErrUnsupportedTransport, "trigger over socket"))
}

//Close conforms to io.Closer; the session is dead afterwards
func (ns *netSession) Close() error {
	defer func() { ns.conn = nil }()
	if ns.conn != nil {
		return ns.conn.Close()
	}
	return nil
}
