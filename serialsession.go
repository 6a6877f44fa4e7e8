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
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

var _ Session = &serialSession{}

//Attribute value translation to the serial stack's mode types
var (
	portParities = map[uint32]serial.Parity{
		ParityNone:  serial.NoParity,
		ParityOdd:   serial.OddParity,
		ParityEven:  serial.EvenParity,
		ParityMark:  serial.MarkParity,
		ParitySpace: serial.SpaceParity,
	}

	portStopBits = map[uint32]serial.StopBits{
		StopOne:     serial.OneStopBit,
		StopOneFive: serial.OnePointFiveStopBits,
		StopTwo:     serial.TwoStopBits,
	}
)

/*serialSession is a Session over a host serial port.  Line parameter
attributes reconfigure the port mode as they are set; read termination and
flow control are tracked as attributes.*/
type serialSession struct {
	dev      string
	mode     *serial.Mode
	port     serial.Port
	attrs    map[Attr]uint32
	termChar byte
	termSet  bool
}

func openSerialSession(dev string, timeout time.Duration) (*serialSession, error) {
	mode := &serial.Mode{
		BaudRate: DefaultBaudRate,
		DataBits: DefaultDataBits,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(dev, mode)
	if err != nil {
		return nil, newErr(false, false, errors.Wrapf(err, "unable to open serial device %q", dev))
	}
	if err := port.SetReadTimeout(timeout); err != nil {
		port.Close()
		return nil, newErr(false, false, errors.Wrapf(err, "unable to set read timeout on %q", dev))
	}
	return &serialSession{
		dev:   dev,
		mode:  mode,
		port:  port,
		attrs: map[Attr]uint32{},
	}, nil
}

//Live reports whether the port is still usable
func (ss *serialSession) Live() bool { return ss.port != nil }

//WriteRaw pushes raw bytes out the port
func (ss *serialSession) WriteRaw(b []byte) (int, error) {
	if ss.port == nil {
		return 0, newErr(false, false, errors.New("broken connection"))
	}
	n, err := ss.port.Write(b)
	if err != nil {
		return n, newErr(false, false, errors.Wrapf(err, "write to %q failed", ss.dev))
	}
	return n, nil
}

/*ReadRaw reads up to max bytes.  Port reads accumulate until the buffer is
full, the read timeout elapses (a zero-length port read), or the read
termination character arrives when one is configured.  Short results are
data, not errors.*/
func (ss *serialSession) ReadRaw(max int) ([]byte, error) {
	if ss.port == nil {
		return nil, newErr(false, false, errors.New("broken connection"))
	}
	buf := make([]byte, max)
	total := 0
	for total < max {
		n, err := ss.port.Read(buf[total:])
		total += n
		if err != nil {
			return buf[:total], newErr(false, false, errors.Wrapf(err, "read from %q failed", ss.dev))
		}
		if n == 0 {
			//read timeout
			return buf[:total], nil
		}
		if ss.termSet && bytes.IndexByte(buf[total-n:total], ss.termChar) >= 0 {
			return buf[:total], nil
		}
	}
	return buf[:total], nil
}

/*GetAttribute reads a transport attribute.  The available byte count is
polled live from the port; everything else echoes what was last set.*/
func (ss *serialSession) GetAttribute(key Attr) (uint32, error) {
	if ss.port == nil {
		return 0, newErr(false, false, errors.New("broken connection"))
	}
	if key == AttrAvailNum {
		avail, err := ss.port.ReadyToRead()
		if err != nil {
			return 0, newErr(false, false, errors.Wrapf(err, "unable to poll %q for waiting bytes", ss.dev))
		}
		return avail, nil
	}
	if v, ok := ss.attrs[key]; ok {
		return v, nil
	}
	return 0, newErr(false, false, errors.Errorf("attribute %#x not set on serial session", uint32(key)))
}

/*SetAttribute sets a transport attribute.  Line parameters reconfigure the
port mode immediately; termination attributes shape subsequent reads.  The
flow control mask is recorded but the host serial stack exposes no portable
knob for it.*/
func (ss *serialSession) SetAttribute(key Attr, value uint32) error {
	if ss.port == nil {
		return newErr(false, false, errors.New("broken connection"))
	}
	switch key {
	case AttrBaud:
		ss.mode.BaudRate = int(value)
	case AttrDataBits:
		ss.mode.DataBits = int(value)
	case AttrParity:
		parity, ok := portParities[value]
		if !ok {
			return newErr(false, false, errors.Errorf("parity value %d not encodable", value))
		}
		ss.mode.Parity = parity
	case AttrStopBits:
		stop, ok := portStopBits[value]
		if !ok {
			return newErr(false, false, errors.Errorf("stop bits value %d not encodable", value))
		}
		ss.mode.StopBits = stop
	case AttrTermChar:
		ss.termChar = byte(value)
		ss.attrs[key] = value
		return nil
	case AttrEndIn:
		ss.termSet = value == EndInTermChar
		ss.attrs[key] = value
		return nil
	default:
		ss.attrs[key] = value
		return nil
	}
	ss.attrs[key] = value
	if err := ss.port.SetMode(ss.mode); err != nil {
		return newErr(false, false, errors.Wrapf(err, "unable to reconfigure %q", ss.dev))
	}
	return nil
}

//ReadStatusByte is a GPIB side channel; a serial port has none
func (ss *serialSession) ReadStatusByte() (byte, error) {
	return 0, newErr(false, false, errors.Wrap(ErrUnsupportedTransport, "status byte over serial"))
}

//AssertTrigger is not available on a serial session
func (ss *serialSession) AssertTrigger() error {
	return newErr(false, false, errors.Wrap(ErrUnsupportedTransport, "trigger over serial"))
}

//Close conforms to io.Closer; the session is dead afterwards
func (ss *serialSession) Close() error {
	defer func() { ss.port = nil }()
	if ss.port != nil {
		return ss.port.Close()
	}
	return nil
}
