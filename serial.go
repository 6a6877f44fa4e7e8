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
	"github.com/pkg/errors"
)

var _ Driver = &SerialDriver{}

//Pure encoding tables for the serial line parameters.  They carry no state.
var (
	serialDataBits = map[int]uint32{5: 5, 6: 6, 7: 7, 8: 8}

	serialParities = map[string]uint32{
		"none":  ParityNone,
		"even":  ParityEven,
		"odd":   ParityOdd,
		"mark":  ParityMark,
		"space": ParitySpace,
	}

	serialStopBits = map[float64]uint32{1: StopOne, 1.5: StopOneFive, 2: StopTwo}
)

/*SerialDriver drives instruments hanging off serial (ASRL) resources.  Its
line parameters are validated and encoded into the TransportConfig at
construction, before Initialize is ever called.*/
type SerialDriver struct {
	*MessageDriver
}

/*NewSerialDriver builds a serial variant for resource (e.g. "ASRL1::INSTR").
Line parameters outside their allowed sets fail with ErrInvalidConfig.*/
func NewSerialDriver(resource string, opts ...Option) (*SerialDriver, error) {
	md, err := newMessageDriver(KindSerial, resource, opts...)
	if err != nil {
		return nil, err
	}
	if md.attrs, err = encodeSerialConfig(md.cfg); err != nil {
		return nil, err
	}
	sd := &SerialDriver{MessageDriver: md}
	md.recv = sd.RawRecv
	return sd, nil
}

/*encodeSerialConfig turns the caller-facing serial parameters into transport
attribute key/value pairs.  If a receive termination character is configured
and the drain buffer is larger than a single byte, the Session is told to
stop reading automatically at that character; otherwise no automatic read
termination is configured.*/
func encodeSerialConfig(cfg *config) (TransportConfig, error) {
	bits, ok := serialDataBits[cfg.dataBits]
	if !ok {
		return nil, newErr(false, false, errors.Wrapf(ErrInvalidConfig, "data bits %d not one of {5, 6, 7, 8}", cfg.dataBits))
	}
	parity, ok := serialParities[cfg.parity]
	if !ok {
		return nil, newErr(false, false, errors.Wrapf(ErrInvalidConfig, "parity %q not one of {none, even, odd, mark, space}", cfg.parity))
	}
	stop, ok := serialStopBits[cfg.stopBits]
	if !ok {
		return nil, newErr(false, false, errors.Wrapf(ErrInvalidConfig, "stop bits %v not one of {1, 1.5, 2}", cfg.stopBits))
	}

	flow := FlowNone
	if cfg.rtscts {
		flow |= FlowRtsCts
	}
	if cfg.dsrdtr {
		flow |= FlowDtrDsr
	}
	if cfg.xonxoff {
		flow |= FlowXonXoff
	}

	attrs := TransportConfig{
		AttrBaud:        uint32(cfg.baudRate),
		AttrDataBits:    bits,
		AttrParity:      parity,
		AttrStopBits:    stop,
		AttrFlowControl: flow,
	}
	if cfg.recvTerm != 0 && cfg.bufSize > 1 {
		attrs[AttrTermChar] = uint32(cfg.recvTerm)
		attrs[AttrEndIn] = EndInTermChar
	} else {
		attrs[AttrEndIn] = EndInNone
	}
	return attrs, nil
}

/*RawRecv specializes receive for serial lines.  The drain sentinel first
asks the Session how many bytes are currently available: zero returns an
empty result immediately, with no blocking drain loop; anything else is read
in one exact call.  A non-sentinel, non-positive size is treated as a request
for exactly 1 byte.*/
func (sd *SerialDriver) RawRecv(size int) ([]byte, error) {
	if size == RecvAll {
		avail, err := sd.session.GetAttribute(AttrAvailNum)
		if err != nil {
			return nil, newErr(false, false, errors.Wrap(err, "unable to query available byte count"))
		}
		if avail == 0 {
			return nil, nil
		}
		return sd.session.ReadRaw(int(avail))
	}
	if size <= 0 {
		size = 1
	}
	return sd.session.ReadRaw(size)
}
