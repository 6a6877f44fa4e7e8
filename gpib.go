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

var _ Driver = &GPIBDriver{}

/*GPIBDriver drives instruments on GPIB resources.  Identical to the base
driver except for the status byte side channel.*/
type GPIBDriver struct {
	*MessageDriver
}

//NewGPIBDriver builds a GPIB variant for resource (e.g. "GPIB0::12::INSTR")
func NewGPIBDriver(resource string, opts ...Option) (*GPIBDriver, error) {
	md, err := newMessageDriver(KindGPIB, resource, opts...)
	if err != nil {
		return nil, err
	}
	return &GPIBDriver{MessageDriver: md}, nil
}

/*ReadStatus reads and returns the instrument status byte through the
Session's dedicated serial-poll operation.  It is a side channel and does not
consume the main data stream.*/
func (gd *GPIBDriver) ReadStatus() (byte, error) {
	stb, err := gd.session.ReadStatusByte()
	if err != nil {
		return 0, newErr(false, false, errors.Wrap(err, "status byte read failed"))
	}
	return stb, nil
}
