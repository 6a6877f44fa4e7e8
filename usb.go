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

var _ Driver = &USBDriver{}

/*USBDriver drives instruments on USB resources.  Some USB transport stacks
misbehave on multi-byte reads, so receive always fetches exactly one byte per
call regardless of the requested size; non-positive and absent sizes are
treated identically.*/
type USBDriver struct {
	*MessageDriver
}

//NewUSBDriver builds a USB variant for resource (e.g. "USB0::0x1234::0x5678::SN001::INSTR")
func NewUSBDriver(resource string, opts ...Option) (*USBDriver, error) {
	md, err := newMessageDriver(KindUSB, resource, opts...)
	if err != nil {
		return nil, err
	}
	ud := &USBDriver{MessageDriver: md}
	md.recv = ud.RawRecv
	return ud, nil
}

//RawRecv reads exactly 1 byte per call, whatever size asks for
func (ud *USBDriver) RawRecv(size int) ([]byte, error) {
	return ud.session.ReadRaw(1)
}
