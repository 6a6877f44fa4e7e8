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

var _ Driver = &TCPDriver{}

/*TCPDriver drives instruments on raw socket (TCPIP) resources.  It exists as
a named variant for dispatch; base driver semantics apply unchanged.*/
type TCPDriver struct {
	*MessageDriver
}

//NewTCPDriver builds a TCP variant for resource (e.g. "TCPIP0::10.0.0.5::5025::SOCKET")
func NewTCPDriver(resource string, opts ...Option) (*TCPDriver, error) {
	md, err := newMessageDriver(KindTCP, resource, opts...)
	if err != nil {
		return nil, err
	}
	return &TCPDriver{MessageDriver: md}, nil
}
