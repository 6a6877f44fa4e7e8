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
	"fmt"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var _ Provider = &SystemProvider{}

//Canonical resource address forms
var (
	gpibRe  = regexp.MustCompile(`^(?i)GPIB(\d*)::(\d+)(::INSTR)?$`)
	asrlRe  = regexp.MustCompile(`^(?i)ASRL([^:]+?)(::INSTR)?$`)
	tcpipRe = regexp.MustCompile(`^(?i)TCPIP(\d*)::([^:]+)::(\d+)(::SOCKET)?$`)
	usbRe   = regexp.MustCompile(`^(?i)USB(\d*)::.+$`)
)

/*SystemProvider is the native transport provider.  It backs ASRL resources
with a host serial port and TCPIP resources with an outgoing socket; GPIB and
USB resources have no native backend here and need an external Provider
bridging to a vendor library.

The configured timeout bounds connection establishment and every raw read;
an expired read deadline surfaces as a short read, never as an error.*/
type SystemProvider struct {
	timeout time.Duration
}

//NewSystemProvider returns a native provider with the given I/O timeout
func NewSystemProvider(timeout time.Duration) *SystemProvider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SystemProvider{timeout: timeout}
}

/*CanonicalAddress normalizes a resource address into its canonical form:
the transport prefix uppercased and the trailing resource class filled in
(e.g. "asrl/dev/ttyUSB0" becomes "ASRL/dev/ttyUSB0::INSTR").  Addresses that
match no known form are passed through untouched so classification can reject
them with ErrUnknownResource.*/
func (p *SystemProvider) CanonicalAddress(resource string) (string, error) {
	addr := strings.TrimSpace(resource)
	if addr == "" {
		return "", newErr(false, false, errors.New("empty resource address"))
	}
	switch {
	case gpibRe.MatchString(addr):
		m := gpibRe.FindStringSubmatch(addr)
		return fmt.Sprintf("GPIB%s::%s::INSTR", m[1], m[2]), nil
	case asrlRe.MatchString(addr):
		m := asrlRe.FindStringSubmatch(addr)
		return fmt.Sprintf("ASRL%s::INSTR", m[1]), nil
	case tcpipRe.MatchString(addr):
		m := tcpipRe.FindStringSubmatch(addr)
		return fmt.Sprintf("TCPIP%s::%s::%s::SOCKET", m[1], m[2], m[3]), nil
	case usbRe.MatchString(addr):
		return "USB" + addr[3:], nil
	}
	return addr, nil
}

/*Open hands out a live Session for a canonical resource address.  The device
segment of an ASRL address is the host serial device name (a path on unixy
systems, COMx on windows).*/
func (p *SystemProvider) Open(canonical string) (Session, error) {
	switch {
	case asrlRe.MatchString(canonical):
		m := asrlRe.FindStringSubmatch(canonical)
		return openSerialSession(m[1], p.timeout)
	case tcpipRe.MatchString(canonical):
		m := tcpipRe.FindStringSubmatch(canonical)
		return openNetSession(net.JoinHostPort(m[2], m[3]), p.timeout)
	case gpibRe.MatchString(canonical), usbRe.MatchString(canonical):
		return nil, newErr(false, false, errors.Wrapf(ErrUnsupportedTransport, "%q", canonical))
	}
	return nil, newErr(false, false, errors.Wrapf(ErrUnknownResource, "%q", canonical))
}
