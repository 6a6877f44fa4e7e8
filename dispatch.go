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
	"strings"

	"github.com/pkg/errors"
)

//Kind tags the transport family of a resource address
type Kind int

//Transport variants, in classification order
const (
	KindGPIB Kind = iota
	KindSerial
	KindTCP
	KindUSB
)

//String implements the Stringer interface
func (k Kind) String() string {
	switch k {
	case KindGPIB:
		return "GPIB"
	case KindSerial:
		return "serial"
	case KindTCP:
		return "TCP"
	case KindUSB:
		return "USB"
	}
	return "unknown"
}

/*Create resolves the canonical address for resource, classifies its transport
family by prefix, and constructs the matching driver variant with opts
forwarded unchanged.  The driver comes back in the Closed state; call
Initialize to open it.

Classification tests canonical-address prefixes in fixed order: GPIB, ASRL,
TCPIP, USB.  An address matching none of them fails with ErrUnknownResource;
that is a fatal configuration error and is never silently defaulted.*/
func Create(resource string, opts ...Option) (Driver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.provider == nil {
		cfg.provider = NewSystemProvider(cfg.timeout)
	}
	canonical, err := cfg.provider.CanonicalAddress(resource)
	if err != nil {
		return nil, newErr(false, false, errors.Wrapf(err, "unable to resolve resource %q", resource))
	}
	switch {
	case strings.HasPrefix(canonical, "GPIB"):
		return NewGPIBDriver(resource, opts...)
	case strings.HasPrefix(canonical, "ASRL"):
		return NewSerialDriver(resource, opts...)
	case strings.HasPrefix(canonical, "TCPIP"):
		return NewTCPDriver(resource, opts...)
	case strings.HasPrefix(canonical, "USB"):
		return NewUSBDriver(resource, opts...)
	}
	return nil, newErr(false, false, errors.Wrapf(ErrUnknownResource, "%q", canonical))
}
