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
	"testing"
)

func TestCreate(t *testing.T) {
	cases := map[string]Kind{
		"GPIB0::12::INSTR":                   KindGPIB,
		"gpib0::5::instr":                    KindGPIB,
		"ASRL1::INSTR":                       KindSerial,
		"asrl/dev/ttyUSB0":                   KindSerial,
		"TCPIP0::localhost::5025::SOCKET":    KindTCP,
		"USB0::0x1234::0x5678::SN001::INSTR": KindUSB,
	}
	for resource, want := range cases {
		drv, err := Create(resource)
		if err != nil {
			t.Errorf("Create(%q) should not error: %v", resource, err)
			continue
		}
		if drv.Kind() != want {
			t.Errorf("Create(%q) built a %v driver, wanted %v", resource, drv.Kind(), want)
		}
		if drv.IsOpen() {
			t.Errorf("Create(%q) should come back Closed", resource)
		}
		_ = drv.String()
	}
}

func TestCreateVariantTypes(t *testing.T) {
	if d, _ := Create("GPIB0::12::INSTR"); d != nil {
		if _, ok := d.(*GPIBDriver); !ok {
			t.Errorf("wanted *GPIBDriver, got %T", d)
		}
	}
	if d, _ := Create("ASRL1::INSTR"); d != nil {
		if _, ok := d.(*SerialDriver); !ok {
			t.Errorf("wanted *SerialDriver, got %T", d)
		}
	}
	if d, _ := Create("TCPIP0::localhost::5025::SOCKET"); d != nil {
		if _, ok := d.(*TCPDriver); !ok {
			t.Errorf("wanted *TCPDriver, got %T", d)
		}
	}
	if d, _ := Create("USB0::0x1234::0x5678::SN001::INSTR"); d != nil {
		if _, ok := d.(*USBDriver); !ok {
			t.Errorf("wanted *USBDriver, got %T", d)
		}
	}
}

func TestCreateUnknownResource(t *testing.T) {
	for _, resource := range []string{"XYZZY::42", "PXI0::1::INSTR", "no-can-do"} {
		if _, err := Create(resource); !errors.Is(err, ErrUnknownResource) {
			t.Errorf("Create(%q) should fail with ErrUnknownResource, got %v", resource, err)
		}
	}
	if _, err := Create("   "); err == nil {
		t.Error("an empty resource address should always error")
	}
}

func TestKindString(t *testing.T) {
	for kind, want := range map[Kind]string{KindGPIB: "GPIB", KindSerial: "serial", KindTCP: "TCP", KindUSB: "USB", Kind(99): "unknown"} {
		if kind.String() != want {
			t.Errorf("Kind(%d).String() = %q, wanted %q", kind, kind.String(), want)
		}
	}
}
