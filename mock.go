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
	"github.com/stretchr/testify/mock"
)

/*MockSession is a testify-backed Session double for testing code built on
this package without real hardware.*/
type MockSession struct {
	mock.Mock
}

var _ Session = (*MockSession)(nil)

//NewMockSession returns an empty MockSession ready for expectations
func NewMockSession() *MockSession {
	return &MockSession{}
}

func (m *MockSession) Live() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSession) WriteRaw(b []byte) (int, error) {
	args := m.Called(b)
	return args.Int(0), args.Error(1)
}

func (m *MockSession) ReadRaw(max int) ([]byte, error) {
	args := m.Called(max)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockSession) GetAttribute(key Attr) (uint32, error) {
	args := m.Called(key)
	return args.Get(0).(uint32), args.Error(1)
}

func (m *MockSession) SetAttribute(key Attr, value uint32) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockSession) ReadStatusByte() (byte, error) {
	args := m.Called()
	return args.Get(0).(byte), args.Error(1)
}

func (m *MockSession) AssertTrigger() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSession) Close() error {
	args := m.Called()
	return args.Error(0)
}

/*MockProvider is a testify-backed Provider double.  Pair it with MockSession
to exercise drivers for transports with no native backend.*/
type MockProvider struct {
	mock.Mock
}

var _ Provider = (*MockProvider)(nil)

//NewMockProvider returns an empty MockProvider ready for expectations
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) CanonicalAddress(resource string) (string, error) {
	args := m.Called(resource)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) Open(canonical string) (Session, error) {
	args := m.Called(canonical)
	session, _ := args.Get(0).(Session)
	return session, args.Error(1)
}
