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
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var pingCmd = Command{
	Name:      "ping",
	Timeout:   250 * time.Millisecond,
	Prototype: "PING\r",
	Response:  regexp.MustCompile("PONG"),
	Error:     regexp.MustCompile("FAULT"),
}

func TestControlSuccess(t *testing.T) {
	drv, _ := tcpTestDriver(t)
	ms := NewMockSession()
	drv.session = ms
	//flush finds nothing stale
	ms.On("ReadRaw", DefaultBufferSize).Return([]byte(nil), nil).Once()
	ms.On("WriteRaw", []byte("PING\r")).Return(5, nil).Once()
	ms.On("ReadRaw", DefaultBufferSize).Return([]byte("PONG\r"), nil).Once()

	rsp := NewController(drv).Control(pingCmd)
	require.NoError(t, rsp.Error)
	require.Equal(t, []byte("PONG\r"), rsp.Bytes)
	require.NotZero(t, rsp.Duration)
	ms.AssertExpectations(t)
}

func TestControlAccumulates(t *testing.T) {
	drv, _ := tcpTestDriver(t)
	ms := NewMockSession()
	drv.session = ms
	ms.On("ReadRaw", DefaultBufferSize).Return([]byte(nil), nil).Once()
	ms.On("WriteRaw", []byte("PING\r")).Return(5, nil).Once()
	//response dribbles in across several drains
	ms.On("ReadRaw", DefaultBufferSize).Return([]byte("PO"), nil).Once()
	ms.On("ReadRaw", DefaultBufferSize).Return([]byte("NG\r"), nil).Once()

	rsp := NewController(drv).Control(pingCmd)
	require.NoError(t, rsp.Error)
	require.Equal(t, []byte("PONG\r"), rsp.Bytes)
}

func TestControlErrorResponse(t *testing.T) {
	drv, _ := tcpTestDriver(t)
	ms := NewMockSession()
	drv.session = ms
	ms.On("ReadRaw", DefaultBufferSize).Return([]byte(nil), nil).Once()
	ms.On("WriteRaw", []byte("PING\r")).Return(5, nil).Once()
	ms.On("ReadRaw", DefaultBufferSize).Return([]byte("FAULT 12\r"), nil).Once()

	rsp := NewController(drv).Control(pingCmd)
	require.Error(t, rsp.Error)
	require.Equal(t, []byte("FAULT 12\r"), rsp.Bytes, "received bytes come back even on failure")
}

func TestControlTimeout(t *testing.T) {
	drv, _ := tcpTestDriver(t)
	ms := NewMockSession()
	drv.session = ms
	ms.On("ReadRaw", DefaultBufferSize).Return([]byte(nil), nil)
	ms.On("WriteRaw", []byte("PING\r")).Return(5, nil).Once()

	cmd := pingCmd
	cmd.Timeout = 20 * time.Millisecond
	rsp := NewController(drv).Control(cmd)
	require.Error(t, rsp.Error)
	require.True(t, IsTimeout(rsp.Error), "a silent instrument should yield a timeout")
	require.GreaterOrEqual(t, rsp.Duration, cmd.Timeout)
}

func TestControlBadArgs(t *testing.T) {
	drv, _ := tcpTestDriver(t)
	ms := NewMockSession()
	drv.session = ms

	cmd := Command{Name: "set", Timeout: time.Second, Prototype: "SET %d\r"}
	rsp := NewController(drv).Control(cmd)
	require.ErrorIs(t, rsp.Error, ErrBytesArgs)
	//nothing touched the wire
	ms.AssertNumberOfCalls(t, "WriteRaw", 0)
	ms.AssertNumberOfCalls(t, "ReadRaw", 0)
}
