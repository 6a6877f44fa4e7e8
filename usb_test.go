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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUSBRawRecvSingleByte(t *testing.T) {
	ud, err := NewUSBDriver("USB0::0x1234::0x5678::SN001::INSTR")
	require.NoError(t, err)
	ms := NewMockSession()
	ud.session = ms

	//whatever size is requested, exactly one 1-byte read happens underneath
	for i, size := range []int{100, 1, 0, RecvAll} {
		ms.On("ReadRaw", 1).Return([]byte{byte(i)}, nil).Once()
		data, rerr := ud.RawRecv(size)
		require.NoError(t, rerr)
		require.Equal(t, []byte{byte(i)}, data)
	}
	ms.AssertNumberOfCalls(t, "ReadRaw", 4)
	ms.AssertExpectations(t)
}
