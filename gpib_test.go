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

	"github.com/stretchr/testify/require"
)

func TestGPIBReadStatus(t *testing.T) {
	gd, err := NewGPIBDriver("GPIB0::12::INSTR")
	require.NoError(t, err)
	ms := NewMockSession()
	gd.session = ms

	ms.On("ReadStatusByte").Return(byte(0x42), nil).Once()
	stb, serr := gd.ReadStatus()
	require.NoError(t, serr)
	require.Equal(t, byte(0x42), stb)

	ms.On("ReadStatusByte").Return(byte(0), errors.New("bus stuck")).Once()
	_, serr = gd.ReadStatus()
	require.Error(t, serr)
	ms.AssertExpectations(t)
}
