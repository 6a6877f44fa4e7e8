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

func TestSerialInvalidConfig(t *testing.T) {
	cases := map[string]Option{
		"data bits 9":  WithDataBits(9),
		"data bits 0":  WithDataBits(0),
		"parity foo":   WithParity("foo"),
		"stop bits 3":  WithStopBits(3),
		"stop bits .5": WithStopBits(0.5),
	}
	for name, opt := range cases {
		_, err := NewSerialDriver("ASRL1::INSTR", opt)
		require.ErrorIs(t, err, ErrInvalidConfig, "case %q must fail at construction", name)
	}
}

func TestSerialConfigEncoding(t *testing.T) {
	sd, err := NewSerialDriver("ASRL/dev/ttyUSB0::INSTR",
		WithBaudRate(115200),
		WithDataBits(7),
		WithParity("even"),
		WithStopBits(2),
		WithRTSCTS(true),
		WithXonXoff(true),
	)
	require.NoError(t, err)

	require.Equal(t, TransportConfig{
		AttrBaud:        115200,
		AttrDataBits:    7,
		AttrParity:      ParityEven,
		AttrStopBits:    StopTwo,
		AttrFlowControl: FlowRtsCts | FlowXonXoff,
		AttrTermChar:    uint32('\n'),
		AttrEndIn:       EndInTermChar,
	}, sd.attrs)
}

func TestSerialConfigDefaults(t *testing.T) {
	sd, err := NewSerialDriver("ASRL1::INSTR")
	require.NoError(t, err)

	require.Equal(t, uint32(9600), sd.attrs[AttrBaud])
	require.Equal(t, uint32(8), sd.attrs[AttrDataBits])
	require.Equal(t, ParityNone, sd.attrs[AttrParity])
	require.Equal(t, StopOne, sd.attrs[AttrStopBits])
	require.Equal(t, FlowNone, sd.attrs[AttrFlowControl])
	require.Equal(t, EndInTermChar, sd.attrs[AttrEndIn])
}

func TestSerialConfigNoTermination(t *testing.T) {
	//no receive terminator: no automatic read termination
	sd, err := NewSerialDriver("ASRL1::INSTR", WithRecvTermination(0))
	require.NoError(t, err)
	require.Equal(t, EndInNone, sd.attrs[AttrEndIn])
	_, ok := sd.attrs[AttrTermChar]
	require.False(t, ok)

	//single byte drain buffers likewise disable automatic termination
	sd, err = NewSerialDriver("ASRL1::INSTR", WithBufferSize(1))
	require.NoError(t, err)
	require.Equal(t, EndInNone, sd.attrs[AttrEndIn])
}

func TestSerialRawRecvDrainSentinel(t *testing.T) {
	sd, err := NewSerialDriver("ASRL1::INSTR")
	require.NoError(t, err)
	ms := NewMockSession()
	sd.session = ms

	//nothing waiting: come back empty immediately, no blocking drain loop
	ms.On("GetAttribute", AttrAvailNum).Return(uint32(0), nil).Once()
	data, rerr := sd.RawRecv(RecvAll)
	require.NoError(t, rerr)
	require.Empty(t, data)
	ms.AssertNotCalled(t, "ReadRaw", DefaultBufferSize)

	//seven bytes waiting: read exactly that many in one call
	ms.On("GetAttribute", AttrAvailNum).Return(uint32(7), nil).Once()
	ms.On("ReadRaw", 7).Return([]byte("waiting"), nil).Once()
	data, rerr = sd.RawRecv(RecvAll)
	require.NoError(t, rerr)
	require.Equal(t, []byte("waiting"), data)
	ms.AssertExpectations(t)
}

func TestSerialRawRecvZeroMeansOneByte(t *testing.T) {
	sd, err := NewSerialDriver("ASRL1::INSTR")
	require.NoError(t, err)
	ms := NewMockSession()
	sd.session = ms

	ms.On("ReadRaw", 1).Return([]byte{'z'}, nil).Once()
	data, rerr := sd.RawRecv(0)
	require.NoError(t, rerr)
	require.Equal(t, []byte{'z'}, data)
	ms.AssertExpectations(t)
}
