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
	"time"

	"github.com/NCAR/visaio/logger"
)

//Driver defaults, overridable per variant and per caller
const (
	DefaultBaudRate   = 9600
	DefaultDataBits   = 8
	DefaultParity     = "none"
	DefaultStopBits   = 1.0
	DefaultRecvTerm   = '\n'
	DefaultSendTerm   = '\n'
	DefaultBufferSize = 1 << 8
	DefaultTimeout    = 1 * time.Second
)

/*RecvAll is the drain-mode sentinel for RawRecv: read repeatedly until the
Session signals, via a short read, that no more data is available now.*/
const RecvAll = -1

/*TransportConfig is the set of transport attribute key/value pairs a driver
applies to its Session during Initialize, before any I/O.  It is built once
at construction by merging variant defaults with caller overrides; the
entries are independent and applied in unspecified order.*/
type TransportConfig map[Attr]uint32

/*config is the effective, immutable driver configuration.  Values are merged
once at construction; there is no shared mutable default state between
driver instances.*/
type config struct {
	provider Provider
	log      logger.Logger
	timeout  time.Duration

	//serial line parameters, encoded into a TransportConfig by the serial variant
	baudRate int
	dataBits int
	parity   string
	stopBits float64
	rtscts   bool
	dsrdtr   bool
	xonxoff  bool

	//termination and receive tuning
	recvTerm      byte //0 disables automatic read termination
	sendTerm      byte
	bufSize       int
	maxDrainReads int //0 means unbounded, relying on a short read to stop
}

func defaultConfig() *config {
	return &config{
		log:      logger.GetLogger(),
		timeout:  DefaultTimeout,
		baudRate: DefaultBaudRate,
		dataBits: DefaultDataBits,
		parity:   DefaultParity,
		stopBits: DefaultStopBits,
		recvTerm: DefaultRecvTerm,
		sendTerm: DefaultSendTerm,
		bufSize:  DefaultBufferSize,
	}
}

//Option overrides one configuration value at driver construction
type Option func(*config)

//WithProvider sets the transport provider used to resolve and open the resource
func WithProvider(p Provider) Option { return func(c *config) { c.provider = p } }

//WithLogger sets the logger the driver emits diagnostics through
func WithLogger(l logger.Logger) Option { return func(c *config) { c.log = l } }

//WithTimeout sets the connect/read timeout handed to the native provider
func WithTimeout(d time.Duration) Option { return func(c *config) { c.timeout = d } }

//WithBaudRate sets the serial baud rate
func WithBaudRate(baud int) Option { return func(c *config) { c.baudRate = baud } }

//WithDataBits sets the serial data bits; must be one of 5, 6, 7, 8
func WithDataBits(bits int) Option { return func(c *config) { c.dataBits = bits } }

//WithParity sets the serial parity; one of "none", "even", "odd", "mark", "space"
func WithParity(parity string) Option { return func(c *config) { c.parity = parity } }

//WithStopBits sets the serial stop bits; one of 1, 1.5, 2
func WithStopBits(bits float64) Option { return func(c *config) { c.stopBits = bits } }

//WithRTSCTS toggles RTS/CTS hardware flow control
func WithRTSCTS(on bool) Option { return func(c *config) { c.rtscts = on } }

//WithDSRDTR toggles DSR/DTR hardware flow control
func WithDSRDTR(on bool) Option { return func(c *config) { c.dsrdtr = on } }

//WithXonXoff toggles XON/XOFF software flow control
func WithXonXoff(on bool) Option { return func(c *config) { c.xonxoff = on } }

//WithRecvTermination sets the receive termination character; 0 disables it
func WithRecvTermination(term byte) Option { return func(c *config) { c.recvTerm = term } }

//WithSendTermination sets the send termination character appended by Send
func WithSendTermination(term byte) Option { return func(c *config) { c.sendTerm = term } }

//WithBufferSize sets the drain-mode read buffer size
func WithBufferSize(size int) Option { return func(c *config) { c.bufSize = size } }

/*WithMaxDrainReads bounds the drain-mode receive loop.  The loop normally
terminates when the Session produces a short read, via timeout or terminator;
an instrument that keeps every buffer full would otherwise spin forever.  A
limit of n converts that hang into ErrDrainIncomplete after n reads.  Zero
keeps the loop unbounded.*/
func WithMaxDrainReads(n int) Option { return func(c *config) { c.maxDrainReads = n } }
