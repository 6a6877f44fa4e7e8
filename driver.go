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
	"strconv"

	"github.com/pkg/errors"

	"github.com/NCAR/visaio/logger"
)

/*Driver is the capability interface every transport variant implements:
session lifecycle plus the primitive I/O operations higher level instrument
commands are built on.  All operations block the calling goroutine until the
Session completes or times out; a Driver provides no internal locking and is
meant for a single caller.*/
type Driver interface {
	fmt.Stringer

	//Kind reports which transport variant this driver is
	Kind() Kind

	/*Initialize opens the Session for the resource address and applies the
	transport configuration.  A no-op (logged, not an error) when already open.*/
	Initialize() error

	/*Finalize closes the Session.  The caller must guarantee the Session was
	opened; finalizing an unopened driver is a caller error and is not guarded.*/
	Finalize() error

	//IsOpen is true iff the Session exists and reports a live handle
	IsOpen() bool

	//RawSend writes the raw byte sequence through the Session
	RawSend(data []byte) error

	/*RawRecv receives raw bytes.  A positive size reads up to size bytes; a
	timeout may yield fewer bytes than requested, which is a normal short
	result, not an error.  RecvAll (or any non-positive size in the base
	variant) switches to drain mode: see MessageDriver.RawRecv.*/
	RawRecv(size int) ([]byte, error)

	//ReadBlock reads one IEEE-488.2 length-prefixed binary block
	ReadBlock() ([]byte, error)

	//Trigger asserts a protocol-level software trigger; side effect only
	Trigger() error
}

/*MessageDriver is the transport-agnostic base of every variant.  It owns one
Session exclusively for the span between Initialize and Finalize and never
issues raw I/O while the Session is closed.*/
type MessageDriver struct {
	kind      Kind
	resource  string
	canonical string
	cfg       *config
	attrs     TransportConfig
	session   Session
	log       logger.Logger

	//recv is the variant receive hook; ReadBlock reads through it so
	//variants that specialize RawRecv keep their semantics inside blocks
	recv func(size int) ([]byte, error)
}

/*newMessageDriver merges caller options over defaults, resolves the canonical
resource address through the provider, and returns a driver in the Closed
state.  No I/O other than address resolution happens here.*/
func newMessageDriver(kind Kind, resource string, opts ...Option) (*MessageDriver, error) {
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
	m := &MessageDriver{
		kind:      kind,
		resource:  resource,
		canonical: canonical,
		cfg:       cfg,
		attrs:     TransportConfig{},
		log:       cfg.log.With("resource", canonical),
	}
	m.recv = m.RawRecv
	m.log.Debug("created instrument driver", "kind", kind.String())
	return m, nil
}

/*String conforms to the fmt.Stringer interface*/
func (m *MessageDriver) String() string {
	return fmt.Sprintf("%v driver for %v", m.kind, m.canonical)
}

//Kind reports the transport variant tag
func (m *MessageDriver) Kind() Kind { return m.kind }

/*Initialize opens the Session and applies every TransportConfig entry as a
Session attribute before any I/O.  Entries are independent, so application
order is unspecified.  Calling Initialize on an open driver logs a diagnostic
and changes nothing.*/
func (m *MessageDriver) Initialize() error {
	if m.IsOpen() {
		m.log.Debug("already open")
		return nil
	}
	m.log.Debug("opening")
	session, err := m.cfg.provider.Open(m.canonical)
	if err != nil {
		return newErr(false, false, errors.Wrapf(err, "unable to open %q", m.canonical))
	}
	for key, value := range m.attrs {
		if aerr := session.SetAttribute(key, value); aerr != nil {
			session.Close()
			return newErr(false, false, errors.Wrapf(aerr, "unable to apply attribute %#x on %q", uint32(key), m.canonical))
		}
	}
	m.session = session
	m.log.Debug("session open")
	return nil
}

/*Finalize closes the Session.  Finalizing a driver that was never initialized
is a caller error and is deliberately not guarded; any close failure
propagates as-is.*/
func (m *MessageDriver) Finalize() error {
	m.log.Debug("closing")
	return m.session.Close()
}

//IsOpen is true iff the Session exists and reports a live handle
func (m *MessageDriver) IsOpen() bool {
	return m.session != nil && m.session.Live()
}

/*RawSend writes the raw byte sequence through the Session.  Any underlying
transport failure is re-raised as a generic I/O failure with the original
message preserved.*/
func (m *MessageDriver) RawSend(data []byte) error {
	if _, err := m.session.WriteRaw(data); err != nil {
		return newErr(false, false, errors.Wrap(err, "raw send failed"))
	}
	return nil
}

/*RawRecv receives raw bytes from the Session.

A positive size performs one blocking read of up to size bytes; on a timeout
the Session yields fewer bytes than requested and that short result is
returned as data with a nil error.

Any non-positive size (canonically RecvAll) drains: fixed-size buffers are
read and accumulated in order until one comes back short, which signals a
timeout or a transport-level terminator.  The loop relies on the Session
eventually producing a short read; an instrument that always fills the buffer
spins until the configured WithMaxDrainReads limit, if any, trips
ErrDrainIncomplete.*/
func (m *MessageDriver) RawRecv(size int) ([]byte, error) {
	if size <= 0 {
		return m.drain()
	}
	return m.session.ReadRaw(size)
}

func (m *MessageDriver) drain() ([]byte, error) {
	var out []byte
	for reads := 0; ; reads++ {
		if m.cfg.maxDrainReads > 0 && reads >= m.cfg.maxDrainReads {
			return out, newErr(false, true, errors.Wrapf(ErrDrainIncomplete, "%d reads from %q", reads, m.canonical))
		}
		data, err := m.session.ReadRaw(m.cfg.bufSize)
		out = append(out, data...)
		switch {
		case err == nil || errors.Is(err, ErrCountReached):
			if len(data) < m.cfg.bufSize {
				//timeout or terminator
				return out, nil
			}
		default:
			return out, newErr(false, false, errors.Wrap(err, "drain receive failed"))
		}
	}
}

/*ReadBlock reads one block of data in the IEEE-488.2 '#' format:

  #<D><length><data>
  <D>: number of digits in <length> (one ASCII digit)
  <length>: number of bytes in <data> (D ASCII digits)

Exact byte counts are read at each stage and there is no trailing delimiter.
The header, digit-count, and length reads suppress the benign ErrCountReached
Session status, an expected outcome of reading fixed small counts; the
payload read does not.*/
func (m *MessageDriver) ReadBlock() ([]byte, error) {
	header, err := m.readExact(1)
	if err != nil {
		return nil, err
	}
	if header[0] != '#' {
		return nil, newErr(false, false, &BlockHeaderError{Got: header[0]})
	}

	digit, err := m.readExact(1)
	if err != nil {
		return nil, err
	}
	nlength, err := strconv.Atoi(string(digit))
	if err != nil || nlength < 1 {
		return nil, newErr(false, false, errors.Errorf("malformed block digit count %q", digit))
	}

	field, err := m.readExact(nlength)
	if err != nil {
		return nil, err
	}
	length, err := strconv.Atoi(string(field))
	if err != nil {
		return nil, newErr(false, false, errors.Errorf("malformed block length field %q", field))
	}

	payload, err := m.recv(length)
	if err != nil {
		return payload, newErr(false, false, errors.Wrap(err, "block payload read failed"))
	}
	if len(payload) < length {
		return payload, newErr(true, true, errors.Errorf("short block payload: got %d of %d bytes", len(payload), length))
	}
	return payload, nil
}

/*readExact reads exactly n bytes through the variant receive hook, treating
ErrCountReached as success and a short result as a timeout error.*/
func (m *MessageDriver) readExact(n int) ([]byte, error) {
	data, err := m.recv(n)
	if err != nil && !errors.Is(err, ErrCountReached) {
		return data, newErr(false, false, errors.Wrapf(err, "reading %d bytes", n))
	}
	if len(data) != n {
		return data, newErr(true, true, errors.Errorf("wanted %d bytes, got %d", n, len(data)))
	}
	return data, nil
}

//Trigger asserts a software trigger on the Session using its default trigger protocol
func (m *MessageDriver) Trigger() error {
	if err := m.session.AssertTrigger(); err != nil {
		return newErr(false, false, errors.Wrap(err, "trigger failed"))
	}
	return nil
}
