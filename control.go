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
	"sync"
	"time"

	"github.com/pkg/errors"
)

/*Controller provides a command and control layer over one open Driver.  A
Control exchange needs to read everything the instrument says while checking
for a valid response, so access to the Driver is serialized under a mutex:
there must be exactly one caller talking to the instrument at a time, which
this layer enforces and the Driver itself deliberately does not.*/
type Controller struct {
	mux sync.Mutex
	drv Driver

	//pollEvery sets how often accumulated data is rechecked against the
	//command regexps while waiting for the rest of a response
	pollEvery time.Duration
}

/*NewController wraps an already-initialized Driver.  The Controller does not
own the Driver lifecycle: the caller still pairs Initialize with Finalize.*/
func NewController(d Driver) *Controller {
	return &Controller{drv: d, pollEvery: 1 * time.Millisecond}
}

/*Control renders cmd with args, writes the rendered bytes through the
Driver, and accumulates received data until it matches cmd.Response (success)
or cmd.Error (instrument-reported failure), or cmd.Timeout elapses.  Whatever
was read is returned in the CommandResponse either way.*/
func (c *Controller) Control(cmd Command, args ...interface{}) (rsp CommandResponse) {
	c.mux.Lock()
	defer c.mux.Unlock()
	start := time.Now()
	defer func() { rsp.Duration = time.Since(start) }()

	raw, err := cmd.Bytes(args...)
	if err != nil {
		return CommandResponse{Error: err}
	}

	//toss anything stale the instrument already sent
	if _, err := c.drv.RawRecv(RecvAll); err != nil {
		return CommandResponse{Error: errors.Wrap(err, "unable to flush stale data")}
	}

	if err := c.drv.RawSend(raw); err != nil {
		return CommandResponse{Error: err}
	}

	deadline := time.Now().Add(cmd.Timeout)
	var rcvd []byte
	for {
		data, err := c.drv.RawRecv(RecvAll)
		rcvd = append(rcvd, data...)
		if err != nil {
			return CommandResponse{Bytes: rcvd, Error: err}
		}
		if cmd.Error != nil && cmd.Error.Match(rcvd) {
			return CommandResponse{Bytes: rcvd, Error: errors.New("command received error response")}
		}
		if cmd.Response != nil && cmd.Response.Match(rcvd) {
			return CommandResponse{Bytes: rcvd}
		}
		if time.Now().After(deadline) {
			return CommandResponse{Bytes: rcvd, Error: newErr(true, true, errors.Errorf("command %q timed out before receiving the proper response", cmd.Name))}
		}
		time.Sleep(c.pollEvery)
	}
}
