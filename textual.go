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
)

//ASCII convenience layer over the raw primitives.  Instrument command sets
//are overwhelmingly line oriented text; these helpers apply the configured
//termination characters so callers deal in plain strings.

/*Send writes an ASCII command through the driver, appending the configured
send termination character when the command does not already end with it.*/
func (m *MessageDriver) Send(command string) error {
	if m.cfg.sendTerm != 0 && !strings.HasSuffix(command, string(m.cfg.sendTerm)) {
		command += string(m.cfg.sendTerm)
	}
	return m.RawSend([]byte(command))
}

/*Recv drains whatever the instrument has to say and returns it as a string
with any trailing receive termination character stripped.*/
func (m *MessageDriver) Recv() (string, error) {
	data, err := m.recv(RecvAll)
	if err != nil {
		return string(data), err
	}
	answer := string(data)
	if m.cfg.recvTerm != 0 {
		answer = strings.TrimSuffix(answer, string(m.cfg.recvTerm))
	}
	return answer, nil
}

//Query sends an ASCII command and drains the answer
func (m *MessageDriver) Query(command string) (string, error) {
	if err := m.Send(command); err != nil {
		return "", err
	}
	return m.Recv()
}
