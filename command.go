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
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

/*Command is the command half of an instrument command/response exchange:
an ASCII prototype rendered with arguments, shovelled at a Driver, and
answered by bytes matched against the Response or Error regexps.*/
type Command struct {
	/*Name is the human name of the command, typically without arguments.  If
	the Prototype is something cryptic like ":VOLT %f\n", the name should make
	sense to your average human being, like "Set output voltage".*/
	Name string

	/*Timeout is the max time allowed before the exchange is forced to return
	a failed-because-it-took-too-long Response.*/
	Timeout time.Duration

	/*Prototype is fed, with any arguments, through fmt.Sprintf; the rendered
	string becomes the bytes sent down the line.*/
	Prototype string

	/*CommandRegexp, when non-nil, must match the rendered command before it
	is sent.  Together with the "%!" check it guards against too many / too
	few / wrongly typed Prototype arguments.*/
	CommandRegexp *regexp.Regexp

	//Response matches good/positive/affirmative instrument responses
	Response *regexp.Regexp

	//Error matches bad/negative/failure instrument responses
	Error *regexp.Regexp

	//Description briefly explains the command's purpose
	Description string
}

/*sanitize derenders ASCII control sequences to readable equivalents*/
func sanitize(i interface{}) string {
	var str string
	switch s := i.(type) {
	case *regexp.Regexp:
		if s == nil {
			return "-"
		}
		str = s.String()
	case string:
		str = s
	}
	return strings.Replace(strings.Replace(str, "\r", "\\r", -1), "\n", "\\n", -1)
}

//String implements the Stringer interface
func (c Command) String() string {
	return fmt.Sprintf("%s: %v Prototype:%q CommandRegexp:%q Expect:%q Error:%q", c.Name, c.Timeout, sanitize(c.Prototype), sanitize(c.CommandRegexp), sanitize(c.Response), sanitize(c.Error))
}

/*Bytes renders the raw bytes to send by feeding the Prototype and v through
fmt.Sprintf.  A rendered string containing a "%!" sequence is taken to mean
the arguments did not satisfy the Prototype, and ErrBytesArgs is returned.
A non-nil CommandRegexp that does not match the rendered command yields
ErrBytesFormat.  Commands whose legitimate payload embeds "%!" are currently
not representable.*/
func (c Command) Bytes(v ...interface{}) ([]byte, error) {
	str := fmt.Sprintf(c.Prototype, v...)
	if strings.Contains(str, "%!") {
		return []byte(str), ErrBytesArgs
	}
	if c.CommandRegexp != nil && !c.CommandRegexp.MatchString(str) {
		return []byte(str), ErrBytesFormat
	}
	return []byte(str), nil
}

//Commands is a map of Command where the key should be Command.Name
type Commands map[string]Command

//String renders the command set as a human readable table
func (c Commands) String() string {
	names := sort.StringSlice{}
	for name := range c {
		names = append(names, name)
	}
	names.Sort()

	buf := bytes.NewBufferString("")
	tw := tablewriter.NewWriter(buf)
	tw.SetAutoWrapText(false)
	tw.SetHeader([]string{"Name", "Timeout", "Prototype", "Command Regex", "Resp Regex", "Error Regex"})
	for _, name := range names {
		cmd := c[name]
		tw.Append([]string{
			name,
			cmd.Timeout.String(),
			sanitize(cmd.Prototype),
			sanitize(cmd.CommandRegexp),
			sanitize(cmd.Response),
			sanitize(cmd.Error),
		})
	}
	tw.Render()
	return buf.String()
}

/*Contains returns true if the command set contains every one of the passed
named commands.  It checks the map keys, not the embedded Command.Name values.*/
func (c Commands) Contains(named ...string) bool {
	if c == nil || len(named) == 0 {
		return false
	}
	for _, name := range named {
		if _, ok := c[name]; !ok {
			return false
		}
	}
	return true
}

//Clone returns a copy of the Commands
func (c Commands) Clone() Commands {
	r := Commands{}
	for name, cmd := range c {
		r[name] = cmd
	}
	return r
}

//Merge folds multiple command sets into a single one; later sets win on collision
func Merge(cmds ...Commands) Commands {
	c := Commands{}
	for _, set := range cmds {
		for name, cmd := range set {
			c[name] = cmd
		}
	}
	return c
}

/*CommandResponse is what comes back from a Control exchange.

Bytes is a copy of everything read while waiting for a match or a timeout.
Error is nil when the received bytes matched the Command.Response regexp, a
timeout error when the Command.Timeout elapsed first, or whatever low level
failure interrupted the exchange.  Duration is how long the exchange took.*/
type CommandResponse struct {
	Bytes    []byte
	Error    error
	Duration time.Duration
}

//String implements the Stringer interface
func (r CommandResponse) String() string {
	return fmt.Sprintf("Response> Rx Bytes: %q\tErrors: %v\tDuration: %v", r.Bytes, r.Error, r.Duration)
}
