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

/*visacat is a crappy netcat for lab instruments: it opens a resource address
(serial or socket), forwards stdin lines to the instrument, and prints
whatever comes back.*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/NCAR/visaio"
	"github.com/NCAR/visaio/logger"
)

var (
	app      = kingpin.New("visacat", "A crappy netcat with fewer options, but that can talk to lab instruments")
	resource = app.Arg("resource", "Resource address, e.g. ASRL/dev/ttyUSB0::INSTR or TCPIP0::10.0.0.5::5025::SOCKET").Required().String()
	baud     = app.Flag("baud", "Serial baud rate").Default("9600").Int()
	parity   = app.Flag("parity", "Serial parity: none, even, odd, mark, space").Default("none").String()
	timeout  = app.Flag("timeout", "Connect/read timeout").Default("1s").Duration()
	verbose  = app.Flag("verbose", "Log at debug level").Short('v').Bool()
)

func main() {
	_ = kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	drv, err := visaio.Create(*resource,
		visaio.WithBaudRate(*baud),
		visaio.WithParity(*parity),
		visaio.WithTimeout(*timeout),
	)
	if err != nil {
		app.Fatalf("unable to create driver: %v", err)
	}
	if err := drv.Initialize(); err != nil {
		app.Fatalf("unable to open %s: %v", drv, err)
	}
	defer drv.Finalize()

	go func() {
		for {
			data, err := drv.RawRecv(visaio.RecvAll)
			if len(data) > 0 {
				os.Stdout.Write(data)
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, "recv:", err)
				return
			}
			if len(data) == 0 {
				time.Sleep(50 * time.Millisecond)
			}
		}
	}()

	stdin := bufio.NewReader(os.Stdin)
	for {
		line, err := stdin.ReadSlice('\n')
		if err != nil {
			return
		}
		if err := drv.RawSend(line); err != nil {
			fmt.Fprintln(os.Stderr, "send:", err)
			return
		}
	}
}
