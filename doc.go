/*Package visaio talks to laboratory instruments over heterogeneous transports
(serial, GPIB, TCP sockets, USB) through a single uniform session abstraction.
Think: how do you treat a bench meter hanging off a serial port, a scope on
GPIB, and a power supply on a raw TCP socket all the same?  All of them accept
raw bytes, answer with raw bytes, and frame large binary answers the same
IEEE-488.2 way.

Purpose

Given an opaque resource address string, Create figures out which transport
family the address belongs to, builds the matching driver variant, and hands
back a Driver exposing a small set of primitive operations: raw byte send and
receive, chunked receive-until-short-read (drain mode), and the length
prefixed binary block protocol.  Higher level instrument commands are built
on top of these primitives and are not this package's business.

Implemented

Resource addresses are classified by their canonical prefix:
  GPIB...  - GPIB bus/device addresses
  ASRL...  - Serial ports
  TCPIP... - Raw socket connections
  USB...   - USB instruments

A native SystemProvider backs ASRL resources with a real serial port and
TCPIP resources with a socket; GPIB and USB resources need an external
Provider implementation.

Error Handling

Neither a Driver nor its Session tries to maintain a constant connection.
When the transport dies / is killed / fails, the error is passed to the
caller, who has a better idea of what to do.  Timeouts are deliberately not
errors: a read that returns fewer bytes than requested is a normal short
result meaning "no more data right now".

*/
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
