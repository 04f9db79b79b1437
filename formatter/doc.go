/*
Package formatter prints the shape of an llrb.Map, level by level.

Output has one line per tree level. Nodes of a level are grouped by their
parent, every group enclosed in brackets:

	[5]
	[3,8]
	[1,4][7,9]

Keys connected to their parent by a red link are printed in red, if the output
device is a terminal (or if coloring has been forced by configuration).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'llrb'
func tracer() tracing.Trace {
	return tracing.Select("llrb")
}
