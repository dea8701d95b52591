/*
Package exercise instantiates exercise problems.

A problem is defined in YAML:

	id: cube-volume
	wording: "Calculate the volume of a cube whose side's length is {nb1} {length_unit}. |hint:volume_unit|"
	answer: "The volume is {nb2} {volume_unit}."
	variables:
	  nb1:
	    generator: {rule: range, min: 2, max: 9}
	derived:
	  nb2: "nb1 ^ 3"

Instantiating a problem draws values for its variables, evaluates the derived
values, and fills in wording and answer with package wording. Units and names
invented for the wording are reused for the answer. For a given seed,
instantiation is deterministic.

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package exercise

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
