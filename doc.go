/*
Package wording fills sentence templates for randomized mathematics
exercises.

# Description

Exercise texts are written as templates with tagged placeholders:

	Calculate the volume of a cube whose side's length is {nb1} {length_unit=cm}. |hint:volume_unit|

Tags are whole whitespace-delimited words, optionally wrapped in an extra
pair of parentheses or brackets and optionally followed by one punctuation
mark. The engine resolves every tag against the attributes of a caller
object (see Attributes). Values fixed in the template ({key=value}) are
assigned, and values nobody has set are invented where conventions allow:

	{name}, {masculine_name2}, {feminine_name}   drawn from a names.Source
	{length_unit}, {mass_unit1}, {capacity_unit}  random units of that kind
	{area_unit}, {volume_unit2}                   the length unit of the same
	                                              suffix, squared or cubed
	{currency_unit}                               the configured currency

A number tag directly followed by a unit tag ({nb1} {length_unit}) is merged
into a single quantity tag ({nb1_length_unit}), which prints as "2 cm".
A trailing |hint:…| block names a value to display next to the answer
field.

SetupWordingFormat runs all of this as an ordered pipeline and produces
the rewritten template plus the format dictionary to fill it with:

	obj := wording.AttrsFrom(map[string]interface{}{
	    "wording": "I have {nb1} {capacity_unit} of water.",
	    "nb1":     2,
	})
	w, err := engine.SetupWordingFormat(obj, "")
	text, err := w.Text()  // "I have 2 dL of water."

The pipeline is not idempotent: it has to be run once per caller object.

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package wording

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
