/*
Package quantity provides the numeric and unit values which wording templates
are filled with.

Numbers are exact rationals. Units are symbols of one of six physical quantity
kinds, carrying an exponent for area (2) and volume (3). A Printer renders
numbers, units and numbers-with-unit for display, localized to a language
and in one of two output styles:

	Plain:  2,5 cm³        (French)
	LaTeX:  \SI{2.5}{cm^{3}}

Candidate units per kind are kept in a Catalog; the wording engine draws
random units from it for templates which do not fix them.

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package quantity

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
