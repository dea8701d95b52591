/*
Package tag recognizes the placeholders of wording templates.

A wording template is an ordinary sentence in which some whitespace-delimited
words are placeholders, called tags:

	Ann buys {nb1} {capacity_unit} of milk.

A tag is a word wrapped in braces, "{}" by default. Callers occasionally use
alternate braces ("<>", or "||" for hints) and may wrap a tag in one extra
layer of parens or brackets, e.g. "({nb1})" or "[{nb1}]". A tag may be
followed by exactly one punctuation mark from PunctuationMarks.

Tags must occupy a whole word. A tag glued to adjoining text, as in
"abc{nb1}", is not recognized.

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tag
