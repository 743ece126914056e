// Package position models the phonological category system of the Qieyun
// rhyme-dictionary tradition (Tshet-uinh). A Position is the five-axis
// categorical description of a Middle Chinese syllable: initial (母),
// medial (呼), rank (等), rhyme (韻), and tone (聲).
//
// Positions exist in two states. A draft holds the five primary axes and
// nothing else; it may describe a combination that never occurred. Validate
// checks a draft against the category tables and, on success, returns a
// frozen Position carrying the derived attributes (voicing, place, rhyme
// family, and so on). Frozen Positions are immutable values: every
// transformation produces a new instance, and two Positions with identical
// primary axes are interchangeable.
package position
