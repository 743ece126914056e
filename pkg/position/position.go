package position

import (
	"fmt"
	"strings"
)

// Derived holds the secondary attributes implied by a valid five-tuple.
// All fields are pure functions of the primary axes.
type Derived struct {
	Voicing   string // 清濁: 全清, 次清, 全濁, 次濁
	Place     string // 音: 脣, 舌, 齒, 牙, 喉
	Group     string // 組: 幫端知精莊章見影, or empty for 來/日
	Family    string // 攝: rhyme family
	RimeType  string // 韻別: 陰, 陽, 入
	Openness  string // 開口, 合口, or 開合中立
	ChartRank string // 韻圖等: rank as placed in the rime charts
	Letter    string // 字母: traditional 36-letter label
}

// Position is the five-axis categorical description of a Middle Chinese
// syllable. The zero value is an empty draft. Positions are values: copy
// freely, compare with Equal.
type Position struct {
	initial string
	medial  string
	rank    string
	rhyme   string
	tone    string

	derived Derived
	frozen  bool
}

// New returns a draft Position with the given primary axes. No validation
// is performed; pass the draft to Validate to freeze it.
func New(initial, medial, rank, rhyme, tone string) Position {
	return Position{initial: initial, medial: medial, rank: rank, rhyme: rhyme, tone: tone}
}

// Initial returns the initial-consonant class (母).
func (p Position) Initial() string { return p.initial }

// Medial returns the rounding class (呼); MedialNeutral for neutral positions.
func (p Position) Medial() string { return p.medial }

// Rank returns the rank (等).
func (p Position) Rank() string { return p.rank }

// Rhyme returns the rhyme group (韻).
func (p Position) Rhyme() string { return p.rhyme }

// Tone returns the tone category (聲).
func (p Position) Tone() string { return p.tone }

// IsFrozen reports whether the Position has been validated and carries
// derived attributes.
func (p Position) IsFrozen() bool { return p.frozen }

// Derived returns the derived attribute set. It returns
// ErrPositionNotFrozen for a draft: derived fields exist only after
// validation.
func (p Position) Derived() (Derived, error) {
	if !p.frozen {
		return Derived{}, ErrPositionNotFrozen
	}
	return p.derived, nil
}

// Descriptor returns the canonical textual form 母[呼]等韻聲. Parsing the
// result with Parse and validating reproduces the same Position.
func (p Position) Descriptor() string {
	return p.initial + p.medial + p.rank + p.rhyme + p.tone
}

// ConciseDescriptor returns the shortest descriptor from which ParseConcise
// recovers the Position: the medial is dropped when the rhyme (or the 云
// initial) determines it, and the rank when the initial or rhyme does.
func (p Position) ConciseDescriptor() string {
	medial := p.medial
	if medial == MedialClosed && p.initial == "云" {
		medial = ""
	} else if medial != MedialNeutral {
		if required, free := rhymeMedial(p.rhyme); !free && required == medial {
			medial = ""
		}
	}

	rank := p.rank
	switch {
	case rank == Rank3 && strings.Contains("羣邪俟", p.initial):
		rank = ""
	case strings.Contains(rankThreeOnlyInitials, p.initial):
		rank = ""
	case p.rhyme != "東" && p.rhyme != "歌" && p.rhyme != "麻" && p.rhyme != "庚":
		rank = ""
	}

	return p.initial + medial + rank + p.rhyme + p.tone
}

// Equal reports whether two Positions share the same primary five-tuple.
// Draft and frozen instances of the same tuple are equal: Positions have
// value semantics.
func (p Position) Equal(o Position) bool {
	return p.initial == o.initial && p.medial == o.medial &&
		p.rank == o.rank && p.rhyme == o.rhyme && p.tone == o.tone
}

// String returns the canonical descriptor.
func (p Position) String() string { return p.Descriptor() }

// Adjust returns a new draft with the given axes overridden and all others
// carried over. Unrecognized axis keys are an error. The receiver is never
// modified; the result must be validated before use.
func (p Position) Adjust(overrides map[Axis]string) (Position, error) {
	next := New(p.initial, p.medial, p.rank, p.rhyme, p.tone)
	for axis, value := range overrides {
		switch axis {
		case AxisInitial:
			next.initial = value
		case AxisMedial:
			next.medial = value
		case AxisRank:
			next.rank = value
		case AxisRhyme:
			next.rhyme = value
		case AxisTone:
			next.tone = value
		default:
			return Position{}, fmt.Errorf("adjust: unknown axis %q", string(axis))
		}
	}
	return next, nil
}
