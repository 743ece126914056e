package position

import (
	"fmt"
	"strings"
)

// codeAlphabet is the 64-character digit set of the compact code.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789$_"

// rhymeSlots is the rhyme enumeration used by the compact code. The
// rank-split rhymes 東歌麻庚 occupy two consecutive slots (the ＊ marks the
// higher-rank slot) so that the rank is recoverable from the rhyme digit.
const rhymeSlots = "東＊冬鍾江支脂之微魚虞模齊祭泰佳皆夬灰咍廢真臻文殷元魂痕寒刪山先仙蕭宵肴豪歌＊麻＊陽唐庚＊耕清青蒸登尤侯幽侵覃談鹽添咸銜嚴凡"

var rhymeSlotList = splitRunes(rhymeSlots)

var rhymeSlotIndex = func() map[string]int {
	m := make(map[string]int, len(rhymeSlotList))
	for i, r := range rhymeSlotList {
		if r != "＊" {
			m[r] = i
		}
	}
	return m
}()

// Encode compresses a frozen Position into a three-digit code: one digit
// for the initial, one for the rhyme slot, and one packing medial and tone.
// Drafts are rejected with ErrPositionNotFrozen.
func Encode(p Position) (string, error) {
	if !p.frozen {
		return "", ErrPositionNotFrozen
	}
	slot := rhymeSlotIndex[p.rhyme]
	if isSplitRhyme(p.rhyme) && p.rank != Rank1 && p.rank != Rank2 {
		slot++
	}
	packed := medialIndex[p.medial]<<2 | toneIndex[p.tone]
	return string(codeAlphabet[initialIndex[p.initial]]) +
		string(codeAlphabet[slot]) +
		string(codeAlphabet[packed]), nil
}

// Decode expands a three-digit code back into a frozen Position. The rank
// is reconstructed from the rhyme slot, with the dental-stop shift applied.
// The decoded tuple is re-validated, so a code that names an unattested
// combination fails.
func Decode(code string) (Position, error) {
	digits := splitRunes(code)
	if len(digits) != 3 {
		return Position{}, fmt.Errorf("invalid code %q: want 3 digits", code)
	}
	values := make([]int, 3)
	for i, d := range digits {
		idx := strings.Index(codeAlphabet, d)
		if idx < 0 {
			return Position{}, fmt.Errorf("invalid code %q: bad digit %q", code, d)
		}
		values[i] = idx
	}

	if values[0] >= len(initials) {
		return Position{}, fmt.Errorf("invalid code %q: initial digit out of range", code)
	}
	initial := initials[values[0]]

	if values[1] >= len(rhymeSlotList) {
		return Position{}, fmt.Errorf("invalid code %q: rhyme digit out of range", code)
	}
	rhyme := rhymeSlotList[values[1]]
	starred := rhyme == "＊"
	if starred {
		rhyme = rhymeSlotList[values[1]-1]
	}
	rank, err := rankForSlot(initial, rhyme, starred)
	if err != nil {
		return Position{}, fmt.Errorf("invalid code %q: %w", code, err)
	}

	packed := values[2]
	medialIdx := packed >> 2
	if medialIdx >= len(medialOrder) {
		return Position{}, fmt.Errorf("invalid code %q: medial digit out of range", code)
	}
	medial := medialOrder[medialIdx]
	tone := tones[packed&0b11]

	return Validate(New(initial, medial, rank, rhyme, tone))
}

// rankForSlot recovers the rank implied by a rhyme slot: the chapter's
// first rank, or its second for a starred split slot, shifted to rank 4
// for dental stops in rank-3 chapters.
func rankForSlot(initial, rhyme string, starred bool) (string, error) {
	chapterRanks := splitRunes(ranksByRhyme[rhyme])
	if len(chapterRanks) == 0 {
		return "", fmt.Errorf("no ranks for rhyme %s", rhyme)
	}
	rank := chapterRanks[0]
	if starred {
		if len(chapterRanks) < 2 {
			return "", fmt.Errorf("rhyme %s has no split slot", rhyme)
		}
		rank = chapterRanks[1]
	}
	if rank == Rank3 && strings.Contains(dentalStopInitials, initial) {
		rank = Rank4
	}
	return rank, nil
}

func isSplitRhyme(rhyme string) bool {
	return rhyme == "東" || rhyme == "歌" || rhyme == "麻" || rhyme == "庚"
}
