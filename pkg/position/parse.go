package position

import "strings"

// Parse converts a canonical descriptor (母[呼]等韻聲, four or five tokens)
// into a draft Position. The medial token is present only for open or
// closed positions; neutral positions omit it. Parse checks token
// membership per axis but performs no compatibility check; pass the draft
// to Validate.
func Parse(descriptor string) (Position, error) {
	return parse(descriptor, false)
}

// ParseConcise parses a descriptor in which the medial and rank may be
// omitted whenever the remaining axes determine them, mirroring the concise
// notation of the dictionary tradition. The rank of a rank-split rhyme
// (東歌麻庚) with an ambiguous initial cannot be inferred and must be
// written out.
func ParseConcise(descriptor string) (Position, error) {
	return parse(descriptor, true)
}

func parse(descriptor string, concise bool) (Position, error) {
	tokens := splitRunes(descriptor)
	fail := func(index int) (Position, error) {
		token := ""
		if index < len(tokens) {
			token = tokens[index]
		}
		return Position{}, &ParseError{Input: descriptor, Token: token, Index: index}
	}

	if len(tokens) < 3 {
		return Position{}, &ParseError{Input: descriptor}
	}

	i := 0
	initial := tokens[i]
	if _, ok := initialIndex[initial]; !ok {
		return fail(i)
	}
	i++

	medial := MedialNeutral
	if i < len(tokens) && (tokens[i] == MedialOpen || tokens[i] == MedialClosed) {
		medial = tokens[i]
		i++
	}

	rank := ""
	if i < len(tokens) {
		if _, ok := rankIndex[tokens[i]]; ok {
			rank = tokens[i]
			i++
		}
	}
	if rank == "" && !concise {
		// The rank slot is mandatory in canonical descriptors.
		return fail(i)
	}

	if len(tokens)-i != 2 {
		return Position{}, &ParseError{Input: descriptor}
	}
	rhyme := tokens[i]
	if _, ok := rhymeIndex[rhyme]; !ok {
		return fail(i)
	}
	tone := tokens[i+1]
	if _, ok := toneIndex[tone]; !ok {
		return fail(i + 1)
	}

	if concise {
		if medial == MedialNeutral {
			medial = inferMedial(initial, rhyme)
		}
		if rank == "" {
			rank = inferRank(initial, rhyme)
		}
		if rank == "" {
			return Position{}, &ParseError{Input: descriptor, Token: rhyme, Index: i}
		}
	}

	return New(initial, medial, rank, rhyme, tone), nil
}

// inferMedial resolves an omitted medial. Labials and neutral rhymes stay
// neutral; single-medial rhymes supply theirs; the 云 initial defaults to
// closed in paired rhymes. An unresolvable medial is left neutral and the
// validator rejects it.
func inferMedial(initial, rhyme string) string {
	if strings.Contains(labialInitials, initial) {
		return MedialNeutral
	}
	required, free := rhymeMedial(rhyme)
	if !free {
		return required
	}
	if initial == "云" {
		return MedialClosed
	}
	return MedialNeutral
}

// inferRank resolves an omitted rank from the initial or the rhyme's
// chapter, applying the dental-stop shift to rank 4 in rank-3 chapters.
// Returns empty when the rank is genuinely ambiguous, which happens only
// in the rank-split rhymes 東歌麻庚 with an initial attested at both ranks.
func inferRank(initial, rhyme string) string {
	if strings.Contains(rankThreeOnlyInitials, initial) || strings.Contains("羣邪俟", initial) {
		return Rank3
	}
	inferred := ""
	for _, rank := range splitRunes(ranksByRhyme[rhyme]) {
		if !initialAllowsRank(initial, rank) {
			continue
		}
		if inferred != "" {
			return ""
		}
		inferred = rank
	}
	if inferred == "" && rhymeAllowsRank(rhyme, Rank3) &&
		strings.Contains(dentalStopInitials, initial) {
		return Rank4
	}
	return inferred
}
