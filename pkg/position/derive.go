package position

import "strings"

// derive computes the full derived-attribute set for a compatibility-checked
// five-tuple. Each rule is a total table lookup over the valid domain; a
// miss means the table itself is incomplete and is reported as such.
func derive(p Position) (Derived, error) {
	missing := func(table string) (Derived, error) {
		return Derived{}, &IncompleteRuleTableError{Table: table, Descriptor: p.Descriptor()}
	}

	voicing, ok := voicingByInitial[p.initial]
	if !ok {
		return missing("voicing")
	}
	place, ok := placeByInitial[p.initial]
	if !ok {
		return missing("place")
	}
	family, ok := familyByRhyme[p.rhyme]
	if !ok {
		return missing("family")
	}

	return Derived{
		Voicing:   voicing,
		Place:     place,
		Group:     groupByInitial[p.initial], // empty for 來 and 日
		Family:    family,
		RimeType:  rimeType(p.rhyme, p.tone),
		Openness:  openness(p.medial),
		ChartRank: chartRank(p.initial, p.rank),
		Letter:    letter(p.initial, p.rank, p.rhyme),
	}, nil
}

// rimeType classifies the rime as 陰 (open), 陽 (nasal), or 入 (checked).
func rimeType(rhyme, tone string) string {
	if tone == ToneEntering {
		return "入"
	}
	if strings.Contains(openRhymes, rhyme) {
		return "陰"
	}
	return "陽"
}

// openness renders the medial as its traditional openness-class name.
func openness(medial string) string {
	switch medial {
	case MedialOpen:
		return "開口"
	case MedialClosed:
		return "合口"
	default:
		return "開合中立"
	}
}

// chartRank returns the rank at which the rime charts place the position:
// retroflex sibilants sit in row 2, rank-3 dental sibilants and 以 in row 4,
// everything else in its own rank.
func chartRank(initial, rank string) string {
	if strings.Contains(retroflexSibilants, initial) {
		return Rank2
	}
	if rank == Rank3 && strings.Contains("精清從心邪以", initial) {
		return Rank4
	}
	return rank
}

// letter maps the initial to its traditional 36-letter label. Rank-3
// labials in the ten light-labial rhymes take the 非敷奉微 series; the
// sibilant series collapse per letterByInitial; 云 and 以 share 喻.
func letter(initial, rank, rhyme string) string {
	if rank == Rank3 && strings.Contains(lightLabialRhymes, rhyme) {
		switch initial {
		case "幫":
			return "非"
		case "滂":
			return "敷"
		case "並":
			return "奉"
		case "明":
			return "微"
		}
	}
	if l, ok := letterByInitial[initial]; ok {
		return l
	}
	return initial
}
