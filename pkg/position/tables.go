package position

import "strings"

// Axis identifies one of the five primary categorical axes.
type Axis string

// The five primary axes, in canonical descriptor order.
const (
	AxisInitial Axis = "initial"
	AxisMedial  Axis = "medial"
	AxisRank    Axis = "rank"
	AxisRhyme   Axis = "rhyme"
	AxisTone    Axis = "tone"
)

// Medial values. MedialNeutral marks positions where the tradition records
// no open/closed contrast (labial initials and the neutral rhymes).
const (
	MedialNeutral = ""
	MedialOpen    = "開"
	MedialClosed  = "合"
)

// Rank values.
const (
	Rank1 = "一"
	Rank2 = "二"
	Rank3 = "三"
	Rank4 = "四"
)

// Tone values.
const (
	ToneLevel     = "平"
	ToneRising    = "上"
	ToneDeparting = "去"
	ToneEntering  = "入"
)

// Canonical axis enumerations. Order is significant: it drives descriptor
// parsing, PositionOrdering, and the compact code.
const (
	initialOrder = "幫滂並明端透定泥來知徹澄孃精清從心邪莊初崇生俟章昌常書船日見溪羣疑影曉匣云以"
	rhymeOrder   = "東冬鍾江支脂之微魚虞模齊祭泰佳皆夬灰咍廢真臻文殷元魂痕寒刪山先仙蕭宵肴豪歌麻陽唐庚耕清青蒸登尤侯幽侵覃談鹽添咸銜嚴凡"
	rankOrder    = "一二三四"
	toneOrder    = "平上去入"
)

// Derived-attribute enumerations, in traditional order.
const (
	voicingOrder = "全清次清全濁次濁" // pairs
	placeOrder   = "脣舌齒牙喉"
	familyOrder  = "通江止遇蟹臻山效果假宕梗曾流深咸"
	groupOrder   = "幫端知精莊章見影"
)

// medialOrder lists the medial axis values in canonical order. Neutral sorts
// first, matching the packed digit of the compact code.
var medialOrder = []string{MedialNeutral, MedialOpen, MedialClosed}

// Ordered value slices and index maps for each axis.
var (
	initials     = splitRunes(initialOrder)
	rhymes       = splitRunes(rhymeOrder)
	ranks        = splitRunes(rankOrder)
	tones        = splitRunes(toneOrder)
	initialIndex = indexOf(initials)
	rhymeIndex   = indexOf(rhymes)
	rankIndex    = indexOf(ranks)
	toneIndex    = indexOf(tones)
	medialIndex  = indexOf(medialOrder)
)

// ValidValues returns the ordered set of legal values for an axis. The
// returned slice is a copy; callers may not mutate the tables through it.
// For the medial axis the neutral value is the empty string.
func ValidValues(axis Axis) []string {
	var src []string
	switch axis {
	case AxisInitial:
		src = initials
	case AxisMedial:
		src = medialOrder
	case AxisRank:
		src = ranks
	case AxisRhyme:
		src = rhymes
	case AxisTone:
		src = tones
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// ranksByInitial maps each initial to the ranks it is attested in. The
// dental stops (端透定泥) list rank 2 even though such positions are
// marginal; the marginal whitelist below decides which of them are real.
var ranksByInitial = map[string]string{}

// ranksByRhyme maps each rhyme to the ranks its chapter contains.
var ranksByRhyme = map[string]string{}

// Pairing source tables. Each entry is (ranks, members).
var initialRankPairs = []struct{ ranks, members string }{
	{"一二三四", "幫滂並明來見溪疑影曉"},
	{"一二四", "端透定泥匣"},
	{"二三", "知徹澄孃莊初崇生"},
	{"一三四", "精清從心"},
	{"三", "邪俟章昌常書船日羣云以"},
}

var rhymeRankPairs = []struct{ ranks, members string }{
	{"一", "冬模泰灰咍魂痕寒豪唐登侯覃談"},
	{"二", "江佳皆夬刪山肴耕咸銜"},
	{"三", "鍾支脂之微魚虞祭廢真臻文殷元仙宵陽清蒸尤幽侵鹽嚴凡"},
	{"四", "齊先蕭青添"},
	{"一三", "東歌"},
	{"二三", "麻庚"},
}

// Medial classes: which medial each rhyme admits.
const (
	neutralRhymes    = "東冬鍾江尤侯凡"
	openOnlyRhymes   = "之魚咍痕殷嚴臻蕭宵肴豪侵覃談鹽添咸銜幽"
	closedOnlyRhymes = "虞模灰文魂"
	pairedRhymes     = "支脂微齊祭泰佳皆夬廢真元寒刪山先仙歌麻陽唐庚耕清青蒸登"
)

// openRhymes lists the rhymes without a nasal coda (陰聲韻); they never
// carry the entering tone.
const openRhymes = "支脂之微魚虞模齊祭泰佳皆夬灰咍廢蕭宵肴豪歌麻尤侯幽"

// Initial classes used by the compatibility rules.
const (
	labialInitials     = "幫滂並明"
	dentalStopInitials = "端透定泥"
	retroflexSibilants = "莊初崇生俟"
	graveInitials      = "幫滂並明見溪羣疑影曉匣云"
)

// rankThreeOnlyInitials occur in rank 3 alone; descriptors may omit the
// rank for them. 羣邪俟 are kept out of this set and handled separately,
// following the tradition's treatment of their isolated readings.
const rankThreeOnlyInitials = "章昌常書船日云以"

// labialExcludedRhymes never combine with a labial initial; the 凡 rhyme
// combines with nothing else.
const labialExcludedRhymes = "之魚殷痕嚴"

// openGlottalRhymes are the rhymes in which the 云 initial is attested with
// an open medial.
const openGlottalRhymes = "宵幽侵鹽嚴"

// familyByRhyme maps each rhyme to its 攝 (rhyme family).
var familyByRhyme = map[string]string{}

var familyPairs = []struct{ family, members string }{
	{"通", "東冬鍾"},
	{"江", "江"},
	{"止", "支脂之微"},
	{"遇", "魚虞模"},
	{"蟹", "齊祭泰佳皆夬灰咍廢"},
	{"臻", "真臻文殷魂痕"},
	{"山", "元寒刪山先仙"},
	{"效", "蕭宵肴豪"},
	{"果", "歌"},
	{"假", "麻"},
	{"宕", "陽唐"},
	{"梗", "庚耕清青"},
	{"曾", "蒸登"},
	{"流", "尤侯幽"},
	{"深", "侵"},
	{"咸", "覃談鹽添咸銜嚴凡"},
}

// voicingByInitial maps each initial to its voicing class (清濁).
var voicingByInitial = map[string]string{}

var voicingPairs = []struct{ voicing, members string }{
	{"全清", "幫端知精莊章見影心生書曉"},
	{"次清", "滂透徹清初昌溪"},
	{"全濁", "並定澄從邪崇俟常船羣匣"},
	{"次濁", "明泥孃來日疑云以"},
}

// placeByInitial maps each initial to its articulatory place (音).
var placeByInitial = map[string]string{}

var placePairs = []struct{ place, members string }{
	{"脣", "幫滂並明"},
	{"舌", "端透定泥來知徹澄孃"},
	{"齒", "精清從心邪莊初崇生俟章昌常書船日"},
	{"牙", "見溪羣疑"},
	{"喉", "影曉匣云以"},
}

// groupByInitial maps each initial to its group (組). 來 and 日 belong to no
// group and are absent from the map.
var groupByInitial = map[string]string{}

var groupPairs = []struct{ group, members string }{
	{"幫", "幫滂並明"},
	{"端", "端透定泥"},
	{"知", "知徹澄孃"},
	{"精", "精清從心邪"},
	{"莊", "莊初崇生俟"},
	{"章", "章昌常書船"},
	{"見", "見溪羣疑"},
	{"影", "影曉匣云以"},
}

// letterByInitial maps an initial to its 三十六字母 label where the two
// differ. Light-labial and 喻 handling lives in derive.go.
var letterByInitial = map[string]string{
	"莊": "照", "初": "穿", "崇": "牀", "生": "審", "俟": "禪",
	"章": "照", "昌": "穿", "船": "牀", "書": "審", "常": "禪",
	"云": "喻", "以": "喻",
}

// lightLabialRhymes are the ten rhymes in which rank-3 labials shifted to
// the light-labial series (非敷奉微).
const lightLabialRhymes = "東鍾微虞廢文元陽尤凡"

// knownMarginal lists the historically attested marginal positions, keyed
// by canonical descriptor. Positions matching a marginal pattern (dental
// stops outside ranks 1/4, 云 with an open medial) are rejected unless
// listed here.
var knownMarginal = map[string]bool{
	"定開四脂去": true,
	"端開二庚上": true,
	"端開二麻上": true,
	"端開四麻平": true,
	"端開四麻上": true,
	"定開二佳上": true,
	"端四尤平":  true,
	"云開三之上": true,
	"云開三仙平": true,
}

func init() {
	for _, p := range initialRankPairs {
		for _, m := range splitRunes(p.members) {
			ranksByInitial[m] = p.ranks
		}
	}
	for _, p := range rhymeRankPairs {
		for _, m := range splitRunes(p.members) {
			ranksByRhyme[m] = p.ranks
		}
	}
	for _, p := range familyPairs {
		for _, m := range splitRunes(p.members) {
			familyByRhyme[m] = p.family
		}
	}
	for _, p := range voicingPairs {
		for _, m := range splitRunes(p.members) {
			voicingByInitial[m] = p.voicing
		}
	}
	for _, p := range placePairs {
		for _, m := range splitRunes(p.members) {
			placeByInitial[m] = p.place
		}
	}
	for _, p := range groupPairs {
		for _, m := range splitRunes(p.members) {
			groupByInitial[m] = p.group
		}
	}
}

// PairedRhyme reports whether the rhyme distinguishes open and closed
// positions. Reconstruction schemes use this to decide whether rounding is
// carried by the medial or by the rhyme itself.
func PairedRhyme(rhyme string) bool {
	return strings.Contains(pairedRhymes, rhyme) && rhyme != ""
}

// rhymeAllowsRank reports whether the rhyme's chapter contains the rank.
func rhymeAllowsRank(rhyme, rank string) bool {
	return strings.Contains(ranksByRhyme[rhyme], rank)
}

// initialAllowsRank reports whether the initial is attested in the rank.
func initialAllowsRank(initial, rank string) bool {
	return strings.Contains(ranksByInitial[initial], rank)
}

// rhymeMedial returns the medial the rhyme requires, and whether the rhyme
// leaves the choice free (paired). A required value of MedialNeutral with
// free=false means the rhyme is neutral.
func rhymeMedial(rhyme string) (required string, free bool) {
	switch {
	case strings.Contains(pairedRhymes, rhyme):
		return "", true
	case strings.Contains(openOnlyRhymes, rhyme):
		return MedialOpen, false
	case strings.Contains(closedOnlyRhymes, rhyme):
		return MedialClosed, false
	default:
		return MedialNeutral, false
	}
}

// Compatible reports whether the five-tuple is attested in the tradition.
// It is the authoritative validity predicate; Validate wraps it to produce
// a structured error. The check is a pure table lookup.
func Compatible(initial, medial, rank, rhyme, tone string) bool {
	return checkCompatible(initial, medial, rank, rhyme, tone) == nil
}

// checkCompatible runs the compatibility rules in the traditional order and
// returns the first violation, or nil.
func checkCompatible(initial, medial, rank, rhyme, tone string) *InvalidPositionError {
	desc := initial + medial + rank + rhyme + tone
	reject := func(reason string, axes ...Axis) *InvalidPositionError {
		return &InvalidPositionError{Descriptor: desc, Axes: axes, Reason: reason}
	}

	if _, ok := initialIndex[initial]; !ok {
		return reject("unrecognized 母: "+initial, AxisInitial)
	}
	if _, ok := medialIndex[medial]; !ok {
		return reject("unrecognized 呼: "+medial, AxisMedial)
	}
	if _, ok := rankIndex[rank]; !ok {
		return reject("unrecognized 等: "+rank, AxisRank)
	}
	if _, ok := rhymeIndex[rhyme]; !ok {
		return reject("unrecognized 韻: "+rhyme, AxisRhyme)
	}
	if _, ok := toneIndex[tone]; !ok {
		return reject("unrecognized 聲: "+tone, AxisTone)
	}

	marginal := knownMarginal[desc]

	// Entering tone requires a nasal-coda rhyme.
	if tone == ToneEntering && strings.Contains(openRhymes, rhyme) {
		return reject("unexpected "+rhyme+"韻入聲", AxisRhyme, AxisTone)
	}

	// Initial-rank pairing.
	if !initialAllowsRank(initial, rank) && !marginal {
		return reject("unexpected "+initial+"母"+rank+"等", AxisInitial, AxisRank)
	}

	// Rhyme-rank pairing. Dental stops occupy rank-4 slots in rank-3
	// rhymes (the 類隔 readings); those tuples then face the marginal
	// whitelist below.
	if !rhymeAllowsRank(rhyme, rank) {
		dentalShift := rank == Rank4 && rhymeAllowsRank(rhyme, Rank3) &&
			strings.Contains(dentalStopInitials, initial)
		if !dentalShift && !marginal {
			return reject("unexpected "+rhyme+"韻"+rank+"等", AxisRhyme, AxisRank)
		}
	}

	// Medial rules. Labials never contrast; otherwise the rhyme decides.
	if strings.Contains(labialInitials, initial) {
		if medial != MedialNeutral {
			return reject("unexpected 呼 for 脣音", AxisInitial, AxisMedial)
		}
	} else {
		required, free := rhymeMedial(rhyme)
		switch {
		case free:
			if medial == MedialNeutral {
				return reject("missing 呼", AxisMedial, AxisRhyme)
			}
		case required == MedialNeutral:
			if medial != MedialNeutral {
				return reject("unexpected 呼 for 開合中立韻", AxisMedial, AxisRhyme)
			}
		case medial == MedialNeutral:
			return reject("missing 呼 (should be "+required+")", AxisMedial, AxisRhyme)
		case medial != required:
			return reject("unexpected "+rhyme+"韻"+medial+"口", AxisMedial, AxisRhyme)
		}
	}

	// Labial-rhyme restrictions.
	if strings.Contains(labialInitials, initial) {
		if strings.Contains(labialExcludedRhymes, rhyme) {
			return reject("unexpected "+rhyme+"韻脣音", AxisInitial, AxisRhyme)
		}
	} else if rhyme == "凡" {
		return reject("unexpected 凡韻非脣音", AxisInitial, AxisRhyme)
	}

	// Retroflex-sibilant (莊組) rules.
	if strings.Contains(retroflexSibilants, initial) {
		if rank == Rank3 && rhyme == "清" {
			return reject("unexpected 清韻莊組", AxisInitial, AxisRhyme)
		}
		if medial == MedialOpen && (rhyme == "真" || rhyme == "殷") {
			return reject("unexpected "+rhyme+"韻開口莊組", AxisInitial, AxisMedial, AxisRhyme)
		}
	} else {
		if rhyme == "臻" {
			return reject("unexpected 臻韻非莊組", AxisInitial, AxisRhyme)
		}
		if rhyme == "庚" && rank != Rank2 && !strings.Contains(graveInitials, initial) {
			return reject("unexpected 庚韻"+rank+"等"+initial+"母", AxisInitial, AxisRank, AxisRhyme)
		}
	}

	// Marginal patterns absent from the whitelist are unattested.
	if !marginal {
		if strings.Contains(dentalStopInitials, initial) &&
			(rank == Rank2 || (rank == Rank4 && !rhymeAllowsRank(rhyme, Rank4))) {
			return reject("unexpected "+rhyme+"韻"+rank+"等"+initial+"母", AxisInitial, AxisRank, AxisRhyme)
		}
		if initial == "云" && medial == MedialOpen && !strings.Contains(openGlottalRhymes, rhyme) {
			return reject("unexpected 云母開口", AxisInitial, AxisMedial)
		}
		if rhyme == "咍" && strings.Contains(labialInitials, initial) {
			return reject("unexpected 咍韻脣音", AxisInitial, AxisRhyme)
		}
	}

	return nil
}

// splitRunes expands a string of single-rune category values into a slice.
func splitRunes(s string) []string {
	out := make([]string, 0, len(s)/3)
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// indexOf builds a value-to-position map for an ordered value slice.
func indexOf(values []string) map[string]int {
	m := make(map[string]int, len(values))
	for i, v := range values {
		m[v] = i
	}
	return m
}
