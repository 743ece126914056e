package scheme

import (
	"strings"

	"github.com/mesh-intelligence/tshetuinh/pkg/position"
)

// Baxter renders positions in Baxter's ASCII transcription.
type Baxter struct{}

var _ Scheme = Baxter{}

// Name implements Scheme.
func (Baxter) Name() string { return "baxter" }

var baxterOnsets = map[string]string{
	"幫": "p", "滂": "ph", "並": "b", "明": "m",
	"端": "t", "透": "th", "定": "d", "泥": "n", "來": "l",
	"知": "tr", "徹": "trh", "澄": "dr", "孃": "nr",
	"精": "ts", "清": "tsh", "從": "dz", "心": "s", "邪": "z",
	"莊": "tsr", "初": "tsrh", "崇": "dzr", "生": "sr", "俟": "zr",
	"章": "tsy", "昌": "tsyh", "常": "dzy", "書": "sy", "船": "zy", "日": "ny",
	"見": "k", "溪": "kh", "羣": "g", "疑": "ng",
	"影": "'", "曉": "x", "匣": "h", "云": "h", "以": "y",
}

// baxterFinals maps rhyme then rank to the open-medial final. Split
// rhymes carry one entry per chart rank; rank-four dental-stop readings
// of third-rank rhymes fall back to the rank-three entry.
var baxterFinals = map[string]map[string]string{
	"東": {"一": "uwng", "三": "juwng"},
	"冬": {"一": "owng"},
	"鍾": {"三": "jowng"},
	"江": {"二": "aewng"},
	"支": {"三": "je"},
	"脂": {"三": "ij"},
	"之": {"三": "i"},
	"微": {"三": "j+j"},
	"魚": {"三": "jo"},
	"虞": {"三": "ju"},
	"模": {"一": "u"},
	"齊": {"四": "ej"},
	"祭": {"三": "jej"},
	"泰": {"一": "aj"},
	"佳": {"二": "ea"},
	"皆": {"二": "eaj"},
	"夬": {"二": "aej"},
	"灰": {"一": "woj"},
	"咍": {"一": "oj"},
	"廢": {"三": "joj"},
	"真": {"三": "in"},
	"臻": {"三": "in"},
	"文": {"三": "jun"},
	"殷": {"三": "j+n"},
	"元": {"三": "jon"},
	"魂": {"一": "won"},
	"痕": {"一": "on"},
	"寒": {"一": "an"},
	"刪": {"二": "aen"},
	"山": {"二": "ean"},
	"先": {"四": "en"},
	"仙": {"三": "jen"},
	"蕭": {"四": "ew"},
	"宵": {"三": "jew"},
	"肴": {"二": "aew"},
	"豪": {"一": "aw"},
	"歌": {"一": "a", "三": "ja"},
	"麻": {"二": "ae", "三": "jae"},
	"陽": {"三": "jang"},
	"唐": {"一": "ang"},
	"庚": {"二": "aeng", "三": "jaeng"},
	"耕": {"二": "eang"},
	"清": {"三": "jeng"},
	"青": {"四": "eng"},
	"蒸": {"三": "ing"},
	"登": {"一": "ong"},
	"尤": {"三": "juw"},
	"侯": {"一": "uw"},
	"幽": {"三": "jiw"},
	"侵": {"三": "im"},
	"覃": {"一": "om"},
	"談": {"一": "am"},
	"鹽": {"三": "jem"},
	"添": {"四": "em"},
	"咸": {"二": "eam"},
	"銜": {"二": "aem"},
	"嚴": {"三": "jaem"},
	"凡": {"三": "jom"},
}

// Convert implements Scheme.
func (Baxter) Convert(p position.Position) (string, error) {
	if !p.IsFrozen() {
		return "", position.ErrPositionNotFrozen
	}
	onset, ok := baxterOnsets[p.Initial()]
	if !ok {
		return "", &position.IncompleteRuleTableError{Table: "baxter onsets", Descriptor: p.Descriptor()}
	}
	final, err := lookupFinal(baxterFinals, "baxter finals", p)
	if err != nil {
		return "", err
	}
	if p.Medial() == position.MedialClosed && position.PairedRhyme(p.Rhyme()) {
		if strings.HasPrefix(final, "j") {
			final = "jw" + final[1:]
		} else {
			final = "w" + final
		}
	}
	// Palatal onsets already carry the glide.
	if strings.HasSuffix(onset, "y") && strings.HasPrefix(final, "j") {
		final = final[1:]
	}
	final = applyTone(final, p.Tone(), "X", "H")
	return onset + final, nil
}

// lookupFinal resolves the final for p's rhyme and chart rank, with the
// dental-stop rank-four fallback to the rank-three reading.
func lookupFinal(finals map[string]map[string]string, table string, p position.Position) (string, error) {
	byRank, ok := finals[p.Rhyme()]
	if !ok {
		return "", &position.IncompleteRuleTableError{Table: table, Descriptor: p.Descriptor()}
	}
	if final, ok := byRank[p.Rank()]; ok {
		return final, nil
	}
	if p.Rank() == position.Rank4 {
		if final, ok := byRank[position.Rank3]; ok {
			return final, nil
		}
	}
	return "", &position.IncompleteRuleTableError{Table: table, Descriptor: p.Descriptor()}
}

// applyTone appends the tone mark, shifting the coda of entering-tone
// finals to its stop counterpart.
func applyTone(final, tone, rising, departing string) string {
	switch tone {
	case position.ToneRising:
		return final + rising
	case position.ToneDeparting:
		return final + departing
	case position.ToneEntering:
		switch {
		case strings.HasSuffix(final, "ng"):
			return strings.TrimSuffix(final, "ng") + "k"
		case strings.HasSuffix(final, "n"):
			return strings.TrimSuffix(final, "n") + "t"
		case strings.HasSuffix(final, "m"):
			return strings.TrimSuffix(final, "m") + "p"
		}
	}
	return final
}
