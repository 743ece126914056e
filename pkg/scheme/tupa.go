package scheme

import (
	"strings"

	"github.com/mesh-intelligence/tshetuinh/pkg/position"
)

// TUPA renders positions in an abridged TUPA-style transcription.
type TUPA struct{}

var _ Scheme = TUPA{}

// Name implements Scheme.
func (TUPA) Name() string { return "tupa" }

var tupaOnsets = map[string]string{
	"幫": "p", "滂": "ph", "並": "b", "明": "m",
	"端": "t", "透": "th", "定": "d", "泥": "n", "來": "l",
	"知": "tr", "徹": "thr", "澄": "dr", "孃": "nr",
	"精": "ts", "清": "tsh", "從": "dz", "心": "s", "邪": "z",
	"莊": "tsr", "初": "tshr", "崇": "dzr", "生": "sr", "俟": "zr",
	"章": "tj", "昌": "thj", "常": "dj", "書": "sj", "船": "zj", "日": "nj",
	"見": "k", "溪": "kh", "羣": "g", "疑": "ng",
	"影": "q", "曉": "h", "匣": "gh", "云": "gh", "以": "y",
}

var tupaFinals = map[string]map[string]string{
	"東": {"一": "ung", "三": "iung"},
	"冬": {"一": "uong"},
	"鍾": {"三": "iuong"},
	"江": {"二": "rong"},
	"支": {"三": "ie"},
	"脂": {"三": "i"},
	"之": {"三": "y"},
	"微": {"三": "yi"},
	"魚": {"三": "yo"},
	"虞": {"三": "yu"},
	"模": {"一": "o"},
	"齊": {"四": "ei"},
	"祭": {"三": "iei"},
	"泰": {"一": "ai"},
	"佳": {"二": "re"},
	"皆": {"二": "rei"},
	"夬": {"二": "rai"},
	"灰": {"一": "uoi"},
	"咍": {"一": "oi"},
	"廢": {"三": "iai"},
	"真": {"三": "in"},
	"臻": {"三": "rin"},
	"文": {"三": "un"},
	"殷": {"三": "yn"},
	"元": {"三": "ion"},
	"魂": {"一": "uon"},
	"痕": {"一": "on"},
	"寒": {"一": "an"},
	"刪": {"二": "ran"},
	"山": {"二": "ren"},
	"先": {"四": "en"},
	"仙": {"三": "ien"},
	"蕭": {"四": "eu"},
	"宵": {"三": "ieu"},
	"肴": {"二": "rau"},
	"豪": {"一": "au"},
	"歌": {"一": "a", "三": "ya"},
	"麻": {"二": "ra", "三": "ia"},
	"陽": {"三": "iang"},
	"唐": {"一": "ang"},
	"庚": {"二": "rang", "三": "riang"},
	"耕": {"二": "reng"},
	"清": {"三": "ieng"},
	"青": {"四": "eng"},
	"蒸": {"三": "ing"},
	"登": {"一": "ong"},
	"尤": {"三": "iou"},
	"侯": {"一": "ou"},
	"幽": {"三": "iu"},
	"侵": {"三": "im"},
	"覃": {"一": "om"},
	"談": {"一": "am"},
	"鹽": {"三": "iem"},
	"添": {"四": "em"},
	"咸": {"二": "rem"},
	"銜": {"二": "ram"},
	"嚴": {"三": "iam"},
	"凡": {"三": "iom"},
}

// Convert implements Scheme.
func (TUPA) Convert(p position.Position) (string, error) {
	if !p.IsFrozen() {
		return "", position.ErrPositionNotFrozen
	}
	onset, ok := tupaOnsets[p.Initial()]
	if !ok {
		return "", &position.IncompleteRuleTableError{Table: "tupa onsets", Descriptor: p.Descriptor()}
	}
	final, err := lookupFinal(tupaFinals, "tupa finals", p)
	if err != nil {
		return "", err
	}
	if p.Medial() == position.MedialClosed && position.PairedRhyme(p.Rhyme()) {
		if strings.HasPrefix(final, "i") || strings.HasPrefix(final, "r") || strings.HasPrefix(final, "y") {
			final = final[:1] + "u" + final[1:]
		} else {
			final = "u" + final
		}
	}
	final = applyTone(final, p.Tone(), "q", "h")
	return onset + final, nil
}
