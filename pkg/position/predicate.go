package position

import "strings"

// Matches evaluates a categorical expression against the Position.
// Expressions combine axis terms (見溪母, 三等, 支韻, 平聲), derived terms
// (止攝, 幫組, 喉音, 全濁, 清音, 陰聲韻, 仄聲, 舒聲, 鈍音, 銳音) and the
// medial terms 開口 / 合口 / 開合中立 with the operators 非, 且, 或 (or
// not/and/or, !/~, &/&&, |/||) and parentheses. Juxtaposed terms are
// conjoined. Malformed expressions and unknown terms fail with a
// *ParseError; Matches never partially evaluates.
func (p Position) Matches(expr string) (bool, error) {
	tokens := tokenizeExpr(expr)
	if len(tokens) == 0 {
		return false, &ParseError{Input: expr}
	}
	ev := &exprEval{pos: p, input: expr, tokens: tokens}
	result, err := ev.parseOr()
	if err != nil {
		return false, err
	}
	if ev.cursor != len(ev.tokens) {
		return false, ev.errAt(ev.cursor)
	}
	return result, nil
}

// exprToken is a classified expression token.
type exprToken struct {
	kind string // "term", "and", "or", "not", "(", ")"
	text string
	idx  int // rune offset in the input
}

func tokenizeExpr(expr string) []exprToken {
	normalized := strings.NewReplacer("（", "(", "）", ")").Replace(expr)
	runes := []rune(normalized)
	var tokens []exprToken
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			i++
		case r == '(' || r == ')':
			tokens = append(tokens, exprToken{kind: string(r), text: string(r), idx: i})
			i++
		case r == '!' || r == '~':
			tokens = append(tokens, exprToken{kind: "not", text: string(r), idx: i})
			i++
		case r == '&' || r == '|':
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			kind := "and"
			if r == '|' {
				kind = "or"
			}
			tokens = append(tokens, exprToken{kind: kind, text: string(runes[i:j]), idx: i})
			i = j
		default:
			j := i
			for j < len(runes) && !strings.ContainsRune(" \t\n()!~&|", runes[j]) {
				j++
			}
			word := string(runes[i:j])
			tokens = append(tokens, exprToken{kind: classifyWord(word), text: word, idx: i})
			i = j
		}
	}
	return tokens
}

func classifyWord(word string) string {
	switch strings.ToLower(word) {
	case "非", "not":
		return "not"
	case "且", "and":
		return "and"
	case "或", "or":
		return "or"
	}
	return "term"
}

// exprEval is a recursive-descent evaluator over the token stream.
// Operands evaluate eagerly; the operators are pure boolean algebra, so
// eager evaluation cannot change the result.
type exprEval struct {
	pos    Position
	input  string
	tokens []exprToken
	cursor int
}

func (ev *exprEval) errAt(cursor int) *ParseError {
	if cursor >= len(ev.tokens) {
		return &ParseError{Input: ev.input, Token: "", Index: len([]rune(ev.input))}
	}
	t := ev.tokens[cursor]
	return &ParseError{Input: ev.input, Token: t.text, Index: t.idx}
}

func (ev *exprEval) peek() string {
	if ev.cursor >= len(ev.tokens) {
		return ""
	}
	return ev.tokens[ev.cursor].kind
}

func (ev *exprEval) parseOr() (bool, error) {
	result, err := ev.parseAnd()
	if err != nil {
		return false, err
	}
	for ev.peek() == "or" {
		ev.cursor++
		operand, err := ev.parseAnd()
		if err != nil {
			return false, err
		}
		result = result || operand
	}
	return result, nil
}

func (ev *exprEval) parseAnd() (bool, error) {
	result, err := ev.parseNot()
	if err != nil {
		return false, err
	}
	for {
		switch ev.peek() {
		case "and":
			ev.cursor++
		case "term", "not", "(":
			// Juxtaposition conjoins.
		default:
			return result, nil
		}
		operand, err := ev.parseNot()
		if err != nil {
			return false, err
		}
		result = result && operand
	}
}

func (ev *exprEval) parseNot() (bool, error) {
	negate := false
	for ev.peek() == "not" {
		negate = !negate
		ev.cursor++
	}
	var result bool
	switch ev.peek() {
	case "term":
		value, err := ev.evalTerm(ev.tokens[ev.cursor])
		if err != nil {
			return false, err
		}
		ev.cursor++
		result = value
	case "(":
		ev.cursor++
		value, err := ev.parseOr()
		if err != nil {
			return false, err
		}
		if ev.peek() != ")" {
			return false, ev.errAt(ev.cursor)
		}
		ev.cursor++
		result = value
	default:
		return false, ev.errAt(ev.cursor)
	}
	if negate {
		return !result, nil
	}
	return result, nil
}

// evalTerm evaluates a single categorical term.
func (ev *exprEval) evalTerm(tok exprToken) (bool, error) {
	p := ev.pos
	switch tok.text {
	case "開口":
		return p.medial == MedialOpen, nil
	case "合口":
		return p.medial == MedialClosed, nil
	case "開合中立":
		return p.medial == MedialNeutral, nil
	case "陰聲韻", "陽聲韻", "入聲韻":
		want := string([]rune(tok.text)[0])
		return rimeType(p.rhyme, p.tone) == want, nil
	case "仄聲":
		return p.tone != ToneLevel, nil
	case "舒聲":
		return p.tone != ToneEntering, nil
	case "清音":
		return strings.HasSuffix(voicingByInitial[p.initial], "清"), nil
	case "濁音":
		return strings.HasSuffix(voicingByInitial[p.initial], "濁"), nil
	case "全清", "次清", "全濁", "次濁":
		return voicingByInitial[p.initial] == tok.text, nil
	case "鈍音":
		return strings.Contains(graveInitials, p.initial), nil
	case "銳音":
		return !strings.Contains(graveInitials, p.initial), nil
	}

	runes := []rune(tok.text)
	if len(runes) < 2 {
		return false, ev.termErr(tok)
	}
	values := runes[:len(runes)-1]
	var inventory, attr string
	switch string(runes[len(runes)-1]) {
	case "母":
		inventory, attr = initialOrder, p.initial
	case "等":
		inventory, attr = rankOrder, p.rank
	case "韻":
		inventory, attr = rhymeOrder, p.rhyme
	case "聲":
		inventory, attr = toneOrder, p.tone
	case "攝":
		inventory, attr = familyOrder, familyByRhyme[p.rhyme]
	case "組":
		inventory, attr = groupOrder, groupByInitial[p.initial]
	case "音":
		inventory, attr = placeOrder, placeByInitial[p.initial]
	default:
		return false, ev.termErr(tok)
	}
	for _, v := range values {
		if !strings.ContainsRune(inventory, v) {
			return false, ev.termErr(tok)
		}
	}
	return attr != "" && strings.ContainsRune(string(values), []rune(attr)[0]), nil
}

func (ev *exprEval) termErr(tok exprToken) *ParseError {
	return &ParseError{Input: ev.input, Token: tok.text, Index: tok.idx}
}
