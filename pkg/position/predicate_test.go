package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesTerms(t *testing.T) {
	p := MustValidate(mustParse(t, "幫三凡入"))

	tests := []struct {
		expr string
		want bool
	}{
		{"幫母", true},
		{"滂母", false},
		{"幫滂並明母", true},
		{"三等", true},
		{"一二四等", false},
		{"凡韻", true},
		{"東鍾凡韻", true},
		{"入聲", true},
		{"平上去聲", false},
		{"咸攝", true},
		{"通攝", false},
		{"幫組", true},
		{"見組", false},
		{"脣音", true},
		{"牙喉音", false},
		{"開合中立", true},
		{"開口", false},
		{"合口", false},
		{"全清", true},
		{"次清", false},
		{"清音", true},
		{"濁音", false},
		{"陽聲韻", false}, // 韻別 of an entering-tone position is 入, not 陽
		{"陰聲韻", false},
		{"入聲韻", true},
		{"仄聲", true},
		{"舒聲", false},
		{"鈍音", true},
		{"銳音", false},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := p.Matches(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesOperators(t *testing.T) {
	p := MustValidate(mustParse(t, "羣開三支平"))

	tests := []struct {
		expr string
		want bool
	}{
		{"羣母 且 支韻", true},
		{"羣母 支韻", true}, // juxtaposition conjoins
		{"羣母 或 幫母", true},
		{"幫母 或 滂母", false},
		{"非 幫母", true},
		{"非 非 羣母", true},
		{"羣母 且 (幫母 或 支韻)", true},
		{"(羣母 或 幫母) 且 平聲", true},
		{"非 (幫母 或 滂母)", true},
		{"羣母 and 支韻", true},
		{"羣母 or 幫母", true},
		{"not 幫母", true},
		{"羣母 && 支韻", true},
		{"羣母 || 幫母", true},
		{"!幫母", true},
		{"~幫母", true},
		{"羣母 & 支韻", true},
		{"羣母 | 幫母", true},
		{"（羣母）", true},
		{"全濁 鈍音 三等", true},
		{"止攝 且 非 合口", true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := p.Matches(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesRimeType(t *testing.T) {
	tests := []struct {
		descriptor string
		expr       string
		want       bool
	}{
		{"幫三凡平", "陽聲韻", true},
		{"幫三凡平", "入聲韻", false},
		{"幫三凡入", "陽聲韻", false},
		{"幫三凡入", "入聲韻", true},
		{"見開一歌平", "陰聲韻", true},
		{"見開一歌平", "陽聲韻", false},
	}
	for _, tt := range tests {
		t.Run(tt.descriptor+"/"+tt.expr, func(t *testing.T) {
			p := MustValidate(mustParse(t, tt.descriptor))
			got, err := p.Matches(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesGrouplessInitial(t *testing.T) {
	p := MustValidate(mustParse(t, "來開一寒上"))
	for _, expr := range []string{"幫組", "端組", "見組"} {
		got, err := p.Matches(expr)
		require.NoError(t, err)
		assert.False(t, got, expr)
	}
}

func TestMatchesErrors(t *testing.T) {
	p := MustValidate(mustParse(t, "幫三凡入"))

	exprs := []string{
		"",
		"   ",
		"幫母 且",
		"且 幫母",
		"(幫母",
		"幫母)",
		"非",
		"桓韻",
		"幫韻",
		"天地",
		"母",
		"幫母 或 或 凡韻",
	}
	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			_, err := p.Matches(expr)
			require.Error(t, err)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestMatchesWorksOnDrafts(t *testing.T) {
	// Predicates read only the primary tuple and the category tables, so a
	// draft is acceptable.
	p := mustParse(t, "幫三凡入")
	got, err := p.Matches("幫組 且 咸攝")
	require.NoError(t, err)
	assert.True(t, got)
}
