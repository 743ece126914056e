package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerived(t *testing.T) {
	tests := []struct {
		descriptor string
		want       Derived
	}{
		{
			"幫三凡入",
			Derived{
				Voicing: "全清", Place: "脣", Group: "幫", Family: "咸",
				RimeType: "入", Openness: "開合中立", ChartRank: "三", Letter: "非",
			},
		},
		{
			"羣開三支平",
			Derived{
				Voicing: "全濁", Place: "牙", Group: "見", Family: "止",
				RimeType: "陰", Openness: "開口", ChartRank: "三", Letter: "羣",
			},
		},
		{
			"來開一寒上",
			Derived{
				Voicing: "次濁", Place: "舌", Group: "", Family: "山",
				RimeType: "陽", Openness: "開口", ChartRank: "一", Letter: "來",
			},
		},
		{
			"常開三清平",
			Derived{
				Voicing: "全濁", Place: "齒", Group: "章", Family: "梗",
				RimeType: "陽", Openness: "開口", ChartRank: "三", Letter: "禪",
			},
		},
		{
			"明三微平",
			Derived{
				Voicing: "次濁", Place: "脣", Group: "幫", Family: "止",
				RimeType: "陰", Openness: "開合中立", ChartRank: "三", Letter: "微",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			p := MustValidate(mustParse(t, tt.descriptor))
			derived, err := p.Derived()
			require.NoError(t, err)
			assert.Equal(t, tt.want, derived)
		})
	}
}

func TestChartRank(t *testing.T) {
	tests := []struct {
		descriptor string
		chartRank  string
	}{
		{"生開三庚平", "二"}, // retroflex sibilants sit in row 2
		{"精開三之上", "四"}, // rank-3 dental sibilants sit in row 4
		{"以合三虞平", "四"},
		{"云合三虞平", "三"},
		{"見開二佳平", "二"},
		{"定開四脂去", "四"},
	}
	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			p := MustValidate(mustParse(t, tt.descriptor))
			derived, err := p.Derived()
			require.NoError(t, err)
			assert.Equal(t, tt.chartRank, derived.ChartRank)
		})
	}
}

func TestLetter(t *testing.T) {
	tests := []struct {
		descriptor string
		letter     string
	}{
		{"幫三凡入", "非"},  // light labial in a rank-3 light-labial rhyme
		{"滂三東平", "敷"},
		{"並三元上", "奉"},
		{"明三虞平", "微"},
		{"幫三真平", "幫"},  // 真 keeps the heavy series
		{"幫二麻平", "幫"},  // rank 2 keeps the heavy series
		{"莊開三陽平", "照"},
		{"初開二佳上", "穿"},
		{"船開三麻平", "牀"},
		{"書開三之上", "審"},
		{"常開三支去", "禪"},
		{"云合三支平", "喻"},
		{"以開三之上", "喻"},
		{"見開一歌平", "見"},
	}
	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			p := MustValidate(mustParse(t, tt.descriptor))
			derived, err := p.Derived()
			require.NoError(t, err)
			assert.Equal(t, tt.letter, derived.Letter)
		})
	}
}

func TestRimeType(t *testing.T) {
	tests := []struct {
		descriptor string
		rimeType   string
	}{
		{"見開一豪上", "陰"},
		{"見一東平", "陽"},
		{"見一東入", "入"},
		{"見開三侵入", "入"},
	}
	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			p := MustValidate(mustParse(t, tt.descriptor))
			derived, err := p.Derived()
			require.NoError(t, err)
			assert.Equal(t, tt.rimeType, derived.RimeType)
		})
	}
}
