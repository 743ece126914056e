package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		descriptor string
		want       Position
	}{
		{"幫三凡入", New("幫", MedialNeutral, Rank3, "凡", ToneEntering)},
		{"見開一歌平", New("見", MedialOpen, Rank1, "歌", ToneLevel)},
		{"云合三支平", New("云", MedialClosed, Rank3, "支", ToneLevel)},
		{"端一東平", New("端", MedialNeutral, Rank1, "東", ToneLevel)},
		{"定開四脂去", New("定", MedialOpen, Rank4, "脂", ToneDeparting)},
	}
	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			got, err := Parse(tt.descriptor)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
			assert.False(t, got.IsFrozen(), "Parse yields a draft")
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		token      string
		index      int
	}{
		{"empty", "", "", 0},
		{"too short", "幫平", "", 0},
		{"unknown initial", "呆開一歌平", "呆", 0},
		{"unknown rhyme", "見開一攷平", "攷", 3},
		{"unknown tone", "見開一歌促", "促", 4},
		{"missing rank", "見開歌平", "歌", 2},
		{"rank out of order", "見一開歌平", "", 0},
		{"trailing garbage", "見開一歌平平", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.descriptor)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.descriptor, parseErr.Input)
			assert.Equal(t, tt.token, parseErr.Token)
			if tt.token != "" {
				assert.Equal(t, tt.index, parseErr.Index)
			}
		})
	}
}

func TestParseConcise(t *testing.T) {
	tests := []struct {
		concise string
		full    string
	}{
		{"幫凡入", "幫三凡入"},
		{"精鹽平", "精開三鹽平"},
		{"章開麻上", "章開三麻上"},
		{"定開脂去", "定開四脂去"},
		{"云支平", "云合三支平"},
		{"羣開支平", "羣開三支平"},
		{"俟開之上", "俟開三之上"},
		{"見模平", "見合一模平"},
		{"透咍上", "透開一咍上"},
		{"見開一歌平", "見開一歌平"},
	}
	for _, tt := range tests {
		t.Run(tt.concise, func(t *testing.T) {
			got, err := ParseConcise(tt.concise)
			require.NoError(t, err)
			want := mustParse(t, tt.full)
			assert.True(t, got.Equal(want), "got %s want %s", got, want)
		})
	}

	t.Run("split-rhyme rank cannot be inferred", func(t *testing.T) {
		_, err := ParseConcise("見開歌平")
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("canonical descriptors still parse", func(t *testing.T) {
		got, err := ParseConcise("幫三凡入")
		require.NoError(t, err)
		assert.True(t, got.Equal(New("幫", MedialNeutral, Rank3, "凡", ToneEntering)))
	})
}
