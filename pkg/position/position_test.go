package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDraft(t *testing.T) {
	p := New("幫", MedialNeutral, Rank3, "凡", ToneEntering)
	assert.False(t, p.IsFrozen())
	assert.Equal(t, "幫", p.Initial())
	assert.Equal(t, MedialNeutral, p.Medial())
	assert.Equal(t, Rank3, p.Rank())
	assert.Equal(t, "凡", p.Rhyme())
	assert.Equal(t, ToneEntering, p.Tone())

	_, err := p.Derived()
	assert.ErrorIs(t, err, ErrPositionNotFrozen)
}

func TestDescriptor(t *testing.T) {
	tests := []struct {
		name       string
		position   Position
		descriptor string
	}{
		{"neutral medial", New("幫", MedialNeutral, Rank3, "凡", ToneEntering), "幫三凡入"},
		{"open medial", New("見", MedialOpen, Rank1, "歌", ToneLevel), "見開一歌平"},
		{"closed medial", New("云", MedialClosed, Rank3, "支", ToneLevel), "云合三支平"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.descriptor, tt.position.Descriptor())
			assert.Equal(t, tt.descriptor, tt.position.String())
		})
	}
}

func TestConciseDescriptor(t *testing.T) {
	tests := []struct {
		descriptor string
		concise    string
	}{
		{"精開三鹽平", "精鹽平"},
		{"見開二佳平", "見開佳平"},
		{"章開三麻上", "章開麻上"},
		{"定開四脂去", "定開脂去"},
		{"幫三凡入", "幫凡入"},
		{"云合三支平", "云支平"},
		{"見開一歌平", "見開一歌平"},
		{"端開四麻平", "端開四麻平"},
	}
	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			p := MustValidate(mustParse(t, tt.descriptor))
			assert.Equal(t, tt.concise, p.ConciseDescriptor())

			back, err := ParseConcise(tt.concise)
			require.NoError(t, err)
			assert.True(t, p.Equal(back), "concise form must round-trip")
		})
	}
}

func TestEqualIgnoresFrozenState(t *testing.T) {
	draft := New("幫", MedialNeutral, Rank3, "凡", ToneEntering)
	frozen := MustValidate(draft)
	assert.True(t, draft.Equal(frozen))
	assert.True(t, frozen.Equal(draft))
	assert.False(t, draft.Equal(New("滂", MedialNeutral, Rank3, "凡", ToneEntering)))
}

func TestAdjust(t *testing.T) {
	base := MustValidate(New("幫", MedialNeutral, Rank3, "凡", ToneEntering))

	t.Run("returns a draft with overrides applied", func(t *testing.T) {
		next, err := base.Adjust(map[Axis]string{AxisInitial: "滂", AxisTone: ToneLevel})
		require.NoError(t, err)
		assert.False(t, next.IsFrozen())
		assert.Equal(t, "滂三凡平", next.Descriptor())
	})

	t.Run("receiver is unchanged", func(t *testing.T) {
		_, err := base.Adjust(map[Axis]string{AxisRhyme: "東"})
		require.NoError(t, err)
		assert.Equal(t, "幫三凡入", base.Descriptor())
		assert.True(t, base.IsFrozen())
	})

	t.Run("empty override set copies the tuple", func(t *testing.T) {
		next, err := base.Adjust(nil)
		require.NoError(t, err)
		assert.True(t, next.Equal(base))
		assert.False(t, next.IsFrozen())
	})

	t.Run("unknown axis fails", func(t *testing.T) {
		_, err := base.Adjust(map[Axis]string{Axis("voicing"): "全清"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "voicing")
	})
}

func mustParse(t *testing.T, descriptor string) Position {
	t.Helper()
	p, err := Parse(descriptor)
	require.NoError(t, err)
	return p
}
