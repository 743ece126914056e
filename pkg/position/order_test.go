package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"rhyme dominates", "以開三陽平", "幫一東平", 1},
		{"initial breaks rhyme ties", "幫一東平", "滂一東平", -1},
		{"rank breaks initial ties", "見一東平", "見三東平", -1},
		{"medial breaks rank ties", "見開三仙平", "見合三仙平", -1},
		{"neutral medial sorts first", "見三仙平", "見開三仙平", -1},
		{"tone breaks medial ties", "見開三仙上", "見開三仙平", 1},
		{"equal tuples", "幫三凡入", "幫三凡入", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustParse(t, tt.a)
			b := mustParse(t, tt.b)
			assert.Equal(t, tt.want, Compare(a, b))
			assert.Equal(t, -tt.want, Compare(b, a))
			assert.Equal(t, tt.want < 0, Less(a, b))
		})
	}
}

func TestCompareIgnoresFrozenState(t *testing.T) {
	draft := mustParse(t, "幫三凡入")
	frozen := MustValidate(draft)
	assert.Zero(t, Compare(draft, frozen))
}

func TestSort(t *testing.T) {
	descriptors := []string{"見開一歌平", "幫一東平", "云合三支平", "端一東平", "幫三凡入"}
	positions := make([]Position, len(descriptors))
	for i, d := range descriptors {
		positions[i] = mustParse(t, d)
	}

	Sort(positions)

	got := make([]string, len(positions))
	for i, p := range positions {
		got[i] = p.Descriptor()
	}
	assert.Equal(t, []string{"幫一東平", "端一東平", "云合三支平", "見開一歌平", "幫三凡入"}, got)
}

func TestDedupe(t *testing.T) {
	positions := []Position{
		mustParse(t, "幫三凡入"),
		mustParse(t, "幫一東平"),
		MustValidate(mustParse(t, "幫三凡入")), // duplicate tuple, frozen
		mustParse(t, "幫一東平"),
	}

	got := Dedupe(positions)

	assert.Len(t, got, 2)
	assert.Equal(t, "幫一東平", got[0].Descriptor())
	assert.Equal(t, "幫三凡入", got[1].Descriptor())
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}
