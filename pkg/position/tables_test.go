package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidValues(t *testing.T) {
	t.Run("inventory sizes", func(t *testing.T) {
		assert.Len(t, ValidValues(AxisInitial), 38)
		assert.Len(t, ValidValues(AxisMedial), 3)
		assert.Len(t, ValidValues(AxisRank), 4)
		assert.Len(t, ValidValues(AxisRhyme), 58)
		assert.Len(t, ValidValues(AxisTone), 4)
	})

	t.Run("returns a copy", func(t *testing.T) {
		a := ValidValues(AxisTone)
		a[0] = "mutated"
		assert.Equal(t, ToneLevel, ValidValues(AxisTone)[0])
	})

	t.Run("unknown axis", func(t *testing.T) {
		assert.Nil(t, ValidValues(Axis("nonsense")))
	})
}

func TestTableCompleteness(t *testing.T) {
	t.Run("every initial has ranks, voicing, and place", func(t *testing.T) {
		for _, initial := range ValidValues(AxisInitial) {
			assert.NotEmpty(t, ranksByInitial[initial], "ranks for %s", initial)
			assert.NotEmpty(t, voicingByInitial[initial], "voicing for %s", initial)
			assert.NotEmpty(t, placeByInitial[initial], "place for %s", initial)
		}
	})

	t.Run("every rhyme has ranks, a family, and a medial class", func(t *testing.T) {
		classes := neutralRhymes + openOnlyRhymes + closedOnlyRhymes + pairedRhymes
		for _, rhyme := range ValidValues(AxisRhyme) {
			assert.NotEmpty(t, ranksByRhyme[rhyme], "ranks for %s", rhyme)
			assert.NotEmpty(t, familyByRhyme[rhyme], "family for %s", rhyme)
			assert.Contains(t, classes, rhyme, "medial class for %s", rhyme)
		}
	})

	t.Run("medial classes are disjoint", func(t *testing.T) {
		classes := neutralRhymes + openOnlyRhymes + closedOnlyRhymes + pairedRhymes
		seen := map[rune]bool{}
		for _, r := range classes {
			assert.False(t, seen[r], "rhyme %c appears in two classes", r)
			seen[r] = true
		}
	})

	t.Run("only 來 and 日 lack a group", func(t *testing.T) {
		for _, initial := range ValidValues(AxisInitial) {
			_, ok := groupByInitial[initial]
			if initial == "來" || initial == "日" {
				assert.False(t, ok, "%s should be groupless", initial)
			} else {
				assert.True(t, ok, "group for %s", initial)
			}
		}
	})
}

func TestCompatible(t *testing.T) {
	valid := []string{
		"幫三凡入",
		"端一東平",
		"定開四脂去", // marginal, whitelisted
		"羣開三支平",
		"云合三支平",
		"云合三虞平",
		"影開三幽上",
		"生合三真入",
		"生開二庚上",
		"匣一侯平",
	}
	for _, descriptor := range valid {
		t.Run(descriptor, func(t *testing.T) {
			p, err := Parse(descriptor)
			require.NoError(t, err)
			assert.True(t, Compatible(p.Initial(), p.Medial(), p.Rank(), p.Rhyme(), p.Tone()))
		})
	}

	invalid := []struct {
		descriptor string
		reason     string
	}{
		{"精開三祭入", "祭 is an open rhyme and cannot carry the entering tone"},
		{"端開三脂去", "端 does not occur at rank 3"},
		{"明合一魂平", "labials are always medial-neutral"},
		{"端開一東平", "東 is medial-neutral"},
		{"見三魚平", "魚 requires the open medial"},
		{"見開一模平", "模 requires the closed medial"},
		{"章三麻平", "麻 pairs both medials; one must be written"},
		{"見合三幽上", "幽 is open-only"},
		{"幫三之平", "之 excludes labials"},
		{"初開三真去", "真 open rejects the 莊 group"},
		{"知開三庚平", "庚 outside rank 2 requires a grave initial"},
		{"莊開三清平", "清 rejects the 莊 group"},
		{"端開三山平", "山 is a rank-2 rhyme"},
	}
	for _, tt := range invalid {
		t.Run(tt.descriptor, func(t *testing.T) {
			p, err := Parse(tt.descriptor)
			require.NoError(t, err, "descriptor must be well-formed")
			assert.False(t, Compatible(p.Initial(), p.Medial(), p.Rank(), p.Rhyme(), p.Tone()),
				tt.reason)
		})
	}
}

func TestCompatibleRejectsUnknownValues(t *testing.T) {
	assert.False(t, Compatible("帮", MedialNeutral, Rank1, "東", ToneLevel))
	assert.False(t, Compatible("幫", "中", Rank1, "東", ToneLevel))
	assert.False(t, Compatible("幫", MedialNeutral, "五", "東", ToneLevel))
	assert.False(t, Compatible("幫", MedialNeutral, Rank1, "东", ToneLevel))
	assert.False(t, Compatible("幫", MedialNeutral, Rank1, "東", "促"))
}

func TestRankThreeOnlyInitialsAgreeWithPairs(t *testing.T) {
	for _, initial := range splitRunes(rankThreeOnlyInitials) {
		assert.Equal(t, Rank3, ranksByInitial[initial], "ranks for %s", initial)
	}
}
