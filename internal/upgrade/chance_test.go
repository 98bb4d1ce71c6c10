package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChanceTableValues(t *testing.T) {
	want := map[Rarity][]int{
		RarityCommon:    {90, 90, 80, 80, 70, 70, 60, 60, 50, 50},
		RarityUncommon:  {90, 80, 80, 70, 70, 60, 60, 50, 50, 40},
		RarityRare:      {90, 80, 80, 70, 70, 60, 50, 50, 40, 40},
		RarityEpic:      {90, 80, 70, 60, 60, 50, 50, 40, 40, 30},
		RarityLegendary: {90, 80, 70, 60, 50, 50, 40, 30, 30, 20},
		RarityArtefact:  {90, 80, 70, 60, 50, 50, 40, 30, 20, 10},
	}
	for r, chances := range want {
		for level, pct := range chances {
			got, err := Chance(r, level)
			require.NoError(t, err)
			assert.Equal(t, pct, got, "%s level %d", r, level)
		}
	}
}

func TestChanceErrors(t *testing.T) {
	_, err := Chance(Rarity(0), 0)
	assert.ErrorIs(t, err, ErrUnknownRarity)

	_, err = Chance(RarityCommon, MaxLevel)
	assert.ErrorIs(t, err, ErrLevelOutOfRange)

	_, err = Chance(RarityCommon, -1)
	assert.ErrorIs(t, err, ErrLevelOutOfRange)
}

func TestTableIsACopy(t *testing.T) {
	rows := Table()
	require.Len(t, rows, 6)
	assert.Equal(t, "common", rows[0].Name)
	assert.Equal(t, "artefact", rows[5].Name)

	rows[0].Chances[0] = 1
	got, err := Chance(RarityCommon, 0)
	require.NoError(t, err)
	assert.Equal(t, 90, got)
}

func TestParseRarity(t *testing.T) {
	for _, r := range AllRarities() {
		got, err := ParseRarity(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	for _, name := range []string{"unknown_tier", "Common", "", "invalid"} {
		r, err := ParseRarity(name)
		assert.ErrorIs(t, err, ErrUnknownRarity, name)
		assert.False(t, r.Valid())
	}
}
