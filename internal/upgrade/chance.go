package upgrade

import (
	"errors"
	"fmt"
)

const (
	// MaxLevel is the terminal level; no attempt is made from it.
	MaxLevel = 10
	// RollSides is the size of the uniform roll compared against a chance.
	RollSides = 100
)

var ErrLevelOutOfRange = errors.New("level out of range")

// chanceTable holds the success percentage per rarity, indexed by current level.
var chanceTable = map[Rarity][MaxLevel]int{
	RarityCommon:    {90, 90, 80, 80, 70, 70, 60, 60, 50, 50},
	RarityUncommon:  {90, 80, 80, 70, 70, 60, 60, 50, 50, 40},
	RarityRare:      {90, 80, 80, 70, 70, 60, 50, 50, 40, 40},
	RarityEpic:      {90, 80, 70, 60, 60, 50, 50, 40, 40, 30},
	RarityLegendary: {90, 80, 70, 60, 50, 50, 40, 30, 30, 20},
	RarityArtefact:  {90, 80, 70, 60, 50, 50, 40, 30, 20, 10},
}

// Chance returns the percentage (out of 100) that an attempt from level succeeds.
// level must be in [0, MaxLevel-1]; the terminal level has no chance.
func Chance(r Rarity, level int) (int, error) {
	row, ok := chanceTable[r]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRarity, r)
	}
	if level < 0 || level >= MaxLevel {
		return 0, fmt.Errorf("%w: %d", ErrLevelOutOfRange, level)
	}
	return row[level], nil
}

// TableRow is one tier's chances in level order.
type TableRow struct {
	Rarity  Rarity `json:"-" yaml:"-"`
	Name    string `json:"rarity" yaml:"rarity"`
	Chances []int  `json:"chances" yaml:"chances"`
}

// Table returns a copy of the whole chance table in tier order.
func Table() []TableRow {
	rows := make([]TableRow, 0, len(chanceTable))
	for _, r := range AllRarities() {
		row := chanceTable[r]
		rows = append(rows, TableRow{Rarity: r, Name: r.String(), Chances: append([]int(nil), row[:]...)})
	}
	return rows
}
