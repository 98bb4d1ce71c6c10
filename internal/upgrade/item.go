package upgrade

import "fmt"

// Item is an upgradable item. Its rarity is fixed at creation; only Attempt changes the level.
type Item struct {
	rarity Rarity
	level  int
}

// NewItem creates an item of rarity r at level 0.
func NewItem(r Rarity) Item {
	return Item{rarity: r}
}

// NewItemAt creates an item at the given level, which must be in [0, MaxLevel].
func NewItemAt(r Rarity, level int) (Item, error) {
	if level < 0 || level > MaxLevel {
		return Item{}, fmt.Errorf("%w: %d", ErrLevelOutOfRange, level)
	}
	return Item{rarity: r, level: level}, nil
}

func (it Item) Rarity() Rarity { return it.rarity }
func (it Item) Level() int     { return it.level }

// Terminal reports whether the item reached MaxLevel.
func (it Item) Terminal() bool { return it.level >= MaxLevel }

// Attempt performs one upgrade attempt and reports whether the level went up.
// - At MaxLevel, or with an invalid rarity, nothing happens.
// - A roll in [1,100] at or below the level's chance raises the level by one.
// - Otherwise the level drops by one, never below 0.
func (it *Item) Attempt(rng RandomSource) bool {
	if it.Terminal() {
		return false
	}
	chance, err := Chance(it.rarity, it.level)
	if err != nil {
		return false
	}
	if roll(rng) <= chance {
		it.level++
		return true
	}
	if it.level > 0 {
		it.level--
	}
	return false
}
