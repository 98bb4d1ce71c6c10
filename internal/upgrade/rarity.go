package upgrade

import (
	"errors"
	"fmt"
)

// ErrUnknownRarity is returned when a name does not match any rarity tier.
var ErrUnknownRarity = errors.New("unknown rarity")

// Rarity is an item's tier. The zero value is not a valid tier.
type Rarity uint8

const (
	RarityCommon Rarity = iota + 1
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
	RarityArtefact
)

var rarityNames = map[Rarity]string{
	RarityCommon:    "common",
	RarityUncommon:  "uncommon",
	RarityRare:      "rare",
	RarityEpic:      "epic",
	RarityLegendary: "legendary",
	RarityArtefact:  "artefact",
}

// AllRarities returns every tier from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary, RarityArtefact}
}

// ParseRarity matches name (case-sensitive) against the known tiers.
func ParseRarity(name string) (Rarity, error) {
	for _, r := range AllRarities() {
		if rarityNames[r] == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRarity, name)
}

// Valid reports whether r is one of the known tiers.
func (r Rarity) Valid() bool {
	_, ok := rarityNames[r]
	return ok
}

func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return "invalid"
}
