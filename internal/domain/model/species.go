package model

import (
	"errors"
	"fmt"
)

// ErrSpeciesNotFound is returned by SpeciesName for an index outside the catalog.
var ErrSpeciesNotFound = errors.New("species not found")

// speciesNames is the fixed species catalog. The order is part of the payload
// contract: producers encode counts by position in this list.
var speciesNames = [...]string{
	"Anchovie",
	"Anglerfish",
	"Arctic Char",
	"Ballan Lizardfish",
	"Ballan Wrasse",
	"Barreleye Fish",
	"Black Bream",
	"Black Dragonfish",
	"Clown Fish",
	"Cod",
	"Dolphinfish",
	"Gulper Eel",
	"Haddock",
	"Hake",
	"Herring",
	"John Dory",
	"Labrus",
	"Lanternfish",
	"Mackerel",
	"Midshipman",
	"Perch",
	"Pike",
	"Pinecone Fish",
	"Pollock",
	"Red Mullet",
	"Rockfish",
	"Sablefish",
	"Salmon",
	"Sardine",
	"Scad",
	"Sea Bream",
	"Sea Halibut",
	"Sea Piranha",
	"Seabass",
	"Slimehead",
	"Snapper",
	"Snapper (Gold)",
	"Snook",
	"Spadefish",
	"Trout",
	"Tubeshoulders Fish",
	"Viperfish",
	"Yellowfin Tuna",
	"Blue Crab",
	"Brown Box Crab",
	"Coconut Crab",
	"Dungeness Crab",
	"Furry Lobster",
	"Homarus Americanus",
	"Homarus Gammarus",
	"Horseshoe Crab",
	"Jasus Edwardsii",
	"Jasus Lalandii",
	"Jonah Crab",
	"King Crab",
	"Mud Crab",
	"Munida Lobster",
	"Ornate Rock Lobster",
	"Panulirus Interruptus",
	"Red King Crab",
	"Reef Lobster",
	"Slipper Lobster",
	"Snow Crab",
	"Southern Rock Lobster",
	"Spider Crab",
	"Spiny Lobster",
	"Stone Crab",
}

// SpeciesCount returns the number of species in the catalog.
func SpeciesCount() int {
	return len(speciesNames)
}

// SpeciesName returns the display name for a catalog index.
// Returns ErrSpeciesNotFound if index is negative or past the end of the catalog.
func SpeciesName(index int) (string, error) {
	if index < 0 || index >= len(speciesNames) {
		return "", fmt.Errorf("index %d: %w", index, ErrSpeciesNotFound)
	}
	return speciesNames[index], nil
}

// SpeciesNames returns a copy of the catalog in index order.
func SpeciesNames() []string {
	names := make([]string, len(speciesNames))
	copy(names, speciesNames[:])
	return names
}
