// Package entities contains core business entities.
package entities

// MaxRosterSize is the largest roster a team may hold.
const MaxRosterSize = 6

// Team is a named, user-owned collection of roster entries.
type Team struct {
	ID      string
	Name    string
	OwnerID string
	Roster  []RosterEntry
}

// RosterEntry is one species selection within a team, with cached display
// metadata. It has no lifecycle outside its parent team: every roster update
// deletes and recreates the whole set.
type RosterEntry struct {
	SpeciesID int
	Name      string
	Sprite    string
	Types     []string
}
