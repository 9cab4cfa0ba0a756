// Package builder holds the in-memory team composition state machine driven
// by the CLI. It layers roster rules (six entries max, no duplicate species)
// over the service API and the external species lookup.
package builder

import (
	"context"
	"fmt"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"
)

// State is the current composition state.
type State string

const (
	StateIdle              State = "idle"
	StateSearching         State = "searching"
	StateSearchFound       State = "search-found"
	StateSearchError       State = "search-error"
	StateTeamFull          State = "team-full"
	StateDuplicateRejected State = "duplicate-rejected"
)

// SpeciesLookup resolves species data by name.
type SpeciesLookup interface {
	Lookup(ctx context.Context, name string) (*entities.Species, error)
}

// TeamsAPI is the service surface the builder drives.
type TeamsAPI interface {
	CreateTeam(ctx context.Context, name string, roster []entities.RosterEntry) (*entities.Team, error)
	UpdateTeam(ctx context.Context, teamID, name string, roster []entities.RosterEntry) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	DeleteTeam(ctx context.Context, teamID string) error
}

// Builder is single-goroutine by construction: one user interaction at a time.
type Builder struct {
	lookup SpeciesLookup
	api    TeamsAPI

	state     State
	roster    []entities.RosterEntry
	name      string
	editingID string
	candidate *entities.Species
	teams     []entities.Team
}

// New constructs an idle builder.
func New(lookup SpeciesLookup, api TeamsAPI) *Builder {
	return &Builder{
		lookup: lookup,
		api:    api,
		state:  StateIdle,
		roster: make([]entities.RosterEntry, 0, entities.MaxRosterSize),
	}
}

// State returns the current composition state.
func (b *Builder) State() State { return b.state }

// Roster returns the in-memory roster.
func (b *Builder) Roster() []entities.RosterEntry { return b.roster }

// Candidate returns the last successful search result, if any.
func (b *Builder) Candidate() *entities.Species { return b.candidate }

// Teams returns the last-fetched team list snapshot.
func (b *Builder) Teams() []entities.Team { return b.teams }

// TeamName returns the working team name.
func (b *Builder) TeamName() string { return b.name }

// SetTeamName sets the working team name.
func (b *Builder) SetTeamName(name string) { b.name = name }

// Refresh reloads the team list from the service.
func (b *Builder) Refresh(ctx context.Context) error {
	teams, err := b.api.ListTeams(ctx)
	if err != nil {
		return err
	}
	b.teams = teams
	return nil
}

// Search looks up one candidate species by name.
func (b *Builder) Search(ctx context.Context, term string) (*entities.Species, error) {
	b.state = StateSearching
	b.candidate = nil

	species, err := b.lookup.Lookup(ctx, term)
	if err != nil {
		b.state = StateSearchError
		return nil, err
	}

	b.state = StateSearchFound
	b.candidate = species
	return species, nil
}

// Add appends the current candidate to the roster. Rejected when the roster is
// full or already holds the species; either way the roster is unchanged.
func (b *Builder) Add() error {
	if b.candidate == nil {
		return fmt.Errorf("%w: no candidate to add", entities.ErrInvalidArgument)
	}
	if len(b.roster) >= entities.MaxRosterSize {
		b.state = StateTeamFull
		return entities.ErrTeamFull
	}
	for _, e := range b.roster {
		if e.SpeciesID == b.candidate.ID {
			b.state = StateDuplicateRejected
			return entities.ErrDuplicateSpecies
		}
	}

	b.roster = append(b.roster, entities.RosterEntry{
		SpeciesID: b.candidate.ID,
		Name:      b.candidate.Name,
		Sprite:    b.candidate.Sprite,
		Types:     b.candidate.Types,
	})
	b.candidate = nil
	b.state = StateIdle
	return nil
}

// Remove drops the species from the roster. Always permitted.
func (b *Builder) Remove(speciesID int) {
	kept := b.roster[:0]
	for _, e := range b.roster {
		if e.SpeciesID != speciesID {
			kept = append(kept, e)
		}
	}
	b.roster = kept
	b.state = StateIdle
}

// Save creates or updates the team depending on whether an existing one is
// being edited. On success the working roster and name are cleared and the
// team list is reloaded from the service rather than merged locally.
func (b *Builder) Save(ctx context.Context) (*entities.Team, error) {
	if b.name == "" {
		return nil, fmt.Errorf("%w: team name is required", entities.ErrInvalidArgument)
	}

	var (
		team *entities.Team
		err  error
	)
	if b.editingID != "" {
		team, err = b.api.UpdateTeam(ctx, b.editingID, b.name, b.roster)
	} else {
		team, err = b.api.CreateTeam(ctx, b.name, b.roster)
	}
	if err != nil {
		return nil, err
	}

	b.roster = b.roster[:0]
	b.name = ""
	b.editingID = ""
	b.state = StateIdle

	if err := b.Refresh(ctx); err != nil {
		return team, err
	}
	return team, nil
}

// Load replaces the working roster and name wholesale from the last-fetched
// snapshot. It does not refetch, so another editor's concurrent changes stay
// invisible until the next Refresh.
func (b *Builder) Load(teamID string) error {
	for _, t := range b.teams {
		if t.ID == teamID {
			b.roster = append(b.roster[:0], t.Roster...)
			b.name = t.Name
			b.editingID = t.ID
			b.state = StateIdle
			return nil
		}
	}
	return entities.ErrTeamNotFound
}

// Delete removes a persisted team and refreshes the snapshot.
func (b *Builder) Delete(ctx context.Context, teamID string) error {
	if err := b.api.DeleteTeam(ctx, teamID); err != nil {
		return err
	}
	if b.editingID == teamID {
		b.roster = b.roster[:0]
		b.name = ""
		b.editingID = ""
	}
	return b.Refresh(ctx)
}
