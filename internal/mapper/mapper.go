// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"fmt"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"
)

// PokemonDTO is the wire shape of one roster entry. On input either PokemonId
// or Id may carry the species reference; output always sets PokemonId. The two
// accepted input spellings exist because saved entries and fresh search
// results historically used different field names.
type PokemonDTO struct {
	PokemonID *int     `json:"pokemonId,omitempty"`
	ID        *int     `json:"id,omitempty"`
	Name      string   `json:"name"`
	Sprite    string   `json:"sprite"`
	Types     []string `json:"types"`
}

// TeamDTO is the wire shape of a hydrated team.
type TeamDTO struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	UserID  string       `json:"userId"`
	Pokemon []PokemonDTO `json:"pokemon"`
}

// TeamRequest is the body of create and update calls.
type TeamRequest struct {
	Name    string       `json:"name"`
	Pokemon []PokemonDTO `json:"pokemon"`
}

// FromTeamRequest normalizes the incoming roster to canonical entries. Each
// item resolves to exactly one species id: pokemonId when present, id
// otherwise. An item carrying neither is rejected.
func FromTeamRequest(req TeamRequest) ([]entities.RosterEntry, error) {
	roster := make([]entities.RosterEntry, 0, len(req.Pokemon))
	for i, p := range req.Pokemon {
		var speciesID int
		switch {
		case p.PokemonID != nil:
			speciesID = *p.PokemonID
		case p.ID != nil:
			speciesID = *p.ID
		default:
			return nil, fmt.Errorf("%w: pokemon[%d] has no species reference", entities.ErrInvalidArgument, i)
		}

		roster = append(roster, entities.RosterEntry{
			SpeciesID: speciesID,
			Name:      p.Name,
			Sprite:    p.Sprite,
			Types:     p.Types,
		})
	}
	return roster, nil
}

// ToTeamDTO maps a hydrated team to the wire shape.
func ToTeamDTO(team entities.Team) TeamDTO {
	pokemon := make([]PokemonDTO, 0, len(team.Roster))
	for _, e := range team.Roster {
		speciesID := e.SpeciesID
		pokemon = append(pokemon, PokemonDTO{
			PokemonID: &speciesID,
			Name:      e.Name,
			Sprite:    e.Sprite,
			Types:     e.Types,
		})
	}

	return TeamDTO{
		ID:      team.ID,
		Name:    team.Name,
		UserID:  team.OwnerID,
		Pokemon: pokemon,
	}
}

// ToTeamDTOList maps a slice of teams to the wire shape.
func ToTeamDTOList(teams []entities.Team) []TeamDTO {
	res := make([]TeamDTO, 0, len(teams))
	for _, t := range teams {
		res = append(res, ToTeamDTO(t))
	}
	return res
}

// ToDomainTeam maps a wire team back to the domain model. Used by the API
// client when loading the last-fetched snapshot into the builder.
func ToDomainTeam(dto TeamDTO) (entities.Team, error) {
	roster, err := FromTeamRequest(TeamRequest{Name: dto.Name, Pokemon: dto.Pokemon})
	if err != nil {
		return entities.Team{}, err
	}
	return entities.Team{
		ID:      dto.ID,
		Name:    dto.Name,
		OwnerID: dto.UserID,
		Roster:  roster,
	}, nil
}
