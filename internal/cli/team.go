package cli

import (
	"fmt"
	"strings"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/builder"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"

	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <species>",
		Short: "Look up one species by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := builder.New(opts.speciesClient(), opts.apiClient())
			species, err := b.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "#%d %s [%s]\n%s\n",
				species.ID, species.Name, strings.Join(species.Types, ", "), species.Sprite)
			return nil
		},
	}
}

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your saved teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := builder.New(opts.speciesClient(), opts.apiClient())
			if err := b.Refresh(cmd.Context()); err != nil {
				return err
			}
			for _, t := range b.Teams() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", t.ID, t.Name)
				for _, e := range t.Roster {
					fmt.Fprintf(cmd.OutOrStdout(), "    #%d %s [%s]\n", e.SpeciesID, e.Name, strings.Join(e.Types, ", "))
				}
			}
			return nil
		},
	}
}

// NewBuildCommand creates the build command: search each species, add it to
// the roster, then save the team.
func NewBuildCommand(opts *RootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "build <species>...",
		Short: "Assemble and save a new team",
		Args:  cobra.RangeArgs(1, entities.MaxRosterSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := builder.New(opts.speciesClient(), opts.apiClient())
			b.SetTeamName(name)

			for _, term := range args {
				if _, err := b.Search(cmd.Context(), term); err != nil {
					return fmt.Errorf("search %q: %w", term, err)
				}
				if err := b.Add(); err != nil {
					return fmt.Errorf("add %q: %w", term, err)
				}
			}

			team, err := b.Save(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved team %s (%s) with %d pokemon\n", team.Name, team.ID, len(team.Roster))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "team name (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// NewEditCommand creates the edit command: load an existing team from the
// fetched snapshot, apply roster changes, then save.
func NewEditCommand(opts *RootOptions) *cobra.Command {
	var (
		name   string
		add    []string
		remove []int
	)

	cmd := &cobra.Command{
		Use:   "edit <team-id>",
		Short: "Modify and save an existing team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := builder.New(opts.speciesClient(), opts.apiClient())
			if err := b.Refresh(cmd.Context()); err != nil {
				return err
			}
			if err := b.Load(args[0]); err != nil {
				return err
			}

			for _, id := range remove {
				b.Remove(id)
			}
			for _, term := range add {
				if _, err := b.Search(cmd.Context(), term); err != nil {
					return fmt.Errorf("search %q: %w", term, err)
				}
				if err := b.Add(); err != nil {
					return fmt.Errorf("add %q: %w", term, err)
				}
			}
			if name != "" {
				b.SetTeamName(name)
			}

			team, err := b.Save(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved team %s (%s) with %d pokemon\n", team.Name, team.ID, len(team.Roster))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new team name")
	cmd.Flags().StringSliceVar(&add, "add", nil, "species to add")
	cmd.Flags().IntSliceVar(&remove, "remove", nil, "species ids to remove")
	return cmd
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <team-id>",
		Short: "Delete a saved team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := builder.New(opts.speciesClient(), opts.apiClient())
			if err := b.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
