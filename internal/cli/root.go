// Package cli implements the teamctl command set.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/config"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/client"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/pokeapi"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Server    string
	TokenFile string
}

// NewRootCommand creates the root command for teamctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "teamctl",
		Short:         "Build and manage saved Pokemon teams",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultTokenFile := ".teamctl-token"
	if home, err := os.UserHomeDir(); err == nil {
		defaultTokenFile = filepath.Join(home, ".teamctl-token")
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", "http://localhost:8080", "service base URL")
	cmd.PersistentFlags().StringVar(&opts.TokenFile, "token-file", defaultTokenFile, "path to the cached session token")

	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewBuildCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))

	return cmd
}

// apiClient builds a service client with the cached token, if any.
func (o *RootOptions) apiClient() *client.Client {
	token, _ := o.readToken()
	return client.New(o.Server, token)
}

// speciesClient builds the external lookup client from environment config
// defaults.
func (o *RootOptions) speciesClient() *pokeapi.Client {
	return pokeapi.NewClient(&config.Config{
		PokeAPI: config.PokeAPIConfig{
			BaseURL: "https://pokeapi.co/api/v2",
			Timeout: 5 * time.Second,
		},
	})
}

func (o *RootOptions) readToken() (string, error) {
	data, err := os.ReadFile(o.TokenFile)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (o *RootOptions) writeToken(token string) error {
	if err := os.WriteFile(o.TokenFile, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (o *RootOptions) clearToken() {
	_ = os.Remove(o.TokenFile)
}
