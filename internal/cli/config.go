package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TomasUhiaOtero/Kairos/internal/app"
)

// newConfigCommand creates the config command and its subcommands.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Gestionar la configuración",
	}
	cmd.AddCommand(
		newConfigInitCommand(c),
		newConfigPathCommand(c),
	)
	return cmd
}

func newConfigInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Crear un fichero de configuración de ejemplo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.ConfigManager.Init(); err != nil {
				if errors.Is(err, os.ErrExist) {
					return fmt.Errorf("ya existe %s", c.ConfigManager.Info().Path)
				}
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuración creada en %s\n", c.ConfigManager.Info().Path)
			return nil
		},
	}
}

func newConfigPathCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Mostrar la ruta del fichero de configuración",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := c.ConfigManager.Info()
			state := "no existe todavía"
			if info.Exists {
				state = "existe"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", info.Path, state)
			return nil
		},
	}
}
