// Package cli provides the command-line interface for Kairos.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/TomasUhiaOtero/Kairos/internal/app"
	"github.com/TomasUhiaOtero/Kairos/internal/grid"
	"github.com/TomasUhiaOtero/Kairos/internal/infra/logging"
	"github.com/TomasUhiaOtero/Kairos/internal/tui"
	"github.com/TomasUhiaOtero/Kairos/internal/usecase"
)

// Command group IDs.
const (
	groupData   = "data"
	groupServer = "server"
	groupSetup  = "setup"
)

// launchTUIFunc is a function variable so tests can stub out the TUI.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for kairos.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "kairos",
		Short: "Agenda personal de eventos y tareas",
		Long: `kairos es una agenda personal: calendarios con eventos y grupos
de tareas, sincronizados contra el backend con edición optimista.
Sin argumentos abre la interfaz de calendario en la terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupData, Title: "Datos:"},
		&cobra.Group{ID: groupServer, Title: "Servidor:"},
		&cobra.Group{ID: groupSetup, Title: "Configuración:"},
	)

	eventCmd := newEventCommand(c)
	eventCmd.GroupID = groupData

	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupData

	calendarCmd := newCalendarCommand(c)
	calendarCmd.GroupID = groupData

	groupCmd := newGroupCommand(c)
	groupCmd.GroupID = groupData

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupData

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupData

	serveCmd := newServeCommand()
	serveCmd.GroupID = groupServer

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		eventCmd,
		taskCmd,
		calendarCmd,
		groupCmd,
		exportCmd,
		importCmd,
		serveCmd,
		configCmd,
	)

	return root
}

// launchTUI rebinds the coordinator's notifications onto the TUI status
// line, silences the console log sink and hands the terminal over.
func launchTUI(c *app.Container) error {
	logging.Init(logging.Options{
		Level:        c.Config.Log.Level,
		Dir:          c.Config.Log.Dir,
		ConsoleQuiet: true,
	})
	relay := tui.NewRelay()
	coord := c.CoordinatorWith(relay)
	return tui.Run(coord, grid.NewGestures(coord), c.Clock, relay)
}

// hydrated fetches remote state before a data command runs against it.
func hydrated(cmd *cobra.Command, c *app.Container) (*usecase.Coordinator, error) {
	coord := c.Coordinator()
	if err := coord.Hydrate(cmd.Context()); err != nil {
		return nil, err
	}
	return coord, nil
}
