package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TomasUhiaOtero/Kairos/internal/app"
	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

// newCalendarCommand creates the calendar command and its subcommands.
func newCalendarCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Gestionar calendarios",
	}
	cmd.AddCommand(
		newCalendarListCommand(c),
		newCalendarAddCommand(c),
		newCalendarRmCommand(c),
	)
	return cmd
}

func newCalendarListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listar calendarios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}

			snap := coord.Store().Current()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tCOLOR\tTÍTULO\tEVENTOS")
			for _, cal := range snap.Calendars {
				count := 0
				for _, e := range snap.Events {
					if e.CalendarID == cal.ID {
						count++
					}
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", cal.ID, cal.Color, cal.Title, count)
			}
			return w.Flush()
		},
	}
}

func newCalendarAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title string
		Color string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crear un calendario",
		RunE: func(cmd *cobra.Command, _ []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}
			color := opts.Color
			if color == "" {
				color = c.Config.UI.DefaultCalendarColor
			}
			saved, err := coord.SaveCalendar(cmd.Context(), domain.Calendar{Title: opts.Title, Color: color})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Calendario %s creado\n", saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Título del calendario")
	cmd.Flags().StringVar(&opts.Color, "color", "", "Color hex (#rrggbb)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newCalendarRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar un calendario y sus eventos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}
			if err := coord.DeleteCalendar(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Calendario %s eliminado\n", args[0])
			return nil
		},
	}
}
