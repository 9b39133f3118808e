package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TomasUhiaOtero/Kairos/internal/app"
	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/usecase"
)

// newEventCommand creates the event command and its subcommands.
func newEventCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Gestionar eventos",
	}
	cmd.AddCommand(
		newEventListCommand(c),
		newEventAddCommand(c),
		newEventEditCommand(c),
		newEventMoveCommand(c),
		newEventRmCommand(c),
	)
	return cmd
}

func newEventListCommand(c *app.Container) *cobra.Command {
	var calendarID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar eventos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}

			snap := coord.Store().Current()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tFECHA\tHORA\tTÍTULO\tCALENDARIO")
			for _, e := range snap.Events {
				if calendarID != "" && e.CalendarID != calendarID {
					continue
				}
				hour := e.StartTime
				if e.AllDay {
					hour = "todo el día"
				}
				calTitle := e.CalendarID
				if cal, ok := snap.CalendarByID(e.CalendarID); ok {
					calTitle = cal.Title
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.StartDate, hour, e.Title, calTitle)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&calendarID, "calendar", "", "Filtrar por id de calendario")
	return cmd
}

func newEventAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Calendar    string
		Start       string
		End         string
		StartTime   string
		EndTime     string
		Description string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crear un evento",
		Long: `Crea un evento. Sin horas el evento es de día completo.

Ejemplos:
  kairos event add --title "Dentista" --start 2025-09-02 --start-time 09:00 --end-time 10:00
  kairos event add --title "Vacaciones" --start 2025-09-08 --end 2025-09-12`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}

			end := opts.End
			if end == "" {
				end = opts.Start
			}
			event := domain.Event{
				Title:       opts.Title,
				CalendarID:  opts.Calendar,
				StartDate:   opts.Start,
				EndDate:     end,
				StartTime:   opts.StartTime,
				EndTime:     opts.EndTime,
				AllDay:      opts.StartTime == "" && opts.EndTime == "",
				Description: opts.Description,
			}
			if event.CalendarID == "" {
				if cals := coord.Store().Current().Calendars; len(cals) > 0 {
					event.CalendarID = cals[0].ID
				}
			}

			saved, err := coord.SaveEvent(cmd.Context(), usecase.SaveEventInput{Event: event})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Evento %s creado\n", saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Título del evento")
	cmd.Flags().StringVar(&opts.Calendar, "calendar", "", "Id del calendario (por defecto el primero)")
	cmd.Flags().StringVar(&opts.Start, "start", "", "Fecha de inicio AAAA-MM-DD")
	cmd.Flags().StringVar(&opts.End, "end", "", "Fecha de fin AAAA-MM-DD (por defecto la de inicio)")
	cmd.Flags().StringVar(&opts.StartTime, "start-time", "", "Hora de inicio HH:MM")
	cmd.Flags().StringVar(&opts.EndTime, "end-time", "", "Hora de fin HH:MM")
	cmd.Flags().StringVar(&opts.Description, "desc", "", "Descripción")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newEventEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Calendar    string
		Description string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Editar un evento",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}

			event, ok := coord.Store().Current().EventByID(args[0])
			if !ok {
				return domain.ErrEventNotFound
			}
			if cmd.Flags().Changed("title") {
				event.Title = opts.Title
			}
			if cmd.Flags().Changed("calendar") {
				event.CalendarID = opts.Calendar
			}
			if cmd.Flags().Changed("desc") {
				event.Description = opts.Description
			}

			if _, err := coord.SaveEvent(cmd.Context(), usecase.SaveEventInput{Event: event}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Evento %s actualizado\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Nuevo título")
	cmd.Flags().StringVar(&opts.Calendar, "calendar", "", "Nuevo calendario")
	cmd.Flags().StringVar(&opts.Description, "desc", "", "Nueva descripción")
	return cmd
}

func newEventMoveCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Start     string
		End       string
		StartTime string
		EndTime   string
		AllDay    bool
	}

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Mover un evento a otra fecha",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}

			prior, ok := coord.Store().Current().EventByID(args[0])
			if !ok {
				return domain.ErrEventNotFound
			}
			in := usecase.MoveEventInput{
				ID:        args[0],
				StartDate: opts.Start,
				EndDate:   opts.End,
				StartTime: prior.StartTime,
				EndTime:   prior.EndTime,
				AllDay:    prior.AllDay,
			}
			if in.EndDate == "" {
				in.EndDate = in.StartDate
			}
			if cmd.Flags().Changed("start-time") {
				in.StartTime = opts.StartTime
			}
			if cmd.Flags().Changed("end-time") {
				in.EndTime = opts.EndTime
			}
			if cmd.Flags().Changed("all-day") {
				in.AllDay = opts.AllDay
			}

			if _, err := coord.MoveEvent(cmd.Context(), in); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Evento %s movido a %s\n", args[0], opts.Start)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Start, "start", "", "Nueva fecha de inicio AAAA-MM-DD")
	cmd.Flags().StringVar(&opts.End, "end", "", "Nueva fecha de fin AAAA-MM-DD")
	cmd.Flags().StringVar(&opts.StartTime, "start-time", "", "Nueva hora de inicio HH:MM")
	cmd.Flags().StringVar(&opts.EndTime, "end-time", "", "Nueva hora de fin HH:MM")
	cmd.Flags().BoolVar(&opts.AllDay, "all-day", false, "Marcar como día completo")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newEventRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar un evento",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}
			if err := coord.DeleteEvent(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Evento %s eliminado\n", args[0])
			return nil
		},
	}
	return cmd
}
