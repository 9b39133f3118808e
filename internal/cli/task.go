package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TomasUhiaOtero/Kairos/internal/app"
	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/usecase"
)

// newTaskCommand creates the task command and its subcommands.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Gestionar tareas",
	}
	cmd.AddCommand(
		newTaskListCommand(c),
		newTaskAddCommand(c),
		newTaskDoneCommand(c),
		newTaskMoveCommand(c),
		newTaskRmCommand(c),
	)
	return cmd
}

func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Group   string
		Pending bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar tareas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}

			snap := coord.Store().Current()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tESTADO\tFECHA\tTÍTULO\tGRUPO")
			for _, t := range snap.Tasks {
				if opts.Group != "" && t.GroupID != opts.Group {
					continue
				}
				if opts.Pending && t.Done {
					continue
				}
				state := "☐"
				if t.Done {
					state = "☑"
				}
				date := t.StartDate
				if date == "" {
					date = "sin fecha"
				}
				groupTitle := t.GroupID
				if g, ok := snap.GroupByID(t.GroupID); ok {
					groupTitle = g.Title
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, state, date, t.Title, groupTitle)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.Group, "group", "", "Filtrar por id de grupo")
	cmd.Flags().BoolVar(&opts.Pending, "pending", false, "Solo tareas sin completar")
	return cmd
}

func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title string
		Group string
		Date  string
		Time  string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crear una tarea",
		Long: `Crea una tarea. Sin --date queda sin fecha y vive en el panel
de pendientes en vez de en el calendario.

Ejemplos:
  kairos task add --title "Comprar pan" --date 2025-09-02
  kairos task add --title "Llamar al taller" --group 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}

			task := domain.Task{
				Title:     opts.Title,
				GroupID:   opts.Group,
				StartDate: opts.Date,
				StartTime: opts.Time,
			}
			if task.GroupID == "" {
				if groups := coord.Store().Current().TaskGroups; len(groups) > 0 {
					task.GroupID = groups[0].ID
				}
			}

			saved, err := coord.SaveTask(cmd.Context(), usecase.SaveTaskInput{Task: task})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tarea %s creada\n", saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Título de la tarea")
	cmd.Flags().StringVar(&opts.Group, "group", "", "Id del grupo (por defecto el primero)")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Fecha AAAA-MM-DD")
	cmd.Flags().StringVar(&opts.Time, "time", "", "Hora HH:MM")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTaskDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Alternar el estado de una tarea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}
			task, err := coord.ToggleTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			state := "pendiente"
			if task.Done {
				state = "completada"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tarea %s %s\n", args[0], state)
			return nil
		},
	}
	return cmd
}

func newTaskMoveCommand(c *app.Container) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Mover una tarea a otro grupo",
		Long: `Mueve una tarea a otro grupo. Si el backend no permite cambiar el
grupo directamente, la tarea se recrea en el grupo destino y se borra
la copia original.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}
			moved, err := coord.ReassignTask(cmd.Context(), args[0], group)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tarea %s en el grupo %s\n", moved.ID, moved.GroupID)
			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Id del grupo destino")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}

func newTaskRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar una tarea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}
			if err := coord.DeleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tarea %s eliminada\n", args[0])
			return nil
		},
	}
	return cmd
}
