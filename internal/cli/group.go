package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TomasUhiaOtero/Kairos/internal/app"
	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

// newGroupCommand creates the group command and its subcommands.
func newGroupCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Gestionar grupos de tareas",
	}
	cmd.AddCommand(
		newGroupListCommand(c),
		newGroupAddCommand(c),
		newGroupRmCommand(c),
	)
	return cmd
}

func newGroupListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listar grupos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}

			snap := coord.Store().Current()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tCOLOR\tTÍTULO\tTAREAS\tPENDIENTES")
			for _, g := range snap.TaskGroups {
				total, open := 0, 0
				for _, t := range snap.Tasks {
					if t.GroupID != g.ID {
						continue
					}
					total++
					if !t.Done {
						open++
					}
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", g.ID, g.Color, g.Title, total, open)
			}
			return w.Flush()
		},
	}
}

func newGroupAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title string
		Color string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crear un grupo de tareas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}
			color := opts.Color
			if color == "" {
				color = c.Config.UI.DefaultTaskColor
			}
			saved, err := coord.SaveTaskGroup(cmd.Context(), domain.TaskGroup{Title: opts.Title, Color: color})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Grupo %s creado\n", saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Título del grupo")
	cmd.Flags().StringVar(&opts.Color, "color", "", "Color hex (#rrggbb)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newGroupRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar un grupo y sus tareas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}
			if err := coord.DeleteTaskGroup(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Grupo %s eliminado\n", args[0])
			return nil
		},
	}
}
