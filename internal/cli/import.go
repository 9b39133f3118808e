package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/TomasUhiaOtero/Kairos/internal/app"
	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/usecase"
)

// importDoc is the YAML shape accepted by `kairos import`.
type importDoc struct {
	Calendars []importCalendar `yaml:"calendars"`
	Groups    []importGroup    `yaml:"groups"`
}

type importCalendar struct {
	Title  string        `yaml:"title"`
	Color  string        `yaml:"color"`
	Events []importEvent `yaml:"events"`
}

type importEvent struct {
	Title       string `yaml:"title"`
	Start       string `yaml:"start"` // AAAA-MM-DD
	End         string `yaml:"end"`
	StartTime   string `yaml:"start_time"` // HH:MM
	EndTime     string `yaml:"end_time"`
	Description string `yaml:"description"`
}

type importGroup struct {
	Title string       `yaml:"title"`
	Color string       `yaml:"color"`
	Tasks []importTask `yaml:"tasks"`
}

type importTask struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	Time  string `yaml:"time"`
	Done  bool   `yaml:"done"`
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <fichero.yaml>",
		Short: "Importar calendarios, grupos, eventos y tareas desde YAML",
		Long: `Importa una agenda desde un fichero YAML. Cada calendario lleva sus
eventos anidados y cada grupo sus tareas:

  calendars:
    - title: Personal
      color: "#3788d8"
      events:
        - title: Dentista
          start: 2025-09-02
          start_time: "09:00"
          end_time: "10:00"
  groups:
    - title: Casa
      color: "#16a34a"
      tasks:
        - title: Comprar pan
          date: 2025-09-02`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("leer %s: %w", args[0], err)
			}
			doc, err := ParseImport(data)
			if err != nil {
				return err
			}

			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}
			created, err := RunImport(cmd.Context(), coord, doc, c.Config.UI.DefaultCalendarColor, c.Config.UI.DefaultTaskColor)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Importados %d elementos\n", created)
			return nil
		},
	}
	return cmd
}

// ParseImport decodes and validates an import document.
func ParseImport(data []byte) (importDoc, error) {
	var doc importDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return importDoc{}, fmt.Errorf("YAML inválido: %w", err)
	}
	for _, cal := range doc.Calendars {
		if cal.Title == "" {
			return importDoc{}, fmt.Errorf("calendario sin título")
		}
		for _, e := range cal.Events {
			if e.Title == "" || e.Start == "" {
				return importDoc{}, fmt.Errorf("evento sin título o fecha en %q", cal.Title)
			}
		}
	}
	for _, g := range doc.Groups {
		if g.Title == "" {
			return importDoc{}, fmt.Errorf("grupo sin título")
		}
		for _, t := range g.Tasks {
			if t.Title == "" {
				return importDoc{}, fmt.Errorf("tarea sin título en %q", g.Title)
			}
		}
	}
	return doc, nil
}

// RunImport creates the document's entities through the coordinator.
// Each parent is created first so its children attach to the durable id
// the backend echoes. It returns the number of entities created.
func RunImport(ctx context.Context, coord *usecase.Coordinator, doc importDoc, calColor, taskColor string) (int, error) {
	created := 0

	for _, cal := range doc.Calendars {
		color := cal.Color
		if color == "" {
			color = calColor
		}
		saved, err := coord.SaveCalendar(ctx, domain.Calendar{Title: cal.Title, Color: color})
		if err != nil {
			return created, err
		}
		created++

		for _, e := range cal.Events {
			end := e.End
			if end == "" {
				end = e.Start
			}
			_, err := coord.SaveEvent(ctx, usecase.SaveEventInput{Event: domain.Event{
				Title:       e.Title,
				CalendarID:  saved.ID,
				StartDate:   e.Start,
				EndDate:     end,
				StartTime:   e.StartTime,
				EndTime:     e.EndTime,
				AllDay:      e.StartTime == "" && e.EndTime == "",
				Description: e.Description,
			}})
			if err != nil {
				return created, err
			}
			created++
		}
	}

	for _, g := range doc.Groups {
		color := g.Color
		if color == "" {
			color = taskColor
		}
		saved, err := coord.SaveTaskGroup(ctx, domain.TaskGroup{Title: g.Title, Color: color})
		if err != nil {
			return created, err
		}
		created++

		for _, t := range g.Tasks {
			task, err := coord.SaveTask(ctx, usecase.SaveTaskInput{Task: domain.Task{
				Title:     t.Title,
				GroupID:   saved.ID,
				StartDate: t.Date,
				StartTime: t.Time,
			}})
			if err != nil {
				return created, err
			}
			if t.Done {
				if _, err := coord.ToggleTask(ctx, task.ID); err != nil {
					return created, err
				}
			}
			created++
		}
	}

	return created, nil
}
