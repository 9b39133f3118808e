package cli

import (
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/spf13/cobra"

	"github.com/TomasUhiaOtero/Kairos/internal/app"
	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exportar la agenda a iCalendar",
		Long: `Exporta todos los eventos y las tareas con fecha a un fichero
iCalendar (.ics) importable en cualquier otro calendario.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			coord, err := hydrated(cmd, c)
			if err != nil {
				return err
			}

			cal := BuildICS(coord.Store().Current(), c.Clock)
			if out == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), cal.Serialize())
				return nil
			}
			if err := os.WriteFile(out, []byte(cal.Serialize()), 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Agenda exportada a %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Fichero de salida (por defecto stdout)")
	return cmd
}

// BuildICS renders a snapshot as an iCalendar document. Timed items use
// local wall-clock times; all-day items use date values. Dateless tasks
// have nothing to anchor them on a calendar and are skipped.
func BuildICS(snap store.Snapshot, clock domain.Clock) *ics.Calendar {
	now := clock.Now()
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Kairos//Agenda//ES")

	for _, e := range snap.Events {
		ev := cal.AddEvent("event-" + e.ID + "@kairos")
		ev.SetDtStampTime(now)
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.AllDay {
			start := parseICSDate(e.StartDate)
			ev.SetAllDayStartAt(start)
			// DTEND is exclusive for all-day events.
			ev.SetAllDayEndAt(parseICSDate(e.EffectiveEndDate()).AddDate(0, 0, 1))
			continue
		}
		ev.SetStartAt(parseICSStamp(e.StartDate, e.StartTime))
		end := parseICSStamp(e.EffectiveEndDate(), e.EndTime)
		if e.EndTime == "" {
			end = parseICSStamp(e.StartDate, e.StartTime).Add(time.Hour)
		}
		ev.SetEndAt(end)
	}

	for _, t := range snap.Tasks {
		if !t.HasDate() {
			continue
		}
		ev := cal.AddEvent("task-" + t.ID + "@kairos")
		ev.SetDtStampTime(now)
		summary := "☐ " + t.Title
		if t.Done {
			summary = "☑ " + t.Title
		}
		ev.SetSummary(summary)
		if g, ok := snap.GroupByID(t.GroupID); ok {
			ev.SetDescription("Grupo: " + g.Title)
		}
		if t.StartTime == "" {
			start := parseICSDate(t.StartDate)
			ev.SetAllDayStartAt(start)
			ev.SetAllDayEndAt(start.AddDate(0, 0, 1))
			continue
		}
		start := parseICSStamp(t.StartDate, t.StartTime)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(30 * time.Minute))
	}

	return cal
}

func parseICSDate(date string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", date, time.Local)
	return t
}

func parseICSStamp(date, tod string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02 15:04", date+" "+tod, time.Local)
	return t
}
