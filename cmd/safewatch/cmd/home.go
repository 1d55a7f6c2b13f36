package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"safewatch/cmd/safewatch/cmd/types"
	"safewatch/internal/domain/profile"
	"safewatch/internal/domain/stats"
)

var (
	watch         bool
	chronological bool
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Resumen del turno",
	Long: `Muestra el resumen del turno: rondas e incidentes de hoy, totales, horas
de turno y la actividad reciente.

Con --watch el resumen se actualiza cada REFRESH_INTERVAL_SECONDS segundos
hasta Ctrl+C.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, username, err := types.Session(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		opts := stats.FeedOptions{Chronological: chronological}

		render := func(ctx context.Context) error {
			d, err := app.Dashboard(ctx, opts)
			if err != nil {
				return types.UserError(err)
			}
			if types.JSONOutput(cmd) {
				return types.PrintJSON(out, d)
			}
			renderHome(out, profile.DisplayName(username), d)
			return nil
		}

		if err := render(cmd.Context()); err != nil {
			return err
		}
		if !watch {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c := cron.New()
		schedule := fmt.Sprintf("@every %ds", cfg.RefreshInterval)
		if _, err := c.AddFunc(schedule, func() {
			fmt.Fprintln(out)
			if err := render(ctx); err != nil {
				log.Error("Ошибка обновления сводки", "error", err)
			}
		}); err != nil {
			return fmt.Errorf("programación inválida %q: %w", schedule, err)
		}

		c.Start()
		log.Debug("dashboard refresh scheduled", "schedule", schedule)
		<-ctx.Done()
		<-c.Stop().Done()
		return nil
	},
}

func renderHome(out io.Writer, name string, d stats.Dashboard) {
	fmt.Fprintf(out, "Hola, %s\n", name)
	fmt.Fprintf(out, "%s\n\n", d.GeneratedAt.Format("02/01/2006 15:04"))

	fmt.Fprintf(out, "Rondas hoy:      %d\n", d.RoundsToday)
	fmt.Fprintf(out, "Incidentes hoy:  %d\n", d.IncidentsToday)
	fmt.Fprintf(out, "Total rondas:    %d\n", d.TotalRounds)
	fmt.Fprintf(out, "Total incidentes: %s %s\n", levelColor(d.IncidentLevel, fmt.Sprint(d.TotalIncidents)), trendMark(d.IncidentTrend))
	fmt.Fprintf(out, "Horas de turno:  %.1f\n\n", d.ShiftHours)

	fmt.Fprintln(out, "Actividad reciente")
	if len(d.Activity) == 0 {
		fmt.Fprintln(out, "  Sin actividad registrada")
		return
	}
	for _, item := range d.Activity {
		fmt.Fprintf(out, "  [%s] %s · %s (%s)\n",
			item.Kind.Label(), item.Description, item.Time, priorityColor(item.EffectivePriority()))
	}
}

func levelColor(level, s string) string {
	switch level {
	case stats.LevelDanger:
		return color.RedString(s)
	case stats.LevelWarning:
		return color.YellowString(s)
	default:
		return color.GreenString(s)
	}
}

func trendMark(t stats.Trend) string {
	switch t.Class {
	case "trend-up":
		return "↑"
	case "trend-down":
		return "↓"
	default:
		return "~"
	}
}

func priorityColor(p stats.Priority) string {
	switch p {
	case stats.PriorityHigh:
		return color.RedString(string(p))
	case stats.PriorityMedium:
		return color.YellowString(string(p))
	default:
		return color.GreenString(string(p))
	}
}

func init() {
	homeCmd.Flags().BoolVarP(&watch, "watch", "w", false, "actualizar periódicamente")
	homeCmd.Flags().BoolVar(&chronological, "chronological", false, "ordenar la actividad por fecha")
}
