package profile

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"safewatch/cmd/safewatch/cmd/types"
	"safewatch/internal/domain/profile"
	"safewatch/internal/domain/stats"
)

type view struct {
	profile.Profile
	GuardID     string                `json:"guard_id"`
	Initials    string                `json:"initials"`
	Alerts      profile.AlertSettings `json:"alerts"`
	TotalRounds int                   `json:"total_rounds"`
	Incidents   int                   `json:"total_incidents"`
	ShiftHours  float64               `json:"shift_hours"`
}

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Mostrar el perfil",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, username, err := types.Session(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		p, err := app.Profile(ctx)
		if err != nil {
			return types.UserError(err)
		}
		alerts, err := app.Alerts(ctx)
		if err != nil {
			return types.UserError(err)
		}
		d, err := app.Dashboard(ctx, stats.FeedOptions{})
		if err != nil {
			return types.UserError(err)
		}

		v := view{
			Profile:     p,
			GuardID:     profile.GuardID(username),
			Initials:    profile.Initials(p.Name),
			Alerts:      alerts,
			TotalRounds: d.TotalRounds,
			Incidents:   d.TotalIncidents,
			ShiftHours:  d.ShiftHours,
		}

		if types.JSONOutput(cmd) {
			return types.PrintJSON(cmd.OutOrStdout(), v)
		}
		printView(cmd.OutOrStdout(), v)
		return nil
	},
}

func printView(out io.Writer, v view) {
	fmt.Fprintf(out, "[%s] %s\n", v.Initials, v.Name)
	fmt.Fprintf(out, "ID de guardia: %s\n\n", v.GuardID)
	fmt.Fprintf(out, "Teléfono: %s\n", v.Phone)
	fmt.Fprintf(out, "Correo:   %s\n", v.Email)
	fmt.Fprintf(out, "Turno:    %s\n", v.Shift)
	fmt.Fprintf(out, "Zona:     %s\n\n", v.Zone)
	fmt.Fprintf(out, "Rondas: %d | Incidentes: %d | Horas de turno: %.1f\n\n", v.TotalRounds, v.Incidents, v.ShiftHours)
	fmt.Fprintln(out, "Alertas:")
	fmt.Fprintf(out, "  Recordatorios de ronda:  %s\n", onOff(v.Alerts.Rounds))
	fmt.Fprintf(out, "  Incidentes críticos:     %s\n", onOff(v.Alerts.Incidents))
	fmt.Fprintf(out, "  Notificaciones sistema:  %s\n", onOff(v.Alerts.System))
}

func onOff(b bool) string {
	if b {
		return "activadas"
	}
	return "desactivadas"
}
