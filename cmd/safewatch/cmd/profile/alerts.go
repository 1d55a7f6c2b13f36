package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"safewatch/cmd/safewatch/cmd/types"
	"safewatch/internal/domain/profile"
)

var (
	roundsAlerts    bool
	incidentsAlerts bool
	systemAlerts    bool
)

var AlertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Configurar alertas",
	Long: `Sin flags muestra la configuración actual. Con --rounds, --incidents o
--system la modifica, por ejemplo: safewatch profile alerts --system=true`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _, err := types.Session(cmd)
		if err != nil {
			return err
		}

		var u profile.AlertsUpdate
		if cmd.Flags().Changed("rounds") {
			u.Rounds = &roundsAlerts
		}
		if cmd.Flags().Changed("incidents") {
			u.Incidents = &incidentsAlerts
		}
		if cmd.Flags().Changed("system") {
			u.System = &systemAlerts
		}

		var settings profile.AlertSettings
		if u.Rounds == nil && u.Incidents == nil && u.System == nil {
			settings, err = app.Alerts(cmd.Context())
		} else {
			settings, err = app.UpdateAlerts(cmd.Context(), u)
		}
		if err != nil {
			return types.UserError(err)
		}

		out := cmd.OutOrStdout()
		if types.JSONOutput(cmd) {
			return types.PrintJSON(out, settings)
		}
		fmt.Fprintf(out, "Recordatorios de ronda:  %s\n", onOff(settings.Rounds))
		fmt.Fprintf(out, "Incidentes críticos:     %s\n", onOff(settings.Incidents))
		fmt.Fprintf(out, "Notificaciones sistema:  %s\n", onOff(settings.System))
		return nil
	},
}

func init() {
	AlertsCmd.Flags().BoolVar(&roundsAlerts, "rounds", true, "recordatorios de ronda")
	AlertsCmd.Flags().BoolVar(&incidentsAlerts, "incidents", true, "alertas de incidentes críticos")
	AlertsCmd.Flags().BoolVar(&systemAlerts, "system", false, "notificaciones del sistema")
}
