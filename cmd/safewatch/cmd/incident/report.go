package incident

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"safewatch/cmd/safewatch/cmd/types"
	"safewatch/internal/domain/incident"
)

var (
	incidentType string
	severity     string
	description  string
)

var ReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reportar un incidente",
	Long: `Reporta un incidente con la fecha y hora actuales.

Gravedad: Baja (por defecto), Media o Alta; se aceptan también low, medium y
high. Un incidente de gravedad Alta avisa a la central si las alertas de
incidentes críticos están activas.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _, err := types.Session(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		in := bufio.NewReader(cmd.InOrStdin())

		if incidentType == "" {
			incidentType, err = types.Prompt(in, out, "Tipo de incidente: ")
			if err != nil {
				return fmt.Errorf("error al leer el tipo: %w", err)
			}
		}
		if description == "" {
			description, err = types.Prompt(in, out, "Descripción: ")
			if err != nil {
				return fmt.Errorf("error al leer la descripción: %w", err)
			}
		}

		inc, err := app.ReportIncident(cmd.Context(), incident.ReportRequest{
			Type:        incidentType,
			Description: description,
			Severity:    incident.Severity(severity),
		})
		if err != nil {
			return types.UserError(err)
		}

		if types.JSONOutput(cmd) {
			return types.PrintJSON(out, inc)
		}
		fmt.Fprintln(out, "✅ Incidente reportado correctamente")
		fmt.Fprintf(out, "   Tipo:     %s\n", inc.Type)
		fmt.Fprintf(out, "   Gravedad: %s\n", SeverityLabel(inc.Severity))
		fmt.Fprintf(out, "   Fecha:    %s\n", inc.Date)
		return nil
	},
}

// SeverityLabel раскрашивает степень так же, как бейдж в интерфейсе
func SeverityLabel(s incident.Severity) string {
	switch s.Color() {
	case "danger":
		return color.RedString(string(s))
	case "warning":
		return color.YellowString(string(s))
	case "success":
		return color.GreenString(string(s))
	default:
		return color.WhiteString(string(s))
	}
}

func severityChoices() string {
	names := make([]string, 0, len(incident.Severities))
	for _, s := range incident.Severities {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

func init() {
	ReportCmd.Flags().StringVarP(&incidentType, "type", "t", "", "tipo de incidente")
	ReportCmd.Flags().StringVarP(&severity, "severity", "s", string(incident.SeverityLow), "gravedad ("+severityChoices()+")")
	ReportCmd.Flags().StringVarP(&description, "description", "d", "", "descripción (mínimo 10 caracteres)")
}
