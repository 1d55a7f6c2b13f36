package incident

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"safewatch/cmd/safewatch/cmd/types"
	"safewatch/internal/domain/incident"
	"safewatch/internal/domain/stats"
)

var (
	today      bool
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar incidentes",
	Long:  `Lista los incidentes reportados, los más recientes primero.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _, err := types.Session(cmd)
		if err != nil {
			return err
		}

		incidents, err := app.Incidents(cmd.Context(), today)
		if err != nil {
			return types.UserError(err)
		}

		out := cmd.OutOrStdout()
		format := listFormat
		if types.JSONOutput(cmd) {
			format = "json"
		}

		switch format {
		case "json":
			return types.PrintJSON(out, incidents)
		case "table":
			return printTable(out, incidents)
		default:
			return printSimple(out, incidents, time.Now())
		}
	},
}

func printSimple(out io.Writer, incidents []incident.Incident, now time.Time) error {
	if len(incidents) == 0 {
		fmt.Fprintln(out, "No hay incidentes reportados")
		return nil
	}

	fmt.Fprintf(out, "Incidentes: %d\n\n", len(incidents))
	for i, inc := range incidents {
		fmt.Fprintf(out, "%d. [%s] %s (%s)\n", i+1, SeverityLabel(inc.Severity), inc.Type, stats.RelativeTime(inc.Date, now))
		fmt.Fprintf(out, "   %s\n", inc.Date)
		fmt.Fprintf(out, "   %s\n\n", inc.Description)
	}
	return nil
}

func printTable(out io.Writer, incidents []incident.Incident) error {
	if len(incidents) == 0 {
		fmt.Fprintln(out, "No hay incidentes reportados")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Fecha\tTipo\tGravedad\tDescripción\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")
	for _, inc := range incidents {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", inc.Date, inc.Type, inc.Severity, inc.Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nTotal: %d\n", len(incidents))
	return nil
}

func init() {
	ListCmd.Flags().BoolVar(&today, "today", false, "solo los incidentes de hoy")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "formato de salida (simple, table, json)")
}
