package round

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"safewatch/cmd/safewatch/cmd/types"
	"safewatch/internal/domain/round"
	"safewatch/internal/domain/stats"
)

var (
	today      bool
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar rondas",
	Long:  `Lista las rondas registradas, las más recientes primero.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _, err := types.Session(cmd)
		if err != nil {
			return err
		}

		rounds, err := app.Rounds(cmd.Context(), today)
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
			return types.PrintJSON(out, rounds)
		case "table":
			return printTable(out, rounds)
		default:
			return printSimple(out, rounds, time.Now())
		}
	},
}

func printSimple(out io.Writer, rounds []round.Round, now time.Time) error {
	if len(rounds) == 0 {
		fmt.Fprintln(out, "No hay rondas registradas")
		return nil
	}

	fmt.Fprintf(out, "Rondas: %d\n\n", len(rounds))
	for i, r := range rounds {
		fmt.Fprintf(out, "%d. %s (%s)\n", i+1, r.Area, stats.RelativeTime(r.Date, now))
		fmt.Fprintf(out, "   %s | %s\n", r.Date, r.Location)
		fmt.Fprintf(out, "   %s\n\n", r.Notes)
	}
	return nil
}

func printTable(out io.Writer, rounds []round.Round) error {
	if len(rounds) == 0 {
		fmt.Fprintln(out, "No hay rondas registradas")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Fecha\tÁrea\tUbicación\tObservaciones\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")
	for _, r := range rounds {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", r.Date, r.Area, r.Location, truncate(r.Notes, 40))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nTotal: %d\n", len(rounds))
	return nil
}

func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}

func init() {
	ListCmd.Flags().BoolVar(&today, "today", false, "solo las rondas de hoy")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "formato de salida (simple, table, json)")
}
