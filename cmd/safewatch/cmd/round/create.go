package round

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"safewatch/cmd/safewatch/cmd/types"
	"safewatch/internal/domain/round"
)

var (
	area      string
	notes     string
	lat       float64
	lng       float64
	assumeYes bool
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Registrar una ronda",
	Long: `Registra una ronda con la fecha y hora actuales.

Sin --area se ofrece la lista de áreas predefinidas. Las coordenadas son
opcionales; sin ellas la ubicación queda "No registrada".`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _, err := types.Session(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		in := bufio.NewReader(cmd.InOrStdin())

		if area == "" {
			area, err = chooseArea(in, out)
			if err != nil {
				return err
			}
		}
		if notes == "" {
			notes, err = types.Prompt(in, out, "Observaciones: ")
			if err != nil {
				return fmt.Errorf("error al leer las observaciones: %w", err)
			}
		}

		req := round.CreateRequest{Area: area, Notes: notes}
		if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
			req.Location = &round.Coordinates{Lat: lat, Lng: lng}
		}

		// Проверяем форму до подтверждения
		if err := req.Validate(); err != nil {
			return types.UserError(err)
		}

		if !assumeYes && !types.Confirm(in, out, fmt.Sprintf("¿Registrar ronda en %s?", req.Area)) {
			fmt.Fprintln(out, "Operación cancelada")
			return nil
		}

		r, err := app.CreateRound(cmd.Context(), req)
		if err != nil {
			return types.UserError(err)
		}

		if types.JSONOutput(cmd) {
			return types.PrintJSON(out, r)
		}
		fmt.Fprintln(out, "✅ Ronda registrada correctamente")
		fmt.Fprintf(out, "   Área:      %s\n", r.Area)
		fmt.Fprintf(out, "   Fecha:     %s\n", r.Date)
		fmt.Fprintf(out, "   Ubicación: %s\n", r.Location)
		return nil
	},
}

// chooseArea принимает номер из списка или произвольное название
func chooseArea(in *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "Áreas disponibles:")
	for i, a := range round.PredefinedAreas {
		fmt.Fprintf(out, "  %d. %s\n", i+1, a)
	}

	choice, err := types.Prompt(in, out, fmt.Sprintf("Área [1-%d o nombre]: ", len(round.PredefinedAreas)))
	if err != nil {
		return "", fmt.Errorf("error al leer el área: %w", err)
	}

	if n, err := strconv.Atoi(choice); err == nil {
		if n < 1 || n > len(round.PredefinedAreas) {
			return "", fmt.Errorf("opción fuera de rango: %d", n)
		}
		return round.PredefinedAreas[n-1], nil
	}
	return choice, nil
}

func init() {
	CreateCmd.Flags().StringVarP(&area, "area", "a", "", "área de la ronda")
	CreateCmd.Flags().StringVarP(&notes, "notes", "n", "", "observaciones (mínimo 5 caracteres)")
	CreateCmd.Flags().Float64Var(&lat, "lat", 0, "latitud")
	CreateCmd.Flags().Float64Var(&lng, "lng", 0, "longitud")
	CreateCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "no pedir confirmación")
}
