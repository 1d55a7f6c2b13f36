package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"safewatch/cmd/safewatch/cmd/types"
)

var emergencyYes bool

var emergencyCmd = &cobra.Command{
	Use:   "emergency",
	Short: "Enviar alerta de emergencia",
	Long: `Envía una alerta de emergencia a la central de seguridad. Siempre queda
en el registro; con TELEGRAM_TOKEN y TELEGRAM_CHAT_ID también se envía por
Telegram.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _, err := types.Session(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !emergencyYes && !types.Confirm(cmd.InOrStdin(), out, "¿Enviar alerta de emergencia a la central?") {
			fmt.Fprintln(out, "Operación cancelada")
			return nil
		}

		alert, err := app.Emergency(cmd.Context())
		if err != nil {
			return fmt.Errorf("no se pudo enviar la alerta: %w", err)
		}

		if types.JSONOutput(cmd) {
			return types.PrintJSON(out, alert)
		}
		fmt.Fprintln(out, color.RedString("🚨 Alerta enviada a la central de seguridad"))
		fmt.Fprintf(out, "   %s (%s) - %s\n", alert.Guard, alert.GuardID, alert.Zone)
		return nil
	},
}

func init() {
	emergencyCmd.Flags().BoolVarP(&emergencyYes, "yes", "y", false, "no pedir confirmación")
}
