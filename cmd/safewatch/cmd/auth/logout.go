package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"safewatch/cmd/safewatch/cmd/types"
)

var assumeYes bool

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Cerrar sesión",
	Long: `Cierra la sesión y borra todos los datos locales: rondas, incidentes,
perfil y usuario.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !assumeYes && !types.Confirm(cmd.InOrStdin(), out, "¿Está seguro que desea cerrar sesión? Se borrarán los datos locales") {
			fmt.Fprintln(out, "Operación cancelada")
			return nil
		}

		if err := app.Logout(cmd.Context()); err != nil {
			return types.UserError(err)
		}

		fmt.Fprintln(out, "✓ Sesión cerrada")
		return nil
	},
}

func init() {
	LogoutCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "no pedir confirmación")
}
