package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"safewatch/cmd/safewatch/cmd/types"
	"safewatch/internal/domain/profile"
)

var (
	name  string
	email string
	phone string
)

var EditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Editar el perfil",
	Long: `Actualiza nombre, correo o teléfono. Solo cambian los campos indicados.
El nuevo nombre pasa a ser también el usuario de la sesión.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _, err := types.Session(cmd)
		if err != nil {
			return err
		}

		var u profile.Update
		if cmd.Flags().Changed("name") {
			u.Name = &name
		}
		if cmd.Flags().Changed("email") {
			u.Email = &email
		}
		if cmd.Flags().Changed("phone") {
			u.Phone = &phone
		}
		if u.Name == nil && u.Email == nil && u.Phone == nil {
			return fmt.Errorf("indique al menos uno de --name, --email o --phone")
		}

		p, err := app.EditProfile(cmd.Context(), u)
		if err != nil {
			return types.UserError(err)
		}

		if types.JSONOutput(cmd) {
			return types.PrintJSON(cmd.OutOrStdout(), p)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Perfil actualizado")
		return nil
	},
}

func init() {
	EditCmd.Flags().StringVar(&name, "name", "", "nombre completo")
	EditCmd.Flags().StringVar(&email, "email", "", "correo electrónico")
	EditCmd.Flags().StringVar(&phone, "phone", "", "teléfono")
}
