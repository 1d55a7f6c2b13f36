package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для входа и выхода охранника
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Inicio y cierre de sesión",
	Long:  `Inicio de sesión del guardia y cierre de sesión con borrado de datos locales.`,
}
