package profile

import (
	"github.com/spf13/cobra"
)

// ProfileCmd - профиль охранника и настройки алертов
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Perfil del guardia",
	Long:  `Consulta y edición del perfil del guardia y de sus alertas.`,
}
