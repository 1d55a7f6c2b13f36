package round

import (
	"github.com/spf13/cobra"
)

// RoundCmd - родительская команда для обходов
var RoundCmd = &cobra.Command{
	Use:   "round",
	Short: "Rondas de vigilancia",
	Long:  `Registro y consulta de rondas de vigilancia.`,
}
