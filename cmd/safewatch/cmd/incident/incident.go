package incident

import (
	"github.com/spf13/cobra"
)

// IncidentCmd - родительская команда для инцидентов
var IncidentCmd = &cobra.Command{
	Use:   "incident",
	Short: "Incidentes de seguridad",
	Long:  `Reporte y consulta de incidentes de seguridad.`,
}
