package cmd

import (
	"safewatch/cmd/safewatch/cmd/auth"
	"safewatch/cmd/safewatch/cmd/incident"
	"safewatch/cmd/safewatch/cmd/profile"
	"safewatch/cmd/safewatch/cmd/round"
)

func init() {
	// Сессия
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	// Обходы
	rootCmd.AddCommand(round.RoundCmd)
	round.RoundCmd.AddCommand(round.CreateCmd)
	round.RoundCmd.AddCommand(round.ListCmd)

	// Инциденты
	rootCmd.AddCommand(incident.IncidentCmd)
	incident.IncidentCmd.AddCommand(incident.ReportCmd)
	incident.IncidentCmd.AddCommand(incident.ListCmd)

	// Профиль
	rootCmd.AddCommand(profile.ProfileCmd)
	profile.ProfileCmd.AddCommand(profile.ShowCmd)
	profile.ProfileCmd.AddCommand(profile.EditCmd)
	profile.ProfileCmd.AddCommand(profile.AlertsCmd)

	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(emergencyCmd)
	rootCmd.AddCommand(serveCmd)
}
