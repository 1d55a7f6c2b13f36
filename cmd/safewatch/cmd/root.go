package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"safewatch/cmd/safewatch/cmd/types"
	"safewatch/internal/app"
	"safewatch/internal/config"
	"safewatch/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	cfg         *config.Config
	log         *slog.Logger
	application *app.App
	debug       bool
	jsonOutput  bool
)

var rootCmd = &cobra.Command{
	Use:   "safewatch",
	Short: "SafeWatch - registro de rondas e incidentes para guardias",
	Long: `SafeWatch es la libreta de turno del guardia de seguridad: registra rondas
de vigilancia e incidentes, muestra el resumen del turno y envía alertas de
emergencia.

Los datos se guardan localmente (SQLite por defecto) o en Redis/PostgreSQL
según STORAGE_DRIVER.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	err := rootCmd.Execute()
	if application != nil {
		if cerr := application.Close(); cerr != nil && log != nil {
			log.Warn("Ошибка закрытия хранилища", "error", cerr)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("error al cargar la configuración: %w", err)
	}

	// Флаг --debug важнее LOG_LEVEL
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log = logger.NewWithLevel(cfg.Env, level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	application, err = app.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("error al iniciar la aplicación: %w", err)
	}

	cmd.SetContext(types.WithApp(ctx, application))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".safewatch"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "archivo de configuración (por defecto ~/.safewatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "registro detallado")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "salida en formato JSON")

	// Команды добавляются в init() из commands.go
}
