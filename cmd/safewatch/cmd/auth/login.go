package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"safewatch/cmd/safewatch/cmd/types"
	"safewatch/internal/domain/profile"
)

var username string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Iniciar sesión",
	Long: `Inicia la sesión del guardia.

Solo se valida el formato del usuario (mínimo 3 caracteres) y de la
contraseña (mínimo 4). La contraseña nunca se guarda.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		in := bufio.NewReader(cmd.InOrStdin())

		fmt.Fprintln(out, "=== SafeWatch - Iniciar sesión ===")

		// Запрашиваем имя, если не передано флагом
		if username == "" {
			username, err = types.Prompt(in, out, "Usuario: ")
			if err != nil {
				return fmt.Errorf("error al leer el usuario: %w", err)
			}
		}

		password, err := readPassword(in, out)
		if err != nil {
			return fmt.Errorf("error al leer la contraseña: %w", err)
		}

		name, err := app.Login(cmd.Context(), profile.LoginRequest{
			Username: username,
			Password: password,
		})
		if err != nil {
			return types.UserError(err)
		}

		fmt.Fprintf(out, "✅ Bienvenido, %s (%s)\n", name, profile.GuardID(name))
		return nil
	},
}

// readPassword скрывает ввод в терминале; из пайпа читает строку как есть
func readPassword(in *bufio.Reader, out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return types.Prompt(in, out, "Contraseña: ")
	}

	fmt.Fprint(out, "Contraseña: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func init() {
	LoginCmd.Flags().StringVarP(&username, "user", "u", "", "nombre de usuario")
}
