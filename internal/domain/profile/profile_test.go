package profile

import (
	"testing"

	"safewatch/internal/domain/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestResolve(t *testing.T) {
	t.Run("defaults without session", func(t *testing.T) {
		p := Resolve("", UserData{})
		assert.Equal(t, DefaultFullName, p.Name)
		assert.Equal(t, DefaultPhone, p.Phone)
		assert.Equal(t, DefaultShift, p.Shift)
		assert.Equal(t, DefaultZone, p.Zone)
		assert.Equal(t, DefaultEmail, p.Email)
	})

	t.Run("username becomes the name", func(t *testing.T) {
		assert.Equal(t, "jperez", Resolve("jperez", UserData{}).Name)
	})

	t.Run("stored fields win over defaults", func(t *testing.T) {
		p := Resolve("jperez", UserData{Profile: &Profile{Name: "Juan Pérez", Email: "juan@example.com"}})
		assert.Equal(t, "Juan Pérez", p.Name)
		assert.Equal(t, "juan@example.com", p.Email)
		assert.Equal(t, DefaultPhone, p.Phone)
	})
}

func TestMerge(t *testing.T) {
	base := Resolve("jperez", UserData{})

	t.Run("only set fields change", func(t *testing.T) {
		got, err := Merge(base, Update{Phone: strPtr(" +56 9 8765 4321 ")})
		require.NoError(t, err)
		assert.Equal(t, "+56 9 8765 4321", got.Phone)
		assert.Equal(t, base.Name, got.Name)
		assert.Equal(t, base.Email, got.Email)
		assert.Equal(t, base.Zone, got.Zone)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		got, err := Merge(base, Update{Email: strPtr("no-es-correo")})
		require.ErrorIs(t, err, validation.ErrValidation)
		assert.Equal(t, "Ingrese un correo electrónico válido", err.Error())
		assert.Equal(t, base, got)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := Merge(base, Update{Name: strPtr("   ")})
		require.ErrorIs(t, err, validation.ErrValidation)
	})

	t.Run("caller values are not modified", func(t *testing.T) {
		phone := "  +56 9 1111 2222  "
		got, err := Merge(base, Update{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, "+56 9 1111 2222", got.Phone)
		assert.Equal(t, "  +56 9 1111 2222  ", phone)
	})
}

func TestAlerts(t *testing.T) {
	assert.Equal(t, AlertSettings{Rounds: true, Incidents: true}, ResolveAlerts(UserData{}))

	stored := AlertSettings{System: true}
	assert.Equal(t, stored, ResolveAlerts(UserData{Alerts: &stored}))

	got := MergeAlerts(DefaultAlerts(), AlertsUpdate{Incidents: boolPtr(false), System: boolPtr(true)})
	assert.Equal(t, AlertSettings{Rounds: true, Incidents: false, System: true}, got)
}

func TestGuardID(t *testing.T) {
	assert.Equal(t, "G-JPE1025", GuardID("jperez"))
	assert.Equal(t, "G-AL1025", GuardID("al"))
	assert.Equal(t, "G-GUA1025", GuardID(""))
	assert.Equal(t, "G-ÑAN1025", GuardID("ñandú"))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "GD", Initials("Guardia de Seguridad"))
	assert.Equal(t, "JP", Initials("juan pérez"))
	assert.Equal(t, "A", Initials("Ana"))
	assert.Equal(t, "", Initials("   "))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, DefaultGuardName, DisplayName(""))
	assert.Equal(t, "jperez", DisplayName("jperez"))
}

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  LoginRequest
		msg  string
	}{
		{name: "valid", req: LoginRequest{Username: " jperez ", Password: "1234"}},
		{name: "short user", req: LoginRequest{Username: "jp", Password: "1234"}, msg: "Usuario debe tener al menos 3 caracteres"},
		{name: "short password", req: LoginRequest{Username: "jperez", Password: "123"}, msg: "Contraseña debe tener al menos 4 caracteres"},
		{name: "empty user", req: LoginRequest{Password: "1234"}, msg: "Ingrese su usuario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.msg == "" {
				require.NoError(t, err)
				assert.Equal(t, "jperez", tt.req.Username)
				return
			}
			require.ErrorIs(t, err, validation.ErrValidation)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}
