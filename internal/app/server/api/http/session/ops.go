package session

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-login",
		Method:      http.MethodPost,
		Path:        "/api/v1/session",
		Summary:     "Начать смену",
		Description: "Проверяет форму входа и сохраняет имя охранника. Пароль не хранится.",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID:   "session-logout",
		Method:        http.MethodDelete,
		Path:          "/api/v1/session",
		Summary:       "Завершить смену",
		Description:   "Удаляет обходы, инциденты, профиль и имя пользователя.",
		Tags:          []string{"session"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) profileOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile",
		Summary:     "Профиль охранника и настройки алертов",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) emergencyOp() huma.Operation {
	return huma.Operation{
		OperationID: "emergency-raise",
		Method:      http.MethodPost,
		Path:        "/api/v1/emergency",
		Summary:     "Тревога",
		Description: "Отправляет экстренный алерт через настроенные каналы.",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}
