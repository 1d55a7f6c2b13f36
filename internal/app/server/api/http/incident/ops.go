package incident

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "incidents-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/incidents",
		Summary:     "Список инцидентов, новые первыми",
		Tags:        []string{"incidents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) todayOp() huma.Operation {
	return huma.Operation{
		OperationID: "incidents-today",
		Method:      http.MethodGet,
		Path:        "/api/v1/incidents/today",
		Summary:     "Инциденты за текущие сутки",
		Tags:        []string{"incidents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) reportOp() huma.Operation {
	return huma.Operation{
		OperationID:   "incidents-report",
		Method:        http.MethodPost,
		Path:          "/api/v1/incidents",
		Summary:       "Сообщить об инциденте",
		Description:   "Сохраняет инцидент. Инцидент с gravedad Alta уведомляет центр охраны, если такие алерты включены.",
		Tags:          []string{"incidents"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}
