package round

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "rounds-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/rounds",
		Summary:     "Список обходов, новые первыми",
		Tags:        []string{"rounds"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) todayOp() huma.Operation {
	return huma.Operation{
		OperationID: "rounds-today",
		Method:      http.MethodGet,
		Path:        "/api/v1/rounds/today",
		Summary:     "Обходы за текущие сутки",
		Tags:        []string{"rounds"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "rounds-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/rounds",
		Summary:       "Зарегистрировать обход",
		Description:   "Создает обход с текущей датой. Без координат сохраняется \"No registrada\".",
		Tags:          []string{"rounds"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}
