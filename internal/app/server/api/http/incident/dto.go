package incident

import "safewatch/internal/domain/incident"

type listInput struct {
	Today bool `query:"today" doc:"Только сегодняшние инциденты"`
}

type listOutput struct {
	Body []incident.Incident
}

type reportInput struct {
	Body reportIncidentRequest
}

type reportIncidentRequest struct {
	Type        string `json:"type" example:"Intrusión" doc:"Тип инцидента"`
	Description string `json:"description" example:"Puerta forzada en bodega" doc:"Описание, минимум 10 символов"`
	Severity    string `json:"severity,omitempty" example:"Alta" doc:"Baja, Media или Alta (также low, medium, high); по умолчанию Baja"`
}

type reportOutput struct {
	Body incident.Incident
}
