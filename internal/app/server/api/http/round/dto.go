package round

import "safewatch/internal/domain/round"

type listInput struct {
	Today bool `query:"today" doc:"Только сегодняшние обходы"`
}

type listOutput struct {
	Body []round.Round
}

type createInput struct {
	Body createRoundRequest
}

type createRoundRequest struct {
	Area     string             `json:"area" example:"Edificio A" doc:"Зона обхода"`
	Notes    string             `json:"notes" example:"Sin novedades" doc:"Наблюдения, минимум 5 символов"`
	Location *round.Coordinates `json:"location,omitempty" doc:"Координаты GPS"`
}

type createOutput struct {
	Body round.Round
}
