package round

// PredefinedAreas are offered by the patrol form; any other area is accepted.
var PredefinedAreas = []string{
	"Edificio A",
	"Edificio B",
	"Estacionamiento Norte",
	"Estacionamiento Sur",
	"Perímetro Este",
	"Perímetro Oeste",
	"Zona de Carga",
	"Área Común",
}
