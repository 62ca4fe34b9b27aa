package orders

import "time"

// PricePerPetPerDay en unidades de moneda.
const PricePerPetPerDay = 15

// MaxPetCount acota petCount; con esto days*petCount*precio no desborda.
const MaxPetCount = 1000

// Days cuenta días de calendario de start a end, ambos incluidos.
// Misma fecha => 1. Si end es anterior a start el resultado es <= 0.
func Days(start, end time.Time) int {
	s := DateOf(start)
	e := DateOf(end)
	return int(e.Sub(s).Hours()/24) + 1
}

// EstimateCost replica el cálculo del formulario: days × petCount × precio, o 0 si days <= 0.
func EstimateCost(days, petCount int) float64 {
	if days <= 0 {
		return 0
	}
	return float64(days * petCount * PricePerPetPerDay)
}

// DateOf descarta la hora y deja la fecha civil en UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
