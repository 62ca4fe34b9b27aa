package bookingform

import (
	"strconv"
	"strings"
	"time"

	"pet-care-booking/internal/domain/orders"

	"github.com/pkg/errors"
)

type PetType = orders.PetType

const (
	PetTypeDog = orders.PetTypeDog
	PetTypeCat = orders.PetTypeCat
)

// PetTypes en el orden en que se ofrecen.
var PetTypes = []PetType{PetTypeDog, PetTypeCat}

var (
	ErrInvalidPetCount = errors.New("pet count must be a whole number between 1 and 1000")
	ErrInvalidPetType  = errors.New("unknown pet type")
)

// Form es el estado editable de una reserva. Days y EstimatedCost se derivan en cada llamada.
type Form struct {
	PetType     PetType
	PetCount    int
	StartDate   time.Time
	EndDate     time.Time
	DailyTime   string
	Description string

	Name  string
	Email string
	Phone string
}

// NewForm arranca con un perro, del día de hoy a mañana.
func NewForm(today time.Time) Form {
	start := orders.DateOf(today)
	return Form{
		PetType:   PetTypeDog,
		PetCount:  1,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 1),
	}
}

func (f Form) Days() int {
	return orders.Days(f.StartDate, f.EndDate)
}

func (f Form) EstimatedCost() float64 {
	return orders.EstimateCost(f.Days(), f.PetCount)
}

// Payload arma el body de POST /api/orders con las fechas ya formateadas y el estimado actual.
func (f Form) Payload() orders.CreateOrderRequest {
	return orders.CreateOrderRequest{
		Name:          f.Name,
		Email:         f.Email,
		Phone:         f.Phone,
		Pets:          string(f.PetType),
		PetCount:      f.PetCount,
		StartDate:     orders.FormatDate(f.StartDate),
		EndDate:       orders.FormatDate(f.EndDate),
		Time:          f.DailyTime,
		Description:   f.Description,
		EstimatedCost: f.EstimatedCost(),
	}
}

// ParsePetCount convierte lo que escribe el usuario en un entero entre 1 y orders.MaxPetCount.
func ParsePetCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > orders.MaxPetCount {
		return 0, errors.Wrapf(ErrInvalidPetCount, "%q", s)
	}
	return n, nil
}

// ParsePetType no distingue mayúsculas: "cat" => Cat.
func ParsePetType(s string) (PetType, error) {
	s = strings.TrimSpace(s)
	for _, pt := range PetTypes {
		if strings.EqualFold(s, string(pt)) {
			return pt, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidPetType, "%q", s)
}

// ParseDate acepta YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "date %q must be YYYY-MM-DD", s)
	}
	return t, nil
}
