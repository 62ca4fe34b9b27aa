package orders

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// CreateOrderRequest es el cuerpo de POST /api/orders. Lo comparten el handler y el cliente.
//
// PetType y DailyTime son los nombres que manda el formulario web; se aceptan
// como alias de Pets y Time.
type CreateOrderRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Pets          string  `json:"pets,omitempty"`
	PetType       string  `json:"petType,omitempty"`
	PetCount      int     `json:"petCount"`
	StartDate     string  `json:"startDate"` // YYYY-MM-DD o RFC3339
	EndDate       string  `json:"endDate"`   // YYYY-MM-DD o RFC3339
	Time          string  `json:"time,omitempty"`
	DailyTime     string  `json:"dailyTime,omitempty"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimatedCost"`
}

// CreateOrderResponse es el ack de una orden guardada.
type CreateOrderResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"orderId"`
}

// ErrorResponse se devuelve en 4xx/5xx.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToInput normaliza el request (alias, fechas) a CreateInput.
// Solo falla si una fecha no se puede parsear; el resto lo valida el Service.
func (r CreateOrderRequest) ToInput() (CreateInput, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return CreateInput{}, NewValidationError("startDate must be YYYY-MM-DD or RFC3339")
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return CreateInput{}, NewValidationError("endDate must be YYYY-MM-DD or RFC3339")
	}

	return CreateInput{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Pets:          firstNonEmpty(r.Pets, r.PetType),
		PetCount:      r.PetCount,
		StartDate:     start,
		EndDate:       end,
		DailyTime:     firstNonEmpty(r.Time, r.DailyTime),
		Description:   r.Description,
		EstimatedCost: r.EstimatedCost,
	}, nil
}

// ParseDate acepta "2024-06-01" o un timestamp RFC3339 (lo que serializa un Date de JS).
// De un timestamp se toma la fecha civil en el offset que trae: "2024-06-01T00:00:00+02:00"
// es el 1 de junio, pero el mismo instante en "Z" ("2024-05-31T22:00:00Z") es el 31 de mayo.
// Los clientes deben mandar YYYY-MM-DD (o su offset local) para no correr la fecha un día.
// Vacío devuelve time.Time{} sin error: la obligatoriedad la decide la validación.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse date %q", s)
	}
	return DateOf(t), nil
}

// FormatDate es el inverso de ParseDate para fechas sin hora.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
