package orders

import "time"

// PetType son las opciones que ofrece el formulario.
type PetType string

const (
	PetTypeDog PetType = "Dog"
	PetTypeCat PetType = "Cat"
)

// Order es una reserva de cuidado de mascotas.
// Una vez guardada no se modifica ni se borra.
type Order struct {
	ID int64 // lo genera el storage

	Name  string
	Email string
	Phone string

	Pets     string // especie/descripción, p.ej. "Dog"
	PetCount int

	StartDate time.Time // solo fecha
	EndDate   time.Time // solo fecha, >= StartDate
	DailyTime string    // franja libre, p.ej. "9-10am"

	Description string

	// EstimatedCost lo calcula el cliente. Es informativo, no se usa para cobrar.
	EstimatedCost float64

	CreatedAt time.Time // lo setea el storage al insertar
}
