package pets

import (
	"encoding/json"
	"fmt"
)

// Status define los estados de adopción de una mascota.
// @Enum available, pending, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusPending, StatusAdopted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%q is not a valid pet status", s)
	}
}

// UnmarshalJSON valida el enum al decodificar: un status desconocido es un
// error de entrada, no un valor que se guarda tal cual.
func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Category agrupa mascotas (p.ej. "dogs"). Se persiste aparte cuando llega
// embebida en un alta de Pet; la copia embebida no se sincroniza después.
type Category struct {
	ID   *uint64 `json:"id,omitempty"`
	Name string  `json:"name"`
}

// Tag es una etiqueta libre asociada a una mascota. Igual que Category,
// se registra en su propio repositorio durante el alta del Pet.
type Tag struct {
	ID   *uint64 `json:"id,omitempty"`
	Name string  `json:"name"`
}

// Pet representa una mascota del petstore.
// El ID lo asigna el repositorio en el alta; desde el cliente llega nil.
type Pet struct {
	ID        *uint64   `json:"id,omitempty"`
	Name      string    `json:"name"`
	PhotoURLs []string  `json:"photoUrls"`
	Category  *Category `json:"category,omitempty"`
	Tags      []Tag     `json:"tags,omitempty"`
	Status    *Status   `json:"status,omitempty"`
}

// HasTag reporta si la mascota tiene una etiqueta con ese nombre.
func (p Pet) HasTag(name string) bool {
	for _, t := range p.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}
