package orders

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status define los estados de una orden de compra.
// @Enum placed, approved, delivered
type Status string

const (
	StatusPlaced    Status = "placed"
	StatusApproved  Status = "approved"
	StatusDelivered Status = "delivered"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPlaced, StatusApproved, StatusDelivered:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%q is not a valid order status", s)
	}
}

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

// Order es una orden de compra sobre una mascota. PetID no tiene chequeo
// de integridad referencial contra el repositorio de mascotas.
type Order struct {
	ID       *uint64    `json:"id,omitempty"`
	PetID    *uint64    `json:"petId,omitempty"`
	Quantity *uint64    `json:"quantity,omitempty"`
	ShipDate *time.Time `json:"shipDate,omitempty"`
	Status   *Status    `json:"status,omitempty"`
	Complete *bool      `json:"complete,omitempty"`
}

// Inventory es el conteo de mascotas particionado por status de adopción.
// Las mascotas sin status no suman en ningún bucket.
type Inventory struct {
	Available uint32 `json:"available"`
	Pending   uint32 `json:"pending"`
	Adopted   uint32 `json:"adopted"`
}
