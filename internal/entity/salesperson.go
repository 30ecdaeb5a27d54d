package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSalespersonNotFound = errors.New("vendedor não encontrado")

// Labels de exibição quando a referência assignedTo não resolve.
const (
	UnassignedLabel = "Unassigned"
	UnknownLabel    = "Unknown"
)

type Salesperson struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SalespersonInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type SalespersonPatch struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

func NewSalesperson(input SalespersonInput) *Salesperson {
	return &Salesperson{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		CreatedAt:   time.Now(),
	}
}

func (s *Salesperson) Apply(patch SalespersonPatch) {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Email != nil {
		s.Email = *patch.Email
	}
	if patch.PhoneNumber != nil {
		s.PhoneNumber = *patch.PhoneNumber
	}
}

type SalespersonStore interface {
	Salespersons() []Salesperson
	AddSalesperson(input SalespersonInput) (*Salesperson, error)
	UpdateSalesperson(id string, patch SalespersonPatch) (*Salesperson, error)
	DeleteSalesperson(id string) error
	FindSalesperson(id string) (*Salesperson, bool)

	// ResolveSalespersonName nunca devolve referência direta: id vazio vira
	// "Unassigned", id pendurado (vendedor deletado) vira "Unknown".
	ResolveSalespersonName(id string) string
}
