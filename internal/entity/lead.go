package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errors.New("lead não encontrado")

type Lead struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	JobTitle          string    `json:"jobTitle,omitempty"`
	Company           string    `json:"company,omitempty"`
	Email             string    `json:"email,omitempty"`
	PhoneNumbers      []string  `json:"phoneNumbers,omitempty"`
	Actions           []string  `json:"actions,omitempty"`
	Links             []string  `json:"links,omitempty"`
	Locations         []string  `json:"locations,omitempty"`
	CompanyEmployees  string    `json:"companyEmployees,omitempty"`
	CompanyIndustries []string  `json:"companyIndustries,omitempty"`
	CompanyKeywords   []string  `json:"companyKeywords,omitempty"`
	Status            string    `json:"status,omitempty"`
	AssignedTo        string    `json:"assignedTo,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ResolvedStage classifica o lead via ResolveStage. Todo lead tem
// exatamente uma coluna, mesmo com status vazio ou lixo no blob.
func (l *Lead) ResolvedStage() Stage {
	return ResolveStage(l.Status)
}

// LeadInput carrega os campos de criação. ID e CreatedAt são sempre
// atribuídos pelo store.
type LeadInput struct {
	Name              string   `json:"name"`
	JobTitle          string   `json:"jobTitle"`
	Company           string   `json:"company"`
	Email             string   `json:"email"`
	PhoneNumbers      []string `json:"phoneNumbers"`
	Actions           []string `json:"actions"`
	Links             []string `json:"links"`
	Locations         []string `json:"locations"`
	CompanyEmployees  string   `json:"companyEmployees"`
	CompanyIndustries []string `json:"companyIndustries"`
	CompanyKeywords   []string `json:"companyKeywords"`
	Status            string   `json:"status"`
	AssignedTo        string   `json:"assignedTo"`
}

// LeadPatch é um update parcial: só os ponteiros não-nulos são aplicados.
type LeadPatch struct {
	Name              *string   `json:"name,omitempty"`
	JobTitle          *string   `json:"jobTitle,omitempty"`
	Company           *string   `json:"company,omitempty"`
	Email             *string   `json:"email,omitempty"`
	PhoneNumbers      *[]string `json:"phoneNumbers,omitempty"`
	Actions           *[]string `json:"actions,omitempty"`
	Links             *[]string `json:"links,omitempty"`
	Locations         *[]string `json:"locations,omitempty"`
	CompanyEmployees  *string   `json:"companyEmployees,omitempty"`
	CompanyIndustries *[]string `json:"companyIndustries,omitempty"`
	CompanyKeywords   *[]string `json:"companyKeywords,omitempty"`
	Status            *string   `json:"status,omitempty"`
	AssignedTo        *string   `json:"assignedTo,omitempty"`
}

// Factory
func NewLead(input LeadInput) *Lead {
	return &Lead{
		ID:                uuid.New().String(),
		Name:              input.Name,
		JobTitle:          input.JobTitle,
		Company:           input.Company,
		Email:             input.Email,
		PhoneNumbers:      input.PhoneNumbers,
		Actions:           input.Actions,
		Links:             input.Links,
		Locations:         input.Locations,
		CompanyEmployees:  input.CompanyEmployees,
		CompanyIndustries: input.CompanyIndustries,
		CompanyKeywords:   input.CompanyKeywords,
		Status:            input.Status,
		AssignedTo:        input.AssignedTo,
		CreatedAt:         time.Now(),
	}
}

// Apply merges the patch into the lead. Nil pointers leave the field
// untouched, so an empty patch is a safe no-op.
func (l *Lead) Apply(patch LeadPatch) {
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.JobTitle != nil {
		l.JobTitle = *patch.JobTitle
	}
	if patch.Company != nil {
		l.Company = *patch.Company
	}
	if patch.Email != nil {
		l.Email = *patch.Email
	}
	if patch.PhoneNumbers != nil {
		l.PhoneNumbers = *patch.PhoneNumbers
	}
	if patch.Actions != nil {
		l.Actions = *patch.Actions
	}
	if patch.Links != nil {
		l.Links = *patch.Links
	}
	if patch.Locations != nil {
		l.Locations = *patch.Locations
	}
	if patch.CompanyEmployees != nil {
		l.CompanyEmployees = *patch.CompanyEmployees
	}
	if patch.CompanyIndustries != nil {
		l.CompanyIndustries = *patch.CompanyIndustries
	}
	if patch.CompanyKeywords != nil {
		l.CompanyKeywords = *patch.CompanyKeywords
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	if patch.AssignedTo != nil {
		l.AssignedTo = *patch.AssignedTo
	}
}

type LeadStore interface {
	Leads() []Lead
	AddLead(input LeadInput) (*Lead, error)
	UpdateLead(id string, patch LeadPatch) (*Lead, error)
	DeleteLead(id string) error
}
