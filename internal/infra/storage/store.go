package storage

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

// CRMStore é o dono exclusivo das coleções de leads e vendedores. Toda
// mutação regrava o blob inteiro da coleção (amplificação de escrita
// O(coleção) por mudança, aceitável nesta escala, documentado no blob
// store). Os handlers rodam concorrentes, então o mutex preserva a
// semântica de escritor único do design original.
type CRMStore struct {
	mu           sync.Mutex
	blobs        BlobStore
	leads        []entity.Lead
	salespersons []entity.Salesperson
}

// NewCRMStore carrega as duas coleções uma única vez. Blob ausente ou
// ilegível vira coleção vazia, sem erro. Recuperação local, nunca
// exposta ao usuário.
func NewCRMStore(blobs BlobStore) *CRMStore {
	s := &CRMStore{blobs: blobs}
	s.leads = loadCollection[entity.Lead](blobs, LeadsBlobKey)
	s.salespersons = loadCollection[entity.Salesperson](blobs, SalespersonsBlobKey)
	return s
}

func loadCollection[T any](blobs BlobStore, key string) []T {
	data, err := blobs.Load(key)
	if err != nil {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("⚠️ Blob %s ilegível, recomeçando com coleção vazia: %v", key, err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Leads devolve uma cópia: consumidores recebem visão de leitura, mutação
// só via comandos do store.
func (s *CRMStore) Leads() []entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

func (s *CRMStore) AddLead(input entity.LeadInput) (*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead := entity.NewLead(input)
	s.leads = append(s.leads, *lead)

	if err := s.persistLeads(); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *CRMStore) UpdateLead(id string, patch entity.LeadPatch) (*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID != id {
			continue
		}
		s.leads[i].Apply(patch)
		if err := s.persistLeads(); err != nil {
			return nil, err
		}
		updated := s.leads[i]
		return &updated, nil
	}

	return nil, entity.ErrLeadNotFound
}

func (s *CRMStore) DeleteLead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.leads[:0]
	for _, lead := range s.leads {
		if lead.ID != id {
			kept = append(kept, lead)
		}
	}
	s.leads = kept

	return s.persistLeads()
}

func (s *CRMStore) Salespersons() []entity.Salesperson {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Salesperson, len(s.salespersons))
	copy(out, s.salespersons)
	return out
}

func (s *CRMStore) AddSalesperson(input entity.SalespersonInput) (*entity.Salesperson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp := entity.NewSalesperson(input)
	s.salespersons = append(s.salespersons, *sp)

	if err := s.persistSalespersons(); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *CRMStore) UpdateSalesperson(id string, patch entity.SalespersonPatch) (*entity.Salesperson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.salespersons {
		if s.salespersons[i].ID != id {
			continue
		}
		s.salespersons[i].Apply(patch)
		if err := s.persistSalespersons(); err != nil {
			return nil, err
		}
		updated := s.salespersons[i]
		return &updated, nil
	}

	return nil, entity.ErrSalespersonNotFound
}

// DeleteSalesperson remove o vendedor e zera o assignedTo dos leads dele na
// mesma mutação. Política de cascade única do sistema: a rota admin faz o
// mesmo no Postgres.
func (s *CRMStore) DeleteSalesperson(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.salespersons[:0]
	for _, sp := range s.salespersons {
		if sp.ID != id {
			kept = append(kept, sp)
		}
	}
	s.salespersons = kept

	cleared := false
	for i := range s.leads {
		if s.leads[i].AssignedTo == id {
			s.leads[i].AssignedTo = ""
			cleared = true
		}
	}

	if err := s.persistSalespersons(); err != nil {
		return err
	}
	if cleared {
		return s.persistLeads()
	}
	return nil
}

func (s *CRMStore) FindSalesperson(id string) (*entity.Salesperson, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sp := range s.salespersons {
		if sp.ID == id {
			found := sp
			return &found, true
		}
	}
	return nil, false
}

// ResolveSalespersonName degrada com elegância: sem atribuição vira
// "Unassigned", referência pendurada vira "Unknown". Nunca crasha por
// causa de um vendedor deletado.
func (s *CRMStore) ResolveSalespersonName(id string) string {
	if id == "" {
		return entity.UnassignedLabel
	}
	if sp, found := s.FindSalesperson(id); found {
		return sp.Name
	}
	return entity.UnknownLabel
}

func (s *CRMStore) persistLeads() error {
	return s.persist(LeadsBlobKey, s.leads)
}

func (s *CRMStore) persistSalespersons() error {
	return s.persist(SalespersonsBlobKey, s.salespersons)
}

func (s *CRMStore) persist(key string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return &usecase.TechnicalError{
			Code:    "STORAGE_ERROR",
			Message: "erro ao serializar coleção " + key + ": " + err.Error(),
		}
	}
	if err := s.blobs.Save(key, data); err != nil {
		return &usecase.TechnicalError{
			Code:    "STORAGE_ERROR",
			Message: "erro ao gravar blob " + key + ": " + err.Error(),
		}
	}
	return nil
}
