package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

func newTestStore(t *testing.T) (*CRMStore, *FileBlobStore) {
	t.Helper()
	blobs, err := NewFileBlobStore(t.TempDir())
	assert.NoError(t, err)
	return NewCRMStore(blobs), blobs
}

// TestStoreRoundTrip - criar, recarregar do blob, deletar, recarregar
func TestStoreRoundTrip(t *testing.T) {
	store, blobs := newTestStore(t)

	created, err := store.AddLead(entity.LeadInput{
		Name:    "Acme Corp Lead",
		Company: "Acme Corp",
		Email:   "contato@acme.com",
		Status:  "Proposal",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// Reabrir o store a partir dos mesmos blobs simula um restart
	reloaded := NewCRMStore(blobs)
	leads := reloaded.Leads()
	assert.Len(t, leads, 1)
	assert.Equal(t, created.ID, leads[0].ID)
	assert.Equal(t, "Acme Corp Lead", leads[0].Name)
	assert.Equal(t, "Proposal", leads[0].Status)

	assert.NoError(t, reloaded.DeleteLead(created.ID))

	again := NewCRMStore(blobs)
	assert.Empty(t, again.Leads())
}

// TestCorruptBlobYieldsEmptyCollection - blob ilegível vira coleção vazia,
// sem erro exposto
func TestCorruptBlobYieldsEmptyCollection(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, LeadsBlobKey+".json"), []byte("{lixo"), 0o644))

	blobs, err := NewFileBlobStore(dir)
	assert.NoError(t, err)

	store := NewCRMStore(blobs)
	assert.Empty(t, store.Leads())
	assert.Empty(t, store.Salespersons())

	// O store segue funcional depois da recuperação
	_, err = store.AddLead(entity.LeadInput{Name: "Novo"})
	assert.NoError(t, err)
	assert.Len(t, store.Leads(), 1)
}

func TestUpdateLeadNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	name := "Qualquer"
	_, err := store.UpdateLead("ghost", entity.LeadPatch{Name: &name})
	assert.True(t, errors.Is(err, entity.ErrLeadNotFound))
}

// TestEmptyPatchIsIdempotent - patch vazio não altera nada e pode repetir
func TestEmptyPatchIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.AddLead(entity.LeadInput{
		Name:     "Acme",
		JobTitle: "CTO",
		Status:   "Negotiation",
	})
	assert.NoError(t, err)

	for i := 0; i < 3; i++ {
		updated, err := store.UpdateLead(created.ID, entity.LeadPatch{})
		assert.NoError(t, err)
		assert.Equal(t, "Acme", updated.Name)
		assert.Equal(t, "CTO", updated.JobTitle)
		assert.Equal(t, "Negotiation", updated.Status)
		assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	}
}

func TestPartialPatchOnlyTouchesGivenFields(t *testing.T) {
	store, _ := newTestStore(t)

	created, _ := store.AddLead(entity.LeadInput{Name: "Acme", Status: "Proposal"})

	status := "Evaluation"
	updated, err := store.UpdateLead(created.ID, entity.LeadPatch{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, "Evaluation", updated.Status)
	assert.Equal(t, "Acme", updated.Name)
}

// TestDeleteSalespersonClearsAssignments - política de cascade: o
// assignedTo dos leads é zerado na mesma mutação
func TestDeleteSalespersonClearsAssignments(t *testing.T) {
	store, blobs := newTestStore(t)

	sp, err := store.AddSalesperson(entity.SalespersonInput{
		Name:  "Maria Souza",
		Email: "maria@liguemedicina.com",
	})
	assert.NoError(t, err)

	assigned, _ := store.AddLead(entity.LeadInput{Name: "Acme", AssignedTo: sp.ID})
	other, _ := store.AddLead(entity.LeadInput{Name: "Beta"})

	assert.Equal(t, "Maria Souza", store.ResolveSalespersonName(sp.ID))

	assert.NoError(t, store.DeleteSalesperson(sp.ID))

	// Cascade persistido: recarregar mostra a atribuição zerada
	reloaded := NewCRMStore(blobs)
	for _, l := range reloaded.Leads() {
		if l.ID == assigned.ID {
			assert.Empty(t, l.AssignedTo)
		}
		if l.ID == other.ID {
			assert.Empty(t, l.AssignedTo)
		}
	}
}

// TestResolveSalespersonNameFallbacks - id vazio e id pendurado degradam
// para labels fixos, nunca crasham
func TestResolveSalespersonNameFallbacks(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, entity.UnassignedLabel, store.ResolveSalespersonName(""))
	assert.Equal(t, entity.UnknownLabel, store.ResolveSalespersonName("deleted-sp"))

	sp, _ := store.AddSalesperson(entity.SalespersonInput{Name: "João", Email: "joao@x.com"})
	assert.Equal(t, "João", store.ResolveSalespersonName(sp.ID))

	// Vendedor deletado vira "Unknown" se algum lead ainda apontar pra ele
	assert.NoError(t, store.DeleteSalesperson(sp.ID))
	assert.Equal(t, entity.UnknownLabel, store.ResolveSalespersonName(sp.ID))
}

type failingBlobStore struct{}

func (f *failingBlobStore) Load(key string) ([]byte, error) {
	return nil, os.ErrNotExist
}

func (f *failingBlobStore) Save(key string, data []byte) error {
	return errors.New("disco cheio")
}

// Falha de escrita sobe como TechnicalError, não é engolida
func TestSaveFailureSurfaces(t *testing.T) {
	store := NewCRMStore(&failingBlobStore{})

	_, err := store.AddLead(entity.LeadInput{Name: "Acme"})
	assert.Error(t, err)
	assert.True(t, usecase.IsTechnicalError(err))
}

func TestLeadsReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	created, _ := store.AddLead(entity.LeadInput{Name: "Acme"})

	view := store.Leads()
	view[0].Name = "Mutado"

	fresh := store.Leads()
	assert.Equal(t, "Acme", fresh[0].Name)
	assert.Equal(t, created.ID, fresh[0].ID)
}

func TestUpdateSalesperson(t *testing.T) {
	store, _ := newTestStore(t)

	sp, _ := store.AddSalesperson(entity.SalespersonInput{Name: "João", Email: "joao@x.com"})

	email := "joao.silva@x.com"
	updated, err := store.UpdateSalesperson(sp.ID, entity.SalespersonPatch{Email: &email})
	assert.NoError(t, err)
	assert.Equal(t, "joao.silva@x.com", updated.Email)
	assert.Equal(t, "João", updated.Name)

	_, err = store.UpdateSalesperson("ghost", entity.SalespersonPatch{})
	assert.True(t, errors.Is(err, entity.ErrSalespersonNotFound))
}
