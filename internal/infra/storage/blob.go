package storage

import (
	"os"
	"path/filepath"
)

// Chaves dos blobs persistidos, uma coleção por arquivo.
const (
	LeadsBlobKey        = "crm_leads"
	SalespersonsBlobKey = "crm_salespersons"
)

// BlobStore é a porta de persistência do CRMStore: carrega e regrava o
// blob inteiro de uma coleção. Injetada no construtor para os testes
// usarem diretório temporário (ou memória).
type BlobStore interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// FileBlobStore grava cada coleção como um arquivo JSON no diretório de
// dados. Sem write-ahead, sem rename atômico: a escrita sobrepõe o arquivo
// inteiro, então um crash no meio pode corromper o blob. Limitação
// conhecida e aceita nesta escala: o Load trata blob ilegível como
// coleção vazia.
type FileBlobStore struct {
	Dir string
}

func NewFileBlobStore(dir string) (*FileBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBlobStore{Dir: dir}, nil
}

func (f *FileBlobStore) Load(key string) ([]byte, error) {
	return os.ReadFile(f.path(key))
}

func (f *FileBlobStore) Save(key string, data []byte) error {
	return os.WriteFile(f.path(key), data, 0o644)
}

func (f *FileBlobStore) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}
