package main

import (
	"fmt"
	"log"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/storage"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

// Harness manual: semeia um board local em ./data e imprime as colunas.
// Útil para testar o particionamento com blobs de verdade.
func main() {
	blobs, err := storage.NewFileBlobStore("data")
	if err != nil {
		log.Fatal(err)
	}
	store := storage.NewCRMStore(blobs)

	sp, err := store.AddSalesperson(entity.SalespersonInput{
		Name:  "Maria Souza",
		Email: "maria@liguemedicina.com",
	})
	if err != nil {
		log.Fatal(err)
	}

	seeds := []entity.LeadInput{
		{Name: "Acme Corp Lead", Company: "Acme Corp", Status: "Proposal", AssignedTo: sp.ID},
		{Name: "Beta Labs Lead", Company: "Beta Labs", Status: "Negotiation"},
		{Name: "Sem Stage", Company: "Gamma Inc"},
		{Name: "Status Podre", Company: "Delta SA", Status: "qualquer coisa"},
	}
	for _, seed := range seeds {
		if _, err := store.AddLead(seed); err != nil {
			log.Fatal(err)
		}
	}

	view := usecase.BuildBoardView(store.Leads(), store.ResolveSalespersonName)
	for _, column := range view.Columns {
		fmt.Printf("== %s (%d)\n", column.Stage, len(column.Leads))
		for _, lead := range column.Leads {
			fmt.Printf("   - %s [%s]\n", lead.Name, lead.AssignedName)
		}
	}
}
