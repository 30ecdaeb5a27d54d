package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

// StaleLeadWorker varre o board periodicamente e aponta leads parados no
// começo do funil há tempo demais. Só loga: a cobrança é humana.
type StaleLeadWorker struct {
	store        entity.LeadStore
	staleWindow  time.Duration
	tickInterval time.Duration
}

func NewStaleLeadWorker(store entity.LeadStore) *StaleLeadWorker {
	return &StaleLeadWorker{
		store:        store,
		staleWindow:  14 * 24 * time.Hour, // duas semanas sem sair do topo do funil
		tickInterval: 1 * time.Hour,
	}
}

func (w *StaleLeadWorker) Start(ctx context.Context) {
	log.Println("🕒 Stale Lead Worker iniciado (janela de 14 dias)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Stale Lead Worker encerrado")
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *StaleLeadWorker) scan() {
	stale := w.staleLeads(time.Now())

	for _, lead := range stale {
		log.Printf("⏱️ Lead parado: %s (%s) em '%s' desde %s",
			lead.Name, lead.ID, lead.ResolvedStage(), lead.CreatedAt.Format("2006-01-02"))
	}

	if len(stale) > 0 {
		log.Printf("⚠️ %d lead(s) parados no topo do funil", len(stale))
	}
}

// staleLeads devolve os leads do topo do funil (No Stage e Appointment
// Schedule) criados antes da janela. Colunas mais adiantadas nunca contam
// como paradas.
func (w *StaleLeadWorker) staleLeads(now time.Time) []entity.Lead {
	board := usecase.PartitionLeads(w.store.Leads())
	cutoff := now.Add(-w.staleWindow)

	var stale []entity.Lead
	for _, stage := range []entity.Stage{entity.StageNone, entity.StageAppointment} {
		for _, lead := range board[stage] {
			if lead.CreatedAt.Before(cutoff) {
				stale = append(stale, lead)
			}
		}
	}
	return stale
}
