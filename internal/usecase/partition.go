package usecase

import (
	"github.com/xavierca1/ligue-crm/internal/entity"
)

// Board é o resultado do particionamento: cada stage da enumeração mapeia
// para a fatia ordenada de leads daquela coluna.
type Board map[entity.Stage][]entity.Lead

// PartitionLeads agrupa os leads por stage resolvido. Função pura:
//   - toda stage da enumeração aparece como chave, mesmo vazia;
//   - cada lead cai em exatamente um bucket (ResolveStage decide);
//   - a ordem relativa dos leads de entrada é preservada dentro do bucket.
//
// Nenhum lead é descartado: status desconhecido vira "No Stage".
func PartitionLeads(leads []entity.Lead) Board {
	board := make(Board, len(entity.Stages()))
	for _, stage := range entity.Stages() {
		board[stage] = []entity.Lead{}
	}

	for _, lead := range leads {
		stage := lead.ResolvedStage()
		board[stage] = append(board[stage], lead)
	}

	return board
}

// CountByStage deriva a contagem do analytics do mesmo particionamento do
// board. Regra de classificação única, sem segunda implementação.
func CountByStage(leads []entity.Lead) map[entity.Stage]int {
	counts := make(map[entity.Stage]int, len(entity.Stages()))
	for stage, bucket := range PartitionLeads(leads) {
		counts[stage] = len(bucket)
	}
	return counts
}

// FindLead procura o lead pelo id varrendo os buckets na ordem das colunas.
// Scan linear: o board é pequeno e o id é único, então há zero ou um match.
func (b Board) FindLead(leadID string) (*entity.Lead, bool) {
	for _, stage := range entity.Stages() {
		for i := range b[stage] {
			if b[stage][i].ID == leadID {
				return &b[stage][i], true
			}
		}
	}
	return nil, false
}
