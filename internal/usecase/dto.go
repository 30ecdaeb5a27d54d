package usecase

import (
	"github.com/xavierca1/ligue-crm/internal/entity"
)

// BoardLead é o card: o lead mais o nome do vendedor já resolvido, para o
// front não precisar fazer lookup de assignedTo.
type BoardLead struct {
	entity.Lead
	AssignedName string `json:"assignedName"`
}

type BoardColumn struct {
	Stage entity.Stage `json:"stage"`
	Leads []BoardLead  `json:"leads"`
}

type BoardView struct {
	Stages  []entity.Stage `json:"stages"`
	Columns []BoardColumn  `json:"columns"`
}

// BuildBoardView compõe a saída do particionador em colunas na ordem fixa
// das stages. Só apresentação: nenhuma mutação acontece aqui.
func BuildBoardView(leads []entity.Lead, resolveName func(string) string) BoardView {
	board := PartitionLeads(leads)

	view := BoardView{
		Stages:  entity.Stages(),
		Columns: make([]BoardColumn, 0, len(entity.Stages())),
	}

	for _, stage := range entity.Stages() {
		column := BoardColumn{
			Stage: stage,
			Leads: make([]BoardLead, 0, len(board[stage])),
		}
		for _, lead := range board[stage] {
			column.Leads = append(column.Leads, BoardLead{
				Lead:         lead,
				AssignedName: resolveName(lead.AssignedTo),
			})
		}
		view.Columns = append(view.Columns, column)
	}

	return view
}

type StageCount struct {
	Stage entity.Stage `json:"stage"`
	Count int          `json:"count"`
}

type AnalyticsView struct {
	Total  int          `json:"total"`
	Stages []StageCount `json:"stages"`
}

// BuildAnalyticsView conta leads por stage usando a mesma regra de
// classificação do board.
func BuildAnalyticsView(leads []entity.Lead) AnalyticsView {
	counts := CountByStage(leads)

	view := AnalyticsView{
		Total:  len(leads),
		Stages: make([]StageCount, 0, len(entity.Stages())),
	}
	for _, stage := range entity.Stages() {
		view.Stages = append(view.Stages, StageCount{Stage: stage, Count: counts[stage]})
	}
	return view
}
