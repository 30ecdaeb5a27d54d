package entity

// Stage é uma etapa do funil de vendas. A ordem é fixa e define a posição
// das colunas no board.
type Stage string

const (
	StageNone         Stage = "No Stage"
	StageAppointment  Stage = "Appointment Schedule"
	StagePresentation Stage = "Presentation Done"
	StageProposal     Stage = "Proposal"
	StageNegotiation  Stage = "Negotiation"
	StageEvaluation   Stage = "Evaluation"
	StageResult       Stage = "Result"
)

var stageOrder = []Stage{
	StageNone,
	StageAppointment,
	StagePresentation,
	StageProposal,
	StageNegotiation,
	StageEvaluation,
	StageResult,
}

// Stages returns the pipeline stages in board order. Callers get a fresh
// slice, the enumeration itself never changes.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// IsValidStage faz o match exato (case-sensitive), sem normalização.
func IsValidStage(raw string) bool {
	for _, s := range stageOrder {
		if string(s) == raw {
			return true
		}
	}
	return false
}

// ResolveStage é a única regra de classificação do sistema: valor
// desconhecido, vazio ou nulo cai em "No Stage". Board e analytics usam
// exatamente esta função.
func ResolveStage(raw string) Stage {
	if IsValidStage(raw) {
		return Stage(raw)
	}
	return StageNone
}
