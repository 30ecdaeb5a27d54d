package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// SalespersonAdminRepository é a variante server-backed das operações de
// vendedor, usada pelas rotas /api/salespersons/delete e /update.
type SalespersonAdminRepository struct {
	DB *sql.DB
}

func NewSalespersonAdminRepository(db *sql.DB) *SalespersonAdminRepository {
	return &SalespersonAdminRepository{DB: db}
}

// Delete zera o assigned_to dos leads do vendedor e remove a linha, tudo na
// mesma transação. Mesma política de cascade do store local: referência
// vira "não atribuído", lead nunca é deletado junto.
func (r *SalespersonAdminRepository) Delete(ctx context.Context, salespersonID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE leads SET assigned_to = NULL WHERE assigned_to = $1`,
		salespersonID,
	)
	if err != nil {
		log.Printf("❌ Erro ao limpar atribuições do vendedor %s: %v", salespersonID, err)
		return err
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM salespersons WHERE id = $1`,
		salespersonID,
	)
	if err != nil {
		return err
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return entity.ErrSalespersonNotFound
	}

	return tx.Commit()
}

// Colunas que a rota de update aceita. Qualquer outra chave é rejeitada
// antes de chegar no SQL.
var updatableColumns = map[string]string{
	"name":        "name",
	"email":       "email",
	"phoneNumber": "phone_number",
}

func (r *SalespersonAdminRepository) Update(ctx context.Context, salespersonID string, updates map[string]string) error {
	if len(updates) == 0 {
		return fmt.Errorf("nenhum campo para atualizar")
	}

	setClause := ""
	args := []any{salespersonID}
	i := 2
	for field, value := range updates {
		column, ok := updatableColumns[field]
		if !ok {
			return fmt.Errorf("campo não atualizável: %s", field)
		}
		if setClause != "" {
			setClause += ", "
		}
		setClause += fmt.Sprintf("%s = $%d", column, i)
		args = append(args, value)
		i++
	}

	query := fmt.Sprintf(`UPDATE salespersons SET %s WHERE id = $1`, setClause)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return entity.ErrSalespersonNotFound
	}

	return nil
}
