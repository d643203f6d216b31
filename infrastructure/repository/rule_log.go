package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-automation-api/internal/domain"
)

const (
	ruleLogsTable = "rule_logs rl"
)

// RuleLogRepository persiste os registros de avaliação por ativo de uma regra
type RuleLogRepository interface {
	Append(entry *domain.RuleLogEntry) error
	ListByRule(ruleID string, limit uint64) ([]*domain.RuleLogEntry, error)
}

type ruleLogRepository struct {
	conn *postgres.Connection
}

func NewRuleLogRepository(conn *postgres.Connection) RuleLogRepository {
	return &ruleLogRepository{
		conn: conn,
	}
}

// Append grava o registro com o carimbo de tempo do momento da escrita
func (r *ruleLogRepository) Append(entry *domain.RuleLogEntry) error {
	var validationJSON []byte
	var err error

	if entry.Validation != nil {
		validationJSON, err = json.Marshal(entry.Validation)
		if err != nil {
			return fmt.Errorf("erro ao serializar validação para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("rule_logs").
		Columns("id", "rule_id", "validation", "created_at").
		Values(
			entry.ID,
			entry.RuleID,
			validationJSON,
			time.Now(),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *ruleLogRepository) ListByRule(ruleID string, limit uint64) ([]*domain.RuleLogEntry, error) {
	builder := squirrel.
		Select("rl.id, rl.rule_id, rl.validation, rl.created_at").
		From(ruleLogsTable).
		Where(squirrel.Eq{"rl.rule_id": ruleID}).
		OrderBy("rl.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.RuleLogEntry{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.RuleLogEntry, 0)
	for rows.Next() {
		entry := &domain.RuleLogEntry{}
		var validationJSON []byte

		if err := rows.Scan(&entry.ID, &entry.RuleID, &validationJSON, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear log de regra: %w", err)
		}

		if validationJSON != nil {
			validation := &domain.AssetValidation{}
			if err := json.Unmarshal(validationJSON, validation); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de validação: %w", err)
			}
			entry.Validation = validation
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
