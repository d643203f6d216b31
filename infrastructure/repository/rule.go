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
	rulesTable = "rules r"
)

// RuleRepository expõe as leituras de regras e as intenções de escrita que o
// motor autoriza (atualização parcial de last_checked)
type RuleRepository interface {
	ListActiveRules() ([]*domain.Rule, error)
	ListActiveRulesByUser(userID string) ([]*domain.Rule, error)
	GetByID(ruleID string) (*domain.Rule, error)
	UpdateLastChecked(ruleID string, lastChecked int64) error
}

type ruleRepository struct {
	conn *postgres.Connection
}

func NewRuleRepository(conn *postgres.Connection) RuleRepository {
	return &ruleRepository{
		conn: conn,
	}
}

func (r *ruleRepository) ListActiveRules() ([]*domain.Rule, error) {
	return r.listRules(squirrel.Eq{"r.status": domain.RuleStatusActive})
}

func (r *ruleRepository) ListActiveRulesByUser(userID string) ([]*domain.Rule, error) {
	return r.listRules(squirrel.Eq{"r.status": domain.RuleStatusActive, "r.user_id": userID})
}

func (r *ruleRepository) listRules(where squirrel.Eq) ([]*domain.Rule, error) {
	query, args, err := squirrel.
		Select(ruleColumns()).
		From(rulesTable).
		Where(where).
		OrderBy("r.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Rule{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rules := make([]*domain.Rule, 0)
	for rows.Next() {
		rule, err := r.scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear regra: %w", err)
		}
		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rules, nil
}

func (r *ruleRepository) GetByID(ruleID string) (*domain.Rule, error) {
	query, args, err := squirrel.
		Select(ruleColumns()).
		From(rulesTable).
		Where(squirrel.Eq{"r.id": ruleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	rule, err := r.scanRule(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear regra: %w", err)
	}

	return rule, nil
}

// UpdateLastChecked persiste apenas o carimbo de última verificação da regra,
// sem tocar nos demais campos (atualização de mesclagem, não sobrescrita)
func (r *ruleRepository) UpdateLastChecked(ruleID string, lastChecked int64) error {
	query, args, err := squirrel.
		Update("rules").
		Set("last_checked", lastChecked).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": ruleID}).
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

func ruleColumns() string {
	return `r.id, r.user_id, r.name, r.status, r.scope, r.schedule, r.last_checked,
		r.conditions, r.assets, r.action, r.budget, r.account_id, r.access_token,
		r.created_at, r.updated_at`
}

func (r *ruleRepository) scanRule(rows *sql.Rows) (*domain.Rule, error) {
	rule := &domain.Rule{}

	var (
		scheduleJSON   []byte
		conditionsJSON []byte
		assetsJSON     []byte
		actionJSON     []byte
		budgetJSON     []byte
	)

	err := rows.Scan(
		&rule.ID,
		&rule.UserID,
		&rule.Name,
		&rule.Status,
		&rule.Scope,
		&scheduleJSON,
		&rule.LastChecked,
		&conditionsJSON,
		&assetsJSON,
		&actionJSON,
		&budgetJSON,
		&rule.AccountID,
		&rule.AccessToken,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if scheduleJSON != nil {
		if err := json.Unmarshal(scheduleJSON, &rule.Schedule); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de schedule: %w", err)
		}
	}

	if conditionsJSON != nil {
		if err := json.Unmarshal(conditionsJSON, &rule.Conditions); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de conditions: %w", err)
		}
	}

	if assetsJSON != nil {
		if err := json.Unmarshal(assetsJSON, &rule.Assets); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de assets: %w", err)
		}
	}

	if actionJSON != nil {
		if err := json.Unmarshal(actionJSON, &rule.Action); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de action: %w", err)
		}
	}

	if budgetJSON != nil {
		if err := json.Unmarshal(budgetJSON, &rule.Budget); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de budget: %w", err)
		}
	}

	return rule, nil
}
