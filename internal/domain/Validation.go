package domain

import (
	"time"
)

// ValidationRecord é o resultado de uma expressão avaliada sobre um ativo
type ValidationRecord struct {
	AssetID      string    `json:"asset_id"`
	AssetName    string    `json:"asset_name"`
	Metric       Metric    `json:"metric"`
	Predicate    Predicate `json:"predicate"`
	Value        float64   `json:"value"`
	AssetValue   float64   `json:"asset_value"`
	Status       bool      `json:"status"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	ExpressionID string    `json:"expression_id"`
	ConditionID  string    `json:"condition_id"`
}

// AssetValidation é o resumo das expressões avaliadas para um ativo
type AssetValidation struct {
	AssetID          string             `json:"asset_id"`
	AssetName        string             `json:"asset_name"`
	NumOfPassed      int                `json:"num_of_passed"`
	NumOfFailed      int                `json:"num_of_failed"`
	NumOfExpressions int                `json:"num_of_expressions"`
	Validations      []ValidationRecord `json:"validation"`
	Results          []bool             `json:"results"`
	Status           string             `json:"status"`
}

// RuleVerdict é o veredito de uma avaliação de regra: partição dos ativos
// selecionados entre aprovados e reprovados
type RuleVerdict struct {
	RuleID      string                      `json:"rule_id"`
	Name        string                      `json:"name"`
	Scope       Scope                       `json:"scope"`
	Action      Action                      `json:"action"`
	Budget      Budget                      `json:"budget"`
	UserID      string                      `json:"user_id"`
	SelectedIDs []string                    `json:"selected_ids"`
	Passed      map[string]*AssetValidation `json:"passed"`
	Failed      map[string]*AssetValidation `json:"failed"`
}

// RuleLogEntry é o registro de avaliação de um ativo, persistido por regra
type RuleLogEntry struct {
	ID         string           `json:"id"`
	RuleID     string           `json:"rule_id"`
	Validation *AssetValidation `json:"validation"`
	CreatedAt  time.Time        `json:"created_at"`
}
