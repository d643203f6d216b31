package domain

import (
	"time"
)

// RuleStatus representa o status de uma regra de automação
type RuleStatus string

const (
	RuleStatusActive   RuleStatus = "active"
	RuleStatusInactive RuleStatus = "inactive"
)

// Rule representa uma regra de automação definida pelo usuário
type Rule struct {
	ID          string                               `json:"id"`
	Name        string                               `json:"name"`
	UserID      string                               `json:"user_id"`
	Status      RuleStatus                           `json:"status"`
	Scope       Scope                                `json:"scope"`
	Schedule    Schedule                             `json:"schedule"`
	LastChecked int64                                `json:"last_checked"`
	Conditions  []Condition                          `json:"conditions"`
	Assets      map[string]map[string]AssetSelection `json:"assets"`
	Action      Action                               `json:"action"`
	Budget      Budget                               `json:"budget"`
	AccountID   string                               `json:"account_id"`
	AccessToken string                               `json:"-"`
	CreatedAt   time.Time                            `json:"created_at"`
	UpdatedAt   time.Time                            `json:"updated_at"`
}

// Schedule define a frequência de reavaliação da regra
type Schedule struct {
	Amount int          `json:"amount"`
	Unit   ScheduleUnit `json:"unit"`
}

// Condition agrupa as expressões de uma regra
type Condition struct {
	ID          string       `json:"id"`
	Expressions []Expression `json:"expressions"`
}

// Expression é uma verificação de limiar (métrica, predicado, valor, janela)
type Expression struct {
	ID          string     `json:"id"`
	ConditionID string     `json:"condition_id"`
	Metric      Metric     `json:"metric"`
	Predicate   Predicate  `json:"predicate"`
	Value       float64    `json:"value"`
	Timeframe   *Timeframe `json:"timeframe"`
}

// Timeframe é a janela retroativa de uma expressão, terminando hoje
type Timeframe struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

// AssetSelection marca um ativo como selecionado dentro do escopo da regra
type AssetSelection struct {
	AssetID   string `json:"asset_id"`
	AssetName string `json:"asset_name"`
	Selected  bool   `json:"selected"`
}

// Action é a ação configurada da regra (método + parâmetros de orçamento)
type Action struct {
	Value ActionMethod `json:"value"`
}

// Budget carrega os parâmetros de orçamento das ações de increase/decrease
type Budget struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Expressions achata a árvore conditions -> expressions da regra,
// propagando o id da condição para cada expressão
func (r *Rule) Expressions() []Expression {
	expressions := make([]Expression, 0)
	for _, condition := range r.Conditions {
		for _, expression := range condition.Expressions {
			expression.ConditionID = condition.ID
			expressions = append(expressions, expression)
		}
	}
	return expressions
}

// SelectedAssets retorna os ativos selecionados no escopo da regra.
// O mapa assets[scope] é o conjunto autoritativo de seleção.
func (r *Rule) SelectedAssets() map[string]AssetSelection {
	selected := make(map[string]AssetSelection)

	scoped, ok := r.Assets[string(r.Scope)]
	if !ok {
		return selected
	}

	for assetID, asset := range scoped {
		if asset.Selected {
			asset.AssetID = assetID
			selected[assetID] = asset
		}
	}

	return selected
}

// SelectedAssetIDs retorna apenas os ids dos ativos selecionados
func (r *Rule) SelectedAssetIDs() []string {
	ids := make([]string, 0)
	for assetID := range r.SelectedAssets() {
		ids = append(ids, assetID)
	}
	return ids
}
