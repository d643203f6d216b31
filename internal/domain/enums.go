package domain

import (
	"github.com/pkg/errors"
)

// Erros de configuração de regra. Nomes desconhecidos indicam uma definição
// malformada e precisam falhar explicitamente, nunca assumir um padrão.
var (
	ErrUnknownScope        = errors.New("escopo desconhecido")
	ErrUnknownPredicate    = errors.New("predicado desconhecido")
	ErrUnknownMetric       = errors.New("métrica desconhecida")
	ErrUnknownScheduleUnit = errors.New("unidade de agendamento desconhecida")
	ErrUnknownActionMethod = errors.New("método de ação desconhecido")
)

// Scope é o nível de entidade de anúncio ao qual a regra se aplica
type Scope string

const (
	ScopeCampaigns Scope = "campaigns"
	ScopeAdSets    Scope = "adsets"
	ScopeAds       Scope = "ads"
)

// ParseScope aceita as formas singular e plural do escopo
func ParseScope(s string) (Scope, error) {
	switch s {
	case "campaigns", "campaign":
		return ScopeCampaigns, nil
	case "adsets", "adset":
		return ScopeAdSets, nil
	case "ads", "ad":
		return ScopeAds, nil
	}
	return "", errors.Wrapf(ErrUnknownScope, "%q", s)
}

// Singular retorna a forma singular do escopo, usada nas chaves de
// documentos e payloads de ação (campaign_id, adset_id, ad_id)
func (s Scope) Singular() string {
	switch s {
	case ScopeCampaigns:
		return "campaign"
	case ScopeAdSets:
		return "adset"
	case ScopeAds:
		return "ad"
	}
	return string(s)
}

// AssetIDField é o campo de id derivado do escopo (ex.: campaign_id)
func (s Scope) AssetIDField() string {
	return s.Singular() + "_id"
}

// AssetNameField é o campo de nome derivado do escopo (ex.: campaign_name)
func (s Scope) AssetNameField() string {
	return s.Singular() + "_name"
}

// Predicate é o operador de comparação de uma expressão
type Predicate string

const (
	PredicateGt     Predicate = "gt"
	PredicateLt     Predicate = "lt"
	PredicateGte    Predicate = "gte"
	PredicateLte    Predicate = "lte"
	PredicateEquals Predicate = "equals"
)

// Compare avalia o predicado sobre o valor observado e o limiar
func (p Predicate) Compare(observed, threshold float64) (bool, error) {
	switch p {
	case PredicateGt:
		return observed > threshold, nil
	case PredicateLt:
		return observed < threshold, nil
	case PredicateGte:
		return observed >= threshold, nil
	case PredicateLte:
		return observed <= threshold, nil
	case PredicateEquals:
		return observed == threshold, nil
	}
	return false, errors.Wrapf(ErrUnknownPredicate, "%q", p)
}

// Metric é a métrica agregada avaliada por uma expressão
type Metric string

const (
	// MetricROAS é a receita atribuída a clientes dividida pelo gasto
	MetricROAS Metric = "roas"
	// MetricSpend é o gasto na plataforma de anúncios
	MetricSpend Metric = "spend"
	// MetricSales é a quantidade de vendas atribuídas a clientes
	MetricSales Metric = "sales"
)

// ValueFrom lê o valor da métrica no registro agregado do ativo
func (m Metric) ValueFrom(stats *AssetStats) (float64, error) {
	switch m {
	case MetricROAS:
		return stats.ROAS, nil
	case MetricSpend:
		return stats.Spend, nil
	case MetricSales:
		return float64(stats.CustomerSales), nil
	}
	return 0, errors.Wrapf(ErrUnknownMetric, "%q", m)
}

// ScheduleUnit é a unidade do agendamento de reavaliação
type ScheduleUnit string

const (
	ScheduleUnitMinutes ScheduleUnit = "minutes"
	ScheduleUnitHours   ScheduleUnit = "hours"
	ScheduleUnitDays    ScheduleUnit = "days"
)

// Minutes converte o agendamento para minutos
func (u ScheduleUnit) Minutes(amount int) (int, error) {
	switch u {
	case ScheduleUnitMinutes:
		return amount, nil
	case ScheduleUnitHours:
		return amount * 60, nil
	case ScheduleUnitDays:
		return amount * 1440, nil
	}
	return 0, errors.Wrapf(ErrUnknownScheduleUnit, "%q", u)
}

// ActionMethod é o método da ação configurada na regra
type ActionMethod string

const (
	ActionIncreaseBudget ActionMethod = "increase_budget"
	ActionDecreaseBudget ActionMethod = "decrease_budget"
	ActionPause          ActionMethod = "pause"
)
