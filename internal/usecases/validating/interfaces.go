package validating

import (
	"github.com/vfg2006/ad-automation-api/internal/domain"
)

// Validator avalia todas as expressões de uma regra e produz o veredito com
// a partição de ativos aprovados/reprovados
type Validator interface {
	ValidateRule(rule *domain.Rule) (*domain.RuleVerdict, error)
}
