package scheduling

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-automation-api/infrastructure/repository"
	"github.com/vfg2006/ad-automation-api/internal/domain"
)

// Gate decide se uma regra está vencida para (re)avaliação e registra o
// momento da última verificação
type Gate interface {
	ElapsedMinutes(rule *domain.Rule) int
	IsDue(rule *domain.Rule) (bool, error)
	MarkChecked(rule *domain.Rule) (*domain.Rule, error)
	ResetChecked(rule *domain.Rule) (*domain.Rule, error)
}

type Service struct {
	ruleRepo repository.RuleRepository
}

// NewService cria uma nova instância do gate de agendamento
func NewService(ruleRepo repository.RuleRepository) Gate {
	return &Service{
		ruleRepo: ruleRepo,
	}
}

// ElapsedMinutes retorna os minutos inteiros desde a última verificação.
// Uma regra nunca verificada conta como verificada há 10 anos.
func (s *Service) ElapsedMinutes(rule *domain.Rule) int {
	lastChecked := rule.LastChecked
	if lastChecked == 0 {
		lastChecked = time.Now().AddDate(-10, 0, 0).Unix()
	}

	return int(time.Since(time.Unix(lastChecked, 0)).Minutes())
}

// IsDue retorna verdadeiro quando a regra nunca foi verificada ou quando os
// minutos decorridos excedem o agendamento configurado
func (s *Service) IsDue(rule *domain.Rule) (bool, error) {
	if rule.LastChecked == 0 {
		return true, nil
	}

	scheduleMinutes, err := rule.Schedule.Unit.Minutes(rule.Schedule.Amount)
	if err != nil {
		return false, errors.Wrapf(err, "regra %s", rule.ID)
	}

	return s.ElapsedMinutes(rule) > scheduleMinutes, nil
}

// MarkChecked retorna a regra com last_checked atualizado para agora e emite
// a intenção de escrita parcial correspondente
func (s *Service) MarkChecked(rule *domain.Rule) (*domain.Rule, error) {
	now := time.Now().Unix()

	if err := s.ruleRepo.UpdateLastChecked(rule.ID, now); err != nil {
		return nil, errors.Wrapf(err, "erro ao atualizar last_checked da regra %s", rule.ID)
	}

	logrus.WithFields(logrus.Fields{
		"rule_id":      rule.ID,
		"last_checked": now,
	}).Debug("last_checked da regra atualizado")

	updated := *rule
	updated.LastChecked = now
	return &updated, nil
}

// ResetChecked zera o last_checked da regra para forçar a reavaliação na
// próxima passada do agendador
func (s *Service) ResetChecked(rule *domain.Rule) (*domain.Rule, error) {
	if err := s.ruleRepo.UpdateLastChecked(rule.ID, 0); err != nil {
		return nil, errors.Wrapf(err, "erro ao zerar last_checked da regra %s", rule.ID)
	}

	logrus.WithField("rule_id", rule.ID).Info("last_checked da regra zerado")

	updated := *rule
	updated.LastChecked = 0
	return &updated, nil
}
