package actioning

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-automation-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-automation-api/internal/domain"
)

// Fuso de referência da plataforma para janelas de ação no mesmo dia
const platformTimeZone = "America/Los_Angeles"

// Actioner prepara payloads de ação por ativo e, opcionalmente, os executa
// na plataforma via colaborador externo
type Actioner interface {
	Plan(action domain.Action, budget domain.Budget, scope domain.Scope, assetID string) (domain.ActionPayload, error)
	Execute(accountID string, accessToken string, payload domain.ActionPayload) (map[string]any, error)
}

type Service struct {
	metaService meta.Integrator
}

// NewService cria uma nova instância do planejador/executor de ações
func NewService(metaService meta.Integrator) Actioner {
	return &Service{
		metaService: metaService,
	}
}

// Plan produz o payload específico da plataforma para uma ação sobre um
// ativo. É uma função pura: nada é executado aqui.
func (s *Service) Plan(action domain.Action, budget domain.Budget, scope domain.Scope, assetID string) (domain.ActionPayload, error) {
	switch action.Value {
	case domain.ActionIncreaseBudget, domain.ActionDecreaseBudget:
		return s.planBudgetChange(action.Value, budget, scope, assetID)
	case domain.ActionPause:
		return s.planPause(scope, assetID), nil
	}

	return nil, errors.Wrapf(domain.ErrUnknownActionMethod, "%q", action.Value)
}

// planBudgetChange monta a ação de orçamento com janela de mesmo dia no
// fuso de referência da plataforma e valor numérico coagido
func (s *Service) planBudgetChange(method domain.ActionMethod, budget domain.Budget, scope domain.Scope, assetID string) (domain.ActionPayload, error) {
	value, err := strconv.ParseFloat(budget.Value, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "valor de orçamento inválido %q", budget.Value)
	}

	today := todayAtPlatform()

	params := domain.ActionParams{
		Action: string(method),
		TimeRange: &domain.TimeRange{
			Since: today,
			Until: today,
		},
		Type:  budget.Type,
		Value: value,
	}
	params.SetAssetID(scope, assetID)

	return domain.ActionPayload{
		scope.Singular(): {Params: params},
	}, nil
}

// planPause monta a ação fixa de parada/pausa do ativo
func (s *Service) planPause(scope domain.Scope, assetID string) domain.ActionPayload {
	params := domain.ActionParams{
		Action: "stop",
		Status: "PAUSED",
	}
	params.SetAssetID(scope, assetID)

	return domain.ActionPayload{
		scope.Singular(): {Params: params},
	}
}

// Execute delega o payload ao cliente da plataforma e devolve o campo data
// do primeiro item da resposta, ou um objeto vazio para respostas vazias ou
// malformadas. Falhas transitórias são propagadas sem retry.
func (s *Service) Execute(accountID string, accessToken string, payload domain.ActionPayload) (map[string]any, error) {
	results, err := s.metaService.ExecuteAction(accountID, accessToken, payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar ação na plataforma")
	}

	if len(results) == 0 || results[0].Data == nil {
		return map[string]any{}, nil
	}

	return results[0].Data, nil
}

// todayAtPlatform retorna a data de hoje no fuso da plataforma
func todayAtPlatform() string {
	location, err := time.LoadLocation(platformTimeZone)
	if err != nil {
		// Sem tzdata no ambiente; a janela cai para UTC
		logrus.WithError(err).Warn("Erro ao carregar fuso da plataforma, usando UTC")
		location = time.UTC
	}

	return time.Now().In(location).Format(time.DateOnly)
}
