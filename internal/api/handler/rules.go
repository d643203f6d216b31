package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-automation-api/infrastructure/repository"
	"github.com/vfg2006/ad-automation-api/internal/domain"
	"github.com/vfg2006/ad-automation-api/internal/usecases/scheduling"
	"github.com/vfg2006/ad-automation-api/internal/usecases/validating"
	"github.com/vfg2006/ad-automation-api/pkg/apiErrors"
	"github.com/vfg2006/ad-automation-api/pkg/middleware"
)

const defaultRuleLogLimit = 50

// ListRules retorna as regras ativas do usuário autenticado
func ListRules(ruleRepo repository.RuleRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		rules, err := ruleRepo.ListActiveRulesByUser(userClaims.UserID)
		if err != nil {
			logrus.Error("Erro ao listar regras:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar regras no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(rules); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ValidateRule executa a validação da regra sob demanda e devolve o veredito
// por ativo, sem executar ações nem avançar o last_checked
func ValidateRule(ruleRepo repository.RuleRepository, validator validating.Validator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ValidateRule")

		rule, ok := findRule(w, r, ruleRepo)
		if !ok {
			return
		}

		verdict, err := validator.ValidateRule(rule)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"rule_id": rule.ID,
				"error":   err.Error(),
			}).Error("Erro ao validar regra sob demanda")
			apiErrors.WriteError(w, apiErrors.ErrRuleValidation, "Erro ao validar a regra", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(verdict); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ResetRuleCheck zera o last_checked da regra para que o próximo ciclo do
// agendador a reavalie imediatamente
func ResetRuleCheck(ruleRepo repository.RuleRepository, gate scheduling.Gate) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ResetRuleCheck")

		rule, ok := findRule(w, r, ruleRepo)
		if !ok {
			return
		}

		updated, err := gate.ResetChecked(rule)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"rule_id": rule.ID,
				"error":   err.Error(),
			}).Error("Erro ao zerar last_checked da regra")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar a regra", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetRuleLogs retorna os registros de validação da regra, mais recentes primeiro
func GetRuleLogs(ruleRepo repository.RuleRepository, ruleLogRepo repository.RuleLogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rule, ok := findRule(w, r, ruleRepo)
		if !ok {
			return
		}

		limit := uint64(defaultRuleLogLimit)
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.ParseUint(rawLimit, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		entries, err := ruleLogRepo.ListByRule(rule.ID, limit)
		if err != nil {
			logrus.Error("Erro ao listar logs da regra:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar logs da regra", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(entries); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// findRule resolve o parâmetro :id da rota para uma regra pertencente ao
// usuário autenticado. Já escreve a resposta de erro quando não resolve.
func findRule(w http.ResponseWriter, r *http.Request, ruleRepo repository.RuleRepository) (*domain.Rule, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}

	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da regra é obrigatório", nil)
		return nil, false
	}

	rule, err := ruleRepo.GetByID(id)
	if err != nil {
		logrus.Error("Erro ao buscar regra:", err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar regra no banco de dados", nil)
		return nil, false
	}

	if rule == nil {
		apiErrors.WriteError(w, apiErrors.ErrRuleNotFound, "Regra não encontrada", nil)
		return nil, false
	}

	// Administradores enxergam regras de qualquer usuário
	if rule.UserID != userClaims.UserID && userClaims.UserRoleID != middleware.RoleAdmin {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar esta regra", nil)
		return nil, false
	}

	return rule, true
}
