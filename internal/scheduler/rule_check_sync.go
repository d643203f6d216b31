// Package scheduler contém os serviços de agendamento do motor de regras
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-automation-api/infrastructure/repository"
	"github.com/vfg2006/ad-automation-api/internal/config"
	"github.com/vfg2006/ad-automation-api/internal/domain"
	"github.com/vfg2006/ad-automation-api/internal/usecases/actioning"
	"github.com/vfg2006/ad-automation-api/internal/usecases/scheduling"
	"github.com/vfg2006/ad-automation-api/internal/usecases/validating"
	"github.com/vfg2006/ad-automation-api/pkg/utils"
)

type RuleCheckSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// RuleCheckSyncService gerencia o ciclo periódico de verificação de regras:
// seleciona regras devidas, valida, executa ações nos ativos aprovados e
// registra o resultado
type RuleCheckSyncService struct {
	scheduler           *gocron.Scheduler
	config              RuleCheckSyncConfig
	ruleRepo            repository.RuleRepository
	ruleLogRepo         repository.RuleLogRepository
	gate                scheduling.Gate
	validator           validating.Validator
	actioner            actioning.Actioner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRuleCheckSyncService(
	ruleRepo repository.RuleRepository,
	ruleLogRepo repository.RuleLogRepository,
	gate scheduling.Gate,
	validator validating.Validator,
	actioner actioning.Actioner,
	cfg *config.Config,
) *RuleCheckSyncService {
	syncConfig := RuleCheckSyncConfig{
		CronSchedule:      cfg.RuleCheckSync.CronSchedule,
		MaxConcurrentJobs: cfg.RuleCheckSync.MaxConcurrentJobs,
		SyncEnabled:       cfg.RuleCheckSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de verificação de regras carregada")

	return &RuleCheckSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		ruleRepo:    ruleRepo,
		ruleLogRepo: ruleLogRepo,
		gate:        gate,
		validator:   validator,
		actioner:    actioner,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *RuleCheckSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Verificação periódica de regras desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação de regras")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.checkAllRules()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de regras: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação de regras")
		s.scheduler.Stop()
	}()

	return nil
}

// checkAllRules percorre todas as regras ativas e processa as que estão devidas
func (s *RuleCheckSyncService) checkAllRules() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Verificação de regras já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando verificação de todas as regras ativas")

	rules, err := s.ruleRepo.ListActiveRules()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar regras ativas para verificação")
		return
	}

	if len(rules) == 0 {
		logrus.Info("Nenhuma regra ativa encontrada para verificação")
		return
	}

	s.processRules(rules)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"rules":    len(rules),
	}).Info("Verificação de regras concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processRules processa as regras devidas com concorrência limitada
func (s *RuleCheckSyncService) processRules(rules []*domain.Rule) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, rule := range rules {
		due, err := s.gate.IsDue(rule)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"rule_id": rule.ID,
				"error":   err.Error(),
			}).Error("Erro ao avaliar janela de verificação da regra")
			continue
		}
		if !due {
			logrus.WithField("rule_id", rule.ID).Debug("Regra ainda dentro da janela de verificação. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(r *domain.Rule) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			s.processRule(r)
		}(rule)
	}

	wg.Wait()
}

// processRule valida uma regra, executa a ação nos ativos aprovados e
// registra o resultado. O last_checked só avança quando o ciclo completa
// sem falha externa, para que a regra seja reavaliada no próximo ciclo.
func (s *RuleCheckSyncService) processRule(rule *domain.Rule) {
	logrus.WithFields(logrus.Fields{
		"rule_id":   rule.ID,
		"rule_name": rule.Name,
		"scope":     rule.Scope,
	}).Info("Processando regra")

	verdict, err := s.validator.ValidateRule(rule)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id": rule.ID,
			"error":   err.Error(),
		}).Error("Erro ao validar regra. Mantendo last_checked para nova tentativa.")
		return
	}

	if err := s.executeActions(rule, verdict); err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id": rule.ID,
			"error":   err.Error(),
		}).Error("Erro ao executar ações da regra. Mantendo last_checked para nova tentativa.")
		return
	}

	s.appendLogs(rule, verdict)

	if _, err := s.gate.MarkChecked(rule); err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id": rule.ID,
			"error":   err.Error(),
		}).Error("Erro ao atualizar last_checked da regra")
		return
	}

	logrus.WithFields(logrus.Fields{
		"rule_id": rule.ID,
		"passed":  len(verdict.Passed),
		"failed":  len(verdict.Failed),
	}).Info("Regra processada com sucesso")
}

// executeActions executa a ação configurada para cada ativo aprovado
func (s *RuleCheckSyncService) executeActions(rule *domain.Rule, verdict *domain.RuleVerdict) error {
	for assetID := range verdict.Passed {
		payload, err := s.actioner.Plan(rule.Action, rule.Budget, rule.Scope, assetID)
		if err != nil {
			return fmt.Errorf("erro ao montar ação para o ativo %s: %w", assetID, err)
		}

		response, err := s.actioner.Execute(rule.AccountID, rule.AccessToken, payload)
		if err != nil {
			return fmt.Errorf("erro ao executar ação para o ativo %s: %w", assetID, err)
		}

		logrus.WithFields(logrus.Fields{
			"rule_id":  rule.ID,
			"asset_id": assetID,
			"action":   rule.Action.Value,
			"response": response,
		}).Info("Ação executada para ativo aprovado")
	}

	return nil
}

// appendLogs registra o resultado de cada ativo avaliado. Falha de log não
// interrompe o ciclo da regra.
func (s *RuleCheckSyncService) appendLogs(rule *domain.Rule, verdict *domain.RuleVerdict) {
	validations := make([]*domain.AssetValidation, 0, len(verdict.Passed)+len(verdict.Failed))
	for _, validation := range verdict.Passed {
		validations = append(validations, validation)
	}
	for _, validation := range verdict.Failed {
		validations = append(validations, validation)
	}

	for _, validation := range validations {
		id, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar identificador do log de regra")
			continue
		}

		entry := &domain.RuleLogEntry{
			ID:         id,
			RuleID:     rule.ID,
			Validation: validation,
		}

		if err := s.ruleLogRepo.Append(entry); err != nil {
			logrus.WithFields(logrus.Fields{
				"rule_id":  rule.ID,
				"asset_id": validation.AssetID,
				"error":    err.Error(),
			}).Error("Erro ao registrar log de validação da regra")
		}
	}
}

// TriggerManualSync inicia manualmente um ciclo de verificação de regras
func (s *RuleCheckSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Verificação de regras já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando verificação manual de regras")
	go s.checkAllRules()
}

// GetStatus retorna o status atual do agendador
func (s *RuleCheckSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
