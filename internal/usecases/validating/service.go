package validating

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-automation-api/infrastructure/repository"
	"github.com/vfg2006/ad-automation-api/internal/domain"
	"github.com/vfg2006/ad-automation-api/internal/usecases/aggregating"
)

const (
	// Limite de buscas de relatório simultâneas por expressão
	maxConcurrentFetches = 5
	// Limite de expressões avaliadas simultaneamente por regra
	maxConcurrentExpressions = 3
)

type Service struct {
	reportRepo repository.ReportRepository
	aggregator aggregating.StatsAggregator
}

// NewService cria uma nova instância do orquestrador de validação
func NewService(
	reportRepo repository.ReportRepository,
	aggregator aggregating.StatsAggregator,
) Validator {
	return &Service{
		reportRepo: reportRepo,
		aggregator: aggregator,
	}
}

// ValidateRule avalia todas as expressões da regra, agrupa os resultados por
// ativo e particiona os ativos entre aprovados e reprovados. O veredito só é
// produzido com o conjunto completo de expressões: uma falha em qualquer
// expressão aborta a avaliação inteira.
func (s *Service) ValidateRule(rule *domain.Rule) (*domain.RuleVerdict, error) {
	expressions := rule.Expressions()

	exprCtx := expressionContext{
		UserID:           rule.UserID,
		Scope:            rule.Scope,
		SelectedAssetIDs: rule.SelectedAssetIDs(),
	}

	logrus.WithFields(logrus.Fields{
		"rule_id":         rule.ID,
		"scope":           rule.Scope,
		"expressions":     len(expressions),
		"selected_assets": len(exprCtx.SelectedAssetIDs),
	}).Info("Iniciando validação da regra")

	records, err := s.validateExpressions(expressions, exprCtx)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao validar regra %s", rule.ID)
	}

	groups := groupByAsset(records)

	verdict := &domain.RuleVerdict{
		RuleID:      rule.ID,
		Name:        rule.Name,
		Scope:       rule.Scope,
		Action:      rule.Action,
		Budget:      rule.Budget,
		UserID:      rule.UserID,
		SelectedIDs: exprCtx.SelectedAssetIDs,
		Passed:      make(map[string]*domain.AssetValidation),
		Failed:      make(map[string]*domain.AssetValidation),
	}

	for assetID, group := range groups {
		validation := summarizeAsset(group)
		if validation.Status == "passed" {
			verdict.Passed[assetID] = validation
		} else {
			verdict.Failed[assetID] = validation
		}
	}

	logrus.WithFields(logrus.Fields{
		"rule_id": rule.ID,
		"passed":  len(verdict.Passed),
		"failed":  len(verdict.Failed),
	}).Info("Validação da regra concluída")

	return verdict, nil
}

// validateExpressions roda as expressões com concorrência limitada e espera
// todas terminarem antes de devolver a sequência concatenada de registros
func (s *Service) validateExpressions(expressions []domain.Expression, exprCtx expressionContext) ([]domain.ValidationRecord, error) {
	semaphore := make(chan struct{}, maxConcurrentExpressions)

	var (
		wg       sync.WaitGroup
		mutex    sync.Mutex
		firstErr error
	)

	results := make([][]domain.ValidationRecord, len(expressions))

	for i, expression := range expressions {
		wg.Add(1)

		go func(i int, expression domain.Expression) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			records, err := s.validateExpression(expression, exprCtx)
			if err != nil {
				mutex.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mutex.Unlock()
				return
			}

			results[i] = records
		}(i, expression)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	records := make([]domain.ValidationRecord, 0)
	for _, result := range results {
		records = append(records, result...)
	}

	return records, nil
}

// groupByAsset agrupa os registros de validação por id de ativo
func groupByAsset(records []domain.ValidationRecord) map[string][]domain.ValidationRecord {
	groups := make(map[string][]domain.ValidationRecord)
	for _, record := range records {
		groups[record.AssetID] = append(groups[record.AssetID], record)
	}
	return groups
}

// summarizeAsset deriva o resumo de um grupo de registros de um ativo:
// contagens de aprovados/reprovados e status "failed" se qualquer expressão
// resultou falsa
func summarizeAsset(records []domain.ValidationRecord) *domain.AssetValidation {
	validation := &domain.AssetValidation{
		NumOfExpressions: len(records),
		Validations:      records,
		Results:          make([]bool, 0, len(records)),
		Status:           "passed",
	}

	if len(records) > 0 {
		validation.AssetID = records[0].AssetID
		validation.AssetName = records[0].AssetName
	}

	for _, record := range records {
		validation.Results = append(validation.Results, record.Status)

		if record.Status {
			validation.NumOfPassed++
		} else {
			validation.NumOfFailed++
			validation.Status = "failed"
		}
	}

	return validation
}
