package validating

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-automation-api/internal/domain"
	"github.com/vfg2006/ad-automation-api/pkg/utils"
)

// ErrUnknownTimeframeUnit indica uma janela retroativa malformada na regra
var ErrUnknownTimeframeUnit = errors.New("unidade de janela desconhecida")

// expressionContext carrega o contexto derivado da regra para a avaliação
// de uma única expressão
type expressionContext struct {
	UserID           string
	Scope            domain.Scope
	SelectedAssetIDs []string
}

// DatesArray computa o intervalo inclusivo [hoje - janela, hoje] no formato
// YYYY-MM-DD. Expressão sem janela resulta em intervalo vazio e, portanto,
// em nenhum relatório.
func DatesArray(timeframe *domain.Timeframe) ([]string, error) {
	if timeframe == nil {
		return []string{}, nil
	}

	endDate := time.Now()

	var startDate time.Time
	switch timeframe.Unit {
	case "days":
		startDate = endDate.AddDate(0, 0, -timeframe.Amount)
	case "weeks":
		startDate = endDate.AddDate(0, 0, -timeframe.Amount*7)
	case "months":
		startDate = endDate.AddDate(0, -timeframe.Amount, 0)
	default:
		return nil, errors.Wrapf(ErrUnknownTimeframeUnit, "%q", timeframe.Unit)
	}

	return utils.DateRangeArray(startDate, endDate), nil
}

// validateExpression resolve o intervalo de datas da expressão, busca os
// relatórios diários, agrega as estatísticas no escopo da regra, restringe
// aos ativos selecionados e avalia o predicado por ativo
func (s *Service) validateExpression(expression domain.Expression, exprCtx expressionContext) ([]domain.ValidationRecord, error) {
	dates, err := DatesArray(expression.Timeframe)
	if err != nil {
		return nil, errors.Wrapf(err, "expressão %s", expression.ID)
	}

	reports, err := s.fetchReports(dates, exprCtx.UserID)
	if err != nil {
		return nil, errors.Wrapf(err, "expressão %s", expression.ID)
	}

	stats := s.aggregator.MergeStats(reports, exprCtx.Scope)

	selected := make(map[string]bool, len(exprCtx.SelectedAssetIDs))
	for _, assetID := range exprCtx.SelectedAssetIDs {
		selected[assetID] = true
	}

	var startDate, endDate string
	if len(dates) > 0 {
		startDate = dates[0]
		endDate = dates[len(dates)-1]
	}

	records := make([]domain.ValidationRecord, 0)
	for assetID, asset := range stats {
		if !selected[assetID] {
			continue
		}

		assetValue, err := expression.Metric.ValueFrom(asset)
		if err != nil {
			return nil, errors.Wrapf(err, "expressão %s", expression.ID)
		}

		status, err := expression.Predicate.Compare(assetValue, expression.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "expressão %s", expression.ID)
		}

		records = append(records, domain.ValidationRecord{
			AssetID:      asset.AssetID,
			AssetName:    asset.AssetName,
			Metric:       expression.Metric,
			Predicate:    expression.Predicate,
			Value:        expression.Value,
			AssetValue:   assetValue,
			Status:       status,
			StartDate:    startDate,
			EndDate:      endDate,
			ExpressionID: expression.ID,
			ConditionID:  expression.ConditionID,
		})
	}

	logrus.WithFields(logrus.Fields{
		"expression_id": expression.ID,
		"metric":        expression.Metric,
		"predicate":     expression.Predicate,
		"dates":         len(dates),
		"records":       len(records),
	}).Debug("Expressão avaliada")

	return records, nil
}

// fetchReports busca os relatórios de cada data com concorrência limitada,
// preservando a ordem por data na concatenação. A agregação só acontece com
// o conjunto completo: qualquer falha de leitura descarta a avaliação.
func (s *Service) fetchReports(dates []string, userID string) ([]*domain.DailyReport, error) {
	if len(dates) == 0 {
		return []*domain.DailyReport{}, nil
	}

	semaphore := make(chan struct{}, maxConcurrentFetches)

	var (
		wg       sync.WaitGroup
		mutex    sync.Mutex
		firstErr error
	)

	buffered := make([][]*domain.DailyReport, len(dates))

	for i, date := range dates {
		wg.Add(1)

		go func(i int, date string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			reports, err := s.reportRepo.GetByDateAndUser(date, userID)
			if err != nil {
				mutex.Lock()
				if firstErr == nil {
					firstErr = errors.Wrapf(err, "erro ao buscar relatórios de %s", date)
				}
				mutex.Unlock()
				return
			}

			buffered[i] = reports
		}(i, date)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	all := make([]*domain.DailyReport, 0)
	for _, reports := range buffered {
		all = append(all, reports...)
	}

	return all, nil
}
