package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-automation-api/internal/domain"
)

const (
	dailyReportsTable = "daily_reports dr"
)

// ReportRepository expõe a leitura dos documentos diários de desempenho.
// Dados ausentes retornam lista vazia, nunca erro.
type ReportRepository interface {
	GetByDateAndUser(date string, userID string) ([]*domain.DailyReport, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

func (r *reportRepository) GetByDateAndUser(date string, userID string) ([]*domain.DailyReport, error) {
	query, args, err := squirrel.
		Select("dr.id, dr.user_id, dr.date, dr.campaigns, dr.adsets, dr.ads, dr.customers, dr.created_at, dr.updated_at").
		From(dailyReportsTable).
		Where(squirrel.Eq{"dr.date": date, "dr.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.DailyReport{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.DailyReport, 0)
	for rows.Next() {
		report, err := r.scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório diário: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *reportRepository) scanReport(rows *sql.Rows) (*domain.DailyReport, error) {
	report := &domain.DailyReport{}

	var (
		campaignsJSON []byte
		adSetsJSON    []byte
		adsJSON       []byte
		customersJSON []byte
	)

	err := rows.Scan(
		&report.ID,
		&report.UserID,
		&report.Date,
		&campaignsJSON,
		&adSetsJSON,
		&adsJSON,
		&customersJSON,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if campaignsJSON != nil {
		if err := json.Unmarshal(campaignsJSON, &report.Campaigns); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de campaigns: %w", err)
		}
	}

	if adSetsJSON != nil {
		if err := json.Unmarshal(adSetsJSON, &report.AdSets); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de adsets: %w", err)
		}
	}

	if adsJSON != nil {
		if err := json.Unmarshal(adsJSON, &report.Ads); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de ads: %w", err)
		}
	}

	if customersJSON != nil {
		if err := json.Unmarshal(customersJSON, &report.Customers); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de customers: %w", err)
		}
	}

	return report, nil
}
