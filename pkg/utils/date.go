package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DateRangeArray gera as datas entre startDate e endDate (inclusive) no
// formato YYYY-MM-DD
func DateRangeArray(startDate, endDate time.Time) []string {
	// Normalizando as datas para meia-noite
	current := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location())

	dates := make([]string, 0)
	for !current.After(end) {
		dates = append(dates, current.Format(time.DateOnly))
		current = current.AddDate(0, 0, 1)
	}

	return dates
}
