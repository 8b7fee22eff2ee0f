package services

import "time"

type ExportEntry struct {
	Date      string    `json:"date"`
	Success   bool      `json:"success"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ExportService struct {
	logs StatsLogReader
}

func NewExportService(logs StatsLogReader) *ExportService {
	return &ExportService{logs: logs}
}

// BuildEntries flattens the user's live logs into the export shape, newest
// day first, dropping row identifiers the export consumer has no use for.
func (service *ExportService) BuildEntries(userID uint) ([]ExportEntry, error) {
	logs, err := service.logs.ListActive(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]ExportEntry, 0, len(logs))
	for _, entry := range logs {
		entries = append(entries, ExportEntry{
			Date:      entry.Date,
			Success:   entry.Success,
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt,
		})
	}
	return entries, nil
}
