package dto

import (
	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// RecordSavedResponse acknowledges a record saved hook.
type RecordSavedResponse struct {
	Status string `json:"status"`
}

// ValuesResponse holds the masked values of one coordinate.
type ValuesResponse struct {
	ProjectID int64             `json:"project_id"`
	Record    string            `json:"record"`
	EventID   int64             `json:"event_id"`
	Instance  int               `json:"instance"`
	Values    map[string]string `json:"values"`
}

// ReportResponse holds one page of masked report rows.
type ReportResponse struct {
	Data []ValuesResponse `json:"data"`
}

// MapValuesToResponse converts masked values of coord into an API response.
func MapValuesToResponse(coord recordDomain.Coordinate, values recordDomain.Values) ValuesResponse {
	if values == nil {
		values = recordDomain.Values{}
	}
	return ValuesResponse{
		ProjectID: coord.ProjectID,
		Record:    coord.Record,
		EventID:   coord.EventID,
		Instance:  coord.Instance,
		Values:    values,
	}
}

// MapRowsToReportResponse converts masked rows into a report response.
func MapRowsToReportResponse(rows []*recordDomain.Row) ReportResponse {
	data := make([]ValuesResponse, 0, len(rows))
	for _, row := range rows {
		data = append(data, MapValuesToResponse(row.Coordinate, row.Values))
	}
	return ReportResponse{Data: data}
}
