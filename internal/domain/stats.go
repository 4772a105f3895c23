package domain

type ReportStats struct {
	ReporterCount int64 `json:"reporter_count"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // 1 day max
}
