package model

// Report is the full export snapshot of all current aggregate outputs.
type Report struct {
	ExportedAt string             `json:"exportedAt"`
	Timing     *TimingAnalysis    `json:"timing"`
	Content    *ContentAnalysis   `json:"content"`
	Engagement []EngagementRecord `json:"engagement"`
	Hashtags   *HashtagAnalysis   `json:"hashtags"`
	Network    *NetworkData       `json:"network"`
}

// PartialExport wraps a caller-chosen slice of records for export.
type PartialExport struct {
	ExportedAt string      `json:"exportedAt"`
	DataType   string      `json:"dataType"`
	Data       interface{} `json:"data"`
}
