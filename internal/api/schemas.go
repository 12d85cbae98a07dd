package api

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	UptimeS int64  `json:"uptime_s"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type LoadVideoRequest struct {
	SourceID string `json:"source_id"`
	Title    string `json:"title"`
}

type AddMarkerRequest struct {
	// Time is the marker position in seconds. When AtPlayhead is set the
	// position is read from the attached player instead.
	Time       *float64 `json:"time,omitempty"`
	Label      string   `json:"label,omitempty"`
	AtPlayhead bool     `json:"at_playhead,omitempty"`
}

type CreateClipRequest struct {
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Title     string  `json:"title"`
}

type AddEffectRequest struct {
	Type      string         `json:"type,omitempty"`
	Name      string         `json:"name,omitempty"`
	Settings  map[string]any `json:"settings,omitempty"`
	StartTime *float64       `json:"start_time,omitempty"`
	EndTime   *float64       `json:"end_time,omitempty"`
}

type MergeRequest struct {
	Title string `json:"title"`
}

type ExportRequest struct {
	Format  string `json:"format"`
	Quality string `json:"quality"`
}
