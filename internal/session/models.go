package session

import (
	"fmt"
	"time"
)

// Video is the currently loaded source video. Immutable once created; loading
// a new video replaces it and resets the rest of the session.
type Video struct {
	ID            string    `json:"id"`
	SourceVideoID string    `json:"source_video_id"`
	Title         string    `json:"title"`
	Duration      float64   `json:"duration,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	OwnerID       string    `json:"owner_id"`
}

// Marker is a labeled point in time within the current video.
type Marker struct {
	ID    string  `json:"id"`
	Time  float64 `json:"time"`
	Label string  `json:"label"`
}

// Clip is a named sub-range of the current video, the unit consumed by
// merge and export.
type Clip struct {
	ID           string  `json:"id"`
	OwnerVideoID string  `json:"owner_video_id"`
	StartTime    float64 `json:"start_time"`
	EndTime      float64 `json:"end_time"`
	Title        string  `json:"title"`
}

// Duration returns the clip length in seconds.
func (c Clip) Duration() float64 {
	return c.EndTime - c.StartTime
}

const (
	EffectTypeFilter     = "filter"
	EffectTypeTransition = "transition"
	EffectTypeText       = "text"
	EffectTypeAudio      = "audio"
)

// Effect is a named modification scoped to a clip. StartTime and EndTime are
// optional sub-ranges within the clip; nil means the whole clip.
type Effect struct {
	ID        string         `json:"id"`
	ClipID    string         `json:"clip_id"`
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Settings  map[string]any `json:"settings"`
	StartTime *float64       `json:"start_time,omitempty"`
	EndTime   *float64       `json:"end_time,omitempty"`
}

// TimeRange is a validated [start, end) interval in seconds.
type TimeRange struct {
	Start float64
	End   float64
}

// NewTimeRange validates that start < end and both are non-negative.
func NewTimeRange(start, end float64) (TimeRange, error) {
	if start < 0 || end < 0 {
		return TimeRange{}, fmt.Errorf("%w: times must be non-negative (got %.3f..%.3f)", ErrInvalidRange, start, end)
	}
	if start >= end {
		return TimeRange{}, fmt.Errorf("%w: start %.3f must be before end %.3f", ErrInvalidRange, start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

// Duration returns the range length in seconds.
func (r TimeRange) Duration() float64 {
	return r.End - r.Start
}
