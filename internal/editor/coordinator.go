// Package editor orchestrates the session store, the export synthesizer, and
// the history store: it implements merge, export, and the self-healing pass
// over previously persisted artifacts.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clipforge/clipforge/internal/export"
	"github.com/clipforge/clipforge/internal/history"
	"github.com/clipforge/clipforge/internal/session"
)

// ErrNoClips is returned when a merge or export is attempted with no clips.
var ErrNoClips = errors.New("no clips to merge or export")

// PlayheadSource supplies the player's current playback time. It is an
// asynchronous collaborator owned by the excluded player integration; the
// coordinator only awaits it before entering the synchronous core.
type PlayheadSource interface {
	CurrentTime(ctx context.Context) (float64, error)
}

// ExportResult carries the persisted artifact plus everything a download
// front-end needs. The payload is inline, so no network fetch is required.
type ExportResult struct {
	Artifact       export.Artifact `json:"artifact"`
	DownloadURL    string          `json:"download_url"`
	Filename       string          `json:"filename"`
	SavedInHistory bool            `json:"saved_in_history"`
}

// Coordinator wires the stores and the synthesizer together. Neither store
// knows about the other; the coordinator owns the control flow.
type Coordinator struct {
	session  *session.Store
	history  *history.Store
	synth    export.Synthesizer
	playhead PlayheadSource
	logger   *slog.Logger
}

// New returns a coordinator. playhead may be nil when no player integration
// is attached; logger may be nil.
func New(sess *session.Store, hist *history.Store, synth export.Synthesizer, playhead PlayheadSource, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		session:  sess,
		history:  hist,
		synth:    synth,
		playhead: playhead,
		logger:   logger,
	}
}

// MergeClips synthesizes a single artifact from all clips in the current
// session, persists it, and returns it. Fails with ErrNoClips when the
// session has no clips; nothing is written to history in that case.
func (c *Coordinator) MergeClips(ctx context.Context, title string) (export.Artifact, error) {
	clips := c.session.Clips()
	if len(clips) == 0 {
		return export.Artifact{}, ErrNoClips
	}

	artifact := c.synth.Synthesize(clips, title, "mp4")
	c.history.Save(ctx, artifact)

	if c.logger != nil {
		c.logger.Info("clips merged",
			"artifact_id", artifact.ID, "clips", len(clips), "duration_s", artifact.Duration)
	}
	return artifact, nil
}

// ExportVideo synthesizes an artifact from the given clips with the requested
// container format and quality label, persists it, and returns a download
// descriptor. The artifact title embeds quality and format.
func (c *Coordinator) ExportVideo(ctx context.Context, format, quality string, clips []session.Clip) (ExportResult, error) {
	if len(clips) == 0 {
		return ExportResult{}, ErrNoClips
	}
	if format == "" {
		format = "mp4"
	}

	baseTitle := "Exported Video"
	if v := c.session.CurrentVideo(); v != nil && v.Title != "" {
		baseTitle = v.Title
	}
	title := fmt.Sprintf("%s - %s (%s)", baseTitle, strings.ToUpper(quality), format)

	artifact := c.synth.Synthesize(clips, title, format)
	c.history.Save(ctx, artifact)

	result := ExportResult{
		Artifact:       artifact,
		DownloadURL:    artifact.OutputURL,
		Filename:       export.Filename(baseTitle, format, artifact.CreatedAt),
		SavedInHistory: !c.history.Degraded(),
	}

	if c.logger != nil {
		c.logger.Info("video exported",
			"artifact_id", artifact.ID, "format", format, "quality", quality, "filename", result.Filename)
	}
	return result, nil
}

// ExportSession exports every clip currently in the session.
func (c *Coordinator) ExportSession(ctx context.Context, format, quality string) (ExportResult, error) {
	return c.ExportVideo(ctx, format, quality, c.session.Clips())
}

// AddMarkerAtPlayhead places a marker at the player's current position.
func (c *Coordinator) AddMarkerAtPlayhead(ctx context.Context, label string) (session.Marker, error) {
	if c.playhead == nil {
		return session.Marker{}, fmt.Errorf("no playback time source attached")
	}
	at, err := c.playhead.CurrentTime(ctx)
	if err != nil {
		return session.Marker{}, fmt.Errorf("reading playback time: %w", err)
	}
	return c.session.AddMarker(at, label)
}

// SessionEDL renders the current session's clips as a CMX 3600 EDL.
func (c *Coordinator) SessionEDL(frameRate float64) (string, error) {
	v := c.session.CurrentVideo()
	if v == nil {
		return "", session.ErrNoActiveVideo
	}
	return export.GenerateEDL(c.session.Clips(), v.Title, frameRate), nil
}

// ReconcileHistory scans the history for artifacts with absent or placeholder
// output urls, repairs each via the synthesizer, and writes the results back.
// Already-valid entries are untouched, so repeated runs are safe. Returns the
// number of repaired artifacts.
func (c *Coordinator) ReconcileHistory(ctx context.Context) int {
	repaired := 0
	for _, a := range c.history.List(ctx) {
		if !export.LooksPlaceholder(a.OutputURL) {
			continue
		}
		fixed := c.synth.Repair(a)
		c.history.Update(ctx, fixed)
		repaired++
		if c.logger != nil {
			c.logger.Info("repaired history artifact", "artifact_id", a.ID)
		}
	}
	if c.logger != nil && repaired > 0 {
		c.logger.Info("history reconciliation complete", "repaired", repaired)
	}
	return repaired
}
