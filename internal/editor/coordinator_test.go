package editor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/clipforge/clipforge/internal/export"
	"github.com/clipforge/clipforge/internal/history"
	"github.com/clipforge/clipforge/internal/session"
	"github.com/clipforge/clipforge/internal/storage"
)

func setupCoordinator(t *testing.T) (*Coordinator, *session.Store, *history.Store) {
	t.Helper()
	sess := session.NewStore(nil)
	hist := history.NewStore(context.Background(), storage.NewMemoryKV(), "videoHistory", nil)
	synth := export.NewPlaceholderSynthesizer(nil)
	c := New(sess, hist, synth, nil, nil)
	return c, sess, hist
}

func TestMergeClips(t *testing.T) {
	c, sess, hist := setupCoordinator(t)
	ctx := context.Background()

	if _, err := sess.LoadVideo("abc123", "Demo"); err != nil {
		t.Fatalf("LoadVideo() error = %v", err)
	}
	if _, err := sess.CreateClip(5, 15, "intro"); err != nil {
		t.Fatalf("CreateClip() error = %v", err)
	}
	if _, err := sess.CreateClip(20, 25, "outro"); err != nil {
		t.Fatalf("CreateClip() error = %v", err)
	}

	artifact, err := c.MergeClips(ctx, "Final Cut")
	if err != nil {
		t.Fatalf("MergeClips() error = %v", err)
	}

	if artifact.Duration != 15 {
		t.Errorf("artifact.Duration = %v, want 15", artifact.Duration)
	}
	if len(artifact.Clips) != 2 {
		t.Errorf("artifact clips = %d, want 2", len(artifact.Clips))
	}
	if artifact.Title != "Final Cut" {
		t.Errorf("artifact.Title = %q, want Final Cut", artifact.Title)
	}

	list := hist.List(ctx)
	if len(list) != 1 || list[0].ID != artifact.ID {
		t.Errorf("history = %v, want the merged artifact", list)
	}
}

func TestMergeClips_NoClips(t *testing.T) {
	c, sess, hist := setupCoordinator(t)
	ctx := context.Background()

	if _, err := sess.LoadVideo("abc123", "Demo"); err != nil {
		t.Fatalf("LoadVideo() error = %v", err)
	}

	_, err := c.MergeClips(ctx, "Empty Cut")
	if !errors.Is(err, ErrNoClips) {
		t.Errorf("MergeClips() error = %v, want ErrNoClips", err)
	}
	if n := len(hist.List(ctx)); n != 0 {
		t.Errorf("history after failed merge = %d entries, want 0", n)
	}
}

func TestExportVideo(t *testing.T) {
	c, sess, hist := setupCoordinator(t)
	ctx := context.Background()

	if _, err := sess.LoadVideo("abc123", "Holiday Reel"); err != nil {
		t.Fatalf("LoadVideo() error = %v", err)
	}
	clip, err := sess.CreateClip(0, 30, "all")
	if err != nil {
		t.Fatalf("CreateClip() error = %v", err)
	}

	result, err := c.ExportVideo(ctx, "webm", "high", []session.Clip{clip})
	if err != nil {
		t.Fatalf("ExportVideo() error = %v", err)
	}

	if result.Artifact.Title != "Holiday Reel - HIGH (webm)" {
		t.Errorf("artifact.Title = %q, want quality and format embedded", result.Artifact.Title)
	}
	if !strings.HasPrefix(result.DownloadURL, "data:video/webm;base64,") {
		t.Errorf("DownloadURL = %q, want inline webm data URL", result.DownloadURL[:min(len(result.DownloadURL), 30)])
	}
	if !strings.HasPrefix(result.Filename, "holiday_reel_") || !strings.HasSuffix(result.Filename, ".webm") {
		t.Errorf("Filename = %q, want holiday_reel_<ts>.webm", result.Filename)
	}
	if !result.SavedInHistory {
		t.Error("SavedInHistory = false, want true")
	}
	if n := len(hist.List(ctx)); n != 1 {
		t.Errorf("history = %d entries, want 1", n)
	}
}

func TestExportVideo_NoClips(t *testing.T) {
	c, _, hist := setupCoordinator(t)
	ctx := context.Background()

	_, err := c.ExportVideo(ctx, "mp4", "high", nil)
	if !errors.Is(err, ErrNoClips) {
		t.Errorf("ExportVideo() error = %v, want ErrNoClips", err)
	}
	if n := len(hist.List(ctx)); n != 0 {
		t.Errorf("history after failed export = %d entries, want 0", n)
	}
}

func TestReconcileHistory(t *testing.T) {
	c, _, hist := setupCoordinator(t)
	ctx := context.Background()

	broken := export.Artifact{
		ID:        "legacy-1",
		Title:     "Old Merge",
		OutputURL: "https://example.com/placeholder.mp4",
		Duration:  42,
		OwnerID:   "1",
	}
	valid := export.Artifact{
		ID:        "fresh-1",
		Title:     "Fresh",
		OutputURL: "data:video/mp4;base64,AAAA",
		Duration:  5,
	}
	hist.Save(ctx, broken)
	hist.Save(ctx, valid)

	repaired := c.ReconcileHistory(ctx)
	if repaired != 1 {
		t.Fatalf("ReconcileHistory() = %d, want 1", repaired)
	}

	got, err := hist.Get(ctx, "legacy-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !strings.HasPrefix(got.OutputURL, "data:video/mp4;base64,") {
		t.Errorf("repaired URL = %q, want inline data URL", got.OutputURL[:min(len(got.OutputURL), 30)])
	}
	if got.Duration != 42 {
		t.Errorf("repaired.Duration = %v, want 42 (preserved)", got.Duration)
	}

	untouched, _ := hist.Get(ctx, "fresh-1")
	if untouched.OutputURL != valid.OutputURL {
		t.Error("valid artifact was modified by reconciliation")
	}

	// Idempotent: a second pass repairs nothing.
	if again := c.ReconcileHistory(ctx); again != 0 {
		t.Errorf("second ReconcileHistory() = %d, want 0", again)
	}
}

type fixedPlayhead struct {
	at float64
}

func (f fixedPlayhead) CurrentTime(context.Context) (float64, error) {
	return f.at, nil
}

func TestAddMarkerAtPlayhead(t *testing.T) {
	sess := session.NewStore(nil)
	hist := history.NewStore(context.Background(), storage.NewMemoryKV(), "videoHistory", nil)
	c := New(sess, hist, export.NewPlaceholderSynthesizer(nil), fixedPlayhead{at: 73.5}, nil)

	if _, err := sess.LoadVideo("abc123", "Demo"); err != nil {
		t.Fatalf("LoadVideo() error = %v", err)
	}

	m, err := c.AddMarkerAtPlayhead(context.Background(), "highlight")
	if err != nil {
		t.Fatalf("AddMarkerAtPlayhead() error = %v", err)
	}
	if m.Time != 73.5 {
		t.Errorf("marker.Time = %v, want 73.5", m.Time)
	}
	if m.Label != "highlight" {
		t.Errorf("marker.Label = %q, want highlight", m.Label)
	}
}

func TestAddMarkerAtPlayhead_NoSource(t *testing.T) {
	c, sess, _ := setupCoordinator(t)
	if _, err := sess.LoadVideo("abc123", "Demo"); err != nil {
		t.Fatalf("LoadVideo() error = %v", err)
	}

	if _, err := c.AddMarkerAtPlayhead(context.Background(), "x"); err == nil {
		t.Error("AddMarkerAtPlayhead() without source should error")
	}
}

func TestSessionEDL(t *testing.T) {
	c, sess, _ := setupCoordinator(t)

	if _, err := c.SessionEDL(30); !errors.Is(err, session.ErrNoActiveVideo) {
		t.Errorf("SessionEDL() without video error = %v, want ErrNoActiveVideo", err)
	}

	if _, err := sess.LoadVideo("abc123", "Demo"); err != nil {
		t.Fatalf("LoadVideo() error = %v", err)
	}
	if _, err := sess.CreateClip(0, 2, "Intro"); err != nil {
		t.Fatalf("CreateClip() error = %v", err)
	}

	edl, err := c.SessionEDL(30)
	if err != nil {
		t.Fatalf("SessionEDL() error = %v", err)
	}
	if !strings.Contains(edl, "TITLE: Demo") {
		t.Errorf("EDL missing title: %q", edl)
	}
	if !strings.Contains(edl, "* FROM CLIP NAME:  Intro") {
		t.Errorf("EDL missing clip entry: %q", edl)
	}
}
