// Package session holds the live editing session: the current video plus its
// ordered markers, clips, and effects. One session is active at a time; all
// mutations are synchronous read-modify-writes guarded by a single mutex.
package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Snapshot is a point-in-time copy of the session state. Mutating a snapshot
// never affects the store.
type Snapshot struct {
	Video   *Video   `json:"video,omitempty"`
	Markers []Marker `json:"markers"`
	Clips   []Clip   `json:"clips"`
	Effects []Effect `json:"effects"`
}

// Store owns the active session state.
type Store struct {
	mu     sync.Mutex
	logger *slog.Logger

	newID   func() string
	now     func() time.Time
	ownerID string

	video   *Video
	markers []Marker
	clips   []Clip
	effects []Effect

	watchers []func(Snapshot)
}

// NewStore returns an empty session store. logger may be nil.
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		logger:  logger,
		newID:   uuid.NewString,
		now:     time.Now,
		ownerID: "1",
	}
}

// OnChange registers fn to be called with a fresh snapshot after every
// successful mutation. Callbacks run outside the store lock.
func (s *Store) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// LoadVideo replaces the current video and resets markers, clips, and effects.
func (s *Store) LoadVideo(sourceID, title string) (Video, error) {
	if sourceID == "" {
		return Video{}, fmt.Errorf("%w: source video id is required", ErrInvalidInput)
	}

	s.mu.Lock()
	video := Video{
		ID:            s.newID(),
		SourceVideoID: sourceID,
		Title:         title,
		CreatedAt:     s.now(),
		OwnerID:       s.ownerID,
	}
	s.video = &video
	s.markers = nil
	s.clips = nil
	s.effects = nil
	notify := s.changedLocked()
	s.mu.Unlock()
	notify()

	if s.logger != nil {
		s.logger.Info("video loaded", "video_id", video.ID, "source_id", sourceID)
	}
	return video, nil
}

// AddMarker appends a labeled marker at the given playback time.
func (s *Store) AddMarker(at float64, label string) (Marker, error) {
	if at < 0 {
		return Marker{}, fmt.Errorf("%w: marker time %.3f must be non-negative", ErrInvalidRange, at)
	}
	if label == "" {
		label = "Marker"
	}

	s.mu.Lock()
	if s.video == nil {
		s.mu.Unlock()
		return Marker{}, ErrNoActiveVideo
	}
	marker := Marker{ID: s.newID(), Time: at, Label: label}
	s.markers = append(s.markers, marker)
	notify := s.changedLocked()
	s.mu.Unlock()
	notify()

	return marker, nil
}

// RemoveMarker deletes the marker with the given id. Absent ids are a no-op.
func (s *Store) RemoveMarker(id string) {
	s.mu.Lock()
	for i, m := range s.markers {
		if m.ID == id {
			s.markers = append(s.markers[:i], s.markers[i+1:]...)
			break
		}
	}
	notify := s.changedLocked()
	s.mu.Unlock()
	notify()
}

// CreateClip appends a new clip covering [startTime, endTime) of the current
// video.
func (s *Store) CreateClip(startTime, endTime float64, title string) (Clip, error) {
	r, err := NewTimeRange(startTime, endTime)
	if err != nil {
		return Clip{}, err
	}

	s.mu.Lock()
	if s.video == nil {
		s.mu.Unlock()
		return Clip{}, ErrNoActiveVideo
	}
	clip := Clip{
		ID:           s.newID(),
		OwnerVideoID: s.video.ID,
		StartTime:    r.Start,
		EndTime:      r.End,
		Title:        title,
	}
	s.clips = append(s.clips, clip)
	notify := s.changedLocked()
	s.mu.Unlock()
	notify()

	if s.logger != nil {
		s.logger.Info("clip created", "clip_id", clip.ID, "start", r.Start, "end", r.End)
	}
	return clip, nil
}

// RemoveClip deletes the clip with the given id together with its effects,
// so no orphaned effects remain. Absent ids are a no-op.
func (s *Store) RemoveClip(id string) {
	s.mu.Lock()
	removed := false
	for i, c := range s.clips {
		if c.ID == id {
			s.clips = append(s.clips[:i], s.clips[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		kept := s.effects[:0]
		for _, e := range s.effects {
			if e.ClipID != id {
				kept = append(kept, e)
			}
		}
		s.effects = kept
	}
	notify := s.changedLocked()
	s.mu.Unlock()
	notify()
}

// AddEffect attaches an effect to an existing clip. Unspecified fields get
// defaults: type "filter", name "Default", empty settings.
func (s *Store) AddEffect(clipID string, partial Effect) (Effect, error) {
	if partial.StartTime != nil && partial.EndTime != nil {
		if _, err := NewTimeRange(*partial.StartTime, *partial.EndTime); err != nil {
			return Effect{}, err
		}
	}

	s.mu.Lock()
	if !s.clipExistsLocked(clipID) {
		s.mu.Unlock()
		return Effect{}, fmt.Errorf("%w: %s", ErrClipNotFound, clipID)
	}

	effect := Effect{
		ID:        s.newID(),
		ClipID:    clipID,
		Type:      partial.Type,
		Name:      partial.Name,
		Settings:  cloneSettings(partial.Settings),
		StartTime: partial.StartTime,
		EndTime:   partial.EndTime,
	}
	if effect.Type == "" {
		effect.Type = EffectTypeFilter
	}
	if effect.Name == "" {
		effect.Name = "Default"
	}
	if effect.Settings == nil {
		effect.Settings = map[string]any{}
	}
	s.effects = append(s.effects, effect)
	notify := s.changedLocked()
	s.mu.Unlock()
	notify()

	return effect, nil
}

// RemoveEffect deletes the effect with the given id. Absent ids are a no-op.
func (s *Store) RemoveEffect(id string) {
	s.mu.Lock()
	for i, e := range s.effects {
		if e.ID == id {
			s.effects = append(s.effects[:i], s.effects[i+1:]...)
			break
		}
	}
	notify := s.changedLocked()
	s.mu.Unlock()
	notify()
}

// UpdateEffectSettings shallow-merges the given settings into the effect's
// settings map. Absent ids are a no-op.
func (s *Store) UpdateEffectSettings(id string, settings map[string]any) {
	s.mu.Lock()
	for i, e := range s.effects {
		if e.ID == id {
			merged := cloneSettings(e.Settings)
			for k, v := range settings {
				merged[k] = v
			}
			s.effects[i].Settings = merged
			break
		}
	}
	notify := s.changedLocked()
	s.mu.Unlock()
	notify()
}

// CurrentVideo returns a copy of the loaded video, or nil if none is loaded.
func (s *Store) CurrentVideo() *Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.video == nil {
		return nil
	}
	v := *s.video
	return &v
}

// Markers returns the insertion-ordered markers.
func (s *Store) Markers() []Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Marker(nil), s.markers...)
}

// Clips returns the insertion-ordered clips.
func (s *Store) Clips() []Clip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Clip(nil), s.clips...)
}

// Effects returns all effects in insertion order.
func (s *Store) Effects() []Effect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEffects(s.effects)
}

// EffectsForClip returns the effects attached to the given clip.
func (s *Store) EffectsForClip(clipID string) []Effect {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Effect
	for _, e := range s.effects {
		if e.ClipID == clipID {
			out = append(out, cloneEffect(e))
		}
	}
	return out
}

// Snapshot returns a copy of the full session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Markers: append([]Marker{}, s.markers...),
		Clips:   append([]Clip{}, s.clips...),
		Effects: cloneEffects(s.effects),
	}
	if snap.Effects == nil {
		snap.Effects = []Effect{}
	}
	if s.video != nil {
		v := *s.video
		snap.Video = &v
	}
	return snap
}

// changedLocked captures the watchers and a snapshot while the lock is held
// and returns a func that delivers the notifications after unlock, so a
// watcher can safely read the store.
func (s *Store) changedLocked() func() {
	if len(s.watchers) == 0 {
		return func() {}
	}
	watchers := append([]func(Snapshot){}, s.watchers...)
	snap := s.snapshotLocked()
	return func() {
		for _, fn := range watchers {
			fn(snap)
		}
	}
}

func (s *Store) clipExistsLocked(id string) bool {
	for _, c := range s.clips {
		if c.ID == id {
			return true
		}
	}
	return false
}

func cloneSettings(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneEffect(e Effect) Effect {
	e.Settings = cloneSettings(e.Settings)
	return e
}

func cloneEffects(in []Effect) []Effect {
	if in == nil {
		return nil
	}
	out := make([]Effect, len(in))
	for i, e := range in {
		out[i] = cloneEffect(e)
	}
	return out
}
