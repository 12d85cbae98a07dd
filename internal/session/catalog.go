package session

// EffectOption describes one entry in the static effect catalog offered to
// the editing UI.
type EffectOption struct {
	Name    string `json:"name"`
	Preview string `json:"preview"`
}

// AvailableEffects returns the built-in effect catalog keyed by effect type.
func AvailableEffects() map[string][]EffectOption {
	return map[string][]EffectOption{
		EffectTypeFilter: {
			{Name: "Grayscale", Preview: "assets/effects/grayscale.jpg"},
			{Name: "Sepia", Preview: "assets/effects/sepia.jpg"},
			{Name: "Brightness", Preview: "assets/effects/brightness.jpg"},
			{Name: "Contrast", Preview: "assets/effects/contrast.jpg"},
			{Name: "Saturation", Preview: "assets/effects/saturation.jpg"},
		},
		EffectTypeTransition: {
			{Name: "Fade", Preview: "assets/transitions/fade.jpg"},
			{Name: "Wipe", Preview: "assets/transitions/wipe.jpg"},
			{Name: "Slide", Preview: "assets/transitions/slide.jpg"},
			{Name: "Zoom", Preview: "assets/transitions/zoom.jpg"},
		},
		EffectTypeText: {
			{Name: "Title", Preview: "assets/text/title.jpg"},
			{Name: "Subtitle", Preview: "assets/text/subtitle.jpg"},
			{Name: "Lower Third", Preview: "assets/text/lower-third.jpg"},
		},
		EffectTypeAudio: {
			{Name: "Background Music", Preview: "assets/audio/music.jpg"},
			{Name: "Voice Over", Preview: "assets/audio/voice.jpg"},
			{Name: "Sound Effect", Preview: "assets/audio/effect.jpg"},
		},
	}
}
