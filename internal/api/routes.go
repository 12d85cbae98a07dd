package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/clipforge/clipforge/internal/config"
	"github.com/clipforge/clipforge/internal/metrics"
	"github.com/clipforge/clipforge/internal/session"
	"github.com/go-chi/chi/v5"
)

func NewRouter(cfg ServerConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware(cfg.Logger))
	r.Use(LoggingMiddleware(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(metrics.RequestMiddleware(cfg.Metrics))
	}

	r.Get("/health", healthHandler(cfg))
	if cfg.Metrics != nil {
		r.Get("/metrics", metricsHandler(cfg))
	}

	r.Get("/session", getSessionHandler(cfg))
	r.Post("/session/video", loadVideoHandler(cfg))
	r.Post("/session/markers", addMarkerHandler(cfg))
	r.Delete("/session/markers/{id}", removeMarkerHandler(cfg))
	r.Post("/session/clips", createClipHandler(cfg))
	r.Delete("/session/clips/{id}", removeClipHandler(cfg))
	r.Get("/session/clips/{id}/effects", listClipEffectsHandler(cfg))
	r.Post("/session/clips/{id}/effects", addEffectHandler(cfg))
	r.Delete("/session/effects/{id}", removeEffectHandler(cfg))
	r.Patch("/session/effects/{id}/settings", updateEffectSettingsHandler(cfg))
	r.Get("/session/edl", sessionEDLHandler(cfg))
	r.Get("/effects", effectCatalogHandler(cfg))

	r.Post("/merge", mergeHandler(cfg))
	r.Post("/export", exportHandler(cfg))

	r.Get("/history", listHistoryHandler(cfg))
	r.Get("/history/{id}", getHistoryHandler(cfg))
	r.Delete("/history/{id}", deleteHistoryHandler(cfg))
	r.Delete("/history", clearHistoryHandler(cfg))

	return r
}

func healthHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := int64(time.Since(cfg.StartTime).Seconds())
		WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Version: config.Version,
			UptimeS: uptime,
		})
	}
}

func metricsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg.Metrics.Handler(func() {
			cfg.Metrics.SetSessionClips(len(cfg.SessionStore.Clips()))
			cfg.Metrics.SetHistoryArtifacts(len(cfg.HistoryStore.List(r.Context())))
		}).ServeHTTP(w, r)
	}
}

func getSessionHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, cfg.SessionStore.Snapshot())
	}
}

func loadVideoHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoadVideoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		video, err := cfg.SessionStore.LoadVideo(req.SourceID, req.Title)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		WriteJSON(w, http.StatusCreated, video)
	}
}

func addMarkerHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddMarkerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		var marker session.Marker
		var err error
		switch {
		case req.AtPlayhead:
			marker, err = cfg.Coordinator.AddMarkerAtPlayhead(r.Context(), req.Label)
		case req.Time != nil:
			marker, err = cfg.SessionStore.AddMarker(*req.Time, req.Label)
		default:
			WriteError(w, http.StatusBadRequest, "time or at_playhead is required", "BAD_REQUEST")
			return
		}
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		WriteJSON(w, http.StatusCreated, marker)
	}
}

func removeMarkerHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg.SessionStore.RemoveMarker(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func createClipHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateClipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		clip, err := cfg.SessionStore.CreateClip(req.StartTime, req.EndTime, req.Title)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		WriteJSON(w, http.StatusCreated, clip)
	}
}

func removeClipHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg.SessionStore.RemoveClip(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func listClipEffectsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		effects := cfg.SessionStore.EffectsForClip(chi.URLParam(r, "id"))
		if effects == nil {
			effects = []session.Effect{}
		}
		WriteJSON(w, http.StatusOK, effects)
	}
}

func addEffectHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clipID := chi.URLParam(r, "id")

		var req AddEffectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		effect, err := cfg.SessionStore.AddEffect(clipID, session.Effect{
			Type:      req.Type,
			Name:      req.Name,
			Settings:  req.Settings,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		})
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		WriteJSON(w, http.StatusCreated, effect)
	}
}

func removeEffectHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg.SessionStore.RemoveEffect(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func updateEffectSettingsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings map[string]any
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		cfg.SessionStore.UpdateEffectSettings(chi.URLParam(r, "id"), settings)
		w.WriteHeader(http.StatusNoContent)
	}
}

func sessionEDLHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		frameRate := 30.0
		if fps := r.URL.Query().Get("fps"); fps != "" {
			parsed, err := strconv.ParseFloat(fps, 64)
			if err != nil || parsed <= 0 {
				WriteError(w, http.StatusBadRequest, "invalid fps", "BAD_REQUEST")
				return
			}
			frameRate = parsed
		}

		edl, err := cfg.Coordinator.SessionEDL(frameRate)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, edl)
	}
}

func effectCatalogHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, session.AvailableEffects())
	}
}

func mergeHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MergeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		artifact, err := cfg.Coordinator.MergeClips(r.Context(), req.Title)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		if cfg.Metrics != nil {
			cfg.Metrics.IncMerges()
		}
		WriteJSON(w, http.StatusCreated, artifact)
	}
}

func exportHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		result, err := cfg.Coordinator.ExportSession(r.Context(), req.Format, req.Quality)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		if cfg.Metrics != nil {
			cfg.Metrics.IncExports()
		}
		WriteJSON(w, http.StatusCreated, result)
	}
}

func listHistoryHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, cfg.HistoryStore.List(r.Context()))
	}
}

func getHistoryHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artifact, err := cfg.HistoryStore.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, artifact)
	}
}

func deleteHistoryHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg.HistoryStore.Delete(r.Context(), chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func clearHistoryHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg.HistoryStore.Clear(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}
