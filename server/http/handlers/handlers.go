// Read-only inspection endpoints over the bot database: what the CLI
// prints, served as JSON so the search behaviour can be poked from a
// browser or curl while tuning thresholds.
package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"pharmatool/internal/middleware"
	"pharmatool/internal/search"
	"pharmatool/internal/store"
)

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Search ranks active medicines against ?q=. ?threshold= and ?limit=
// override the defaults, handy when calibrating the boost parameters.
func Search(st *store.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)

		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(w, http.StatusBadRequest, "missing query parameter q")
			return
		}

		opt := search.DefaultOptions()
		opt.Threshold = queryFloat(r, "threshold", opt.Threshold)
		opt.Limit = queryInt(r, "limit", opt.Limit)

		meds, err := st.ActiveMedicines(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("load medicines")
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}

		results := search.NewIndex(meds).Search(q, opt)
		log.Info().Str("q", q).Int("candidates", len(meds)).Int("results", len(results)).Msg("search")

		writeJSON(w, http.StatusOK, map[string]any{
			"query":     q,
			"threshold": opt.Threshold,
			"results":   results,
		})
	}
}

func Medicines(st *store.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meds, err := st.ActiveMedicines(r.Context())
		if err != nil {
			log := reqLogger(logger, r)
			log.Error().Err(err).Msg("load medicines")
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"count": len(meds), "medicines": meds})
	}
}

func Contacts(st *store.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)

		ok, err := st.HasContactSettings(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("check contact settings")
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "contact_settings table not found")
			return
		}

		settings, err := st.ContactSettings(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("read contact settings")
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"contacts": settings})
	}
}

func reqLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := middleware.GetRequestID(r); rid != "" {
		return logger.With().Str("rid", rid).Logger()
	}
	return logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func queryFloat(r *http.Request, key string, def float64) float64 {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return def
	}
	return i
}
