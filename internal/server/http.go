package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/xtding233/upgradesim/internal/simulate"
	"github.com/xtding233/upgradesim/internal/upgrade"
)

type errResp struct {
	Err string `json:"err"`
}

type chanceResp struct {
	Rarity string `json:"rarity"`
	Level  int    `json:"level"`
	Chance int    `json:"chance"`
}

// Handler serves the simulator over HTTP/JSON.
type Handler struct {
	svc *simulate.Service
	log zerolog.Logger
}

func NewHandler(svc *simulate.Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes registers the endpoints on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /simulate", h.handleSimulate)
	mux.HandleFunc("GET /chance", h.handleChance)
	mux.HandleFunc("GET /table", h.handleTable)
	return mux
}

func parseInt(r *http.Request, key string) (int, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func parseUint(r *http.Request, key string) (uint64, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("encode response")
	}
}

// GET /simulate?rarity=epic&trials=1000[&start=0][&seed=42]
func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	rarity := r.URL.Query().Get("rarity")
	if rarity == "" {
		h.writeJSON(w, http.StatusBadRequest, errResp{Err: "missing param rarity"})
		return
	}
	trials, ok, msg := parseInt(r, "trials")
	if msg != "" {
		h.writeJSON(w, http.StatusBadRequest, errResp{Err: msg})
		return
	}
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errResp{Err: "missing param trials"})
		return
	}
	start, _, msg := parseInt(r, "start")
	if msg != "" {
		h.writeJSON(w, http.StatusBadRequest, errResp{Err: msg})
		return
	}
	req := simulate.Request{Rarity: rarity, Trials: trials, StartLevel: start}
	seed, hasSeed, msg := parseUint(r, "seed")
	if msg != "" {
		h.writeJSON(w, http.StatusBadRequest, errResp{Err: msg})
		return
	}
	if hasSeed {
		req.Seed = &seed
	}

	res, err := h.svc.Simulate(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, simulate.ErrUnknownRarity) || errors.Is(err, simulate.ErrStartLevel) ||
			errors.Is(err, simulate.ErrTooManyTrials) {
			status = http.StatusBadRequest
		}
		h.writeJSON(w, status, errResp{Err: err.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// GET /chance?rarity=rare&level=3
func (h *Handler) handleChance(w http.ResponseWriter, r *http.Request) {
	rarity, err := upgrade.ParseRarity(r.URL.Query().Get("rarity"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errResp{Err: err.Error()})
		return
	}
	level, ok, msg := parseInt(r, "level")
	if !ok {
		if msg == "" {
			msg = "missing param level"
		}
		h.writeJSON(w, http.StatusBadRequest, errResp{Err: msg})
		return
	}
	chance, err := upgrade.Chance(rarity, level)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errResp{Err: err.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, chanceResp{Rarity: rarity.String(), Level: level, Chance: chance})
}

// GET /table
func (h *Handler) handleTable(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, upgrade.Table())
}
