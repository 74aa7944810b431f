package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/coachkit/draft-coach/internal/service"
	"github.com/go-chi/chi/v5"
)

type ChampionHandler struct {
	championService *service.ChampionService
}

func NewChampionHandler(championService *service.ChampionService) *ChampionHandler {
	return &ChampionHandler{championService: championService}
}

type ChampionsResponse struct {
	Champions []ChampionResponse `json:"champions"`
}

type ChampionResponse struct {
	ID          string   `json:"id"`
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Roles       []string `json:"roles"`
	DamageType  string   `json:"damageType"`
	Tags        []string `json:"tags"`
	SpikePhases []string `json:"spikePhases"`
}

func (h *ChampionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	champions, err := h.championService.GetAllChampions(r.Context())
	if err != nil {
		log.Printf("ERROR [champion.GetAll]: %v", err)
		http.Error(w, "Failed to get champions", http.StatusInternalServerError)
		return
	}

	resp := ChampionsResponse{Champions: make([]ChampionResponse, len(champions))}
	for i, c := range champions {
		roles := make([]string, len(c.Roles))
		for j, role := range c.Roles {
			roles[j] = string(role)
		}
		tags := make([]string, len(c.Tags))
		for j, tag := range c.Tags {
			tags[j] = string(tag)
		}
		phases := make([]string, len(c.SpikePhases))
		for j, phase := range c.SpikePhases {
			phases[j] = string(phase)
		}
		resp.Champions[i] = ChampionResponse{
			ID:          c.ID,
			Key:         c.Key,
			Name:        c.Name,
			Title:       c.Title,
			Roles:       roles,
			DamageType:  string(c.DamageType),
			Tags:        tags,
			SpikePhases: phases,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *ChampionHandler) GetByKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	champion, err := h.championService.GetChampionByKey(r.Context(), key)
	if err != nil {
		log.Printf("ERROR [champion.GetByKey] key=%s: %v", key, err)
		http.Error(w, "Champion not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(champion)
}

func (h *ChampionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	champion, err := h.championService.GetChampion(r.Context(), id)
	if err != nil {
		log.Printf("ERROR [champion.Get] championID=%s: %v", id, err)
		http.Error(w, "Champion not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(champion)
}
