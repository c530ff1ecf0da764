package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"legislators_dashboard/charts"
	"legislators_dashboard/logger"
	"legislators_dashboard/models"
	"legislators_dashboard/store"
)

type HealthResponse struct {
	Status   string      `json:"status"`
	Variant  string      `json:"variant"`
	Sessions int         `json:"sessions"`
	Datasets store.Stats `json:"datasets"`
}

type EntitiesResponse struct {
	Entities []string `json:"entities"`
}

type GroupsResponse struct {
	Groups []models.CategoryGroup `json:"groups"`
}

type PanelsResponse struct {
	Selection models.SelectionState `json:"selection"`
	Panels    []models.Panel        `json:"panels"`
}

// SelectionRequest updates a session selection by label. A nil field leaves
// that part of the selection unchanged.
type SelectionRequest struct {
	Entities    []string `json:"entities"`
	Gender      []string `json:"gender"`
	Religion    []string `json:"religion"`
	SocialMedia []string `json:"social_media"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Logger.Errorf("Error encoding response: %v", err)
	}
}

func (d *Dashboard) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Variant:  d.presentation.Variant,
		Sessions: d.sessions.Count(),
		Datasets: d.data.Stats(),
	})
}

func (d *Dashboard) GetEntities(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, http.StatusOK, EntitiesResponse{Entities: d.data.Entities()})
}

func (d *Dashboard) GetGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GroupsResponse{Groups: models.Groups()})
}

func (d *Dashboard) GetSelection(w http.ResponseWriter, r *http.Request) {
	_, state := d.sessions.Load(w, r)
	writeJSON(w, http.StatusOK, state)
}

// PutSelection updates the session selection and returns the re-assembled panels.
func (d *Dashboard) PutSelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, state := d.sessions.Load(w, r)

	if req.Entities != nil {
		state.SelectEntities(req.Entities, d.data.Entities())
	}
	for group, labels := range map[models.GroupID][]string{
		models.GroupGender:      req.Gender,
		models.GroupReligion:    req.Religion,
		models.GroupSocialMedia: req.SocialMedia,
	} {
		if labels != nil {
			state.SetEnabledLabels(group, labels)
		}
	}
	d.sessions.Save(id, state)

	logger.Logger.Infof("PutSelection: session %s selected %d entities", id, len(state.Entities))
	writeJSON(w, http.StatusOK, PanelsResponse{Selection: state, Panels: charts.Panels(d.data, state)})
}

func (d *Dashboard) GetPanels(w http.ResponseWriter, r *http.Request) {
	_, state := d.sessions.Load(w, r)
	writeJSON(w, http.StatusOK, PanelsResponse{Selection: state, Panels: charts.Panels(d.data, state)})
}

// GetChartSpec returns the chart spec of one panel. Hidden panels are still
// returned, with visible=false and zero series where applicable.
func (d *Dashboard) GetChartSpec(w http.ResponseWriter, r *http.Request) {
	panel, ok := models.ParsePanelID(mux.Vars(r)["panel"])
	if !ok {
		http.Error(w, "Unknown panel", http.StatusNotFound)
		return
	}
	_, state := d.sessions.Load(w, r)
	p, _ := charts.Panel(d.data, state, panel)
	writeJSON(w, http.StatusOK, p)
}
