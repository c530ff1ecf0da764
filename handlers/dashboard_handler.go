package handlers

import (
	"embed"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"html/template"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"

	"legislators_dashboard/charts"
	"legislators_dashboard/logger"
	"legislators_dashboard/models"
	"legislators_dashboard/render"
	"legislators_dashboard/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// DataSource is what the dashboard reads from the dataset store.
type DataSource interface {
	charts.Source
	Entities() []string
	Stats() store.Stats
}

type Dashboard struct {
	data         DataSource
	sessions     *Sessions
	presentation Presentation
	size         render.Size
	page         *template.Template
}

func NewDashboard(data DataSource, sessions *Sessions, p Presentation, size render.Size) (*Dashboard, error) {
	page, err := template.ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse dashboard template")
	}
	if size.Width <= 0 || size.Height <= 0 {
		size = render.DefaultSize
	}
	return &Dashboard{
		data:         data,
		sessions:     sessions,
		presentation: p,
		size:         size,
		page:         page,
	}, nil
}

// RegisterRoutes mounts the page, chart images and JSON API on r.
func (d *Dashboard) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", d.GetDashboard).Methods("GET")
	r.HandleFunc("/selection", d.PostSelection).Methods("POST")
	r.HandleFunc("/charts/{panel:[a-z_]+}.png", d.GetChartImage).Methods("GET")
	r.HandleFunc("/static/banner", d.GetBanner).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", d.GetHealth).Methods("GET")
	api.HandleFunc("/entities", d.GetEntities).Methods("GET")
	api.HandleFunc("/groups", d.GetGroups).Methods("GET")
	api.HandleFunc("/selection", d.GetSelection).Methods("GET")
	api.HandleFunc("/selection", d.PutSelection).Methods("PUT")
	api.HandleFunc("/panels", d.GetPanels).Methods("GET")
	api.HandleFunc("/charts/{panel}", d.GetChartSpec).Methods("GET")
}

type entityOption struct {
	Name     string
	Selected bool
}

type checkbox struct {
	Label   string
	Color   string
	Checked bool
}

type groupControls struct {
	ID    models.GroupID
	Title string
	Boxes []checkbox
}

type panelView struct {
	ID       models.PanelID
	ImageURL string
	SpecURL  string
	Copy     PanelCopy
	Empty    bool
}

type pageData struct {
	P        Presentation
	Entities []entityOption
	Selected []string
	Groups   []groupControls
	Panels   []panelView
}

// GetDashboard renders the page for the session's current selection.
func (d *Dashboard) GetDashboard(w http.ResponseWriter, r *http.Request) {
	_, state := d.sessions.Load(w, r)

	data := pageData{P: d.presentation, Selected: state.Entities}
	for _, e := range d.data.Entities() {
		data.Entities = append(data.Entities, entityOption{Name: e, Selected: state.IsSelected(e)})
	}
	for _, g := range models.Groups() {
		enabled := state.Enabled(g.ID)
		gc := groupControls{ID: g.ID, Title: g.Title}
		for i, label := range g.Labels {
			gc.Boxes = append(gc.Boxes, checkbox{
				Label:   label,
				Color:   g.Colors[i],
				Checked: i < len(enabled) && enabled[i],
			})
		}
		data.Groups = append(data.Groups, gc)
	}

	version := stateVersion(state)
	for _, p := range charts.Panels(d.data, state) {
		if !p.Visible {
			continue
		}
		data.Panels = append(data.Panels, panelView{
			ID:       p.ID,
			ImageURL: fmt.Sprintf("/charts/%s.png?v=%s", p.ID, version),
			SpecURL:  fmt.Sprintf("/api/v1/charts/%s", p.ID),
			Copy:     d.presentation.Copy(p.ID),
			Empty:    p.Chart.Empty(),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := d.page.Execute(w, data); err != nil {
		logger.Logger.Errorf("GetDashboard: Error rendering page: %v", err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}

// PostSelection applies the sidebar form. Unchecked boxes are absent from
// the form, so each group is set to exactly the labels that were sent.
func (d *Dashboard) PostSelection(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	id, state := d.sessions.Load(w, r)

	state.SelectEntities(keepSelectionOrder(state.Entities, r.PostForm["entity"]), d.data.Entities())
	for _, g := range models.Groups() {
		state.SetEnabledLabels(g.ID, r.PostForm[string(g.ID)])
	}
	d.sessions.Save(id, state)

	logger.Logger.Infof("PostSelection: session %s selected %d entities", id, len(state.Entities))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// GetChartImage renders one visible panel of the session as PNG.
func (d *Dashboard) GetChartImage(w http.ResponseWriter, r *http.Request) {
	panel, ok := models.ParsePanelID(mux.Vars(r)["panel"])
	if !ok {
		http.Error(w, "Unknown panel", http.StatusNotFound)
		return
	}
	_, state := d.sessions.Load(w, r)

	p, _ := charts.Panel(d.data, state, panel)
	if !p.Visible {
		http.Error(w, "Panel not visible for the current selection", http.StatusNotFound)
		return
	}

	img, err := render.PNG(p.Chart, d.size)
	if err != nil {
		logger.Logger.Errorf("GetChartImage: Error rendering %s: %v", panel, err)
		http.Error(w, "Error rendering chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", render.ContentType)
	w.Header().Set("Cache-Control", "no-store")
	w.Write(img)
}

// GetBanner serves the decorative banner of variants that have one.
func (d *Dashboard) GetBanner(w http.ResponseWriter, r *http.Request) {
	if !d.presentation.ShowBanner {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, d.presentation.BannerPath)
}

// keepSelectionOrder orders a submitted entity list so that entities that
// were already selected keep their place and new ones are appended. A
// multi-select posts its values in option order, not in the order picked.
func keepSelectionOrder(prev, requested []string) []string {
	want := make(map[string]bool, len(requested))
	for _, e := range requested {
		want[e] = true
	}
	out := make([]string, 0, len(requested))
	kept := make(map[string]bool, len(prev))
	for _, e := range prev {
		if want[e] {
			out = append(out, e)
			kept[e] = true
		}
	}
	for _, e := range requested {
		if !kept[e] {
			out = append(out, e)
		}
	}
	return out
}

func stateVersion(state models.SelectionState) string {
	h := fnv.New64a()
	json.NewEncoder(h).Encode(state)
	return fmt.Sprintf("%x", h.Sum64())
}
