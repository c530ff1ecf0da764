package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"legislators_dashboard/config"
	"legislators_dashboard/models"
)

const sessionCookie = "dashboard_session"

// Sessions keeps one SelectionState per browser session. Stored states are
// never handed out directly: Load returns a clone and Save stores a clone.
type Sessions struct {
	cache *cache.Cache
}

func NewSessions(c *cache.Cache) *Sessions {
	return &Sessions{cache: c}
}

func sessionKey(id string) string {
	return config.GetCacheKey("selection", id)
}

// Load returns the session id and its selection, starting a new session
// with default selection when the request carries no known session.
func (s *Sessions) Load(w http.ResponseWriter, r *http.Request) (string, models.SelectionState) {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		if v, ok := s.cache.Get(sessionKey(c.Value)); ok {
			state := v.(models.SelectionState)
			// touch to extend the expiry
			s.cache.SetDefault(sessionKey(c.Value), state)
			return c.Value, state.Clone()
		}
	}

	id := uuid.NewString()
	state := models.NewSelectionState()
	s.cache.SetDefault(sessionKey(id), state)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, state.Clone()
}

func (s *Sessions) Save(id string, state models.SelectionState) {
	s.cache.SetDefault(sessionKey(id), state.Clone())
}

// Count returns the number of live sessions.
func (s *Sessions) Count() int {
	return s.cache.ItemCount()
}
