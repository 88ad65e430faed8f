// Package state owns the per-session application state. Each browser session
// gets its own catalog copy, cart, order history and settings; nothing is
// shared across sessions and nothing survives a restart.
package state

import (
	"sync"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/221BLondon/Mymenu/internal/data"
	"github.com/221BLondon/Mymenu/internal/models"
)

const sessionIDKey = "sid"

// Session is one visitor's state. Handlers hold the lock for the duration of
// a request; within a session every transition runs to completion before the
// next one starts.
type Session struct {
	sync.Mutex

	Catalog  []models.MenuItem
	Cart     []models.CartLine
	Orders   []models.Order
	Settings models.RestaurantSettings
}

// Store maps session ids to their state.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// Active is the store the handlers use.
var Active *Store

func Init() {
	Active = NewStore()
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// SetTestStore swaps the active store, for tests.
func SetTestStore(s *Store) {
	Active = s
}

// Session returns the state for the calling session, minting a session id
// cookie and seeding fresh state on first contact.
func (st *Store) Session(c *gin.Context) *Session {
	cookie := sessions.Default(c)
	id, _ := cookie.Get(sessionIDKey).(string)
	if id == "" {
		id = uuid.NewString()
		cookie.Set(sessionIDKey, id)
		cookie.Save()
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		s = &Session{
			Catalog:  data.MenuItems(),
			Settings: data.DefaultSettings(),
		}
		st.sessions[id] = s
	}
	return s
}
