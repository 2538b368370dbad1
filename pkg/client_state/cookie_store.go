package client_state

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	log "github.com/sirupsen/logrus"
)

const (
	durableSessionName = "balanceu"
	tabSessionName     = "balanceu-tab"
)

type Store interface {
	// Load reads the client state from the request. A missing or unreadable
	// cookie yields an empty state with a freshly generated visitor id.
	Load(r *http.Request) (State, error)
	Save(w http.ResponseWriter, r *http.Request, state State) error
}

// CookieStore keeps the theme and username in a long-lived cookie and the
// visitor id and intro flag in a browser-session cookie.
type CookieStore struct {
	durable sessions.Store
	tab     sessions.Store
}

type CookieOptions struct {
	Secret     string
	MaxAgeDays int
	Secure     bool
}

func NewCookieStore(opts CookieOptions) *CookieStore {
	durable := sessions.NewCookieStore([]byte(opts.Secret))
	durable.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAgeDays * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	tab := sessions.NewCookieStore([]byte(opts.Secret))
	tab.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &CookieStore{durable: durable, tab: tab}
}

func (c *CookieStore) Load(r *http.Request) (State, error) {
	var state State

	durable, err := c.durable.Get(r, durableSessionName)
	if err != nil {
		log.Debugf("ignoring unreadable %s cookie: %v", durableSessionName, err)
	}
	if durable != nil {
		state.Theme, _ = durable.Values[ThemeKey].(string)
		state.Username, _ = durable.Values[UserKey].(string)
	}

	tab, err := c.tab.Get(r, tabSessionName)
	if err != nil {
		log.Debugf("ignoring unreadable %s cookie: %v", tabSessionName, err)
	}
	if tab != nil {
		state.VisitorId, _ = tab.Values[visitorKey].(string)
		state.IntroPlayed, _ = tab.Values[IntroPlayedKey].(bool)
	}

	if state.VisitorId == "" {
		state.VisitorId = uuid.NewString()
		state.NewVisitor = true
		log.Tracef("assigned new visitor id %s", state.VisitorId)
	}
	return state, nil
}

func (c *CookieStore) Save(w http.ResponseWriter, r *http.Request, state State) error {
	durable, err := c.durable.Get(r, durableSessionName)
	if durable == nil {
		return err
	}
	setOrDelete(durable.Values, ThemeKey, state.Theme)
	setOrDelete(durable.Values, UserKey, state.Username)
	if err := c.durable.Save(r, w, durable); err != nil {
		log.Errorf("failed to save %s cookie: %v", durableSessionName, err)
		return err
	}

	tab, err := c.tab.Get(r, tabSessionName)
	if tab == nil {
		return err
	}
	tab.Values[visitorKey] = state.VisitorId
	if state.IntroPlayed {
		tab.Values[IntroPlayedKey] = true
	} else {
		delete(tab.Values, IntroPlayedKey)
	}
	if err := c.tab.Save(r, w, tab); err != nil {
		log.Errorf("failed to save %s cookie: %v", tabSessionName, err)
		return err
	}
	return nil
}

func setOrDelete(values map[interface{}]interface{}, key string, value string) {
	if value == "" {
		delete(values, key)
		return
	}
	values[key] = value
}
