package authn

import (
	"encoding/gob"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	userAttr  = "u"
	flashAttr = "f"
)

var errSessionNotFound = errors.New("session not found")

func init() {
	gob.Register(&User{})
}

func (h *Handler) storeSessionUser(w http.ResponseWriter, r *http.Request, user *User) error {
	sess, err := h.getSession(r)
	if err != nil && !errors.Is(err, errSessionNotFound) {
		return errors.WithStack(err)
	}

	if sess == nil {
		return errors.WithStack(errSessionNotFound)
	}

	sess.Values[userAttr] = user

	// Do not outlive the token issued by the identity service
	if !user.ExpiresAt.IsZero() && sess.Options != nil {
		remaining := int(time.Until(user.ExpiresAt).Seconds())
		if remaining > 0 && (sess.Options.MaxAge <= 0 || remaining < sess.Options.MaxAge) {
			options := *sess.Options
			options.MaxAge = remaining
			sess.Options = &options
		}
	}

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) retrieveSessionUser(r *http.Request) (*User, error) {
	sess, err := h.getSession(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user, ok := sess.Values[userAttr].(*User)
	if !ok {
		return nil, errors.WithStack(errSessionNotFound)
	}

	if !user.ExpiresAt.IsZero() && time.Now().After(user.ExpiresAt) {
		return nil, errors.WithStack(errSessionNotFound)
	}

	return user, nil
}

// getSession returns the request session. A new session is returned along
// errSessionNotFound when the cookie could not be decoded.
func (h *Handler) getSession(r *http.Request) (*sessions.Session, error) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		slog.WarnContext(r.Context(), "could not retrieve session from store", slog.Any("error", errors.WithStack(err)))
		return sess, errors.WithStack(errSessionNotFound)
	}

	return sess, nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := h.getSession(r)
	if err != nil && !errors.Is(err, errSessionNotFound) {
		return errors.WithStack(err)
	}

	if sess == nil {
		return nil
	}

	delete(sess.Values, userAttr)
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) addFlash(w http.ResponseWriter, r *http.Request, message string) {
	sess, _ := h.getSession(r)
	if sess == nil {
		return
	}

	sess.AddFlash(message, flashAttr)

	if err := sess.Save(r, w); err != nil {
		slog.ErrorContext(r.Context(), "could not save flash message", slog.Any("error", errors.WithStack(err)))
	}
}

// popFlashes must be called before anything is written to the response.
func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []string {
	sess, _ := h.getSession(r)
	if sess == nil {
		return nil
	}

	rawFlashes := sess.Flashes(flashAttr)
	if len(rawFlashes) == 0 {
		return nil
	}

	if err := sess.Save(r, w); err != nil {
		slog.ErrorContext(r.Context(), "could not save session", slog.Any("error", errors.WithStack(err)))
	}

	flashes := make([]string, 0, len(rawFlashes))
	for _, f := range rawFlashes {
		if message, ok := f.(string); ok {
			flashes = append(flashes, message)
		}
	}

	return flashes
}
