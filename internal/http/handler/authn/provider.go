package authn

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bornholm/signin/internal/store"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
)

func (h *Handler) handleProvider(w http.ResponseWriter, r *http.Request) {
	if !h.assertProviderAvailable(w, r) {
		return
	}

	gothic.BeginAuthHandler(w, r)
}

func (h *Handler) handleProviderCallback(w http.ResponseWriter, r *http.Request) {
	if !h.assertProviderAvailable(w, r) {
		return
	}

	ctx := r.Context()
	provider := r.PathValue("provider")

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		h.failProviderSignIn(w, r, provider, "", errors.Wrap(err, "could not complete user auth"))
		return
	}

	slog.DebugContext(ctx, "authenticated user", slog.String("provider", gothUser.Provider), slog.String("userID", gothUser.UserID))

	user := &User{
		Email:       gothUser.Email,
		Provider:    gothUser.Provider,
		AccessToken: gothUser.AccessToken,
		DisplayName: getUserDisplayName(gothUser),
		ExpiresAt:   gothUser.ExpiresAt,
	}

	rawSubject := gothUser.RawData["sub"]

	if subject, ok := rawSubject.(string); ok {
		user.Subject = subject
	}

	if user.Subject == "" {
		user.Subject = gothUser.UserID
	}

	switch {
	case user.Subject == "":
		h.failProviderSignIn(w, r, provider, user.Email, errors.New("user subject missing"))
		return
	case user.Email == "":
		h.failProviderSignIn(w, r, provider, user.Email, errors.New("user email missing"))
		return
	case user.Provider == "":
		h.failProviderSignIn(w, r, provider, user.Email, errors.New("user provider missing"))
		return
	}

	if err := h.storeSessionUser(w, r, user); err != nil {
		h.failProviderSignIn(w, r, provider, user.Email, errors.Wrap(err, "could not store session user"))
		return
	}

	h.record(ctx, r, store.SignInMethod(provider), user.Email, store.OutcomeSuccess, http.StatusSeeOther)

	http.Redirect(w, r, h.callbackURL, http.StatusSeeOther)
}

// assertProviderAvailable warns the user and sends them back to the login
// page when the provider sign-in can not proceed.
func (h *Handler) assertProviderAvailable(w http.ResponseWriter, r *http.Request) bool {
	ctx := r.Context()
	provider := r.PathValue("provider")

	if !h.socialSignIn {
		h.record(ctx, r, store.SignInMethod(provider), "", store.OutcomeRestricted, http.StatusSeeOther)
		h.addFlash(w, r, i18n.T(ctx, "authn.login.errors.restricted"))
		http.Redirect(w, r, h.loginURL(r), http.StatusSeeOther)
		return false
	}

	if _, err := goth.GetProvider(provider); err != nil {
		slog.WarnContext(ctx, "unknown provider", slog.String("provider", provider))
		h.addFlash(w, r, i18n.T(ctx, "authn.login.errors.unknown_provider"))
		http.Redirect(w, r, h.loginURL(r), http.StatusSeeOther)
		return false
	}

	return true
}

func (h *Handler) failProviderSignIn(w http.ResponseWriter, r *http.Request, provider string, email string, err error) {
	ctx := r.Context()

	slog.ErrorContext(ctx, "could not authenticate user", slog.String("provider", provider), slog.Any("error", errors.WithStack(err)))

	h.record(ctx, r, store.SignInMethod(provider), email, store.OutcomeError, http.StatusSeeOther)
	h.addFlash(w, r, i18n.T(ctx, "authn.login.errors.provider_failed"))

	http.Redirect(w, r, h.loginURL(r), http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.retrieveSessionUser(r)
	if err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(ctx, "could not retrieve user from session", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.clearSession(w, r); err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(ctx, "could not clear session", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if user == nil {
		http.Redirect(w, r, h.homeURL(r), http.StatusSeeOther)
		return
	}

	if user.IsCredentials() {
		if err := h.authenticator.SignOut(ctx, user.AccessToken); err != nil {
			slog.WarnContext(ctx, "could not sign out from identity service", slog.Any("error", errors.WithStack(err)))
		}

		http.Redirect(w, r, h.homeURL(r), http.StatusSeeOther)
		return
	}

	redirectURL := fmt.Sprintf("%s/%s/logout", h.providersURL(r), user.Provider)

	http.Redirect(w, r, redirectURL, http.StatusSeeOther)
}

func (h *Handler) handleProviderLogout(w http.ResponseWriter, r *http.Request) {
	if err := gothic.Logout(w, r); err != nil {
		slog.ErrorContext(r.Context(), "could not logout from provider", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.homeURL(r), http.StatusSeeOther)
}

func getUserDisplayName(user goth.User) string {
	var displayName string

	rawPreferredUsername, exists := user.RawData["preferred_username"]
	if exists {
		if preferredUsername, ok := rawPreferredUsername.(string); ok {
			displayName = preferredUsername
		}
	}

	if displayName == "" {
		displayName = user.NickName
	}

	if displayName == "" {
		displayName = user.Name
	}

	if displayName == "" && (user.FirstName != "" || user.LastName != "") {
		displayName = user.FirstName + " " + user.LastName
	}

	if displayName == "" {
		displayName = user.UserID
	}

	return displayName
}
