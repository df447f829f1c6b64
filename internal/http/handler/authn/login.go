package authn

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/bornholm/signin/internal/http/handler/authn/component"
	"github.com/bornholm/signin/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/signin/internal/http/handler/webui/common/component"
	"github.com/bornholm/signin/internal/http/handler/webui/common/form"
	"github.com/bornholm/signin/internal/identity"
	"github.com/bornholm/signin/internal/store"
	"github.com/gorilla/csrf"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/pkg/errors"
)

const (
	fieldEmail    = "email"
	fieldPassword = "password"
	fieldShow     = "show"
	fieldAction   = "action"

	actionTogglePassword = "toggle-password"

	// defaultCallbackPath is where the identity service is asked to send
	// users after a credentials sign-in.
	defaultCallbackPath = "/"
)

type loginPageState struct {
	Form         *form.Form
	Error        string
	ShowPassword bool
	Toasts       []string
}

func newLoginForm(funcs ...form.FormOptionFunc) *form.Form {
	return form.New([]form.Field{
		{
			Name:        fieldEmail,
			Type:        "email",
			Label:       "authn.login.email",
			Placeholder: "authn.login.email",
			Required:    true,
			Validation:  []form.ValidationRule{form.EmailRule{}},
		},
		{
			Name:        fieldPassword,
			Type:        "password",
			Label:       "authn.login.password",
			Placeholder: "authn.login.password",
			Required:    true,
			Sensitive:   true,
		},
	}, funcs...)
}

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	user, err := h.retrieveSessionUser(r)
	if err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(r.Context(), "could not retrieve user from session", slog.Any("error", errors.WithStack(err)))
	}

	if user != nil {
		http.Redirect(w, r, h.homeURL(r), http.StatusFound)
		return
	}

	state := loginPageState{
		Form:   newLoginForm(),
		Toasts: h.popFlashes(w, r),
	}

	h.renderLoginPage(w, r, state, http.StatusOK)
}

// handleLoginForm dispatches the login form submissions. Only credentials
// submissions go through the login limiter.
func (h *Handler) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if r.PostFormValue(fieldAction) == actionTogglePassword {
		h.handleTogglePassword(w, r)
		return
	}

	h.submitCredentials.ServeHTTP(w, r)
}

func (h *Handler) handleTogglePassword(w http.ResponseWriter, r *http.Request) {
	loginForm := newLoginForm(form.WithKeepSensitive(true))
	if err := loginForm.Handle(r); err != nil {
		common.HandleError(w, r, common.NewError(err, http.StatusText(http.StatusBadRequest), http.StatusBadRequest))
		return
	}

	showPassword := r.PostFormValue(fieldShow) == "1"

	h.renderLoginPage(w, r, loginPageState{Form: loginForm, ShowPassword: !showPassword}, http.StatusOK)
}

func (h *Handler) handleCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	showPassword := r.PostFormValue(fieldShow) == "1"

	loginForm := newLoginForm()
	if err := loginForm.Handle(r); err != nil {
		common.HandleError(w, r, common.NewError(err, http.StatusText(http.StatusBadRequest), http.StatusBadRequest))
		return
	}

	state := loginPageState{
		Form:         loginForm,
		ShowPassword: showPassword,
	}

	email := strings.TrimSpace(loginForm.Value(fieldEmail))

	if !loginForm.IsValid(ctx) {
		h.record(ctx, r, store.MethodCredentials, email, store.OutcomeInvalid, http.StatusUnprocessableEntity)
		h.renderLoginPage(w, r, state, http.StatusUnprocessableEntity)
		return
	}

	result, err := h.authenticator.SignIn(ctx, identity.Credentials{
		Email:       email,
		Password:    loginForm.Value(fieldPassword),
		CallbackURL: defaultCallbackPath,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not sign in with credentials", slog.Any("error", errors.WithStack(err)))
		h.record(ctx, r, store.MethodCredentials, email, store.OutcomeError, http.StatusBadGateway)
		state.Error = i18n.T(ctx, "authn.login.errors.unavailable")
		h.renderLoginPage(w, r, state, http.StatusBadGateway)
		return
	}

	if result.Status == http.StatusUnauthorized {
		h.record(ctx, r, store.MethodCredentials, email, store.OutcomeUnauthorized, http.StatusUnauthorized)
		state.Error = i18n.T(ctx, "authn.login.errors.unauthorized")
		h.renderLoginPage(w, r, state, http.StatusUnauthorized)
		return
	}

	if !result.OK {
		status := result.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadRequest
		}

		state.Error = result.Error
		if state.Error == "" {
			state.Error = identity.ErrorCredentialsSignin
		}

		h.record(ctx, r, store.MethodCredentials, email, store.OutcomeRejected, status)
		h.renderLoginPage(w, r, state, status)
		return
	}

	user := newCredentialsUser(email, result)

	if err := h.storeSessionUser(w, r, user); err != nil {
		h.record(ctx, r, store.MethodCredentials, email, store.OutcomeError, http.StatusInternalServerError)
		common.HandleError(w, r, errors.Wrap(err, "could not store session user"))
		return
	}

	h.record(ctx, r, store.MethodCredentials, user.Email, store.OutcomeSuccess, http.StatusSeeOther)

	http.Redirect(w, r, h.redirectURL(r, result.URL), http.StatusSeeOther)
}

func (h *Handler) handleTooManyAttempts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	loginForm := newLoginForm()
	if err := loginForm.Handle(r); err != nil {
		common.HandleError(w, r, common.NewError(err, http.StatusText(http.StatusBadRequest), http.StatusBadRequest))
		return
	}

	email := strings.TrimSpace(loginForm.Value(fieldEmail))

	h.record(ctx, r, store.MethodCredentials, email, store.OutcomeThrottled, http.StatusTooManyRequests)

	state := loginPageState{
		Form:         loginForm,
		ShowPassword: r.PostFormValue(fieldShow) == "1",
		Error:        i18n.T(ctx, "authn.login.errors.too_many_attempts"),
	}

	h.renderLoginPage(w, r, state, http.StatusTooManyRequests)
}

func newCredentialsUser(email string, result *identity.SignInResult) *User {
	user := &User{
		Email:       email,
		Provider:    credentialsProvider,
		Subject:     result.User.ID,
		DisplayName: result.User.Name,
		AccessToken: result.Token,
		ExpiresAt:   result.ExpiresAt,
	}

	if result.User.Email != "" {
		user.Email = result.User.Email
	}

	if user.Subject == "" {
		user.Subject = user.Email
	}

	if user.DisplayName == "" {
		user.DisplayName = user.Email
	}

	return user
}

func (h *Handler) renderLoginPage(w http.ResponseWriter, r *http.Request, state loginPageState, status int) {
	vmodel, err := h.fillLoginPageVModel(r, state)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	loginPage := component.LoginPage(*vmodel)

	templ.Handler(loginPage, templ.WithStatus(status)).ServeHTTP(w, r)
}

func (h *Handler) fillLoginPageVModel(r *http.Request, state loginPageState) (*component.LoginPageVModel, error) {
	ctx := r.Context()

	email, err := state.Form.GetFieldContext(fieldEmail)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	password, err := state.Form.GetFieldContext(fieldPassword)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	email.Placeholder = i18n.T(ctx, email.Placeholder)
	email.Label = i18n.T(ctx, email.Label)
	password.Placeholder = i18n.T(ctx, password.Placeholder)
	password.Label = i18n.T(ctx, password.Label)

	if state.ShowPassword {
		password.Type = "text"
	}

	providers := make([]component.Provider, 0, len(h.providers))
	for _, p := range h.providers {
		if p.Icon != "" && !strings.Contains(p.Icon, "://") {
			p.Icon = string(commonComp.BaseURL(ctx, commonComp.WithJoinedPath("assets", p.Icon)))
		}

		providers = append(providers, p)
	}

	vmodel := &component.LoginPageVModel{
		Providers:    providers,
		Email:        email,
		Password:     password,
		Error:        state.Error,
		ShowPassword: state.ShowPassword,
		Toasts:       state.Toasts,
		Tagline:      h.tagline,
		SignUpURL:    h.signUpURL,
		CSRFField:    csrf.TemplateField(r),
	}

	return vmodel, nil
}
