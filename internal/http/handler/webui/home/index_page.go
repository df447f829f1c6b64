package home

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/signin/internal/http/handler/authn"
	"github.com/bornholm/signin/internal/http/handler/webui/common"
	"github.com/bornholm/signin/internal/http/handler/webui/home/component"
	"github.com/pkg/errors"
)

func (h *Handler) getIndexPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillIndexPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	indexPage := component.IndexPage(*vmodel)

	templ.Handler(indexPage).ServeHTTP(w, r)
}

func (h *Handler) fillIndexPageViewModel(r *http.Request) (*component.IndexPageVModel, error) {
	vmodel := &component.IndexPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillIndexPageUserVModel,
		h.fillIndexPageActivityVModel,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillIndexPageUserVModel(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request) error {
	user := authn.ContextUser(ctx)

	vmodel.DisplayName = user.DisplayName
	vmodel.Email = user.Email
	vmodel.Provider = user.Provider

	return nil
}

func (h *Handler) fillIndexPageActivityVModel(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request) error {
	if h.activity == nil || vmodel.Email == "" {
		return nil
	}

	events, err := h.activity.ListByEmail(ctx, vmodel.Email, h.activityLimit)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Events = events

	return nil
}
