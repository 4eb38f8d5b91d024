package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/httputil"
	"lscmis/pkg/requestcontext"
)

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[LoginRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	session, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.fail(ctx, w, "login failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, LoginResponse{
		Success:   true,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		UserID:    session.UserID,
		Role:      string(session.Role),
		CenterID:  nilToEmpty(session.Scope.CenterID),
	})
}

func (h *Handler) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[SubmitApplicationRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	res, err := h.service.SubmitApplication(ctx, req.command())
	if err != nil {
		h.fail(ctx, w, "submit application failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, SubmitApplicationResponse{
		Success:         true,
		CenterID:        res.CenterID,
		ApplicationCode: res.ApplicationCode,
	})
}

func (h *Handler) handleIssueCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[IssueCredentialsRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	res, err := h.service.IssueCredentials(ctx, req.command())
	if err != nil {
		h.fail(ctx, w, "issue credentials failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, ProvisionResponse{Success: true, CenterID: res.CenterID, UserID: res.UserID})
}

func (h *Handler) handleApplicationStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	center, err := h.service.ApplicationStatus(ctx, chi.URLParam(r, "code"))
	if err != nil {
		h.fail(ctx, w, "application status failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ApplicationStatusResponse{
		Success:  true,
		CenterID: center.ID,
		Name:     center.Fields.Name,
		Status:   string(center.Status),
		IsActive: center.IsActive,
	})
}

func (h *Handler) handleListDistricts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	districts, err := h.service.ListDistricts(ctx)
	if err != nil {
		h.fail(ctx, w, "list districts failed", err)
		return
	}
	out := make([]District, 0, len(districts))
	for _, d := range districts {
		out = append(out, District{ID: d.ID, Name: d.Name})
	}
	httputil.WriteJSON(w, http.StatusOK, DistrictListResponse{Success: true, Districts: out})
}

func (h *Handler) handleListBlocks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	districtID, err := pathID(r, "districtID", id.ParseDistrictID)
	if err != nil {
		h.fail(ctx, w, "list blocks failed", err)
		return
	}
	blocks, err := h.service.ListBlocks(ctx, districtID)
	if err != nil {
		h.fail(ctx, w, "list blocks failed", err)
		return
	}
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, Block{ID: b.ID, DistrictID: b.DistrictID, Name: b.Name})
	}
	httputil.WriteJSON(w, http.StatusOK, BlockListResponse{Success: true, Blocks: out})
}

func (h *Handler) handlePublicItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := h.service.ListItems(ctx, true)
	if err != nil {
		h.fail(ctx, w, "list items failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ItemListResponse{Success: true, Items: toItems(items)})
}
