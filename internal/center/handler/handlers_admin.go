package handler

import (
	"net/http"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/audit"
	"lscmis/pkg/platform/httputil"
	"lscmis/pkg/requestcontext"
)

func (h *Handler) handleProvisionCenter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ProvisionCenterRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	res, err := h.service.ProvisionCenter(ctx, req.command())
	if err != nil {
		h.fail(ctx, w, "provision center failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, ProvisionResponse{Success: true, CenterID: res.CenterID, UserID: res.UserID})
}

func (h *Handler) handleGetCenter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	centerID, err := pathID(r, "centerID", id.ParseCenterID)
	if err != nil {
		h.fail(ctx, w, "get center failed", err)
		return
	}
	detail, err := h.service.GetCenter(ctx, centerID)
	if err != nil {
		h.fail(ctx, w, "get center failed", err)
		return
	}
	itemIDs := make([]string, 0, len(detail.Services))
	for _, a := range detail.Services {
		itemIDs = append(itemIDs, a.ServiceItemID.String())
	}
	httputil.WriteJSON(w, http.StatusOK, CenterResponse{Success: true, Center: toCenter(detail.Center), ServiceItemIDs: itemIDs})
}

func (h *Handler) handleUpdateCenter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	centerID, err := pathID(r, "centerID", id.ParseCenterID)
	if err != nil {
		h.fail(ctx, w, "update center failed", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateCenterRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	center, err := h.service.UpdateCenter(ctx, req.command(centerID))
	if err != nil {
		h.fail(ctx, w, "update center failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CenterResponse{Success: true, Center: toCenter(center)})
}

func (h *Handler) handleListApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var status models.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := models.ParseStatus(raw)
		if err != nil {
			h.fail(ctx, w, "list applications failed", err)
			return
		}
		status = parsed
	}
	centers, err := h.service.ListApplications(ctx, status)
	if err != nil {
		h.fail(ctx, w, "list applications failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CenterListResponse{Success: true, Centers: toCenters(centers)})
}

func (h *Handler) handleReviewApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	centerID, err := pathID(r, "centerID", id.ParseCenterID)
	if err != nil {
		h.fail(ctx, w, "review application failed", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReviewApplicationRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	center, err := h.service.ReviewApplication(ctx, centerID, models.Status(req.Decision))
	if err != nil {
		h.fail(ctx, w, "review application failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CenterResponse{Success: true, Center: toCenter(center)})
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[CreateUserRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	userID, err := h.service.CreateUser(ctx, req.command())
	if err != nil {
		h.fail(ctx, w, "create user failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, UserCreatedResponse{Success: true, UserID: userID})
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	users, err := h.service.ListUsers(ctx)
	if err != nil {
		h.fail(ctx, w, "list users failed", err)
		return
	}
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, User{
			UserID:     u.UserID,
			Email:      u.Email,
			Role:       string(u.Role),
			DistrictID: nilToEmpty(u.Scope.DistrictID),
			BlockID:    nilToEmpty(u.Scope.BlockID),
		})
	}
	httputil.WriteJSON(w, http.StatusOK, UserListResponse{Success: true, Users: out})
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := pathID(r, "userID", id.ParseUserID)
	if err != nil {
		h.fail(ctx, w, "delete user failed", err)
		return
	}
	if userID == requestcontext.UserID(ctx) {
		h.fail(ctx, w, "delete user failed", dErrors.New(dErrors.CodeValidation, "cannot delete your own account"))
		return
	}
	if err := h.service.DeleteUser(ctx, userID); err != nil {
		h.fail(ctx, w, "delete user failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categories, err := h.service.ListCategories(ctx)
	if err != nil {
		h.fail(ctx, w, "list categories failed", err)
		return
	}
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, Category{ID: c.ID, Name: c.Name, ItemCount: c.ItemCount, CreatedAt: c.CreatedAt})
	}
	httputil.WriteJSON(w, http.StatusOK, CategoryListResponse{Success: true, Categories: out})
}

func (h *Handler) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[NameRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c, err := h.service.CreateCategory(ctx, req.Name)
	if err != nil {
		h.fail(ctx, w, "create category failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, CategoryResponse{
		Success:  true,
		Category: Category{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt},
	})
}

func (h *Handler) handleRenameCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, err := pathID(r, "categoryID", id.ParseCategoryID)
	if err != nil {
		h.fail(ctx, w, "rename category failed", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[NameRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.service.RenameCategory(ctx, categoryID, req.Name); err != nil {
		h.fail(ctx, w, "rename category failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, err := pathID(r, "categoryID", id.ParseCategoryID)
	if err != nil {
		h.fail(ctx, w, "delete category failed", err)
		return
	}
	if err := h.service.DeleteCategory(ctx, categoryID); err != nil {
		h.fail(ctx, w, "delete category failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := h.service.ListItems(ctx, r.URL.Query().Get("active") == "true")
	if err != nil {
		h.fail(ctx, w, "list items failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ItemListResponse{Success: true, Items: toItems(items)})
}

func (h *Handler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[CreateItemRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	categoryID, _ := id.ParseCategoryID(req.CategoryID)
	item, err := h.service.CreateItem(ctx, categoryID, req.Name)
	if err != nil {
		h.fail(ctx, w, "create item failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, ItemResponse{Success: true, Item: toItem(item)})
}

func (h *Handler) handleRenameItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID, err := pathID(r, "itemID", id.ParseServiceItemID)
	if err != nil {
		h.fail(ctx, w, "rename item failed", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[NameRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	item, err := h.service.RenameItem(ctx, itemID, req.Name)
	if err != nil {
		h.fail(ctx, w, "rename item failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ItemResponse{Success: true, Item: toItem(item)})
}

func (h *Handler) handleToggleItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID, err := pathID(r, "itemID", id.ParseServiceItemID)
	if err != nil {
		h.fail(ctx, w, "toggle item failed", err)
		return
	}
	item, err := h.service.ToggleItem(ctx, itemID)
	if err != nil {
		h.fail(ctx, w, "toggle item failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ItemResponse{Success: true, Item: toItem(item)})
}

func (h *Handler) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID, err := pathID(r, "itemID", id.ParseServiceItemID)
	if err != nil {
		h.fail(ctx, w, "delete item failed", err)
		return
	}
	if err := h.service.DeleteItem(ctx, itemID); err != nil {
		h.fail(ctx, w, "delete item failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) handleListAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.audit == nil {
		h.fail(ctx, w, "list audit failed", dErrors.New(dErrors.CodeNotFound, "audit trail not available"))
		return
	}
	category := audit.EventCategory(r.URL.Query().Get("category"))
	events, err := h.audit.ListRecent(ctx, category, parseLimit(r.URL.Query().Get("limit")))
	if err != nil {
		h.fail(ctx, w, "list audit failed", dErrors.Wrap(err, dErrors.CodeStore, "failed to read audit trail"))
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	httputil.WriteJSON(w, http.StatusOK, AuditListResponse{Success: true, Events: events})
}
