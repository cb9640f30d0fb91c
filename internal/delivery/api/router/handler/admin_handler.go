package handler

import (
	"net/http"

	"staffportal/internal/delivery/api/response"
	"staffportal/internal/domain/entity"
	"staffportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ProfileUC    usecase.ProfileUsecase
	AuditUC      usecase.AuditUsecase
	AssetIssueUC usecase.AssetIssueUsecase
	FeedbackUC   usecase.FeedbackUsecase
	DocUC        usecase.DocumentationUsecase
}

// AdminHandler serves the oversight views of the admin area.
type AdminHandler struct {
	profileUC    usecase.ProfileUsecase
	auditUC      usecase.AuditUsecase
	assetIssueUC usecase.AssetIssueUsecase
	feedbackUC   usecase.FeedbackUsecase
	docUC        usecase.DocumentationUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		profileUC:    params.ProfileUC,
		auditUC:      params.AuditUC,
		assetIssueUC: params.AssetIssueUC,
		feedbackUC:   params.FeedbackUC,
		docUC:        params.DocUC,
	}
}

// UpdateFeedbackStatusRequest represents the request body for a feedback status change
type UpdateFeedbackStatusRequest struct {
	Status entity.FeedbackStatus `json:"status" validate:"required"`
}

// ListStaff handles GET /admin/staff
func (h *AdminHandler) ListStaff(c echo.Context) error {
	staff, err := h.profileUC.ListStaff(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, staff)
}

// ListAuditLogs handles GET /admin/audit-logs?entity_type=&action=&limit=&offset=
func (h *AdminHandler) ListAuditLogs(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.auditUC.List(c.Request().Context(), entity.AuditFilter{
		EntityType: c.QueryParam("entity_type"),
		Action:     c.QueryParam("action"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// ListAssetIssues handles GET /admin/asset-issues?status=&asset_type=&q=
func (h *AdminHandler) ListAssetIssues(c echo.Context) error {
	issues, err := h.assetIssueUC.List(c.Request().Context(), entity.AssetIssueFilter{
		Status:    c.QueryParam("status"),
		AssetType: c.QueryParam("asset_type"),
		Search:    c.QueryParam("q"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, issues)
}

// ToggleAssetIssue handles POST /admin/asset-issues/:id/toggle
func (h *AdminHandler) ToggleAssetIssue(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	issueID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	issue, err := h.assetIssueUC.ToggleResolved(c.Request().Context(), identity.UserID, issueID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, issue)
}

// DeleteAssetIssue handles DELETE /admin/asset-issues/:id
func (h *AdminHandler) DeleteAssetIssue(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	issueID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.assetIssueUC.Delete(c.Request().Context(), identity.UserID, issueID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Asset issue deleted"})
}

// ListFeedback handles GET /admin/feedback
func (h *AdminHandler) ListFeedback(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.feedbackUC.List(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// UpdateFeedbackStatus handles PUT /admin/feedback/:id/status
func (h *AdminHandler) UpdateFeedbackStatus(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	feedbackID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateFeedbackStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	feedback, err := h.feedbackUC.UpdateStatus(c.Request().Context(), identity, feedbackID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, feedback)
}

// ListDocumentation handles GET /admin/documentation?category=&status=&department=&user_id=&q=
func (h *AdminHandler) ListDocumentation(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	authorID, err := queryUUID(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.docUC.List(c.Request().Context(), identity, entity.DocumentationFilter{
		Category:   c.QueryParam("category"),
		Status:     entity.DocumentationStatus(c.QueryParam("status")),
		Department: c.QueryParam("department"),
		AuthorID:   authorID,
		Query:      c.QueryParam("q"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetDocumentation handles GET /admin/documentation/:id
func (h *AdminHandler) GetDocumentation(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	docID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	doc, err := h.docUC.Get(c.Request().Context(), identity, docID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, doc)
}
