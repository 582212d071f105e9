package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"promptly/internal/models/db_models"
	"promptly/internal/models/request_models"
	"promptly/internal/services"
	"promptly/pkg/utils"
)

type SubmissionController struct {
	submissionService services.SubmissionServiceInterface
}

func NewSubmissionController(submissionService services.SubmissionServiceInterface) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
	}
}

// Submit godoc
// @Summary Submit a community prompt
// @Tags Submissions
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/submit [post]
func (s *SubmissionController) Submit(c *gin.Context) {
	var req request_models.SubmitPromptRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Optional image; absence is not an error.
	file, err := c.FormFile("file")
	if err != nil {
		file = nil
	}

	// Logged-in submitters get linked to their account.
	var submitterID *uuid.UUID
	if userID := c.GetString("user_id"); userID != "" {
		if parsed, parseErr := uuid.Parse(userID); parseErr == nil {
			submitterID = &parsed
		}
	}

	id, err := s.submissionService.Submit(c.Request.Context(), req, file, submitterID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": id.String()}, "Submission received")
}

func (s *SubmissionController) ListCommunity(c *gin.Context) {
	page, limit, err := parsePaging(c, 12)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	paged, err := s.submissionService.ListCommunity(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, paged, "Community submissions fetched successfully")
}

// ListForModeration returns the moderation queue; defaults to pending.
func (s *SubmissionController) ListForModeration(c *gin.Context) {
	page, limit, err := parsePaging(c, 12)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	status := db_models.SubmissionStatus(c.DefaultQuery("status", string(db_models.SubmissionStatusPending)))
	switch status {
	case db_models.SubmissionStatusPending, db_models.SubmissionStatusApproved, db_models.SubmissionStatusRejected:
	default:
		utils.RespondError(c, http.StatusBadRequest, "Invalid status filter")
		return
	}

	paged, err := s.submissionService.ListForModeration(c.Request.Context(), status, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, paged, "Submissions fetched successfully")
}

// Moderate godoc
// @Summary Approve or reject a submission (admin)
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body request_models.ModerateSubmissionRequest true "Decision"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/admin/submissions/{id} [patch]
func (s *SubmissionController) Moderate(c *gin.Context) {
	submissionID := c.Param("id")
	if submissionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Submission ID is required")
		return
	}

	var req request_models.ModerateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	moderator := c.GetString("user_email")

	submission, err := s.submissionService.Moderate(
		c.Request.Context(),
		submissionID,
		db_models.SubmissionStatus(req.Status),
		moderator,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, submission, "Submission moderated successfully")
}
