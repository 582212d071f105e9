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

type ServiceController struct {
	catalogService services.CatalogServiceInterface
	requestService services.RequestServiceInterface
}

func NewServiceController(catalogService services.CatalogServiceInterface, requestService services.RequestServiceInterface) *ServiceController {
	return &ServiceController{
		catalogService: catalogService,
		requestService: requestService,
	}
}

// ---------- Catalog ----------

func (s *ServiceController) ListServices(c *gin.Context) {
	servicesList, err := s.catalogService.ListActive(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"data": servicesList}, "Services fetched successfully")
}

func (s *ServiceController) CreateService(c *gin.Context) {
	var req request_models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	service, err := s.catalogService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, service, "Service created successfully")
}

func (s *ServiceController) UpdateService(c *gin.Context) {
	serviceID := c.Param("id")

	var req request_models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	service, err := s.catalogService.Update(c.Request.Context(), serviceID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, service, "Service updated successfully")
}

func (s *ServiceController) DeleteService(c *gin.Context) {
	serviceID := c.Param("id")

	if err := s.catalogService.Delete(c.Request.Context(), serviceID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Service deleted successfully")
}

// ---------- Requests ----------

// CreateRequest godoc
// @Summary Request a done-for-you service
// @Tags Services
// @Accept json
// @Produce json
// @Param request body request_models.CreateRequestRequest true "Request payload"
// @Success 201 {object} utils.APIResponse
// @Router /api/services/request [post]
func (s *ServiceController) CreateRequest(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session principal")
		return
	}

	var req request_models.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	request, err := s.requestService.Create(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, request, "Service request created successfully")
}

func (s *ServiceController) ListOwnRequests(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session principal")
		return
	}

	requests, err := s.requestService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"data": requests}, "Service requests fetched successfully")
}

func (s *ServiceController) ListAllRequests(c *gin.Context) {
	status := db_models.RequestStatus(c.Query("status"))
	if status != "" && !db_models.ValidRequestStatus(status) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid status filter")
		return
	}

	requests, err := s.requestService.ListForAdmin(c.Request.Context(), status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"data": requests}, "Service requests fetched successfully")
}

func (s *ServiceController) UpdateRequestStatus(c *gin.Context) {
	var req request_models.UpdateRequestStatus
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	request, err := s.requestService.SetStatus(c.Request.Context(), req.ID, db_models.RequestStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, request, "Service request updated successfully")
}

func (s *ServiceController) UpdateRequestPayment(c *gin.Context) {
	var req request_models.UpdateRequestPayment
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	request, err := s.requestService.SetPaymentStatus(c.Request.Context(), req.ID, db_models.PaymentStatus(req.PaymentStatus))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, request, "Payment status updated successfully")
}
