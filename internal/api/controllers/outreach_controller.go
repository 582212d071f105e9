package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"promptly/internal/models/request_models"
	"promptly/internal/services"
	"promptly/pkg/utils"
)

type OutreachController struct {
	outreachService services.OutreachServiceInterface
}

func NewOutreachController(outreachService services.OutreachServiceInterface) *OutreachController {
	return &OutreachController{
		outreachService: outreachService,
	}
}

func (o *OutreachController) Contact(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := o.outreachService.SubmitContact(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Message received")
}

func (o *OutreachController) Subscribe(c *gin.Context) {
	var req request_models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid email")
		return
	}

	created, err := o.outreachService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !created {
		utils.RespondSuccess(c, nil, "Already subscribed")
		return
	}

	utils.RespondCreated(c, nil, "Subscribed successfully")
}
