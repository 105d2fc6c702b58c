package catalog

import (
	"net/http"

	"festly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetCatalogByVenue(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	items, err := c.service.GetCatalog(ctx.Request.Context(), venueID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get catalog", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Catalog retrieved successfully", items, nil)
}

func (c *Controller) CreateItem(ctx *gin.Context) {
	var req CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	item, err := c.service.CreateItem(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create catalog item", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Catalog item created successfully", item, nil)
}

func (c *Controller) GetItem(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid item ID", nil, err.Error())
		return
	}

	item, err := c.service.GetItem(ctx.Request.Context(), itemID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrItemNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get catalog item", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Catalog item retrieved successfully", item, nil)
}

func (c *Controller) UpdateItem(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid item ID", nil, err.Error())
		return
	}

	var req UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	item, err := c.service.UpdateItem(ctx.Request.Context(), itemID, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrItemNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update catalog item", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Catalog item updated successfully", item, nil)
}

func (c *Controller) DeleteItem(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid item ID", nil, err.Error())
		return
	}

	if err := c.service.DeleteItem(ctx.Request.Context(), itemID); err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrItemNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete catalog item", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Catalog item deleted successfully", nil, nil)
}
