package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"product-registry-backend/internal/domains/product"
	"product-registry-backend/internal/shared/response"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type ProductHandler struct {
	service product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{
		service: svc,
	}
}

// ========== CREATE: POST /api/v1/products ==========
func (h *ProductHandler) Create(c *gin.Context) {
	var req product.CreateProductReq

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	// Field constraints are enforced entirely here, at the boundary; the
	// service trusts what it receives.
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, product.GetHTTPStatusCode(err), "CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ========== READ: GET /api/v1/products ==========
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, products, &response.Meta{
		Total: len(products),
	})
}

// ========== READ: GET /api/v1/products/:id ==========
func (h *ProductHandler) GetByID(c *gin.Context) {
	// Zero and negative ids are valid integers that were simply never
	// issued; the scan turns them into a plain not-found.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id must be an integer")
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, p)
}
