package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/dto"
	"partner-commission-api/internal/service"
	"partner-commission-api/internal/utils"
)

type PartnerHandler struct{ svc *service.PartnerService }

func NewPartnerHandler() *PartnerHandler { return &PartnerHandler{svc: service.NewPartnerService()} }

// CreateRoot POST /api/v1/partners/root
func (h *PartnerHandler) CreateRoot(c *gin.Context) {
	var req dto.CreatePartnerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodePartnerFieldMissing, "msg": err.Error()})
		return
	}
	vo, err := h.svc.CreateRoot(req)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// Add POST /api/v1/partners
func (h *PartnerHandler) Add(c *gin.Context) {
	var req dto.AddPartnerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodePartnerFieldMissing, "msg": err.Error()})
		return
	}
	vo, err := h.svc.AddPartner(req)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// Get GET /api/v1/partners/:id
func (h *PartnerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodePartnerNotFound, "msg": "invalid partner id"})
		return
	}
	vo, err := h.svc.GetPartner(id)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// Ancestors GET /api/v1/partners/:id/ancestors
func (h *PartnerHandler) Ancestors(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodePartnerNotFound, "msg": "invalid partner id"})
		return
	}
	chain, err := h.svc.GetAncestorChain(id)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"partner_id": id, "ancestors": chain}))
}

// UpdateStatus PUT /api/v1/partners/:id/status
func (h *PartnerHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodePartnerNotFound, "msg": "invalid partner id"})
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodeStatusTransitionInvalid, "msg": err.Error()})
		return
	}
	if err := h.svc.UpdateStatus(id, req.Status); err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}

// ReportMetrics POST /api/v1/partners/:id/metrics
func (h *PartnerHandler) ReportMetrics(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodePartnerNotFound, "msg": "invalid partner id"})
		return
	}
	var req dto.ReportMetricsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodeTxAmountInvalid, "msg": err.Error()})
		return
	}
	if err := h.svc.ReportMetrics(id, req); err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}

// List GET /api/v1/partners
func (h *PartnerHandler) List(c *gin.Context) {
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page_num", "1"))

	list, total, err := h.svc.List(c.Query("level"), c.Query("status"), pageSize, pageNum)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"total": total, "list": list}))
}
