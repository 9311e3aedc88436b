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

type CommissionHandler struct {
	batch  *service.BatchService
	ledger *service.LedgerService
}

func NewCommissionHandler() *CommissionHandler {
	return &CommissionHandler{
		batch:  service.NewBatchService(),
		ledger: service.NewLedgerService(),
	}
}

// ProcessBatch POST /api/v1/commissions/batch
// 同步处理，批次汇总作为响应返回；单笔失败不影响整批。
func (h *CommissionHandler) ProcessBatch(c *gin.Context) {
	var req dto.ProcessBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodeTxAmountInvalid, "msg": err.Error()})
		return
	}
	result := h.batch.ProcessBatch(c.Request.Context(), req)
	c.JSON(http.StatusOK, utils.Success(result))
}

// GetDistribution GET /api/v1/commissions/distributions/:txId?period=YYYYMM
func (h *CommissionHandler) GetDistribution(c *gin.Context) {
	txID, err := strconv.ParseUint(c.Param("txId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodeDistributionNotFound, "msg": "invalid transaction id"})
		return
	}
	vo, err := h.ledger.GetDistribution(txID, c.Query("period"))
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// ListCalculations GET /api/v1/commissions/partners/:id/calculations?period=YYYYMM
func (h *CommissionHandler) ListCalculations(c *gin.Context) {
	partnerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodePartnerNotFound, "msg": "invalid partner id"})
		return
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page_num", "1"))

	list, total, err := h.ledger.ListCalculations(partnerID, c.Query("period"), pageSize, pageNum)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"total": total, "list": list}))
}

// GetEarnings GET /api/v1/commissions/partners/:id/earnings
func (h *CommissionHandler) GetEarnings(c *gin.Context) {
	partnerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodePartnerNotFound, "msg": "invalid partner id"})
		return
	}
	vo, err := h.ledger.GetEarnings(partnerID)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// UpdateCalcStatus PUT /api/v1/commissions/calculations/:calcId/status
func (h *CommissionHandler) UpdateCalcStatus(c *gin.Context) {
	calcID, err := strconv.ParseUint(c.Param("calcId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodeCalculationNotFound, "msg": "invalid calculation id"})
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
		Period string `json:"period" binding:"omitempty,len=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": constant.CodeStatusTransitionInvalid, "msg": err.Error()})
		return
	}
	vo, err := h.ledger.UpdateCalcStatus(calcID, req.Period, req.Status)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}
