package http

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
	"gorm.io/gorm"

	"mandal-ledger-go/internal/database"
	"mandal-ledger-go/internal/ledger"
	"mandal-ledger-go/internal/models"
)

type memberDataPayload struct {
	SubUserID          uint     `json:"subUserId"`
	Month              string   `json:"month"`
	Installment        *float64 `json:"installment"`
	PaidInstallment    *float64 `json:"paidInstallment"`
	PendingInstallment *float64 `json:"pendingInstallment"`
	Amount             *float64 `json:"amount"`
	Interest           *float64 `json:"interest"`
	PaidInterest       *float64 `json:"paidInterest"`
	Fine               *float64 `json:"fine"`
	Withdrawal         *float64 `json:"withdrawal"`
	PaidWithdrawal     *float64 `json:"paidWithdrawal"`
	NewWithdrawal      *float64 `json:"newWithdrawal"`
}

func assign(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// POST /memberData — create or overwrite the ledger row for one
// (mandal, sub-user, month) triple. Last write wins; Total is recomputed on
// every save.
func (s *Server) upsertMemberData(c *gin.Context) {
	p, _ := principalFrom(c)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(400, gin.H{"error": "unreadable_body"})
		return
	}

	res, err := s.validator.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_json"})
		return
	}
	if !res.Valid() {
		details := []string{}
		for _, e := range res.Errors() {
			details = append(details, e.String())
		}
		c.JSON(400, gin.H{"error": "validation_failed", "details": details})
		return
	}

	var input memberDataPayload
	if err := json.Unmarshal(body, &input); err != nil {
		c.JSON(400, gin.H{"error": "invalid_json"})
		return
	}
	if !ledger.ValidKey(input.Month) {
		c.JSON(400, gin.H{"error": "invalid_month", "message": "expected YYYY-MM"})
		return
	}

	// The sub-user must belong to the calling mandal.
	var sub models.SubUser
	if err := database.DB.Where("id = ? AND mandal_id = ?", input.SubUserID, p.ID).First(&sub).Error; err != nil {
		c.JSON(404, gin.H{"error": "sub_user_not_found"})
		return
	}

	var row models.MemberData
	err = database.DB.
		Where("mandal_id = ? AND sub_user_id = ? AND month = ?", p.ID, input.SubUserID, input.Month).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.MemberData{MandalID: p.ID, SubUserID: input.SubUserID, Month: input.Month}
	} else if err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}

	assign(&row.Installment, input.Installment)
	assign(&row.PaidInstallment, input.PaidInstallment)
	assign(&row.PendingInstallment, input.PendingInstallment)
	assign(&row.Amount, input.Amount)
	assign(&row.Interest, input.Interest)
	assign(&row.PaidInterest, input.PaidInterest)
	assign(&row.Fine, input.Fine)
	assign(&row.Withdrawal, input.Withdrawal)
	assign(&row.PaidWithdrawal, input.PaidWithdrawal)
	assign(&row.NewWithdrawal, input.NewWithdrawal)
	row.Total = ledger.Total(row.Installment, row.Interest)

	if err := database.DB.Save(&row).Error; err != nil {
		logrus.WithError(err).Error("save member data failed")
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(200, memberDataView(row, sub))
}

// GET /memberData?month=YYYY-MM
func (s *Server) listMemberData(c *gin.Context) {
	p, _ := principalFrom(c)

	month := c.Query("month")
	if !ledger.ValidKey(month) {
		c.JSON(400, gin.H{"error": "invalid_month", "message": "expected YYYY-MM"})
		return
	}

	var rows []models.MemberData
	err := database.DB.Preload("SubUser").
		Where("mandal_id = ? AND month = ?", p.ID, month).
		Find(&rows).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}

	views := make([]MemberDataView, 0, len(rows))
	for _, row := range rows {
		views = append(views, memberDataView(row, row.SubUser))
	}
	c.JSON(200, views)
}

// POST /memberData/initialize — idempotent backfill for a month. Members
// without a row get one, carried from their own previous month or zeroed;
// existing rows are left untouched.
func (s *Server) initializeMemberData(c *gin.Context) {
	p, _ := principalFrom(c)

	var input struct {
		Month string `json:"month" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !ledger.ValidKey(input.Month) {
		c.JSON(400, gin.H{"error": "invalid_month", "message": "expected YYYY-MM"})
		return
	}

	var month models.Month
	if err := database.DB.Where("mandal_id = ? AND month = ?", p.ID, input.Month).First(&month).Error; err != nil {
		c.JSON(404, gin.H{"error": "month_not_found"})
		return
	}

	created, err := backfillMonth(p.ID, input.Month)
	if err != nil {
		logrus.WithError(err).WithField("month", input.Month).Error("backfill failed")
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(200, gin.H{"message": "initialized", "month": input.Month, "rows": created})
}
