package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mandal-ledger-go/internal/database"
	"mandal-ledger-go/internal/ledger"
	"mandal-ledger-go/internal/models"
)

func rowState(md models.MemberData) ledger.Row {
	return ledger.Row{
		SubUserID:          md.SubUserID,
		Installment:        md.Installment,
		PaidInstallment:    md.PaidInstallment,
		PendingInstallment: md.PendingInstallment,
		Amount:             md.Amount,
		Interest:           md.Interest,
		PaidInterest:       md.PaidInterest,
		Fine:               md.Fine,
		Withdrawal:         md.Withdrawal,
		PaidWithdrawal:     md.PaidWithdrawal,
		NewWithdrawal:      md.NewWithdrawal,
	}
}

func rowModel(mandalID uint, month string, r ledger.Row) models.MemberData {
	return models.MemberData{
		MandalID:           mandalID,
		SubUserID:          r.SubUserID,
		Month:              month,
		Installment:        r.Installment,
		PaidInstallment:    r.PaidInstallment,
		PendingInstallment: r.PendingInstallment,
		Amount:             r.Amount,
		Interest:           r.Interest,
		PaidInterest:       r.PaidInterest,
		Fine:               r.Fine,
		Withdrawal:         r.Withdrawal,
		PaidWithdrawal:     r.PaidWithdrawal,
		NewWithdrawal:      r.NewWithdrawal,
		Total:              ledger.Total(r.Installment, r.Interest),
	}
}

// nextMonthKey computes the key the next month must get: one past the most
// recent month, or the establishment month when no month exists yet.
func nextMonthKey(mandal *models.Mandal) (string, error) {
	var latest models.Month
	err := database.DB.Where("mandal_id = ?", mandal.ID).Order("month desc").First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		est, perr := time.Parse("2006-01-02", mandal.EstablishedOn)
		if perr != nil {
			return "", fmt.Errorf("bad establishment date %q: %w", mandal.EstablishedOn, perr)
		}
		return ledger.KeyFromDate(est), nil
	}
	if err != nil {
		return "", err
	}
	return ledger.NextKey(latest.Month)
}

// openNextMonth runs the full lifecycle: member guard, key computation,
// month insert, row seeding. Returns the computed key and the number of rows
// seeded, or one of the ledger sentinels.
func openNextMonth(mandalID uint) (string, int, error) {
	var memberCount int64
	if err := database.DB.Model(&models.SubUser{}).Where("mandal_id = ?", mandalID).Count(&memberCount).Error; err != nil {
		return "", 0, err
	}
	if memberCount == 0 {
		return "", 0, ledger.ErrNoMembers
	}

	var mandal models.Mandal
	if err := database.DB.First(&mandal, mandalID).Error; err != nil {
		return "", 0, err
	}

	key, err := nextMonthKey(&mandal)
	if err != nil {
		return "", 0, err
	}

	// The composite unique index on (mandal_id, month) is the duplicate
	// guard; a concurrent opener loses here with a unique violation.
	month := models.Month{MandalID: mandalID, Month: key}
	if err := database.DB.Create(&month).Error; err != nil {
		if isUniqueViolation(err) {
			return key, 0, fmt.Errorf("month %s: %w", key, ledger.ErrDuplicateMonth)
		}
		return key, 0, err
	}

	// Seed rows for every member: carried forward where a prior row exists,
	// zero-seeded otherwise. Re-runnable via POST /memberData/initialize if
	// the batch insert fails after the month record was created.
	created, err := backfillMonth(mandalID, key)
	if err != nil {
		return key, 0, err
	}
	return key, created, nil
}

// respondOpenMonth maps the lifecycle outcome onto the HTTP contract.
func respondOpenMonth(c *gin.Context, key string, rows int, err error) {
	switch {
	case err == nil:
		c.JSON(201, gin.H{"message": "month opened", "month": key, "rows": rows})
	case errors.Is(err, ledger.ErrNoMembers):
		c.JSON(401, gin.H{"error": "no_members", "message": "add a member first"})
	case errors.Is(err, ledger.ErrDuplicateMonth):
		c.JSON(400, gin.H{"error": "duplicate_month", "message": "month " + key + " already exists"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(401, gin.H{"error": "mandal_not_found"})
	default:
		logrus.WithError(err).WithField("month", key).Error("open month failed")
		c.JSON(500, gin.H{"error": "internal_server_error"})
	}
}

// POST /month — open the next chronological month and seed its ledger rows
// by carrying the previous month's balances forward.
func (s *Server) openMonth(c *gin.Context) {
	p, _ := principalFrom(c)

	key, rows, err := openNextMonth(p.ID)
	respondOpenMonth(c, key, rows, err)
}

// GET /month — storage gives no order guarantee, so sort descending by key
// here.
func (s *Server) listMonths(c *gin.Context) {
	p, _ := principalFrom(c)

	var months []models.Month
	if err := database.DB.Where("mandal_id = ?", p.ID).Order("month desc").Find(&months).Error; err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(200, months)
}

// backfillMonth creates a ledger row for every sub-user that has none in the
// given month, carrying forward from that member's immediately preceding row
// when it exists. Existing rows are never touched, so the operation is
// idempotent and safe to re-run after a partial failure or when a member
// joins mid-lifecycle.
func backfillMonth(mandalID uint, month string) (int, error) {
	var subs []models.SubUser
	if err := database.DB.Where("mandal_id = ?", mandalID).Find(&subs).Error; err != nil {
		return 0, err
	}

	var existing []models.MemberData
	if err := database.DB.Where("mandal_id = ? AND month = ?", mandalID, month).Find(&existing).Error; err != nil {
		return 0, err
	}
	have := make(map[uint]struct{}, len(existing))
	for _, row := range existing {
		have[row.SubUserID] = struct{}{}
	}

	prevKey, err := ledger.PrevKey(month)
	if err != nil {
		return 0, err
	}

	var rows []models.MemberData
	for _, sub := range subs {
		if _, ok := have[sub.ID]; ok {
			continue
		}
		var prev models.MemberData
		err := database.DB.
			Where("mandal_id = ? AND sub_user_id = ? AND month = ?", mandalID, sub.ID, prevKey).
			First(&prev).Error
		switch {
		case err == nil:
			rows = append(rows, rowModel(mandalID, month, ledger.Carry(rowState(prev))))
		case errors.Is(err, gorm.ErrRecordNotFound):
			rows = append(rows, rowModel(mandalID, month, ledger.Row{SubUserID: sub.ID}))
		default:
			return 0, err
		}
	}

	if len(rows) == 0 {
		return 0, nil
	}
	if err := database.DB.Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}
