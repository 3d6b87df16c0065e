package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mandal-ledger-go/internal/database"
	"mandal-ledger-go/internal/ledger"
	"mandal-ledger-go/internal/models"
	"mandal-ledger-go/internal/reports"
)

func fetchRows(mandalID uint, month string) ([]models.MemberData, error) {
	query := database.DB.Where("mandal_id = ?", mandalID)
	if month != "" {
		query = query.Where("month = ?", month)
	}
	var rows []models.MemberData
	err := query.Find(&rows).Error
	return rows, err
}

func toLedgerRows(rows []models.MemberData) []ledger.Row {
	out := make([]ledger.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowState(r))
	}
	return out
}

// GET /summary?month=YYYY-MM — omit month for the all-months summary.
func (s *Server) getSummary(c *gin.Context) {
	p, _ := principalFrom(c)

	month := c.Query("month")
	if month != "" && !ledger.ValidKey(month) {
		c.JSON(400, gin.H{"error": "invalid_month", "message": "expected YYYY-MM"})
		return
	}

	rows, err := fetchRows(p.ID, month)
	if err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(200, ledger.Summarize(toLedgerRows(rows)))
}

// GET /analytics/collection — how much of the theoretically collectable
// installment money actually came in over the mandal's lifetime.
func (s *Server) getCollectionRate(c *gin.Context) {
	p, _ := principalFrom(c)

	var mandal models.Mandal
	if err := database.DB.First(&mandal, p.ID).Error; err != nil {
		c.JSON(401, gin.H{"error": "mandal_not_found"})
		return
	}

	var memberCount, monthCount int64
	if err := database.DB.Model(&models.SubUser{}).Where("mandal_id = ?", p.ID).Count(&memberCount).Error; err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	if err := database.DB.Model(&models.Month{}).Where("mandal_id = ?", p.ID).Count(&monthCount).Error; err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}

	rows, err := fetchRows(p.ID, "")
	if err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}

	var actual float64
	for _, r := range rows {
		actual += r.PaidInstallment
	}

	possible := float64(memberCount) * float64(monthCount) * mandal.Hapto
	raw := ledger.CollectionRate(actual, int(memberCount), int(monthCount), mandal.Hapto)

	c.JSON(200, gin.H{
		"members":               memberCount,
		"months":                monthCount,
		"hapto":                 mandal.Hapto,
		"possibleInstallments":  possible,
		"actualInstallments":    actual,
		"collectionPercentage":  raw,
		"collectionDisplayPct":  ledger.ClampPercent(raw),
	})
}

// memberLines builds the report table from the latest month's rows. The
// installment column shows the display value — carried prior installment plus
// the current one — never the raw stored figure; a member with no prior row
// carries zero.
func memberLines(latest []models.MemberData, prevInstallments map[uint]float64) []reports.MemberLine {
	lines := make([]reports.MemberLine, 0, len(latest))
	for _, row := range latest {
		lines = append(lines, reports.MemberLine{
			Name:        row.SubUser.Name,
			Phone:       row.SubUser.PhoneNumber,
			Installment: ledger.DisplayInstallment(prevInstallments[row.SubUserID], row.Installment),
			Pending:     row.PendingInstallment,
			Withdrawal:  row.Withdrawal,
			Amount:      row.Amount,
		})
	}
	return lines
}

// GET /reports/annual.pdf
func (s *Server) annualReportPDF(c *gin.Context) {
	p, _ := principalFrom(c)

	var mandal models.Mandal
	if err := database.DB.First(&mandal, p.ID).Error; err != nil {
		c.JSON(401, gin.H{"error": "mandal_not_found"})
		return
	}

	var months []models.Month
	if err := database.DB.Where("mandal_id = ?", p.ID).Order("month desc").Find(&months).Error; err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	if len(months) == 0 {
		c.JSON(404, gin.H{"error": "no_months"})
		return
	}
	latest := months[0].Month

	rows, err := fetchRows(p.ID, "")
	if err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	sum := ledger.Summarize(toLedgerRows(rows))

	var latestRows []models.MemberData
	err = database.DB.Preload("SubUser").
		Where("mandal_id = ? AND month = ?", p.ID, latest).
		Find(&latestRows).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}

	// Prior-month installments feed the display value in the member table.
	prevInstallments := map[uint]float64{}
	if prevKey, err := ledger.PrevKey(latest); err == nil {
		var prevRows []models.MemberData
		if err := database.DB.Where("mandal_id = ? AND month = ?", p.ID, prevKey).Find(&prevRows).Error; err != nil {
			c.JSON(500, gin.H{"error": "internal_server_error"})
			return
		}
		for _, row := range prevRows {
			prevInstallments[row.SubUserID] = row.Installment
		}
	}

	report := reports.AnnualReport{
		MandalName:    mandal.Name,
		LocalName:     mandal.LocalName,
		EstablishedOn: mandal.EstablishedOn,
		Hapto:         mandal.Hapto,
		LatestMonth:   latest,
		MonthCount:    len(months),
		Summary:       sum,
		Members:       memberLines(latestRows, prevInstallments),
	}

	pdf, err := reports.BuildAnnualPDF(&report)
	if err != nil {
		logrus.WithError(err).Error("annual pdf build failed")
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="annual-report-`+latest+`.pdf"`)
	c.Data(200, "application/pdf", pdf)
}
