package billing

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"commission-app/config"
	"commission-app/database"
	"commission-app/internal/api/pagination"
	"commission-app/internal/domain/access"
	"commission-app/internal/domain/billing"
	"commission-app/internal/domain/commissions"
	"commission-app/internal/domain/notifications"
	"commission-app/internal/infra/notify"
	"commission-app/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// visiblePayments limits q to payments the principal sent or received.
// Admins see everything.
func visiblePayments(q *gorm.DB, p access.Principal) *gorm.DB {
	if access.IsAdmin(p) {
		return q
	}
	return q.Where("(payments.payer_id = ? OR payments.payee_id = ?)", p.UserID(), p.UserID())
}

// POST /payments records a pending payment from the commission's client to
// its artist.
func CreatePayment(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var in CreatePaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	currency, ok := stripe.NormalizeCurrency(in.Currency, config.DEFAULT_CURRENCY)
	if !ok {
		respondError(c, errBadCurrency)
		return
	}
	typ := billing.PaymentType(in.PaymentType)
	if typ != "" && !typ.Valid() {
		respondError(c, errBadPaymentType)
		return
	}

	var pay *billing.Payment
	err := database.Tx(c.Request.Context(), func(tx *gorm.DB) error {
		cm, err := commissions.LoadForPrincipal(tx.Preload("Artist"), in.CommissionID, p, commissions.AudienceReviewer, false)
		if err != nil {
			if errors.Is(err, commissions.ErrNotFound) {
				return errNoPaymentTarget
			}
			return err
		}

		if pay, err = billing.NewPayment(cm.ID, p.UserID(), cm.Artist.UserID, in.Amount, currency, typ); err != nil {
			return err
		}
		pay.Notes = in.Notes

		if in.PaymentMethodID != nil {
			var n int64
			if err := tx.Model(&billing.PaymentMethod{}).
				Where("id = ? AND user_id = ? AND is_active = ?", *in.PaymentMethodID, p.UserID(), true).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return errBadMethod
			}
			pay.PaymentMethodID = in.PaymentMethodID
		}

		return tx.Create(pay).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	fmt.Printf("💳 Payment %s created for commission %s (%s %s)\n", pay.ID, pay.CommissionID, pay.Amount, pay.Currency)
	c.JSON(http.StatusCreated, pay)
}

// GET /payments
func ListPayments(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	q := database.DB.Model(&billing.Payment{})
	switch c.Query("direction") {
	case "sent":
		q = q.Where("payments.payer_id = ?", p.UserID())
	case "received":
		q = q.Where("payments.payee_id = ?", p.UserID())
	default:
		q = q.Where("(payments.payer_id = ? OR payments.payee_id = ?)", p.UserID(), p.UserID())
	}
	q = applyPaymentFilters(c, q)

	var list []billing.Payment
	page, err := pagination.Paginate(c, q, &list, func(db *gorm.DB) *gorm.DB {
		return db.Order("payments.created_at DESC")
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /payments/:id
func GetPayment(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, billing.ErrNotFound)
		return
	}

	var pay billing.Payment
	if err := visiblePayments(database.DB.Model(&billing.Payment{}), p).
		Where("payments.id = ?", id).
		First(&pay).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = billing.ErrNotFound
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pay)
}

// POST /payments/:id/process settles a pending payment. Only the payer may
// process it.
func ProcessPayment(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var (
		pay *billing.Payment
		fx  commissions.Effects
	)
	err := database.Tx(c.Request.Context(), func(tx *gorm.DB) error {
		var err error
		pay, fx, err = billing.Process(tx, c.Param("id"), p.UserID(), time.Now())
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	sent, received := notifications.NewPaymentProcessed(pay.PayerID, pay.PayeeID, pay.ID, pay.Amount.StringFixed(2), string(pay.Currency))
	notify.Send(sent, received)
	if fx.Changed() {
		var cm commissions.Commission
		if err := database.DB.First(&cm, "id = ?", pay.CommissionID).Error; err == nil {
			notify.Send(notifications.NewStatusChange(pay.PayeeID, cm.ID, cm.Title, string(fx.To)))
		}
	}

	fmt.Printf("✅ Payment %s processed\n", pay.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment processed successfully",
		"payment": pay,
	})
}

// applyPaymentFilters handles ?status= ?payment_type= ?commission=.
func applyPaymentFilters(c *gin.Context, q *gorm.DB) *gorm.DB {
	if s := c.Query("status"); s != "" {
		q = q.Where("payments.status = ?", s)
	}
	if t := c.Query("payment_type"); t != "" {
		q = q.Where("payments.type = ?", t)
	}
	if cm := c.Query("commission"); cm != "" {
		if _, err := uuid.Parse(cm); err == nil {
			q = q.Where("payments.commission_id = ?", cm)
		}
	}
	return q
}

// GET /admin/payments
func AdminListPayments(c *gin.Context) {
	q := applyPaymentFilters(c, database.DB.Model(&billing.Payment{}))
	if u := c.Query("user"); u != "" {
		q = q.Where("(payments.payer_id = ? OR payments.payee_id = ?)", u, u)
	}

	var list []billing.Payment
	page, err := pagination.Paginate(c, q, &list, func(db *gorm.DB) *gorm.DB {
		return db.Order("payments.created_at DESC")
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
