package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"commission-app/database"
	"commission-app/database/dbtest"
	"commission-app/internal/domain/billing"
	"commission-app/internal/domain/commissions"
	"commission-app/internal/domain/users"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func process(db *gorm.DB, paymentID string, payerID uint) (*billing.Payment, commissions.Effects, error) {
	var (
		p  *billing.Payment
		fx commissions.Effects
	)
	err := database.WithRetry(context.Background(), db, database.DefaultTxOptions(), func(tx *gorm.DB) error {
		var err error
		p, fx, err = billing.Process(tx, paymentID, payerID, time.Now())
		return err
	})
	return p, fx, err
}

func reload(t *testing.T, db *gorm.DB, paymentID, commissionID string) (billing.Payment, commissions.Commission) {
	t.Helper()
	var (
		p billing.Payment
		c commissions.Commission
	)
	if err := db.First(&p, "id = ?", paymentID).Error; err != nil {
		t.Fatalf("reload payment: %v", err)
	}
	if err := db.First(&c, "id = ?", commissionID).Error; err != nil {
		t.Fatalf("reload commission: %v", err)
	}
	return p, c
}

func TestProcess(t *testing.T) {
	db, cleanup := dbtest.Setup(t)
	defer cleanup()

	client := dbtest.User(t, db, "payer", users.RoleClient)
	artist := dbtest.Artist(t, db, "payee")

	newPayment := func(t *testing.T, status commissions.Status) (commissions.Commission, *billing.Payment) {
		t.Helper()
		c := dbtest.Commission(t, db, client.ID, artist.ID, status)
		p, err := billing.NewPayment(c.ID, client.ID, artist.UserID, decimal.RequireFromString("100.00"), "USD", billing.TypeCommission)
		if err != nil {
			t.Fatal(err)
		}
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("create payment: %v", err)
		}
		return c, p
	}

	t.Run("settles payment and starts accepted commission", func(t *testing.T) {
		c, p := newPayment(t, commissions.StatusAccepted)

		got, fx, err := process(db, p.ID, client.ID)
		if err != nil {
			t.Fatalf("process: %v", err)
		}
		if got.Status != billing.PaymentCompleted || got.PaidAt == nil {
			t.Fatalf("payment = %+v", got)
		}
		if !fx.StartedWork || fx.To != commissions.StatusInProgress {
			t.Fatalf("effects = %+v", fx)
		}

		var stored commissions.Commission
		if err := db.First(&stored, "id = ?", c.ID).Error; err != nil {
			t.Fatal(err)
		}
		if stored.Status != commissions.StatusInProgress || stored.StartedAt == nil {
			t.Fatalf("commission = %s started=%v", stored.Status, stored.StartedAt)
		}

		var fresh billing.Payment
		if err := db.First(&fresh, "id = ?", p.ID).Error; err != nil {
			t.Fatal(err)
		}
		if !fresh.PlatformFee.Equal(decimal.RequireFromString("5")) || !fresh.NetAmount.Equal(decimal.RequireFromString("95")) {
			t.Fatalf("fee=%s net=%s", fresh.PlatformFee, fresh.NetAmount)
		}
	})

	t.Run("second processing fails and changes nothing", func(t *testing.T) {
		c, p := newPayment(t, commissions.StatusAccepted)

		if _, _, err := process(db, p.ID, client.ID); err != nil {
			t.Fatal(err)
		}
		payBefore, comBefore := reload(t, db, p.ID, c.ID)

		if _, _, err := process(db, p.ID, client.ID); !errors.Is(err, billing.ErrPaymentNotPending) {
			t.Fatalf("err = %v", err)
		}

		payAfter, comAfter := reload(t, db, p.ID, c.ID)
		if payAfter.Status != billing.PaymentCompleted || payAfter.PaidAt == nil || !payAfter.PaidAt.Equal(*payBefore.PaidAt) {
			t.Fatalf("payment changed: before paid_at=%v, after status=%s paid_at=%v", payBefore.PaidAt, payAfter.Status, payAfter.PaidAt)
		}
		if comAfter.Status != comBefore.Status || !comAfter.StartedAt.Equal(*comBefore.StartedAt) || !comAfter.UpdatedAt.Equal(comBefore.UpdatedAt) {
			t.Fatalf("commission changed: before %s/%v, after %s/%v", comBefore.Status, comBefore.StartedAt, comAfter.Status, comAfter.StartedAt)
		}
	})

	t.Run("only the payer may process", func(t *testing.T) {
		c, p := newPayment(t, commissions.StatusAccepted)

		if _, _, err := process(db, p.ID, artist.UserID); !errors.Is(err, billing.ErrNotFound) {
			t.Fatalf("err = %v", err)
		}
		if _, _, err := process(db, "nope", client.ID); !errors.Is(err, billing.ErrNotFound) {
			t.Fatalf("bad id err = %v", err)
		}

		pay, com := reload(t, db, p.ID, c.ID)
		if pay.Status != billing.PaymentPending || pay.PaidAt != nil {
			t.Fatalf("payment = %s paid_at=%v", pay.Status, pay.PaidAt)
		}
		if com.Status != commissions.StatusAccepted || com.StartedAt != nil {
			t.Fatalf("commission = %s started=%v", com.Status, com.StartedAt)
		}
	})

	t.Run("other statuses are left alone", func(t *testing.T) {
		c, p := newPayment(t, commissions.StatusPending)

		_, fx, err := process(db, p.ID, client.ID)
		if err != nil {
			t.Fatal(err)
		}
		if fx.Changed() {
			t.Fatalf("effects = %+v", fx)
		}
		var stored commissions.Commission
		if err := db.First(&stored, "id = ?", c.ID).Error; err != nil {
			t.Fatal(err)
		}
		if stored.Status != commissions.StatusPending {
			t.Fatalf("status = %s", stored.Status)
		}
	})
}
