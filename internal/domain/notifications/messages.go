package notifications

import (
	"fmt"

	"gorm.io/datatypes"
)

func commissionLink(id string) *string {
	link := "/commissions/" + id
	return &link
}

func NewCommissionRequest(artistUserID uint, commissionID, title, clientName string) Notification {
	return Notification{
		UserID:  artistUserID,
		Type:    CommissionRequest,
		Title:   "New commission request",
		Message: fmt.Sprintf("%s requested \"%s\".", clientName, title),
		Link:    commissionLink(commissionID),
		Data:    datatypes.JSONMap{"commission_id": commissionID},
	}
}

// NewStatusChange tells the other party of a commission about its new status.
func NewStatusChange(userID uint, commissionID, title, status string) Notification {
	typ := CommissionUpdate
	switch status {
	case "accepted":
		typ = CommissionAccepted
	case "rejected":
		typ = CommissionRejected
	case "completed":
		typ = CommissionCompleted
	}
	return Notification{
		UserID:  userID,
		Type:    typ,
		Title:   "Commission status updated",
		Message: fmt.Sprintf("\"%s\" is now %s.", title, status),
		Link:    commissionLink(commissionID),
		Data:    datatypes.JSONMap{"commission_id": commissionID, "status": status},
	}
}

func NewRevisionSubmitted(clientID uint, commissionID, title string, number int) Notification {
	return Notification{
		UserID:  clientID,
		Type:    RevisionSubmitted,
		Title:   "New revision",
		Message: fmt.Sprintf("Revision %d of \"%s\" is ready for review.", number, title),
		Link:    commissionLink(commissionID),
		Data:    datatypes.JSONMap{"commission_id": commissionID, "revision_number": number},
	}
}

func NewReviewReceived(artistUserID uint, commissionID, title string, rating int) Notification {
	return Notification{
		UserID:  artistUserID,
		Type:    ReviewReceived,
		Title:   "New review",
		Message: fmt.Sprintf("\"%s\" was rated %d/5.", title, rating),
		Link:    commissionLink(commissionID),
		Data:    datatypes.JSONMap{"commission_id": commissionID, "rating": rating},
	}
}

// NewPaymentProcessed returns the payer's and the payee's notification.
func NewPaymentProcessed(payerID, payeeID uint, paymentID, amount, currency string) (Notification, Notification) {
	data := datatypes.JSONMap{"payment_id": paymentID, "amount": amount, "currency": currency}
	sent := Notification{
		UserID:  payerID,
		Type:    PaymentSent,
		Title:   "Payment sent",
		Message: fmt.Sprintf("Your payment of %s %s was processed.", amount, currency),
		Data:    data,
	}
	received := Notification{
		UserID:  payeeID,
		Type:    PaymentReceived,
		Title:   "Payment received",
		Message: fmt.Sprintf("You received a payment of %s %s.", amount, currency),
		Data:    data,
	}
	return sent, received
}
