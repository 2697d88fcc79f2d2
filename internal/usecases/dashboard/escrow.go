package dashboard

import (
	"context"

	"github.com/cloutjet/admin-dashboard/internal/cache"
	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/cloutjet/admin-dashboard/internal/format"
	"github.com/cloutjet/admin-dashboard/internal/session"
	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
)

const (
	escrowIDTag           = "ESC"
	noTransactionsMessage = "No Transactions"
)

var escrowActionLabels = map[domain.EscrowAction]string{
	domain.EscrowConfirmPayment: "Confirm Payment",
	domain.EscrowReleaseFunds:   "Release Funds",
	domain.EscrowResolveDispute: "Resolve Dispute",
}

type TransactionRow struct {
	ID      string      `json:"id"`
	ShortID string      `json:"shortId"`
	Buyer   PersonCell  `json:"buyer"`
	Seller  PersonCell  `json:"seller"`
	Amount  string      `json:"amount"`
	Service string      `json:"service"`
	Type    string      `json:"type"`
	Status  StatusBadge `json:"status"`
	Created string      `json:"created"`
	Actions []RowAction `json:"actions"`
}

type EscrowStats struct {
	Pending         int `json:"pending"`
	PaymentReceived int `json:"paymentReceived"`
	Completed       int `json:"completed"`
	Disputes        int `json:"disputes"`
}

type EscrowView struct {
	Rows         []TransactionRow `json:"rows"`
	Stats        EscrowStats      `json:"stats"`
	EmptyMessage string           `json:"emptyMessage,omitempty"`
}

func (s *Service) Escrow(ctx context.Context, sess *session.Session) *EscrowView {
	if !hasSession(sess) {
		return s.escrowView(nil)
	}

	s.load(ctx, sess, cache.Transactions)
	return s.escrowView(sess.Store.Transactions())
}

func (s *Service) escrowView(transactions []domain.Transaction) *EscrowView {
	view := &EscrowView{Rows: make([]TransactionRow, 0, len(transactions))}

	for _, t := range transactions {
		switch t.Status {
		case domain.TransactionStatusPending:
			view.Stats.Pending++
		case domain.TransactionStatusApproved, domain.TransactionStatusPaymentReceived:
			view.Stats.PaymentReceived++
		case domain.TransactionStatusCompleted:
			view.Stats.Completed++
		case domain.TransactionStatusDispute, domain.TransactionStatusDisputed:
			view.Stats.Disputes++
		}

		view.Rows = append(view.Rows, s.transactionRow(t))
	}

	if len(view.Rows) == 0 {
		view.EmptyMessage = noTransactionsMessage
	}

	return view
}

func (s *Service) transactionRow(t domain.Transaction) TransactionRow {
	row := TransactionRow{
		ID:      t.ID,
		ShortID: format.ShortenID(escrowIDTag, t.ID),
		Buyer:   person(t.Buyer),
		Seller:  person(t.Seller),
		Amount:  s.format.Currency(t.Amount),
		Service: t.ServiceDescription,
		Type:    format.HumanizeStatus(t.TransactionType),
		Status:  badge(format.KindTransaction, t.Status),
		Created: s.format.Date(t.CreatedAt),
		Actions: []RowAction{},
	}

	if action, ok := domain.AvailableEscrowAction(t.Status); ok {
		row.Actions = append(row.Actions, RowAction{
			Action:     string(action),
			Label:      escrowActionLabels[action],
			Executable: action == domain.EscrowConfirmPayment,
		})
	}

	return row
}

// RunEscrowAction executa a ação da linha. Só a confirmação de pagamento
// existe na API remota.
func (s *Service) RunEscrowAction(ctx context.Context, sess *session.Session, transactionID string, action domain.EscrowAction, notes string) error {
	m := mutation{
		action:     string(action),
		verb:       "confirm",
		noun:       "payment",
		entity:     "transaction",
		entityID:   transactionID,
		notes:      notes,
		collection: cache.Transactions,
		call: func(ctx context.Context, token string) error {
			return s.client.ConfirmEscrowPayment(ctx, token, transactionID)
		},
	}

	if transactionID == "" {
		return invalidAction(m, "transaction id is required")
	}

	switch action {
	case domain.EscrowConfirmPayment:
		return s.mutate(ctx, sess, m)
	case domain.EscrowReleaseFunds, domain.EscrowResolveDispute:
		return NewActionError(ErrActionNotAvailable, apiErrors.ErrInvalidRequest, m,
			escrowActionLabels[action]+" is not available yet")
	default:
		return invalidAction(m, "unknown escrow action")
	}
}
