package domain

// Os status de transação são definidos pelo servidor; estes são apenas os conhecidos.
const (
	TransactionStatusPending         = "pending"
	TransactionStatusApproved        = "approved"
	TransactionStatusPaymentReceived = "payment_received"
	TransactionStatusCompleted       = "completed"
	TransactionStatusDispute         = "dispute"
	TransactionStatusDisputed        = "disputed"
	TransactionStatusRefunded        = "refunded"
)

// Transaction é uma transação de escrow entre comprador e vendedor
type Transaction struct {
	ID                 string  `json:"_id"`
	Buyer              Party   `json:"buyer"`
	Seller             Party   `json:"seller"`
	Amount             float64 `json:"amount"`
	ServiceDescription string  `json:"serviceDescription"`
	Status             string  `json:"status"`
	TransactionType    string  `json:"transactionType"`
	CreatedAt          string  `json:"createdAt"`
}

type EscrowAction string

const (
	EscrowConfirmPayment EscrowAction = "confirm_payment"
	EscrowReleaseFunds   EscrowAction = "release_funds"
	EscrowResolveDispute EscrowAction = "resolve_dispute"
)

// AvailableEscrowAction retorna a ação disponível para o status da transação
func AvailableEscrowAction(status string) (EscrowAction, bool) {
	switch status {
	case TransactionStatusApproved:
		return EscrowConfirmPayment, true
	case TransactionStatusCompleted:
		return EscrowReleaseFunds, true
	case TransactionStatusDispute:
		return EscrowResolveDispute, true
	default:
		return "", false
	}
}
