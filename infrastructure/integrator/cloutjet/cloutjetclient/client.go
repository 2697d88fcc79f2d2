package cloutjetclient

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

import (
	"context"
	"net/http"
	"strings"

	"github.com/cloutjet/admin-dashboard/internal/config"
	"github.com/cloutjet/admin-dashboard/internal/domain"
)

// Client é o contrato com a API remota do Clout Jet. Toda regra de negócio
// (verificação, escrow, atribuição) fica do lado do servidor.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	ListPendingAccounts(ctx context.Context, token string) ([]domain.Account, error)
	ReviewAccount(ctx context.Context, token, accountID string, action domain.ReviewAction) error
	ListEscrowTransactions(ctx context.Context, token string) ([]domain.Transaction, error)
	ConfirmEscrowPayment(ctx context.Context, token, transactionID string) error
	ListInfluencers(ctx context.Context, token string) ([]domain.Influencer, error)
	ReviewInfluencer(ctx context.Context, token, influencerID string, action domain.ReviewAction) error
	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
	AssignOrder(ctx context.Context, token, orderID string, req domain.AssignOrderRequest) error
	GetAdminStats(ctx context.Context, token string) (domain.AdminStatsUpdate, error)
}

type CloutJetClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) Client {
	return &CloutJetClient{
		httpClient: &http.Client{
			// Zero desliga o timeout
			Timeout: cfg.CloutJet.Timeout,
		},
		baseURL: strings.TrimRight(cfg.CloutJet.URL, "/"),
	}
}
