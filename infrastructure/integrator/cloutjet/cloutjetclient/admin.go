package cloutjetclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/pkg/errors"
)

const (
	pathLogin              = "/auth/login/admin"
	pathPendingAccounts    = "/admin/verifications/pending"
	pathReviewAccount      = "/admin/verification/%s/%s"
	pathEscrowTransactions = "/admin/escrow-transactions"
	pathConfirmEscrow      = "/admin/escrow-transactions/%s/confirm"
	pathInfluencers        = "/admin/influencers"
	pathReviewInfluencer   = "/admin/influencers/%s/%s"
	pathOrders             = "/orders"
	pathAssignOrder        = "/admin/orders/%s/assign"
	pathAdminStats         = "/admin/adminDashboard"
)

// ErrEmptyToken indica que o login respondeu sucesso sem token
var ErrEmptyToken = errors.New("cloutjet: login returned an empty token")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *CloutJetClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, pathLogin, "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}

	if resp.Token == "" {
		return "", ErrEmptyToken
	}

	return resp.Token, nil
}

func (c *CloutJetClient) ListPendingAccounts(ctx context.Context, token string) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0)
	if err := c.do(ctx, http.MethodGet, pathPendingAccounts, token, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *CloutJetClient) ReviewAccount(ctx context.Context, token, accountID string, action domain.ReviewAction) error {
	if !action.IsValid() {
		return fmt.Errorf("cloutjet: invalid review action %q", action)
	}
	path := fmt.Sprintf(pathReviewAccount, url.PathEscape(accountID), action)
	return c.do(ctx, http.MethodPost, path, token, struct{}{}, nil)
}

func (c *CloutJetClient) ListEscrowTransactions(ctx context.Context, token string) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, 0)
	if err := c.do(ctx, http.MethodGet, pathEscrowTransactions, token, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *CloutJetClient) ConfirmEscrowPayment(ctx context.Context, token, transactionID string) error {
	path := fmt.Sprintf(pathConfirmEscrow, url.PathEscape(transactionID))
	return c.do(ctx, http.MethodPost, path, token, struct{}{}, nil)
}

func (c *CloutJetClient) ListInfluencers(ctx context.Context, token string) ([]domain.Influencer, error) {
	influencers := make([]domain.Influencer, 0)
	if err := c.do(ctx, http.MethodGet, pathInfluencers, token, nil, &influencers); err != nil {
		return nil, err
	}
	return influencers, nil
}

func (c *CloutJetClient) ReviewInfluencer(ctx context.Context, token, influencerID string, action domain.ReviewAction) error {
	if !action.IsValid() {
		return fmt.Errorf("cloutjet: invalid review action %q", action)
	}
	path := fmt.Sprintf(pathReviewInfluencer, url.PathEscape(influencerID), action)
	return c.do(ctx, http.MethodPost, path, token, struct{}{}, nil)
}

func (c *CloutJetClient) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	orders := make([]domain.Order, 0)
	if err := c.do(ctx, http.MethodGet, pathOrders, token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *CloutJetClient) AssignOrder(ctx context.Context, token, orderID string, req domain.AssignOrderRequest) error {
	path := fmt.Sprintf(pathAssignOrder, url.PathEscape(orderID))
	return c.do(ctx, http.MethodPost, path, token, req, nil)
}

func (c *CloutJetClient) GetAdminStats(ctx context.Context, token string) (domain.AdminStatsUpdate, error) {
	var update domain.AdminStatsUpdate
	if err := c.do(ctx, http.MethodGet, pathAdminStats, token, nil, &update); err != nil {
		return domain.AdminStatsUpdate{}, err
	}
	return update, nil
}
