package dashboard

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/cloutjet/admin-dashboard/infrastructure/integrator/cloutjet/cloutjetclient"
	"github.com/cloutjet/admin-dashboard/infrastructure/integrator/cloutjet/mocks"
	repoMocks "github.com/cloutjet/admin-dashboard/infrastructure/repository/mocks"
	"github.com/cloutjet/admin-dashboard/internal/cache"
	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/cloutjet/admin-dashboard/internal/format"
	"github.com/cloutjet/admin-dashboard/internal/session"
	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	formatter := format.New(time.UTC, "")
	formatter.Now = func() time.Time { return testNow }

	return NewService(client, formatter, nil).(*Service), client
}

func newTestSession(t *testing.T) *session.Session {
	sess, err := session.NewManager(time.Hour).Create("admin@cloutjet.io", "upstream-token")
	require.NoError(t, err)
	return &sess
}

func intPtr(v int) *int { return &v }

func sampleAccounts() []domain.Account {
	return []domain.Account{
		{
			ID:              "acc-0001",
			User:            domain.Party{FullName: "Ada Obi", Email: "ada@example.com"},
			Platform:        "Instagram",
			AccountUsername: "@ada",
			FollowersCount:  1_250_000,
			PreferredPrice:  12000,
			TwoFAEnabled:    true,
			TwoFAMethod:     "authenticator_app",
			Status:          domain.AccountStatusPending,
			CreatedAt:       "2024-01-10T09:00:00Z",
		},
		{
			ID:             "acc-0002",
			User:           domain.Party{FullName: "Chidi Eze"},
			Platform:       "TikTok",
			FollowersCount: 999,
			PreferredPrice: 8000,
			Status:         domain.AccountStatusPending,
			CreatedAt:      "2024-01-11T09:00:00Z",
		},
		{
			ID:             "acc-0003",
			Platform:       "YouTube",
			FollowersCount: 1000,
			PreferredPrice: 5000,
			Status:         domain.AccountStatusApproved,
			CreatedAt:      "2024-01-12T09:00:00Z",
			UpdatedAt:      "2024-01-15T10:00:00Z",
		},
	}
}

func TestService_AccountsApproveAndRefetch(t *testing.T) {
	svc, client := newTestService(t)
	sess := newTestSession(t)
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().ListPendingAccounts(gomock.Any(), "upstream-token").Return(sampleAccounts(), nil),
		client.EXPECT().ReviewAccount(gomock.Any(), "upstream-token", "acc-0001", domain.ReviewApprove).Return(nil),
		client.EXPECT().ListPendingAccounts(gomock.Any(), "upstream-token").Return(sampleAccounts()[1:], nil),
	)

	view := svc.Accounts(ctx, sess)
	require.Len(t, view.Rows, 3)
	assert.Equal(t, 2, view.Stats.PendingReviews)
	assert.Equal(t, 1, view.Stats.ApprovedToday)
	assert.Equal(t, "₦25,000", view.Stats.TotalValue)
	assert.Empty(t, view.EmptyMessage)

	first := view.Rows[0]
	assert.Equal(t, "1.3M", first.Followers)
	assert.Equal(t, "₦12,000", first.Price)
	assert.Equal(t, "10-01-2024", first.Submitted)
	assert.Equal(t, "Enabled (Authenticator App)", first.TwoFA)
	assert.Equal(t, "AO", first.Seller.Initials)
	assert.Equal(t, format.TierWarning, first.Status.Tier)
	assert.Len(t, first.Actions, 2)
	assert.Empty(t, view.Rows[2].Actions)

	// segunda visita com cache fresco não busca
	assert.Len(t, svc.Accounts(ctx, sess).Rows, 3)

	require.NoError(t, svc.ReviewAccount(ctx, sess, "acc-0001", domain.ReviewApprove, "looks legit"))
	assert.False(t, sess.Store.IsFresh(cache.Accounts))
	assert.False(t, sess.Store.IsFresh(cache.AdminStats))

	view = svc.Accounts(ctx, sess)
	assert.Len(t, view.Rows, 2)
	assert.True(t, sess.Store.IsFresh(cache.Accounts))
}

func TestService_FailedFetchResetsAndRetries(t *testing.T) {
	svc, client := newTestService(t)
	sess := newTestSession(t)
	ctx := context.Background()

	sess.Store.ReplaceOrders([]domain.Order{{ID: "stale"}})
	sess.Store.Invalidate(cache.Orders)

	gomock.InOrder(
		client.EXPECT().ListOrders(gomock.Any(), "upstream-token").
			Return(nil, &cloutjetclient.TransportError{Path: "/orders", Err: errors.New("connection refused")}),
		client.EXPECT().ListOrders(gomock.Any(), "upstream-token").
			Return([]domain.Order{{ID: "ord-1234", Status: domain.OrderStatusUnassigned, Budget: domain.NewFigure(5000)}}, nil),
	)

	view := svc.Orders(ctx, sess)
	assert.Empty(t, view.Rows)
	assert.Equal(t, "No Orders", view.EmptyMessage)
	assert.False(t, sess.Store.IsFresh(cache.Orders))
	assert.Empty(t, sess.Store.Orders())

	view = svc.Orders(ctx, sess)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "ORD-1234", view.Rows[0].ShortID)
	assert.Equal(t, "Unassigned", view.Rows[0].Influencer)
	assert.Equal(t, 1, view.Stats.Unassigned)
	assert.Equal(t, "₦5,000", view.Stats.TotalValue)
}

func TestService_FailedMutation(t *testing.T) {
	t.Run("mensagem genérica quando o servidor não envia", func(t *testing.T) {
		svc, client := newTestService(t)
		sess := newTestSession(t)
		sess.Store.ReplaceAccounts(sampleAccounts())

		client.EXPECT().
			ReviewAccount(gomock.Any(), "upstream-token", "acc-0001", domain.ReviewApprove).
			Return(&cloutjetclient.APIError{StatusCode: http.StatusBadGateway, Path: "/admin/verification/acc-0001/approve"})

		err := svc.ReviewAccount(context.Background(), sess, "acc-0001", domain.ReviewApprove, "")

		var actionErr *ActionError
		require.ErrorAs(t, err, &actionErr)
		assert.Equal(t, "unable to approve account", actionErr.Message)
		assert.Equal(t, apiErrors.ErrExternalService, actionErr.Code)
		assert.True(t, sess.Store.IsFresh(cache.Accounts))
		assert.Len(t, sess.Store.Accounts(), 3)
	})

	t.Run("usa a mensagem do servidor", func(t *testing.T) {
		svc, client := newTestService(t)
		sess := newTestSession(t)

		client.EXPECT().
			ReviewInfluencer(gomock.Any(), "upstream-token", "inf-1", domain.ReviewReject).
			Return(&cloutjetclient.APIError{StatusCode: http.StatusConflict, Message: "Influencer already reviewed"})

		err := svc.ReviewInfluencer(context.Background(), sess, "inf-1", domain.ReviewReject, "")

		var actionErr *ActionError
		require.ErrorAs(t, err, &actionErr)
		assert.Equal(t, "Influencer already reviewed", actionErr.Message)
		assert.Equal(t, apiErrors.ErrActionRejected, actionErr.Code)
		assert.ErrorIs(t, err, ErrActionRejected)
	})

	t.Run("falha de transporte", func(t *testing.T) {
		svc, client := newTestService(t)
		sess := newTestSession(t)

		client.EXPECT().
			ConfirmEscrowPayment(gomock.Any(), "upstream-token", "tx-1").
			Return(&cloutjetclient.TransportError{Path: "/admin/escrow-transactions/tx-1/confirm", Err: errors.New("timeout")})

		err := svc.RunEscrowAction(context.Background(), sess, "tx-1", domain.EscrowConfirmPayment, "")

		var actionErr *ActionError
		require.ErrorAs(t, err, &actionErr)
		assert.Equal(t, "unable to confirm payment", actionErr.Message)
		assert.Equal(t, apiErrors.ErrCommunication, actionErr.Code)
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	})
}

func TestService_WithoutSession(t *testing.T) {
	// o mock não tem expectativas: qualquer chamada falha o teste
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.Equal(t, "No Account Pending", svc.Accounts(ctx, nil).EmptyMessage)
	assert.Equal(t, "No Transactions", svc.Escrow(ctx, nil).EmptyMessage)
	assert.Equal(t, "No Influencers", svc.Influencers(ctx, nil).EmptyMessage)
	assert.Equal(t, "No Orders", svc.Orders(ctx, &session.Session{}).EmptyMessage)
	assert.Empty(t, svc.AssignableInfluencers(ctx, nil))

	_, err := svc.Overview(ctx, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	err = svc.ReviewAccount(ctx, nil, "acc-1", domain.ReviewApprove, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_Overview(t *testing.T) {
	svc, client := newTestService(t)
	sess := newTestSession(t)

	client.EXPECT().GetAdminStats(gomock.Any(), "upstream-token").Return(domain.AdminStatsUpdate{
		PendingAccountsCount: intPtr(4),
		RecentNotifications: &[]domain.Notification{
			{Title: "New account", Message: "Ada submitted @ada", CreatedAt: "2024-01-15T11:55:00Z"},
		},
	}, nil)

	view, err := svc.Overview(context.Background(), sess)
	require.NoError(t, err)

	require.Len(t, view.Stats, 4)
	assert.Equal(t, "Pending Accounts", view.Stats[0].Name)
	assert.Equal(t, 4, view.Stats[0].Value)
	assert.Equal(t, 0, view.Stats[3].Value)
	require.Len(t, view.RecentActivity, 1)
	assert.Equal(t, "5 minutes ago", view.RecentActivity[0].When)
	assert.Empty(t, view.EmptyMessage)
}

func TestService_Escrow(t *testing.T) {
	svc, client := newTestService(t)
	sess := newTestSession(t)
	ctx := context.Background()

	client.EXPECT().ListEscrowTransactions(gomock.Any(), "upstream-token").Return([]domain.Transaction{
		{ID: "65f0a1b2", Status: domain.TransactionStatusApproved, Amount: 15000, Buyer: domain.Party{FullName: "Bola Ade"}},
		{ID: "tx2", Status: domain.TransactionStatusCompleted},
		{ID: "tx3", Status: domain.TransactionStatusDispute},
		{ID: "tx4", Status: domain.TransactionStatusDisputed},
		{ID: "tx5", Status: domain.TransactionStatusPending},
	}, nil)

	view := svc.Escrow(ctx, sess)
	require.Len(t, view.Rows, 5)
	assert.Equal(t, EscrowStats{Pending: 1, PaymentReceived: 1, Completed: 1, Disputes: 2}, view.Stats)

	first := view.Rows[0]
	assert.Equal(t, "ESC-A1B2", first.ShortID)
	assert.Equal(t, "₦15,000", first.Amount)
	assert.Equal(t, "check", first.Status.Icon)
	require.Len(t, first.Actions, 1)
	assert.Equal(t, "confirm_payment", first.Actions[0].Action)
	assert.True(t, first.Actions[0].Executable)
	assert.False(t, view.Rows[1].Actions[0].Executable)
	assert.Empty(t, view.Rows[3].Actions)

	err := svc.RunEscrowAction(ctx, sess, "tx2", domain.EscrowReleaseFunds, "")
	assert.ErrorIs(t, err, ErrActionNotAvailable)
	assert.True(t, IsValidationError(err))
	assert.True(t, sess.Store.IsFresh(cache.Transactions))

	client.EXPECT().ConfirmEscrowPayment(gomock.Any(), "upstream-token", "65f0a1b2").Return(nil)
	require.NoError(t, svc.RunEscrowAction(ctx, sess, "65f0a1b2", domain.EscrowConfirmPayment, ""))
	assert.False(t, sess.Store.IsFresh(cache.Transactions))
}

func TestService_Influencers(t *testing.T) {
	svc, client := newTestService(t)
	sess := newTestSession(t)
	ctx := context.Background()

	client.EXPECT().ListInfluencers(gomock.Any(), "upstream-token").Return([]domain.Influencer{
		{
			ID:     "inf-1",
			Name:   "Sarah Johnson",
			Status: domain.InfluencerStatusApproved,
			Platforms: []domain.PlatformProfile{
				{Name: "Instagram", Followers: domain.Figure{Raw: "85K", Value: 85_000}, Engagement: domain.Figure{Raw: "4.2%", Value: 4.2}},
				{Name: "TikTok", Followers: domain.NewFigure(120_000), Engagement: domain.Figure{Raw: "5.4%", Value: 5.4}},
			},
			Rates: map[string]domain.Figure{"story": {Raw: "$200", Value: 200}, "post": {Raw: "$500", Value: 500}},
		},
		{
			ID:        "inf-2",
			Name:      "Mike Chen",
			Status:    domain.InfluencerStatusPending,
			Platforms: []domain.PlatformProfile{{Name: "YouTube", Followers: domain.NewFigure(1_000_000)}},
		},
	}, nil)

	view := svc.Influencers(ctx, sess)
	require.Len(t, view.Rows, 2)
	assert.Equal(t, 1, view.Stats.Pending)
	assert.Equal(t, 1, view.Stats.Approved)
	assert.Equal(t, "205.0K", view.Stats.TotalReach)
	assert.Equal(t, "4.8%", view.Stats.AverageEngagement)

	sarah := view.Rows[0]
	assert.Equal(t, "SJ", sarah.Initials)
	assert.Equal(t, "instagram", sarah.Platforms[0].Icon)
	assert.Equal(t, []RateCell{{Type: "Post", Amount: "$500"}, {Type: "Story", Amount: "$200"}}, sarah.Rates)
	assert.Empty(t, sarah.Actions)
	assert.Len(t, view.Rows[1].Actions, 2)

	options := svc.AssignableInfluencers(ctx, sess)
	require.Len(t, options, 1)
	assert.Equal(t, InfluencerOption{ID: "inf-1", Name: "Sarah Johnson", Followers: "205.0K"}, options[0])
}

func TestService_OrdersStats(t *testing.T) {
	svc, client := newTestService(t)
	sess := newTestSession(t)

	orders := []domain.Order{
		{ID: "ord-0001", Status: domain.OrderStatusUnassigned, Budget: domain.NewFigure(1000)},
		{ID: "ord-0002", Status: domain.OrderStatusAssigned, Budget: domain.NewFigure(2000),
			AssignedInfluencer: &domain.InfluencerRef{ID: "inf-1", Name: "Sarah Johnson"}},
		{ID: "ord-0003", Status: domain.OrderStatusInProgress, Budget: domain.NewFigure(3000)},
		{ID: "ord-0004", Status: domain.OrderStatusCompleted, Budget: domain.NewFigure(4000)},
		{ID: "ord-0005", Status: domain.OrderStatusCompleted, Budget: domain.NewFigure(500)},
		{ID: "ord-0006", Status: "cancelled"},
	}
	client.EXPECT().ListOrders(gomock.Any(), "upstream-token").Return(orders, nil)

	view := svc.Orders(context.Background(), sess)

	require.Len(t, view.Rows, 6)
	assert.Equal(t, OrderStats{
		Unassigned: 1,
		InProgress: 2,
		Completed:  2,
		TotalValue: "₦10,500",
	}, view.Stats)
	assert.Equal(t, "Sarah Johnson", view.Rows[1].Influencer)
	assert.Len(t, view.Rows[0].Actions, 1)
	assert.Empty(t, view.Rows[1].Actions)
}

func TestService_AbandonedRequestKeepsCollection(t *testing.T) {
	svc, client := newTestService(t)
	sess := newTestSession(t)

	sess.Store.ReplaceOrders([]domain.Order{{ID: "ord-1"}})
	sess.Store.Invalidate(cache.Orders)

	ctx, cancel := context.WithCancel(context.Background())
	client.EXPECT().ListOrders(gomock.Any(), "upstream-token").
		DoAndReturn(func(context.Context, string) ([]domain.Order, error) {
			cancel()
			return nil, context.Canceled
		})

	svc.Orders(ctx, sess)

	assert.Equal(t, []domain.Order{{ID: "ord-1"}}, sess.Store.Orders())
	assert.False(t, sess.Store.IsFresh(cache.Orders))
}

func TestService_AssignOrder(t *testing.T) {
	t.Run("exige influenciador", func(t *testing.T) {
		svc, _ := newTestService(t)
		sess := newTestSession(t)

		err := svc.AssignOrder(context.Background(), sess, "ord-1", domain.AssignOrderRequest{})

		var actionErr *ActionError
		require.ErrorAs(t, err, &actionErr)
		assert.ErrorIs(t, err, ErrMissingInfluencer)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, actionErr.Code)
	})

	t.Run("invalida pedidos e contadores", func(t *testing.T) {
		svc, client := newTestService(t)
		sess := newTestSession(t)
		sess.Store.ReplaceOrders([]domain.Order{{ID: "ord-1"}})
		sess.Store.ReplaceInfluencers([]domain.Influencer{})
		req := domain.AssignOrderRequest{InfluencerID: "inf-1", Notes: "rush"}

		client.EXPECT().AssignOrder(gomock.Any(), "upstream-token", "ord-1", req).Return(nil)

		require.NoError(t, svc.AssignOrder(context.Background(), sess, "ord-1", req))
		assert.False(t, sess.Store.IsFresh(cache.Orders))
		assert.True(t, sess.Store.IsFresh(cache.Influencers))
	})
}

func TestService_AuditTrail(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	audit := repoMocks.NewMockAuditRepository(ctrl)
	svc := NewService(client, nil, audit)
	sess := newTestSession(t)
	ctx := context.Background()

	var recorded []domain.AdminAction
	audit.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, action *domain.AdminAction) error {
			recorded = append(recorded, *action)
			return nil
		}).Times(2)

	client.EXPECT().ReviewAccount(gomock.Any(), "upstream-token", "acc-1", domain.ReviewReject).Return(nil)
	client.EXPECT().ReviewAccount(gomock.Any(), "upstream-token", "acc-2", domain.ReviewReject).
		Return(&cloutjetclient.APIError{StatusCode: http.StatusNotFound, Message: "Account not found"})

	require.NoError(t, svc.ReviewAccount(ctx, sess, "acc-1", domain.ReviewReject, "blurry screenshots"))
	require.Error(t, svc.ReviewAccount(ctx, sess, "acc-2", domain.ReviewReject, ""))

	require.Len(t, recorded, 2)
	assert.Equal(t, domain.AdminAction{
		SessionEmail: "admin@cloutjet.io",
		Action:       "reject",
		Entity:       "account",
		EntityID:     "acc-1",
		Notes:        "blurry screenshots",
		Succeeded:    true,
	}, recorded[0])
	assert.False(t, recorded[1].Succeeded)
	assert.Equal(t, "Account not found", recorded[1].Message)

	audit.EXPECT().Enabled().Return(true)
	audit.EXPECT().ListRecent(gomock.Any(), 10).Return(recorded, nil)
	entries, err := svc.AuditLog(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestService_AuditLogDisabled(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AuditLog(context.Background(), 10)
	assert.ErrorIs(t, err, ErrAuditDisabled)
}

func TestService_InvalidReviewAction(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.ReviewAccount(context.Background(), newTestSession(t), "acc-1", domain.ReviewAction("delete"), "")
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.True(t, IsValidationError(err))
}
