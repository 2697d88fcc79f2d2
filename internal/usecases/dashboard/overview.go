package dashboard

import (
	"context"

	"github.com/cloutjet/admin-dashboard/internal/cache"
	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/cloutjet/admin-dashboard/internal/session"
)

const noActivityMessage = "No recent activity"

type StatCard struct {
	Name        string `json:"name"`
	Value       int    `json:"value"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ActivityItem struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	When    string `json:"when"`
}

type OverviewView struct {
	Stats          []StatCard     `json:"stats"`
	RecentActivity []ActivityItem `json:"recentActivity"`
	EmptyMessage   string         `json:"emptyMessage,omitempty"`
}

// Overview exige sessão: sem token o cliente deve voltar para LoginRedirect
func (s *Service) Overview(ctx context.Context, sess *session.Session) (*OverviewView, error) {
	if !hasSession(sess) {
		return nil, ErrUnauthenticated
	}

	s.load(ctx, sess, cache.AdminStats)
	return s.overviewView(sess.Store.AdminStats()), nil
}

func (s *Service) overviewView(stats domain.AdminStats) *OverviewView {
	view := &OverviewView{
		Stats: []StatCard{
			{Name: "Pending Accounts", Value: stats.PendingAccountsCount, Description: "Accounts awaiting verification", Icon: "users"},
			{Name: "Active Transactions", Value: stats.ActiveTransactionsCount, Description: "Escrow transactions in progress", Icon: "credit-card"},
			{Name: "Influencer Applications", Value: stats.PendingInfluencersCount, Description: "New influencer applications", Icon: "star"},
			{Name: "Unassigned Orders", Value: stats.UnassignedOrdersCount, Description: "Orders waiting for assignment", Icon: "shopping-cart"},
		},
		RecentActivity: make([]ActivityItem, 0, len(stats.RecentNotifications)),
	}

	for _, n := range stats.RecentNotifications {
		view.RecentActivity = append(view.RecentActivity, ActivityItem{
			Title:   n.Title,
			Message: n.Message,
			Type:    n.Type,
			When:    s.format.RelativeTime(n.CreatedAt),
		})
	}

	if len(view.RecentActivity) == 0 {
		view.EmptyMessage = noActivityMessage
	}

	return view
}
