package dashboard

import (
	"context"
	"time"

	"github.com/cloutjet/admin-dashboard/internal/cache"
	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/cloutjet/admin-dashboard/internal/format"
	"github.com/cloutjet/admin-dashboard/internal/session"
)

const noAccountsMessage = "No Account Pending"

// RowAction é um botão de ação disponível para a linha
type RowAction struct {
	Action     string `json:"action"`
	Label      string `json:"label"`
	Executable bool   `json:"executable"`
}

// StatusBadge é o status já traduzido para exibição
type StatusBadge struct {
	Value string      `json:"value"`
	Label string      `json:"label"`
	Tier  format.Tier `json:"tier"`
	Icon  string      `json:"icon,omitempty"`
}

func badge(kind format.Kind, status string) StatusBadge {
	return StatusBadge{
		Value: status,
		Label: format.HumanizeStatus(status),
		Tier:  format.StatusTier(kind, status),
		Icon:  format.StatusIcon(kind, status),
	}
}

type PersonCell struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Initials string `json:"initials"`
}

func person(p domain.Party) PersonCell {
	return PersonCell{Name: p.FullName, Email: p.Email, Initials: format.Initials(p.FullName)}
}

type AccountRow struct {
	ID           string      `json:"id"`
	Seller       PersonCell  `json:"seller"`
	Username     string      `json:"username"`
	ProfileLink  string      `json:"profileLink"`
	Platform     string      `json:"platform"`
	PlatformIcon string      `json:"platformIcon,omitempty"`
	Niche        string      `json:"niche"`
	Followers    string      `json:"followers"`
	Price        string      `json:"price"`
	TwoFA        string      `json:"twoFA"`
	Description  string      `json:"description"`
	Status       StatusBadge `json:"status"`
	Submitted    string      `json:"submitted"`
	Actions      []RowAction `json:"actions"`
}

type AccountStats struct {
	PendingReviews int    `json:"pendingReviews"`
	ApprovedToday  int    `json:"approvedToday"`
	TotalValue     string `json:"totalValue"`
}

type AccountsView struct {
	Rows         []AccountRow `json:"rows"`
	Stats        AccountStats `json:"stats"`
	EmptyMessage string       `json:"emptyMessage,omitempty"`
}

func (s *Service) Accounts(ctx context.Context, sess *session.Session) *AccountsView {
	if !hasSession(sess) {
		return s.accountsView(nil)
	}

	s.load(ctx, sess, cache.Accounts)
	return s.accountsView(sess.Store.Accounts())
}

func (s *Service) accountsView(accounts []domain.Account) *AccountsView {
	view := &AccountsView{Rows: make([]AccountRow, 0, len(accounts))}

	var total float64
	now := s.format.Current()

	for _, a := range accounts {
		total += a.PreferredPrice

		switch a.Status {
		case domain.AccountStatusPending:
			view.Stats.PendingReviews++
		case domain.AccountStatusApproved:
			if approvedWithin(a, now, 24*time.Hour) {
				view.Stats.ApprovedToday++
			}
		}

		view.Rows = append(view.Rows, s.accountRow(a))
	}

	view.Stats.TotalValue = s.format.Currency(total)
	if len(view.Rows) == 0 {
		view.EmptyMessage = noAccountsMessage
	}

	return view
}

func (s *Service) accountRow(a domain.Account) AccountRow {
	twoFA := "Disabled"
	if a.TwoFAEnabled {
		twoFA = "Enabled"
		if a.TwoFAMethod != "" {
			twoFA += " (" + format.HumanizeStatus(a.TwoFAMethod) + ")"
		}
	}

	row := AccountRow{
		ID:           a.ID,
		Seller:       person(a.User),
		Username:     a.AccountUsername,
		ProfileLink:  a.ProfileLink,
		Platform:     a.Platform,
		PlatformIcon: format.PlatformIcon(a.Platform),
		Niche:        a.Niche,
		Followers:    format.FollowerCount(a.FollowersCount),
		Price:        s.format.Currency(a.PreferredPrice),
		TwoFA:        twoFA,
		Description:  a.Description,
		Status:       badge(format.KindAccount, string(a.Status)),
		Submitted:    s.format.Date(a.CreatedAt),
		Actions:      []RowAction{},
	}

	if a.Status == domain.AccountStatusPending {
		row.Actions = reviewActions()
	}

	return row
}

func reviewActions() []RowAction {
	return []RowAction{
		{Action: string(domain.ReviewApprove), Label: "Approve", Executable: true},
		{Action: string(domain.ReviewReject), Label: "Reject", Executable: true},
	}
}

// approvedWithin usa updatedAt como instante da aprovação
func approvedWithin(a domain.Account, now time.Time, window time.Duration) bool {
	updated, err := format.ParseTimestamp(a.UpdatedAt)
	if err != nil {
		return false
	}
	age := now.Sub(updated)
	return age >= 0 && age <= window
}

func (s *Service) ReviewAccount(ctx context.Context, sess *session.Session, accountID string, action domain.ReviewAction, notes string) error {
	m := mutation{
		action:     string(action),
		verb:       string(action),
		noun:       "account",
		entity:     "account",
		entityID:   accountID,
		notes:      notes,
		collection: cache.Accounts,
		call: func(ctx context.Context, token string) error {
			return s.client.ReviewAccount(ctx, token, accountID, action)
		},
	}

	if !action.IsValid() {
		return invalidAction(m, "action must be approve or reject")
	}
	if accountID == "" {
		return invalidAction(m, "account id is required")
	}

	return s.mutate(ctx, sess, m)
}
