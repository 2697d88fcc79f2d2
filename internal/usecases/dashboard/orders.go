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
	orderIDTag       = "ORD"
	noOrdersMessage  = "No Orders"
	actionAssign     = "assign"
	unassignedPerson = "Unassigned"
)

type RequirementsCell struct {
	Platform     string `json:"platform"`
	ContentType  string `json:"contentType"`
	MinFollowers string `json:"minFollowers"`
	Niche        string `json:"niche"`
}

type OrderRow struct {
	ID           string           `json:"id"`
	ShortID      string           `json:"shortId"`
	Client       PersonCell       `json:"client"`
	Campaign     string           `json:"campaign"`
	Description  string           `json:"description"`
	Budget       string           `json:"budget"`
	Deadline     string           `json:"deadline"`
	Requirements RequirementsCell `json:"requirements"`
	Deliverables []string         `json:"deliverables"`
	Influencer   string           `json:"influencer"`
	Status       StatusBadge      `json:"status"`
	Created      string           `json:"created"`
	Actions      []RowAction      `json:"actions"`
}

type OrderStats struct {
	Unassigned int    `json:"unassigned"`
	InProgress int    `json:"inProgress"`
	Completed  int    `json:"completed"`
	TotalValue string `json:"totalValue"`
}

type OrdersView struct {
	Rows         []OrderRow `json:"rows"`
	Stats        OrderStats `json:"stats"`
	EmptyMessage string     `json:"emptyMessage,omitempty"`
}

func (s *Service) Orders(ctx context.Context, sess *session.Session) *OrdersView {
	if !hasSession(sess) {
		return s.ordersView(nil)
	}

	s.load(ctx, sess, cache.Orders)
	return s.ordersView(sess.Store.Orders())
}

func (s *Service) ordersView(orders []domain.Order) *OrdersView {
	view := &OrdersView{Rows: make([]OrderRow, 0, len(orders))}

	var total float64
	for _, o := range orders {
		total += o.Budget.Value

		switch o.Status {
		case domain.OrderStatusUnassigned:
			view.Stats.Unassigned++
		case domain.OrderStatusAssigned, domain.OrderStatusInProgress:
			view.Stats.InProgress++
		case domain.OrderStatusCompleted:
			view.Stats.Completed++
		}

		view.Rows = append(view.Rows, s.orderRow(o))
	}

	view.Stats.TotalValue = s.format.Currency(total)
	if len(view.Rows) == 0 {
		view.EmptyMessage = noOrdersMessage
	}

	return view
}

func (s *Service) orderRow(o domain.Order) OrderRow {
	row := OrderRow{
		ID:          o.ID,
		ShortID:     format.ShortenID(orderIDTag, o.ID),
		Client:      PersonCell{Name: o.Client.Name, Email: o.Client.Email, Initials: format.Initials(o.Client.Name)},
		Campaign:    o.Campaign,
		Description: o.Description,
		Budget:      s.format.Currency(o.Budget.Value),
		Deadline:    s.format.Date(o.Deadline),
		Requirements: RequirementsCell{
			Platform:     o.Requirements.Platform,
			ContentType:  o.Requirements.ContentType,
			MinFollowers: format.FollowerCount(int64(o.Requirements.MinFollowers.Value)),
			Niche:        o.Requirements.Niche,
		},
		Deliverables: o.Deliverables,
		Influencer:   unassignedPerson,
		Status:       badge(format.KindOrder, o.Status),
		Created:      s.format.Date(o.CreatedAt),
		Actions:      []RowAction{},
	}

	if row.Deliverables == nil {
		row.Deliverables = []string{}
	}
	if o.AssignedInfluencer != nil && o.AssignedInfluencer.Name != "" {
		row.Influencer = o.AssignedInfluencer.Name
	}
	if o.Status == domain.OrderStatusUnassigned {
		row.Actions = append(row.Actions, RowAction{Action: actionAssign, Label: "Assign", Executable: true})
	}

	return row
}

func (s *Service) AssignOrder(ctx context.Context, sess *session.Session, orderID string, req domain.AssignOrderRequest) error {
	m := mutation{
		action:     actionAssign,
		verb:       actionAssign,
		noun:       "order",
		entity:     "order",
		entityID:   orderID,
		notes:      req.Notes,
		collection: cache.Orders,
		call: func(ctx context.Context, token string) error {
			return s.client.AssignOrder(ctx, token, orderID, req)
		},
	}

	if orderID == "" {
		return invalidAction(m, "order id is required")
	}
	if req.InfluencerID == "" {
		return NewActionError(ErrMissingInfluencer, apiErrors.ErrMissingRequiredData, m, "influencerId is required")
	}

	return s.mutate(ctx, sess, m)
}
