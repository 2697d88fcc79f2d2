package dashboard

import (
	"context"
	"sort"
	"strconv"

	"github.com/cloutjet/admin-dashboard/internal/cache"
	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/cloutjet/admin-dashboard/internal/format"
	"github.com/cloutjet/admin-dashboard/internal/session"
	"github.com/cloutjet/admin-dashboard/pkg/utils"
)

const noInfluencersMessage = "No Influencers"

type PlatformCell struct {
	Name       string `json:"name"`
	Icon       string `json:"icon,omitempty"`
	Handle     string `json:"handle"`
	Followers  string `json:"followers"`
	Engagement string `json:"engagement"`
}

type RateCell struct {
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

type InfluencerRow struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Avatar         string         `json:"avatar,omitempty"`
	Initials       string         `json:"initials"`
	Platforms      []PlatformCell `json:"platforms"`
	TotalFollowers string         `json:"totalFollowers"`
	Niche          string         `json:"niche"`
	Experience     string         `json:"experience"`
	Bio            string         `json:"bio"`
	Portfolio      []string       `json:"portfolio"`
	Rates          []RateCell     `json:"rates"`
	Status         StatusBadge    `json:"status"`
	Applied        string         `json:"applied"`
	Actions        []RowAction    `json:"actions"`
}

type InfluencerStats struct {
	Pending           int    `json:"pending"`
	Approved          int    `json:"approved"`
	TotalReach        string `json:"totalReach"`
	AverageEngagement string `json:"averageEngagement"`
}

type InfluencersView struct {
	Rows         []InfluencerRow `json:"rows"`
	Stats        InfluencerStats `json:"stats"`
	EmptyMessage string          `json:"emptyMessage,omitempty"`
}

// InfluencerOption é uma opção do seletor do diálogo de atribuição
type InfluencerOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Niche     string `json:"niche"`
	Followers string `json:"followers"`
}

func (s *Service) Influencers(ctx context.Context, sess *session.Session) *InfluencersView {
	if !hasSession(sess) {
		return s.influencersView(nil)
	}

	s.load(ctx, sess, cache.Influencers)
	return s.influencersView(sess.Store.Influencers())
}

func (s *Service) influencersView(influencers []domain.Influencer) *InfluencersView {
	view := &InfluencersView{Rows: make([]InfluencerRow, 0, len(influencers))}

	var reach int64
	engagement := make([]float64, 0)

	for _, i := range influencers {
		switch i.Status {
		case domain.InfluencerStatusPending:
			view.Stats.Pending++
		case domain.InfluencerStatusApproved:
			view.Stats.Approved++
			reach += i.TotalFollowers()
		}

		for _, p := range i.Platforms {
			if p.Engagement.Raw != "" {
				engagement = append(engagement, p.Engagement.Value)
			}
		}

		view.Rows = append(view.Rows, s.influencerRow(i))
	}

	view.Stats.TotalReach = format.FollowerCount(reach)
	view.Stats.AverageEngagement = strconv.FormatFloat(utils.Average(engagement), 'f', -1, 64) + "%"

	if len(view.Rows) == 0 {
		view.EmptyMessage = noInfluencersMessage
	}

	return view
}

func (s *Service) influencerRow(i domain.Influencer) InfluencerRow {
	row := InfluencerRow{
		ID:             i.ID,
		Name:           i.Name,
		Email:          i.Email,
		Avatar:         i.Avatar,
		Initials:       format.Initials(i.Name),
		Platforms:      make([]PlatformCell, 0, len(i.Platforms)),
		TotalFollowers: format.FollowerCount(i.TotalFollowers()),
		Niche:          i.Niche,
		Experience:     i.Experience,
		Bio:            i.Bio,
		Portfolio:      i.Portfolio,
		Rates:          rateCells(i.Rates),
		Status:         badge(format.KindInfluencer, i.Status),
		Applied:        s.format.Date(i.AppliedAt),
		Actions:        []RowAction{},
	}

	if row.Portfolio == nil {
		row.Portfolio = []string{}
	}

	for _, p := range i.Platforms {
		row.Platforms = append(row.Platforms, PlatformCell{
			Name:       p.Name,
			Icon:       format.PlatformIcon(p.Name),
			Handle:     p.Handle,
			Followers:  format.FollowerCount(int64(p.Followers.Value)),
			Engagement: p.Engagement.Raw,
		})
	}

	if i.Status == domain.InfluencerStatusPending {
		row.Actions = reviewActions()
	}

	return row
}

// rateCells ordena pelo tipo para a saída ser estável
func rateCells(rates map[string]domain.Figure) []RateCell {
	cells := make([]RateCell, 0, len(rates))
	for kind, rate := range rates {
		amount := rate.Raw
		if amount == "" {
			amount = strconv.FormatFloat(rate.Value, 'f', -1, 64)
		}
		cells = append(cells, RateCell{Type: format.HumanizeStatus(kind), Amount: amount})
	}

	sort.Slice(cells, func(a, b int) bool { return cells[a].Type < cells[b].Type })
	return cells
}

// AssignableInfluencers lista os influenciadores aprovados do cache da sessão
func (s *Service) AssignableInfluencers(ctx context.Context, sess *session.Session) []InfluencerOption {
	options := make([]InfluencerOption, 0)
	if !hasSession(sess) {
		return options
	}

	s.load(ctx, sess, cache.Influencers)

	for _, i := range sess.Store.Influencers() {
		if i.Status != domain.InfluencerStatusApproved {
			continue
		}
		options = append(options, InfluencerOption{
			ID:        i.ID,
			Name:      i.Name,
			Niche:     i.Niche,
			Followers: format.FollowerCount(i.TotalFollowers()),
		})
	}

	return options
}

func (s *Service) ReviewInfluencer(ctx context.Context, sess *session.Session, influencerID string, action domain.ReviewAction, notes string) error {
	m := mutation{
		action:     string(action),
		verb:       string(action),
		noun:       "influencer",
		entity:     "influencer",
		entityID:   influencerID,
		notes:      notes,
		collection: cache.Influencers,
		call: func(ctx context.Context, token string) error {
			return s.client.ReviewInfluencer(ctx, token, influencerID, action)
		},
	}

	if !action.IsValid() {
		return invalidAction(m, "action must be approve or reject")
	}
	if influencerID == "" {
		return invalidAction(m, "influencer id is required")
	}

	return s.mutate(ctx, sess, m)
}
