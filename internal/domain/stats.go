package domain

type Notification struct {
	ID        string `json:"_id"`
	User      string `json:"user"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// AdminStats são os contadores do painel principal
type AdminStats struct {
	PendingAccountsCount    int            `json:"pendingAccountsCount"`
	ActiveTransactionsCount int            `json:"activeTransactionsCount"`
	PendingInfluencersCount int            `json:"pendingInfluencersCount"`
	UnassignedOrdersCount   int            `json:"unassignedOrdersCount"`
	RecentNotifications     []Notification `json:"recentNotifications"`
}

// EmptyAdminStats é o valor inicial e o valor após falha de busca
func EmptyAdminStats() AdminStats {
	return AdminStats{RecentNotifications: []Notification{}}
}

// AdminStatsUpdate é a resposta do servidor; campos ausentes mantêm o valor anterior
type AdminStatsUpdate struct {
	PendingAccountsCount    *int            `json:"pendingAccountsCount"`
	ActiveTransactionsCount *int            `json:"activeTransactionsCount"`
	PendingInfluencersCount *int            `json:"pendingInfluencersCount"`
	UnassignedOrdersCount   *int            `json:"unassignedOrdersCount"`
	RecentNotifications     *[]Notification `json:"recentNotifications"`
}

// Apply sobrepõe os campos presentes na atualização
func (s AdminStats) Apply(u AdminStatsUpdate) AdminStats {
	if u.PendingAccountsCount != nil {
		s.PendingAccountsCount = *u.PendingAccountsCount
	}
	if u.ActiveTransactionsCount != nil {
		s.ActiveTransactionsCount = *u.ActiveTransactionsCount
	}
	if u.PendingInfluencersCount != nil {
		s.PendingInfluencersCount = *u.PendingInfluencersCount
	}
	if u.UnassignedOrdersCount != nil {
		s.UnassignedOrdersCount = *u.UnassignedOrdersCount
	}
	if u.RecentNotifications != nil {
		s.RecentNotifications = append([]Notification{}, (*u.RecentNotifications)...)
	}
	return s
}
