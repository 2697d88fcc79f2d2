package format

import "strings"

// Tier é a faixa visual de um status (cor do badge)
type Tier string

const (
	TierWarning Tier = "warning"
	TierInfo    Tier = "info"
	TierSuccess Tier = "success"
	TierDanger  Tier = "danger"
	TierNeutral Tier = "neutral"
)

// Kind identifica a tabela de status de cada entidade
type Kind string

const (
	KindAccount     Kind = "account"
	KindTransaction Kind = "transaction"
	KindInfluencer  Kind = "influencer"
	KindOrder       Kind = "order"
)

var tiers = map[Kind]map[string]Tier{
	KindAccount: {
		"pending":  TierWarning,
		"approved": TierSuccess,
		"rejected": TierDanger,
	},
	KindTransaction: {
		"pending":          TierWarning,
		"approved":         TierInfo,
		"payment_received": TierInfo,
		"completed":        TierSuccess,
		"dispute":          TierDanger,
		"disputed":         TierDanger,
	},
	KindInfluencer: {
		"pending":  TierWarning,
		"approved": TierSuccess,
		"rejected": TierDanger,
	},
	KindOrder: {
		"unassigned":  TierWarning,
		"assigned":    TierInfo,
		"in_progress": TierInfo,
		"completed":   TierSuccess,
	},
}

var icons = map[Kind]map[string]string{
	KindTransaction: {
		"pending":   "clock",
		"approved":  "check",
		"completed": "check",
		"dispute":   "alert-triangle",
		"disputed":  "alert-triangle",
		"refunded":  "dollar-sign",
	},
	KindOrder: {
		"unassigned":  "alert-circle",
		"assigned":    "user-plus",
		"in_progress": "clock",
		"completed":   "check-circle",
	},
}

// StatusTier retorna a faixa do status; tokens desconhecidos são neutros
func StatusTier(kind Kind, status string) Tier {
	if t, ok := tiers[kind][status]; ok {
		return t
	}
	return TierNeutral
}

// StatusIcon retorna o nome do ícone do status, ou "" quando não há ícone
func StatusIcon(kind Kind, status string) string {
	return icons[kind][status]
}

// PlatformIcon retorna o ícone da rede social, ou "" para plataformas desconhecidas
func PlatformIcon(platform string) string {
	switch platform := strings.ToLower(platform); platform {
	case "instagram", "twitter", "youtube", "tiktok", "linkedin", "facebook":
		return platform
	default:
		return ""
	}
}
