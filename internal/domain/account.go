package domain

type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusApproved AccountStatus = "approved"
	AccountStatusRejected AccountStatus = "rejected"
)

// Party é um usuário da plataforma (vendedor, comprador ou dono da conta)
type Party struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Account é uma conta de rede social submetida para venda no marketplace
type Account struct {
	ID              string        `json:"_id"`
	User            Party         `json:"user"`
	Platform        string        `json:"platform"`
	Niche           string        `json:"niche"`
	AccountUsername string        `json:"accountUsername"`
	FollowersCount  int64         `json:"followersCount"`
	ProfileLink     string        `json:"profileLink"`
	TwoFAEnabled    bool          `json:"twoFAEnabled"`
	TwoFAMethod     string        `json:"twoFAMethod"`
	PreferredPrice  float64       `json:"preferredPrice"`
	Description     string        `json:"description"`
	Status          AccountStatus `json:"status"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
}

// ReviewAction é a decisão do admin sobre uma submissão
type ReviewAction string

const (
	ReviewApprove ReviewAction = "approve"
	ReviewReject  ReviewAction = "reject"
)

func (a ReviewAction) IsValid() bool {
	return a == ReviewApprove || a == ReviewReject
}
