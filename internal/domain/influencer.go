package domain

// O contrato real de /admin/influencers ainda não foi confirmado pela API.
// Os campos abaixo são todos opcionais e o ID aceita tanto "_id" quanto "id".

const (
	InfluencerStatusPending  = "pending"
	InfluencerStatusApproved = "approved"
	InfluencerStatusRejected = "rejected"
)

type PlatformProfile struct {
	Name       string `json:"name"`
	Handle     string `json:"handle"`
	Followers  Figure `json:"followers"`
	Engagement Figure `json:"engagement"`
}

type Influencer struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Avatar     string            `json:"avatar,omitempty"`
	Platforms  []PlatformProfile `json:"platforms"`
	Niche      string            `json:"niche"`
	Experience string            `json:"experience"`
	Status     string            `json:"status"`
	AppliedAt  string            `json:"appliedAt"`
	Bio        string            `json:"bio"`
	Portfolio  []string          `json:"portfolio"`
	Rates      map[string]Figure `json:"rates"`
}

func (i *Influencer) UnmarshalJSON(data []byte) error {
	type alias Influencer
	aux := struct {
		*alias
		MongoID string `json:"_id"`
	}{alias: (*alias)(i)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if i.ID == "" {
		i.ID = aux.MongoID
	}
	return nil
}

// TotalFollowers soma os seguidores de todas as plataformas
func (i Influencer) TotalFollowers() int64 {
	var total float64
	for _, p := range i.Platforms {
		total += p.Followers.Value
	}
	return int64(total)
}

// InfluencerRef é o influenciador atribuído a um pedido
type InfluencerRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}
