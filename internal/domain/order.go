package domain

const (
	OrderStatusUnassigned = "unassigned"
	OrderStatusAssigned   = "assigned"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
)

type Client struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderRequirements struct {
	Platform     string `json:"platform"`
	ContentType  string `json:"contentType"`
	MinFollowers Figure `json:"minFollowers"`
	Niche        string `json:"niche"`
}

// Order é um pedido de campanha. Assim como Influencer, o contrato de
// /orders não foi confirmado; o cliente pode vir aninhado ou em campos planos.
type Order struct {
	ID                 string            `json:"id"`
	Client             Client            `json:"client"`
	Campaign           string            `json:"campaign"`
	Description        string            `json:"description"`
	Budget             Figure            `json:"budget"`
	Deadline           string            `json:"deadline"`
	Status             string            `json:"status"`
	CreatedAt          string            `json:"createdAt"`
	Requirements       OrderRequirements `json:"requirements"`
	Deliverables       []string          `json:"deliverables"`
	AssignedInfluencer *InfluencerRef    `json:"assignedInfluencer,omitempty"`
}

func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	aux := struct {
		*alias
		MongoID     string `json:"_id"`
		ClientName  string `json:"clientName"`
		ClientEmail string `json:"clientEmail"`
	}{alias: (*alias)(o)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if o.ID == "" {
		o.ID = aux.MongoID
	}
	if o.Client.Name == "" {
		o.Client.Name = aux.ClientName
	}
	if o.Client.Email == "" {
		o.Client.Email = aux.ClientEmail
	}
	return nil
}

// AssignOrderRequest é o corpo enviado ao atribuir um pedido
type AssignOrderRequest struct {
	InfluencerID string `json:"influencerId"`
	Notes        string `json:"notes,omitempty"`
}
