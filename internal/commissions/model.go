package commissions

import "time"

const (
	ServiceWeb    = "web"
	ServiceSketch = "sketch"

	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusAccepted  = "accepted"
	StatusDeclined  = "declined"

	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
)

var validStatuses = map[string]struct{}{
	StatusNew:       {},
	StatusContacted: {},
	StatusAccepted:  {},
	StatusDeclined:  {},
}

var validServices = map[string]struct{}{
	ServiceWeb:    {},
	ServiceSketch: {},
}

func IsValidStatus(value string) bool {
	_, ok := validStatuses[value]
	return ok
}

func IsValidService(value string) bool {
	_, ok := validServices[value]
	return ok
}

// Inquiry is one "Open Commission" request sent from the services section.
type Inquiry struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Service   string    `bson:"service" json:"service"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Channel   string    `bson:"channel" json:"channel"`
	Message   string    `bson:"message" json:"message"`
	Lang      string    `bson:"lang,omitempty" json:"lang,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Service string `json:"service" validate:"required,oneof=web sketch"`
	Name    string `json:"name" validate:"notblank,max=120"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Channel string `json:"channel" validate:"omitempty,oneof=email whatsapp"`
	Message string `json:"message" validate:"notblank,max=4000"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted accepted declined"`
}

type ListFilter struct {
	Status  string
	Service string
}
