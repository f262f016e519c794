package models

// ResourceKind tells whether an event describes a resource directly or wraps one.
type ResourceKind string

const (
	KindDirect  ResourceKind = "direct"
	KindWrapped ResourceKind = "wrapped"
)

// Envelope is the gateway webhook body:
//
//	{"data": {"id": "...", "type": "event", "attributes": {...}}}
type Envelope struct {
	Data *Resource `json:"data"`
}

type Resource struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Attributes *Attributes `json:"attributes"`
}

// Attributes either describe a resource (status, amount, billing) or carry the
// wrapped resource under Data.
type Attributes struct {
	Type    string    `json:"type"`
	Status  string    `json:"status"`
	Amount  *int64    `json:"amount"`
	Billing *Billing  `json:"billing"`
	Data    *Resource `json:"data"`
}

type Billing struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Resolution is the outcome of picking the authoritative attributes of an envelope.
type Resolution struct {
	Kind       ResourceKind
	EventType  string
	Attributes Attributes
}

// Resolve picks the attributes that describe the payment. A wrapped resource wins
// over the event's own attributes. Callers must check e.Data first.
func (e Envelope) Resolve() Resolution {
	var primary Attributes
	if e.Data.Attributes != nil {
		primary = *e.Data.Attributes
	}

	if nested := primary.Data; nested != nil && nested.Attributes != nil {
		return Resolution{
			Kind:       KindWrapped,
			EventType:  primary.Type,
			Attributes: *nested.Attributes,
		}
	}

	return Resolution{
		Kind:       KindDirect,
		EventType:  primary.Type,
		Attributes: primary,
	}
}

func (b *Billing) EmailOrEmpty() string {
	if b == nil {
		return ""
	}
	return b.Email
}
