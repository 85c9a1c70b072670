package valueobjects

import "fmt"

// TicketType distinguishes period passes from per-episode passes.
type TicketType string

const (
	TicketTypeTicketbook  TicketType = "ticketbook"
	TicketTypeProductbook TicketType = "productbook"
)

func (t TicketType) IsValid() bool {
	return t == TicketTypeTicketbook || t == TicketTypeProductbook
}

func (t TicketType) String() string {
	return string(t)
}

func ParseTicketType(s string) (TicketType, error) {
	t := TicketType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}

// OwnType is how a productbook grants access.
type OwnType string

const (
	OwnTypeRental OwnType = "rental"
	OwnTypeOwn    OwnType = "own"
)

func (o OwnType) IsValid() bool {
	return o == OwnTypeRental || o == OwnTypeOwn
}

func (o OwnType) String() string {
	return string(o)
}

func ParseOwnType(s string) (OwnType, error) {
	o := OwnType(s)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid own type: %s", s)
	}
	return o, nil
}

// AcquisitionType records where a pass came from.
type AcquisitionType string

const (
	AcquisitionAdmin     AcquisitionType = "admin"
	AcquisitionGift      AcquisitionType = "gift"
	AcquisitionPurchase  AcquisitionType = "purchase"
	AcquisitionEvent     AcquisitionType = "event"
	AcquisitionPromotion AcquisitionType = "promotion"
	AcquisitionQuest     AcquisitionType = "quest"
)

var validAcquisitionTypes = map[AcquisitionType]bool{
	AcquisitionAdmin:     true,
	AcquisitionGift:      true,
	AcquisitionPurchase:  true,
	AcquisitionEvent:     true,
	AcquisitionPromotion: true,
	AcquisitionQuest:     true,
}

func (a AcquisitionType) IsValid() bool {
	return validAcquisitionTypes[a]
}

func (a AcquisitionType) String() string {
	return string(a)
}

func ParseAcquisitionType(s string) (AcquisitionType, error) {
	a := AcquisitionType(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid acquisition type: %s", s)
	}
	return a, nil
}
