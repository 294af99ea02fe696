package bank

import (
	"fmt"
	"strings"
	"time"
)

type CardType string

const (
	CardTypeDebit  CardType = "Debit"
	CardTypeCredit CardType = "Credit"
)

// ParseCardType normalizes a card type string case-insensitively.
func ParseCardType(s string) (CardType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debit":
		return CardTypeDebit, nil
	case "credit":
		return CardTypeCredit, nil
	}
	return "", fmt.Errorf("%w: unknown card type %q", ErrInvalid, s)
}

// Card is a payment card tied to an account. Id and type are fixed at
// construction; only the expiry date changes, through Renew.
type Card struct {
	ID   string
	Type CardType

	expiry time.Time
}

func NewCard(id, expiryDate, cardType string) (*Card, error) {
	kind, err := ParseCardType(cardType)
	if err != nil {
		return nil, err
	}
	expiry, err := time.Parse(dateLayout, expiryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expiry date must be in YYYY-MM-DD format", ErrInvalid)
	}
	return &Card{ID: id, Type: kind, expiry: expiry}, nil
}

// ExpiryDate returns the expiry as a YYYY-MM-DD string.
func (c *Card) ExpiryDate() string {
	return c.expiry.Format(dateLayout)
}

// ExpiredAt reports whether the card is expired at the given moment. The
// comparison is at date granularity: a card is still valid on its expiry
// day and expired the day after.
func (c *Card) ExpiredAt(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.After(c.expiry)
}

func (c *Card) IsExpired() bool {
	return c.ExpiredAt(time.Now())
}

// Renew pushes the expiry forward by years*365 days. The flat 365-day year
// is the deliberate policy here; leap years are not accounted for.
func (c *Card) Renew(years int) error {
	if years <= 0 {
		return fmt.Errorf("%w: renewal period must be positive", ErrInvalid)
	}
	c.expiry = c.expiry.AddDate(0, 0, years*365)
	return nil
}
