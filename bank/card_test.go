package bank

import (
	"errors"
	"testing"
	"time"
)

func TestNewCardValidation(t *testing.T) {
	c, err := NewCard("card-1", "2030-05-20", "debit")
	if err != nil {
		t.Fatal(err)
	}
	if c.Type != CardTypeDebit {
		t.Fatalf("type=%q want Debit", c.Type)
	}
	if c.ExpiryDate() != "2030-05-20" {
		t.Fatalf("expiry=%q want 2030-05-20", c.ExpiryDate())
	}

	if _, err := NewCard("card-2", "2030-05-20", "prepaid"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("unknown type: want ErrInvalid, got %v", err)
	}
	if _, err := NewCard("card-3", "20-05-2030", "credit"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("malformed date: want ErrInvalid, got %v", err)
	}
}

func TestCardExpiryBoundary(t *testing.T) {
	c, err := NewCard("card-1", "2024-06-10", "Credit")
	if err != nil {
		t.Fatal(err)
	}

	onExpiryDay := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	if c.ExpiredAt(onExpiryDay) {
		t.Fatal("card should still be valid on its expiry day")
	}
	dayAfter := time.Date(2024, 6, 11, 0, 1, 0, 0, time.UTC)
	if !c.ExpiredAt(dayAfter) {
		t.Fatal("card should be expired the day after expiry")
	}
}

func TestCardRenew(t *testing.T) {
	c, err := NewCard("card-1", "2024-03-01", "Debit")
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Renew(1); err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 365).Format("2006-01-02")
	if c.ExpiryDate() != want {
		t.Fatalf("after Renew(1): expiry=%q want %q (+365 days)", c.ExpiryDate(), want)
	}

	for _, years := range []int{0, -2} {
		if err := c.Renew(years); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Renew(%d): want ErrInvalid, got %v", years, err)
		}
	}
}
