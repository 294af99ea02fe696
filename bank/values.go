package bank

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name is a validated first/last name pair.
type Name struct {
	First string
	Last  string
}

func NewName(first, last string) (Name, error) {
	if first == "" || last == "" {
		return Name{}, fmt.Errorf("%w: first and last name cannot be empty", ErrInvalid)
	}
	return Name{First: first, Last: last}, nil
}

func (n Name) String() string {
	return n.First + " " + n.Last
}

// Address holds a city/country pair, title-cased on construction.
type Address struct {
	City    string
	Country string
}

func NewAddress(city, country string) (Address, error) {
	caser := cases.Title(language.English)
	city = caser.String(city)
	country = caser.String(country)
	if city == "" || country == "" {
		return Address{}, fmt.Errorf("%w: city and country cannot be empty", ErrInvalid)
	}
	return Address{City: city, Country: country}, nil
}

// DateOfBirth is range-checked only; day 31 in a 30-day month passes. The
// model keeps the simple policy rather than full calendar validation.
type DateOfBirth struct {
	Day   int
	Month int
	Year  int
}

func NewDateOfBirth(day, month, year int) (DateOfBirth, error) {
	if day < 1 || day > 31 || month < 1 || month > 12 || year <= 1900 {
		return DateOfBirth{}, fmt.Errorf("%w: invalid date of birth", ErrInvalid)
	}
	return DateOfBirth{Day: day, Month: month, Year: year}, nil
}
