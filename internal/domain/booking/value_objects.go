package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyRoomID     = errors.New("room id cannot be empty")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrEmptyClientName = errors.New("client name cannot be empty")
	ErrInvalidEmail    = errors.New("client email is invalid")
)

// Date is the booking day, kept as the opaque calendar string both the ledger
// and the forecast store key on.
type Date struct {
	value string
}

func NewDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{value: value}, nil
}

func (d Date) String() string {
	return d.value
}

// ClientInfo identifies who holds a reservation.
type ClientInfo struct {
	name  string
	email string
}

func NewClientInfo(name, email string) (ClientInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ClientInfo{}, ErrEmptyClientName
	}

	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return ClientInfo{}, ErrInvalidEmail
	}

	return ClientInfo{name: name, email: email}, nil
}

func (c ClientInfo) Name() string  { return c.name }
func (c ClientInfo) Email() string { return c.email }
