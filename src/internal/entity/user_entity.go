package entity

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var EwalletProviders = []string{"dana", "ovo", "gopay"}

type User struct {
	UserID     string      `json:"user_id" db:"user_id"`
	FullName   string      `json:"full_name" db:"full_name"`
	Email      string      `json:"email" db:"email"`
	Password   string      `json:"-" db:"password"`
	Phone      string      `json:"phone" db:"phone"`
	Address    string      `json:"address" db:"address"`
	Role       string      `json:"role" db:"role"`
	IsActive   bool        `json:"is_active" db:"is_active"`
	Ewallets   []EWallet   `json:"ewallets" db:"-"`
	AdminNotes []AdminNote `json:"-" db:"-"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  *time.Time  `json:"updated_at,omitempty" db:"updated_at"`
}

type EWallet struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Provider  string    `json:"provider" db:"provider"`
	Account   string    `json:"account" db:"account"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AdminNote rows are append-only, they form the audit trail of admin actions
// against an account.
type AdminNote struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Action    string    `json:"action" db:"action"`
	Reason    string    `json:"reason" db:"reason"`
	AdminID   string    `json:"admin_id" db:"admin_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// EwalletFor returns the registered handle for a provider, if any.
func (u *User) EwalletFor(provider string) (*EWallet, bool) {
	for i := range u.Ewallets {
		if u.Ewallets[i].Provider == provider {
			return &u.Ewallets[i], true
		}
	}
	return nil, false
}
