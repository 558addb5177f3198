package models

// Subscription is the user's plan tier.
type Subscription string

const (
	SubscriptionStarter  Subscription = "starter"
	SubscriptionPro      Subscription = "pro"
	SubscriptionBusiness Subscription = "business"
)

// ValidSubscription reports whether s is a known plan tier.
func ValidSubscription(s Subscription) bool {
	switch s {
	case SubscriptionStarter, SubscriptionPro, SubscriptionBusiness:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"not null" json:"-"`
	Subscription Subscription `gorm:"type:varchar(20);default:'starter'" json:"subscription"`
	// Token holds the active session token; empty when logged out.
	Token             string `json:"-"`
	AvatarURL         string `json:"avatarURL"`
	VerificationToken string `json:"-"`
	Verify            bool   `gorm:"default:false" json:"verify"`

	Contacts []Contact `gorm:"foreignKey:OwnerID" json:"-"`
}
