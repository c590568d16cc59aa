package models

// Settings is the appSettings record saved by the settings screen.
type Settings struct {
	RestaurantName string            `json:"restaurant_name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Address        string            `json:"address"`
	Currency       string            `json:"currency"`
	Timezone       string            `json:"timezone"`
	Notifications  NotificationPrefs `json:"notifications"`
	TwoFactor      TwoFactorSettings `json:"two_factor"`
}

type NotificationPrefs struct {
	EmailNotifications bool `json:"email_notifications"`
	SMSNotifications   bool `json:"sms_notifications"`
	PushNotifications  bool `json:"push_notifications"`
}

// TwoFactorSettings holds the enrolment state from the security tab.
type TwoFactorSettings struct {
	Enabled     bool     `json:"enabled"`
	Secret      string   `json:"secret,omitempty"`
	BackupCodes []string `json:"backup_codes,omitempty"`
}

// DefaultSettings mirrors the values the settings screen starts from.
func DefaultSettings() Settings {
	return Settings{
		RestaurantName: "My Restaurant",
		Email:          "contact@restaurant.com",
		Phone:          "+1 (234) 567-8900",
		Address:        "123 Main Street, City, State 12345",
		Currency:       "USD",
		Timezone:       "UTC-5",
		Notifications: NotificationPrefs{
			EmailNotifications: true,
			SMSNotifications:   false,
			PushNotifications:  true,
		},
	}
}
