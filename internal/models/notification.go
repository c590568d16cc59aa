package models

// Notification is a persistent entry in the notification center.
type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"` // RFC 3339
	Read      bool   `json:"read"`
}

// Toast is a transient banner. It is never persisted; it removes itself from
// the store once its duration elapses, whether or not anything rendered it.
type Toast struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	Type    string `json:"type"`
}
