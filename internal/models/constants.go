package models

const (
	RoleUser    = "user"
	RoleAdmin   = "admin"
	RoleManager = "manager"

	MenuStatusAvailable  = "available"
	MenuStatusOutOfStock = "out_of_stock"

	UserStatusActive  = "active"
	UserStatusOnLeave = "on_leave"

	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"

	ToastSuccess = "success"
	ToastError   = "error"
	ToastInfo    = "info"
	ToastWarning = "warning"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Storage keys. Values are JSON documents except theme, sidebarOpen and
// isLoggedIn, which are bare literals as the original layout had them.
const (
	KeyTheme         = "theme"
	KeySidebarOpen   = "sidebarOpen"
	KeyIsLoggedIn    = "isLoggedIn"
	KeyUser          = "user"
	KeyUsers         = "users"
	KeyNotifications = "notifications"
	KeyAppSettings   = "appSettings"
	KeyOrders        = "orders"
)

// DateLayout is the day-granularity stamp used for createdAt/updatedAt fields.
const DateLayout = "2006-01-02"
