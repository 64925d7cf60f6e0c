package constants

// Staff roles
const (
	RoleCashier = "CASHIER"
	RoleManager = "MANAGER"
)

// Allocation retry bounds. Identifier generation retries on unique
// collision up to these many times before giving up.
const (
	MaxIDAllocationRetries     = 10
	MaxTicketAllocationRetries = 5
)

// Gin context keys set by the auth middleware
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextUserRole = "user_role"
)
