package constants

// Member roles within a workspace
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// Access levels
const (
	AccessLevelRead  = "read"
	AccessLevelWrite = "write"
	AccessLevelAdmin = "admin"
)

// Account types
const (
	AccountTypeOwner = "owner"
	AccountTypeAdmin = "admin"
)

// Auth types
const (
	AuthTypeAPIKey = "api_key"
	AuthTypeJWT    = "jwt"
)
