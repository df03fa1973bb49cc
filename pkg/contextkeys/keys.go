package contextkeys

type contextKey string

const (
	UserIDKey      contextKey = "UserID"
	UserNameKey    contextKey = "UserName"
	UserRoleKey    contextKey = "UserRole"
	ZaposleniIDKey contextKey = "ZaposleniID"
)
