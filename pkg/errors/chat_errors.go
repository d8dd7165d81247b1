package errors

var (
	// Domain errors — used by services and the access policy
	ErrUsernameTaken     = AlreadyExists("Username already exists")
	ErrUserNotFound      = Unauthorized("User not found")
	ErrInvalidPassword   = Unauthorized("Invalid password")
	ErrChannelNotFound   = NotFound("Channel not found")
	ErrLoginRequired     = Forbidden("Login required for locked channels")
	ErrLoginRequiredPost = Forbidden("Login required to post in locked channels")
	ErrMissingToken      = Unauthorized("Access denied. Please log in.")
	ErrInvalidToken      = Forbidden("Invalid or expired token")
	ErrUsernameRequired  = InvalidArg("Username required")
)

func ErrStore(cause error) error {
	return Wrap(CodeInternal, "storage failure", cause)
}
