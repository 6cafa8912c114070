package usercontext

// Locals keys shared between the middleware and the route guards.
const (
	KeyFromProtected = "FROM_PROTECTED"
	KeyIsAdmin       = "isAdmin"
)
