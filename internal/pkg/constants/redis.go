package constants

// Redis key formats for session state, scoped per device namespace
const (
	KeySessionToken         = "taxe:session:%s:token"          // Format: taxe:session:{namespace}:token
	KeySessionUser          = "taxe:session:%s:user"           // Format: taxe:session:{namespace}:user
	KeySessionActiveBooking = "taxe:session:%s:active_booking" // Format: taxe:session:{namespace}:active_booking
)
