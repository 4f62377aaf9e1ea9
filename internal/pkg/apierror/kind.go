package apierror

// Kind is the recovery class of a failure
type Kind string

const (
	KindSessionInvalid      Kind = "SessionInvalid"
	KindCredentialsRejected Kind = "CredentialsRejected"
	KindDomainRejected      Kind = "DomainRejected"
	KindNetworkUnavailable  Kind = "NetworkUnavailable"
	KindInternalError       Kind = "InternalError"
)

// KindTable assigns every server reason its recovery class. Treat as read-only.
var KindTable = map[Reason]Kind{
	ReasonInvalidToken: KindSessionInvalid,
	ReasonMissingToken: KindSessionInvalid,
	ReasonTokenExpired: KindSessionInvalid,

	ReasonAuthenticationFailed: KindCredentialsRejected,

	ReasonNoUsersFound:                    KindDomainRejected,
	ReasonUserAlreadyExists:               KindDomainRejected,
	ReasonCustomerAlreadyHasActiveBooking: KindDomainRejected,
	ReasonValidationError:                 KindDomainRejected,
	ReasonInvalidObjectID:                 KindDomainRejected,
	ReasonUnauthorizedEdit:                KindDomainRejected,
	ReasonUnauthorizedView:                KindDomainRejected,
	ReasonBookingNotFound:                 KindDomainRejected,
	ReasonCompanyNotFound:                 KindDomainRejected,
	ReasonInvalidRole:                     KindDomainRejected,
	ReasonDriverAlreadyAdded:              KindDomainRejected,
	ReasonMissingAuthentication:           KindDomainRejected,

	ReasonInternalError: KindInternalError,
}

// KindForReason looks reason up in KindTable; unknown reasons are internal errors
func KindForReason(reason Reason) Kind {
	if k, ok := KindTable[reason]; ok {
		return k
	}
	return KindInternalError
}

// Action describes the recovery that was chosen for a failure
type Action string

const (
	// ActionReauthenticate: session cleared, caller must go to the sign-in entry point
	ActionReauthenticate Action = "reauthenticate"
	// ActionMarkCredentials: show the message and flag the credential inputs
	ActionMarkCredentials Action = "mark_credentials"
	// ActionShowMessage: show the mapped message, user may correct and resubmit
	ActionShowMessage Action = "show_message"
	// ActionShowConnectionNotice: blocking "check your connection" notice
	ActionShowConnectionNotice Action = "show_connection_notice"
	// ActionShowGenericFailure: generic failure message, no automatic retry
	ActionShowGenericFailure Action = "show_generic_failure"
)

// Operation identifies the API call that failed
type Operation string

const (
	OpLogin            Operation = "login"
	OpRegister         Operation = "register"
	OpGetUser          Operation = "get_user"
	OpEditUser         Operation = "edit_user"
	OpListUserBookings Operation = "list_user_bookings"
	OpGetBooking       Operation = "get_booking"
	OpCreateBooking    Operation = "create_booking"
	OpEditBooking      Operation = "edit_booking"
	OpRemoveDriver     Operation = "remove_driver"
)

// Credential input names marked invalid after a rejected login
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	networkUnavailableMessage = "Unable to reach taxe. Please check your connection and try again."
)
