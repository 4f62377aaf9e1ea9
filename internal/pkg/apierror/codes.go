// Package apierror classifies failed taxe API calls and runs the matching recovery.
//
// The server reports every failure as {"code": <int>, "message": <string>}. Codes
// map to a Reason through CodeTable, reasons map to a recovery Kind through
// KindTable, and the Classifier applies the recovery for that kind. Both tables are
// plain data so they can be checked exhaustively.
package apierror

import "sort"

// Code is the numeric error code carried in an API error body
type Code int

const (
	CodeInternalServer                  Code = 0
	CodeInvalidToken                    Code = 1
	CodeTokenExpired                    Code = 2
	CodeMissingToken                    Code = 3
	CodeNoUsersFound                    Code = 4
	CodeUserAlreadyExists               Code = 5
	CodeAuthenticationFailed            Code = 6
	CodeValidation                      Code = 7
	CodeInvalidObjectID                 Code = 8
	CodeUnauthorizedEdit                Code = 9
	CodeBookingNotFound                 Code = 10
	CodeCustomerAlreadyHasActiveBooking Code = 11
	CodeUnauthorizedView                Code = 12
	CodeInvalidRole                     Code = 13
	CodeMissingAuthentication           Code = 14
	CodeCompanyNotFound                 Code = 15
	CodeDriverAlreadyAdded              Code = 16
)

// Reason names the server-side error a code stands for
type Reason string

const (
	ReasonInternalError                   Reason = "InternalError"
	ReasonInvalidToken                    Reason = "InvalidToken"
	ReasonTokenExpired                    Reason = "TokenExpired"
	ReasonMissingToken                    Reason = "MissingToken"
	ReasonNoUsersFound                    Reason = "NoUsersFound"
	ReasonUserAlreadyExists               Reason = "UserAlreadyExists"
	ReasonAuthenticationFailed            Reason = "AuthenticationFailed"
	ReasonValidationError                 Reason = "ValidationError"
	ReasonInvalidObjectID                 Reason = "InvalidObjectId"
	ReasonUnauthorizedEdit                Reason = "UnauthorizedEdit"
	ReasonBookingNotFound                 Reason = "BookingNotFound"
	ReasonCustomerAlreadyHasActiveBooking Reason = "CustomerAlreadyHasActiveBooking"
	ReasonUnauthorizedView                Reason = "UnauthorizedView"
	ReasonInvalidRole                     Reason = "InvalidRole"
	ReasonMissingAuthentication           Reason = "MissingAuthentication"
	ReasonCompanyNotFound                 Reason = "CompanyNotFound"
	ReasonDriverAlreadyAdded              Reason = "DriverAlreadyAdded"
)

// CodeTable is the fixed code contract with the server. Treat as read-only.
var CodeTable = map[Code]Reason{
	CodeInternalServer:                  ReasonInternalError,
	CodeInvalidToken:                    ReasonInvalidToken,
	CodeTokenExpired:                    ReasonTokenExpired,
	CodeMissingToken:                    ReasonMissingToken,
	CodeNoUsersFound:                    ReasonNoUsersFound,
	CodeUserAlreadyExists:               ReasonUserAlreadyExists,
	CodeAuthenticationFailed:            ReasonAuthenticationFailed,
	CodeValidation:                      ReasonValidationError,
	CodeInvalidObjectID:                 ReasonInvalidObjectID,
	CodeUnauthorizedEdit:                ReasonUnauthorizedEdit,
	CodeBookingNotFound:                 ReasonBookingNotFound,
	CodeCustomerAlreadyHasActiveBooking: ReasonCustomerAlreadyHasActiveBooking,
	CodeUnauthorizedView:                ReasonUnauthorizedView,
	CodeInvalidRole:                     ReasonInvalidRole,
	CodeMissingAuthentication:           ReasonMissingAuthentication,
	CodeCompanyNotFound:                 ReasonCompanyNotFound,
	CodeDriverAlreadyAdded:              ReasonDriverAlreadyAdded,
}

// ReasonForCode looks code up in CodeTable; unknown codes are internal errors
func ReasonForCode(code Code) Reason {
	if r, ok := CodeTable[code]; ok {
		return r
	}
	return ReasonInternalError
}

// Codes returns every code in CodeTable in ascending order
func Codes() []Code {
	codes := make([]Code, 0, len(CodeTable))
	for c := range CodeTable {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// messages are the user-facing texts per reason
var messages = map[Reason]string{
	ReasonInternalError:                   "Something went wrong on our side. Please try again later.",
	ReasonInvalidToken:                    "Your session is no longer valid. Please sign in again.",
	ReasonTokenExpired:                    "Your session has expired. Please sign in again.",
	ReasonMissingToken:                    "You need to sign in to continue.",
	ReasonNoUsersFound:                    "No matching users were found.",
	ReasonUserAlreadyExists:               "An account with this email already exists.",
	ReasonAuthenticationFailed:            "Incorrect email or password.",
	ReasonValidationError:                 "Some of the details you entered are not valid.",
	ReasonInvalidObjectID:                 "The requested item could not be identified.",
	ReasonUnauthorizedEdit:                "You are not allowed to change this.",
	ReasonBookingNotFound:                 "That booking could not be found.",
	ReasonCustomerAlreadyHasActiveBooking: "You already have an active booking.",
	ReasonUnauthorizedView:                "You are not allowed to view this.",
	ReasonInvalidRole:                     "Your account cannot perform this action.",
	ReasonMissingAuthentication:           "Please provide your email and password.",
	ReasonCompanyNotFound:                 "That company could not be found.",
	ReasonDriverAlreadyAdded:              "This driver already belongs to the company.",
}

// MessageFor returns the user-facing text for reason
func MessageFor(reason Reason) string {
	if m, ok := messages[reason]; ok {
		return m
	}
	return messages[ReasonInternalError]
}
