package apierror

import (
	"context"
	"encoding/json"
	"errors"

	appctx "github.com/piresc/taxe/internal/pkg/context"
	"github.com/piresc/taxe/internal/pkg/decoder"
	"github.com/piresc/taxe/internal/pkg/logger"
	"github.com/piresc/taxe/internal/pkg/session"
)

// Result describes a classified failure and the recovery applied to it
type Result struct {
	Op         Operation
	Kind       Kind
	Reason     Reason
	Code       Code
	StatusCode int
	// Message is the user-facing text; ServerMessage is what the API sent, if anything
	Message       string
	ServerMessage string
	Action        Action
	// InvalidFields names the inputs to flag, set only for rejected logins
	InvalidFields      []string
	SessionInvalidated bool
}

// Recovery is the caller-side collaborator that performs the UI follow-up.
// Dispatch calls exactly one of these per failure.
type Recovery interface {
	NavigateToAuth(r Result)
	MarkInvalidFields(r Result)
	ShowMessage(r Result)
	ShowConnectionNotice(r Result)
	ShowGenericFailure(r Result)
}

// errorBody is the wire shape of an API failure. Only code is required.
type errorBody struct {
	Code    *json.Number `json:"code"`
	Message string       `json:"message"`
}

// Classifier maps failed calls to a Kind, clearing the session when the server
// rejects the token
type Classifier struct {
	store  session.Invalidator
	logger *logger.ZapLogger
}

// NewClassifier creates a classifier that invalidates store on session errors
func NewClassifier(store session.Invalidator, log *logger.ZapLogger) *Classifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &Classifier{store: store, logger: log}
}

// Classify classifies err, the failure of op. SessionInvalid failures clear the
// session before returning. A nil err yields the zero Result.
func (c *Classifier) Classify(ctx context.Context, op Operation, err error) Result {
	if err == nil {
		return Result{}
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified.Result
	}

	var res Result
	var httpErr *HTTPError
	var decodeErr *decoder.DecodeError
	switch {
	case errors.As(err, &httpErr):
		res = c.fromHTTP(httpErr)
	case errors.As(err, &decodeErr):
		res = Result{Kind: KindInternalError, Reason: ReasonInternalError}
	default:
		res = Result{Kind: KindNetworkUnavailable}
	}
	res.Op = op

	switch res.Kind {
	case KindSessionInvalid:
		res.Action = ActionReauthenticate
		res.Message = MessageFor(res.Reason)
		res.SessionInvalidated = c.invalidate(ctx, op)
	case KindCredentialsRejected:
		res.Message = MessageFor(res.Reason)
		res.Action = ActionShowMessage
		if op == OpLogin {
			res.Action = ActionMarkCredentials
			res.InvalidFields = []string{FieldEmail, FieldPassword}
		}
	case KindDomainRejected:
		res.Message = MessageFor(res.Reason)
		res.Action = ActionShowMessage
	case KindNetworkUnavailable:
		res.Message = networkUnavailableMessage
		res.Action = ActionShowConnectionNotice
	default:
		res.Kind = KindInternalError
		res.Reason = ReasonInternalError
		res.Message = MessageFor(ReasonInternalError)
		res.Action = ActionShowGenericFailure
	}

	fields := []logger.Field{
		logger.Op(string(op)),
		logger.String("kind", string(res.Kind)),
		logger.String("reason", string(res.Reason)),
		logger.Int("code", int(res.Code)),
		logger.Int("status", res.StatusCode),
		logger.Bool("session_invalidated", res.SessionInvalidated),
		logger.Err(err),
	}
	if requestID := appctx.GetRequestID(ctx); requestID != "" {
		fields = append(fields, logger.RequestID(requestID))
	}
	if action := appctx.GetOperation(ctx); action != "" {
		fields = append(fields, logger.String("action", action))
	}
	if res.Kind == KindInternalError {
		c.logger.Error("API call failed", fields...)
	} else {
		c.logger.Warn("API call failed", fields...)
	}

	return res
}

// Dispatch classifies err and hands the result to exactly one recovery method
func (c *Classifier) Dispatch(ctx context.Context, op Operation, err error, recovery Recovery) Result {
	res := c.Classify(ctx, op, err)
	if err == nil || recovery == nil {
		return res
	}

	switch res.Action {
	case ActionReauthenticate:
		recovery.NavigateToAuth(res)
	case ActionMarkCredentials:
		recovery.MarkInvalidFields(res)
	case ActionShowMessage:
		recovery.ShowMessage(res)
	case ActionShowConnectionNotice:
		recovery.ShowConnectionNotice(res)
	default:
		recovery.ShowGenericFailure(res)
	}
	return res
}

// Wrap classifies err and returns it as an *Error, or nil for a nil err.
// A *decoder.DecodeError is a contract bug, not a recoverable failure, and is
// returned unchanged.
func (c *Classifier) Wrap(ctx context.Context, op Operation, err error) error {
	if err == nil {
		return nil
	}
	var decodeErr *decoder.DecodeError
	if errors.As(err, &decodeErr) {
		c.logger.Error("Unexpected API response",
			logger.Op(string(op)),
			logger.String("field", decodeErr.Field),
			logger.Err(err))
		return err
	}
	res := c.Classify(ctx, op, err)
	return &Error{Result: res, Err: err}
}

func (c *Classifier) fromHTTP(httpErr *HTTPError) Result {
	res := Result{StatusCode: httpErr.StatusCode}

	var body errorBody
	if err := json.Unmarshal(httpErr.Body, &body); err != nil || body.Code == nil {
		res.Kind = KindInternalError
		res.Reason = ReasonInternalError
		return res
	}
	code, ok := decoder.WholeNumber(*body.Code)
	if !ok {
		res.Kind = KindInternalError
		res.Reason = ReasonInternalError
		return res
	}

	res.Code = Code(code)
	res.Reason = ReasonForCode(res.Code)
	res.Kind = KindForReason(res.Reason)
	res.ServerMessage = body.Message
	return res
}

// invalidate clears the session and reports whether the store is now cleared.
// A store failure is logged and does not change the recovery.
func (c *Classifier) invalidate(ctx context.Context, op Operation) bool {
	if c.store == nil {
		return false
	}
	if err := c.store.Invalidate(ctx); err != nil {
		c.logger.Error("Failed to invalidate session", logger.Op(string(op)), logger.Err(err))
		return false
	}
	return true
}
