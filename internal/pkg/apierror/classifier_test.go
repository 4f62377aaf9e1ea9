package apierror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	appctx "github.com/piresc/taxe/internal/pkg/context"
	"github.com/piresc/taxe/internal/pkg/decoder"
	"github.com/piresc/taxe/internal/pkg/logger"
	"github.com/piresc/taxe/internal/pkg/session"
)

type mockRecovery struct {
	mock.Mock
}

func (m *mockRecovery) NavigateToAuth(r Result)       { m.Called(r) }
func (m *mockRecovery) MarkInvalidFields(r Result)    { m.Called(r) }
func (m *mockRecovery) ShowMessage(r Result)          { m.Called(r) }
func (m *mockRecovery) ShowConnectionNotice(r Result) { m.Called(r) }
func (m *mockRecovery) ShowGenericFailure(r Result)   { m.Called(r) }

type failingStore struct{}

func (failingStore) Invalidate(context.Context) error { return errors.New("redis down") }
func (failingStore) IsValid(context.Context) bool     { return true }

func httpFailure(code int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusBadRequest,
		Body:       []byte(fmt.Sprintf(`{"code":%d,"message":%q}`, code, message)),
	}
}

func signedIn(t *testing.T) *session.MemoryStore {
	t.Helper()
	s := session.NewMemoryStore()
	require.NoError(t, s.PutToken(context.Background(), "token"))
	return s
}

func TestCodeTable(t *testing.T) {
	want := map[Code]Kind{
		0:  KindInternalError,
		1:  KindSessionInvalid,
		2:  KindSessionInvalid,
		3:  KindSessionInvalid,
		4:  KindDomainRejected,
		5:  KindDomainRejected,
		6:  KindCredentialsRejected,
		7:  KindDomainRejected,
		8:  KindDomainRejected,
		9:  KindDomainRejected,
		10: KindDomainRejected,
		11: KindDomainRejected,
		12: KindDomainRejected,
		13: KindDomainRejected,
		14: KindDomainRejected,
		15: KindDomainRejected,
		16: KindDomainRejected,
	}

	assert.Len(t, Codes(), 17)
	for _, code := range Codes() {
		assert.Equal(t, want[code], KindForReason(ReasonForCode(code)), "code %d", code)
	}

	assert.Equal(t, ReasonTokenExpired, ReasonForCode(2))
	assert.Equal(t, ReasonInvalidObjectID, ReasonForCode(8))
	assert.Equal(t, ReasonInternalError, ReasonForCode(99))
	assert.Equal(t, ReasonInternalError, ReasonForCode(-1))
	assert.Equal(t, KindInternalError, KindForReason("Bogus"))

	for reason := range KindTable {
		assert.NotEmpty(t, MessageFor(reason), "reason %s", reason)
	}
}

func TestClassify_EveryCode(t *testing.T) {
	for _, code := range Codes() {
		t.Run(string(ReasonForCode(code)), func(t *testing.T) {
			store := signedIn(t)
			c := NewClassifier(store, logger.NewNop())

			res := c.Classify(context.Background(), OpGetBooking, httpFailure(int(code), "x"))

			assert.Equal(t, KindForReason(ReasonForCode(code)), res.Kind)
			assert.Equal(t, code, res.Code)
			assert.Equal(t, res.Kind == KindSessionInvalid, res.SessionInvalidated)
			assert.Equal(t, res.Kind != KindSessionInvalid, store.IsValid(context.Background()))
		})
	}
}

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		op          Operation
		err         error
		kind        Kind
		action      Action
		invalidated bool
		fields      []string
	}{
		{
			name:        "token expired",
			op:          OpGetBooking,
			err:         &HTTPError{StatusCode: 401, Body: []byte(`{"code":2,"message":"expired"}`)},
			kind:        KindSessionInvalid,
			action:      ActionReauthenticate,
			invalidated: true,
		},
		{
			name:   "unknown code",
			op:     OpGetBooking,
			err:    &HTTPError{StatusCode: 500, Body: []byte(`{"code":99,"message":"?"}`)},
			kind:   KindInternalError,
			action: ActionShowGenericFailure,
		},
		{
			name:   "transport failure",
			op:     OpGetBooking,
			err:    &TransportError{Err: errors.New("dial tcp: connection refused")},
			kind:   KindNetworkUnavailable,
			action: ActionShowConnectionNotice,
		},
		{
			name:   "bare error is a transport failure",
			op:     OpGetBooking,
			err:    context.DeadlineExceeded,
			kind:   KindNetworkUnavailable,
			action: ActionShowConnectionNotice,
		},
		{
			name:   "malformed body",
			op:     OpGetBooking,
			err:    &HTTPError{StatusCode: 502, Body: []byte(`<html>Bad Gateway</html>`)},
			kind:   KindInternalError,
			action: ActionShowGenericFailure,
		},
		{
			name:   "body without code",
			op:     OpGetBooking,
			err:    &HTTPError{StatusCode: 400, Body: []byte(`{"message":"nope"}`)},
			kind:   KindInternalError,
			action: ActionShowGenericFailure,
		},
		{
			name:   "non numeric code",
			op:     OpGetBooking,
			err:    &HTTPError{StatusCode: 400, Body: []byte(`{"code":"two","message":"nope"}`)},
			kind:   KindInternalError,
			action: ActionShowGenericFailure,
		},
		{
			name:   "fractional code",
			op:     OpGetBooking,
			err:    &HTTPError{StatusCode: 400, Body: []byte(`{"code":2.5,"message":"nope"}`)},
			kind:   KindInternalError,
			action: ActionShowGenericFailure,
		},
		{
			name:        "code without message",
			op:          OpGetBooking,
			err:         &HTTPError{StatusCode: 401, Body: []byte(`{"code":2}`)},
			kind:        KindSessionInvalid,
			action:      ActionReauthenticate,
			invalidated: true,
		},
		{
			name:        "whole float code",
			op:          OpGetBooking,
			err:         &HTTPError{StatusCode: 401, Body: []byte(`{"code":1.0,"message":"invalid"}`)},
			kind:        KindSessionInvalid,
			action:      ActionReauthenticate,
			invalidated: true,
		},
		{
			name:   "rejected login marks credentials",
			op:     OpLogin,
			err:    httpFailure(6, "bad"),
			kind:   KindCredentialsRejected,
			action: ActionMarkCredentials,
			fields: []string{FieldEmail, FieldPassword},
		},
		{
			name:   "rejected credentials outside login",
			op:     OpEditUser,
			err:    httpFailure(6, "bad"),
			kind:   KindCredentialsRejected,
			action: ActionShowMessage,
		},
		{
			name:   "domain rejection",
			op:     OpCreateBooking,
			err:    fmt.Errorf("create booking: %w", httpFailure(11, "active")),
			kind:   KindDomainRejected,
			action: ActionShowMessage,
		},
		{
			name:   "decode failure",
			op:     OpGetBooking,
			err:    &decoder.DecodeError{Field: "status", Reason: "unknown booking status"},
			kind:   KindInternalError,
			action: ActionShowGenericFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := signedIn(t)
			c := NewClassifier(store, logger.NewNop())

			res := c.Classify(context.Background(), tt.op, tt.err)

			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.action, res.Action)
			assert.Equal(t, tt.invalidated, res.SessionInvalidated)
			assert.Equal(t, tt.fields, res.InvalidFields)
			assert.Equal(t, tt.op, res.Op)
			assert.NotEmpty(t, res.Message)
			assert.Equal(t, !tt.invalidated, store.IsValid(context.Background()))
		})
	}
}

func TestClassify_ServerMessageIsKept(t *testing.T) {
	c := NewClassifier(session.NewMemoryStore(), nil)
	res := c.Classify(context.Background(), OpRegister, httpFailure(5, "email taken"))

	assert.Equal(t, "email taken", res.ServerMessage)
	assert.Equal(t, MessageFor(ReasonUserAlreadyExists), res.Message)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestClassify_InvalidatesOnce(t *testing.T) {
	store := signedIn(t)
	c := NewClassifier(store, logger.NewNop())
	failure := &HTTPError{StatusCode: 401, Body: []byte(`{"code":2,"message":"expired"}`)}

	first := c.Classify(context.Background(), OpGetBooking, failure)
	second := c.Classify(context.Background(), OpListUserBookings, failure)

	assert.True(t, first.SessionInvalidated)
	assert.True(t, second.SessionInvalidated)
	assert.Equal(t, 1, store.Invalidations())
}

func TestClassify_ConcurrentSessionFailures(t *testing.T) {
	store := signedIn(t)
	c := NewClassifier(store, logger.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(code int) {
			defer wg.Done()
			res := c.Classify(context.Background(), OpGetBooking, httpFailure(code, "x"))
			assert.Equal(t, KindSessionInvalid, res.Kind)
		}(1 + i%3)
	}
	wg.Wait()

	assert.Equal(t, 1, store.Invalidations())
}

func TestClassify_StoreFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	c := NewClassifier(failingStore{}, logger.FromZap(zap.New(core)))

	res := c.Classify(context.Background(), OpGetBooking, httpFailure(1, "bad token"))

	assert.Equal(t, KindSessionInvalid, res.Kind)
	assert.Equal(t, ActionReauthenticate, res.Action)
	assert.False(t, res.SessionInvalidated)
	assert.Equal(t, 1, logs.FilterMessage("Failed to invalidate session").Len())
}

func TestClassify_AlreadyClassified(t *testing.T) {
	store := signedIn(t)
	c := NewClassifier(store, logger.NewNop())

	wrapped := c.Wrap(context.Background(), OpGetBooking, httpFailure(3, "missing"))
	require.Error(t, wrapped)

	res := c.Classify(context.Background(), OpGetBooking, fmt.Errorf("usecase: %w", wrapped))
	assert.Equal(t, KindSessionInvalid, res.Kind)
	assert.Equal(t, 1, store.Invalidations())

	assert.NoError(t, c.Wrap(context.Background(), OpGetBooking, nil))
	assert.Equal(t, Result{}, c.Classify(context.Background(), OpGetBooking, nil))
}

func TestClassify_LogsClassification(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := NewClassifier(session.NewMemoryStore(), logger.FromZap(zap.New(core)))

	ctx := appctx.WithOperation(appctx.WithRequestID(context.Background(), "req-7"), "book")
	c.Classify(ctx, OpCreateBooking, httpFailure(10, "missing"))

	entries := logs.FilterMessage("API call failed").All()
	require.Len(t, entries, 1)
	logged := entries[0].ContextMap()
	assert.Equal(t, "req-7", logged["request_id"])
	assert.Equal(t, "book", logged["action"])
	assert.Equal(t, "create_booking", logged["op"])
	assert.Equal(t, "DomainRejected", logged["kind"])
	assert.Equal(t, "BookingNotFound", logged["reason"])
	assert.Equal(t, int64(10), logged["code"])
}

func TestDispatch_InvokesExactlyOneRecovery(t *testing.T) {
	tests := []struct {
		name   string
		op     Operation
		err    error
		method string
	}{
		{name: "session invalid", op: OpGetBooking, err: httpFailure(2, "expired"), method: "NavigateToAuth"},
		{name: "login rejected", op: OpLogin, err: httpFailure(6, "bad"), method: "MarkInvalidFields"},
		{name: "credentials elsewhere", op: OpEditUser, err: httpFailure(6, "bad"), method: "ShowMessage"},
		{name: "domain", op: OpGetBooking, err: httpFailure(10, "gone"), method: "ShowMessage"},
		{name: "network", op: OpGetBooking, err: &TransportError{Err: errors.New("timeout")}, method: "ShowConnectionNotice"},
		{name: "internal", op: OpGetBooking, err: httpFailure(0, "boom"), method: "ShowGenericFailure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recovery := new(mockRecovery)
			recovery.On(tt.method, mock.AnythingOfType("apierror.Result")).Once()

			c := NewClassifier(signedIn(t), logger.NewNop())
			res := c.Dispatch(context.Background(), tt.op, tt.err, recovery)

			recovery.AssertExpectations(t)
			recovery.AssertNumberOfCalls(t, tt.method, 1)
			assert.Len(t, recovery.Calls, 1)
			assert.Equal(t, res, recovery.Calls[0].Arguments.Get(0))
		})
	}
}

func TestDispatch_NilError(t *testing.T) {
	recovery := new(mockRecovery)
	c := NewClassifier(session.NewMemoryStore(), logger.NewNop())

	res := c.Dispatch(context.Background(), OpGetBooking, nil, recovery)

	assert.Equal(t, Result{}, res)
	assert.Empty(t, recovery.Calls)
}

func TestError(t *testing.T) {
	c := NewClassifier(session.NewMemoryStore(), logger.NewNop())
	cause := httpFailure(7, "bad input")
	err := c.Wrap(context.Background(), OpCreateBooking, cause)

	res, ok := AsResult(err)
	require.True(t, ok)
	assert.Equal(t, ReasonValidationError, res.Reason)
	assert.True(t, IsKind(err, KindDomainRejected))
	assert.False(t, IsKind(err, KindSessionInvalid))
	assert.Contains(t, err.Error(), "create_booking")
	assert.Contains(t, err.Error(), "ValidationError")

	var httpErr *HTTPError
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, cause, httpErr)

	_, ok = AsResult(errors.New("plain"))
	assert.False(t, ok)
}

func TestWrap_DecodeErrorIsNotClassified(t *testing.T) {
	c := NewClassifier(signedIn(t), logger.NewNop())
	decodeErr := &decoder.DecodeError{Field: "customer", Reason: "expected string or object"}

	err := c.Wrap(context.Background(), OpGetBooking, fmt.Errorf("get booking: %w", decodeErr))

	_, ok := AsResult(err)
	assert.False(t, ok)
	var got *decoder.DecodeError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "customer", got.Field)
}
