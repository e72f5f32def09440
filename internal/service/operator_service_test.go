package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/alexanderramin/pincecheck/internal/repository"
	"github.com/alexanderramin/pincecheck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOperatorService(t *testing.T, observers ...UseCaseObserver) OperatorService {
	t.Helper()
	repo := repository.NewSQLiteOperatorRepo(testutil.NewTestDB(t))
	return NewOperatorService(repo, observers...)
}

func TestAuthenticate_SeededAdmin(t *testing.T) {
	svc := newTestOperatorService(t)

	op, err := svc.Authenticate(context.Background(), testutil.AdminUser, testutil.AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, "admin", op.Username)
}

func TestAuthenticate_Failures(t *testing.T) {
	svc := newTestOperatorService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "password124"},
		{"empty password", "admin", ""},
		{"unknown user", "root", "password123"},
		{"case sensitive user", "Admin", "password123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := svc.Authenticate(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
			assert.Nil(t, op)
		})
	}
}

func TestAddOperator_StoresBcryptAndAuthenticates(t *testing.T) {
	svc := newTestOperatorService(t)
	ctx := context.Background()

	op, err := svc.AddOperator(ctx, "  ali ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "ali", op.Username)
	assert.Equal(t, domain.SchemeBcrypt, op.Scheme)
	assert.NotEqual(t, "s3cret", op.PasswordHash)

	_, err = svc.Authenticate(ctx, "ali", "s3cret")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "ali", "wrong")
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)

	ops, err := svc.ListOperators(ctx)
	require.NoError(t, err)
	assert.Len(t, ops, 2)
}

func TestAddOperator_Validation(t *testing.T) {
	svc := newTestOperatorService(t)
	ctx := context.Background()

	_, err := svc.AddOperator(ctx, " ", "x")
	assert.ErrorContains(t, err, "username is required")

	_, err = svc.AddOperator(ctx, "ali", "")
	assert.ErrorContains(t, err, "password is required")

	_, err = svc.AddOperator(ctx, "admin", "x")
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestVerifyPassword_Schemes(t *testing.T) {
	assert.True(t, VerifyPassword(domain.SchemeSHA256, HashSHA256("abc"), "abc"))
	assert.False(t, VerifyPassword(domain.SchemeSHA256, HashSHA256("abc"), "abd"))

	h, err := HashPassword(domain.SchemeBcrypt, "abc")
	require.NoError(t, err)
	assert.True(t, VerifyPassword(domain.SchemeBcrypt, h, "abc"))
	assert.False(t, VerifyPassword("md5", h, "abc"))

	_, err = HashPassword("md5", "abc")
	assert.Error(t, err)
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

func TestAuthenticate_EmitsUseCaseEvents(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestOperatorService(t, obs)
	ctx := context.Background()

	_, _ = svc.Authenticate(ctx, "admin", "password123")
	_, _ = svc.Authenticate(ctx, "admin", "nope")

	require.Len(t, obs.events, 2)
	assert.Equal(t, "authenticate", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.False(t, obs.events[1].Success)
	assert.ErrorIs(t, obs.events[1].Err, domain.ErrAuthenticationFailed)
	assert.Equal(t, "admin", obs.events[1].Fields["username"])
}

func TestLogUseCaseObserver_WritesKeyValueLines(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:      "transition",
		SessionID: "s-1",
		Success:   false,
		Err:       errors.New("boom"),
		Fields:    map[string]any{"action": "back"},
	})

	out := buf.String()
	assert.Contains(t, out, "use_case=transition")
	assert.Contains(t, out, "session=s-1")
	assert.Contains(t, out, "action=back")
	assert.Contains(t, out, "error=boom")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	obs := NewLogUseCaseObserver(nil, slog.LevelInfo)
	assert.IsType(t, NoopUseCaseObserver{}, obs)
}
