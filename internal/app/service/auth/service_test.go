package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/remindyoursubs/subtrack/internal/models"
	cfgpkg "github.com/remindyoursubs/subtrack/pkg/config"
)

func testService(secret string) *Service {
	cfg := &cfgpkg.Config{}
	cfg.Auth.JWTSecret = secret
	cfg.Auth.TokenTTLDay = 7
	return NewService(nil, zap.NewNop().Sugar(), cfg)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testService("test-secret")

	res, err := svc.issue(&models.User{ID: "user-1", Email: "a@b.test"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	userID, err := svc.ParseToken(res.Token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := testService("test-secret")

	_, err := svc.ParseToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := testService("secret-a")
	verifier := testService("secret-b")

	res, err := issuer.issue(&models.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = verifier.ParseToken(res.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestCredentialsValidate(t *testing.T) {
	cases := []struct {
		name    string
		creds   Credentials
		wantErr bool
	}{
		{name: "valid", creds: Credentials{Email: "a@b.test", Password: "longenough"}},
		{name: "missing email", creds: Credentials{Password: "longenough"}, wantErr: true},
		{name: "not an address", creds: Credentials{Email: "nope", Password: "longenough"}, wantErr: true},
		{name: "short password", creds: Credentials{Email: "a@b.test", Password: "short"}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.creds.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
