package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/utils"
	"github.com/MKhiriev/go-rsa-vault/models"
)

// authService is the concrete implementation of AuthService.
// It identifies callers either by an HS256 bearer token or by identity
// headers set by a trusted reverse proxy, depending on mode.
type authService struct {
	// mode is config.AuthModeJWT or config.AuthModeHeader.
	mode string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg. An empty auth mode selects JWT.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	mode := cfg.AuthMode
	if mode == "" {
		mode = config.AuthModeJWT
	}

	return &authService{
		mode:          mode,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// ResolveCaller identifies the caller.
//
// In JWT mode the bearer token is verified and its "sub" and "email" claims
// become the caller. In header mode PrincipalID is the owner id and
// PrincipalName, falling back to the id, is the email.
//
// Any failure is reported as ErrAuth wrapping ErrAuthRequired.
func (a *authService) ResolveCaller(ctx context.Context, credentials models.Credentials) (models.Caller, error) {
	log := logger.FromContext(ctx)

	switch a.mode {
	case config.AuthModeJWT:
		if credentials.BearerToken == "" {
			return models.Caller{}, fmt.Errorf("%w: %w", ErrAuth, ErrAuthRequired)
		}
		token, err := a.ParseToken(ctx, credentials.BearerToken)
		if err != nil {
			log.Debug().Err(err).Str("func", "authService.ResolveCaller").Msg("bearer token rejected")
			return models.Caller{}, fmt.Errorf("%w: %w: %w", ErrAuth, ErrAuthRequired, err)
		}
		return a.checkCallerLimits(ctx, token.Caller)
	case config.AuthModeHeader:
		if credentials.PrincipalID == "" {
			return models.Caller{}, fmt.Errorf("%w: %w", ErrAuth, ErrAuthRequired)
		}
		email := credentials.PrincipalName
		if email == "" {
			email = credentials.PrincipalID
		}
		return a.checkCallerLimits(ctx, models.Caller{ID: credentials.PrincipalID, Email: email})
	default:
		log.Error().Str("func", "authService.ResolveCaller").Str("mode", a.mode).Msg("unknown auth mode")
		return models.Caller{}, fmt.Errorf("%w: %s", ErrUnknownAuthMode, a.mode)
	}
}

// checkCallerLimits rejects identities that do not fit a vault record.
func (a *authService) checkCallerLimits(ctx context.Context, caller models.Caller) (models.Caller, error) {
	if caller.ExceedsLimits() {
		logger.FromContext(ctx).Debug().Str("func", "authService.checkCallerLimits").Int("id_length", len(caller.ID)).Msg("caller identity too long")
		return models.Caller{}, fmt.Errorf("%w: %w: %w", ErrAuth, ErrAuthRequired, ErrCallerTooLong)
	}
	return caller, nil
}

// CreateToken issues a signed JWT for the given caller.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, caller models.Caller) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, caller, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, missing subject)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
