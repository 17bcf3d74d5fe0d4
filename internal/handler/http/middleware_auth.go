package http

import (
	"net/http"

	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/utils"
	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/rs/zerolog"
)

// Identity headers set by a fronting reverse proxy in header auth mode.
const (
	principalIDHeader   = "X-MS-CLIENT-PRINCIPAL-ID"
	principalNameHeader = "X-MS-CLIENT-PRINCIPAL-NAME"
)

// auth resolves the caller of a vault request.
//
// It collects the bearer token and the proxy identity headers, lets
// [service.AuthService.ResolveCaller] decide which of them counts under the
// configured mode, and stores the caller in the request context via
// [utils.WithCaller]. Requests without a resolvable caller get 401 and never
// reach the handler.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		credentials := models.Credentials{
			PrincipalID:   r.Header.Get(principalIDHeader),
			PrincipalName: r.Header.Get(principalNameHeader),
		}
		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			token, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
			}
			credentials.BearerToken = token
		}

		ctx := r.Context()
		caller, err := h.services.AuthService.ResolveCaller(ctx, credentials)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("owner_id", caller.ID)
		})
		ctx = l.WithContext(utils.WithCaller(ctx, caller))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
