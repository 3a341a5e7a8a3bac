package middleware

import (
	"context"
	"net/http"
	"strings"

	"petmate/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// debugUserHeader inyecta una identidad sin token cuando no hay verifier
// (modo dev / tests). Nunca se consulta si hay verifier configurado.
const debugUserHeader = "X-Debug-User-ID"

// AuthContext adjunta los claims de sesión al contexto del request cuando
// puede resolverlos, y deja pasar el request sin claims cuando no. Nunca
// responde 401 por sí mismo: cada handler decide si exige identidad, de
// modo que register/login y las rutas públicas comparten el mismo chain.
func AuthContext(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := resolveClaims(r, verifier)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveClaims(r *http.Request, verifier auth.Verifier) (auth.Claims, bool) {
	if verifier == nil {
		uid := strings.TrimSpace(r.Header.Get(debugUserHeader))
		if uid == "" {
			return auth.Claims{}, false
		}
		return auth.Claims{UserID: uid, Username: uid}, true
	}

	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return auth.Claims{}, false
	}

	claims, err := verifier.Verify(r.Context(), token)
	if err != nil {
		// Token inválido o expirado: sigue como anónimo, el handler
		// devolverá 401 si la ruta lo exige.
		return auth.Claims{}, false
	}
	return claims, true
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
