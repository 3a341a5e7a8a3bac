package auth

import "context"

// Verifier verifica un token y devuelve claims o error.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Issuer emite un token de sesión para los claims dados.
type Issuer interface {
	Issue(ctx context.Context, claims Claims) (string, error)
}
