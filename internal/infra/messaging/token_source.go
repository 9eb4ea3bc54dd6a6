package messaging

import (
	"context"

	"gatepass/internal/domain/service"

	"github.com/pkg/errors"
)

// staticTokenSource hands out a token fixed at construction. Real devices
// receive their token from the platform push SDK and report it through the
// device endpoint; the static source covers headless runs and tests.
type staticTokenSource struct {
	token string
}

// NewStaticTokenSource creates a token source returning the given token.
func NewStaticTokenSource(token string) service.TokenSource {
	return &staticTokenSource{token: token}
}

func (s *staticTokenSource) Token(ctx context.Context) (string, error) {
	if s.token == "" {
		return "", errors.New("no push token configured")
	}

	return s.token, nil
}
