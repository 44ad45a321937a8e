package jwt

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"

	"github.com/foratask/foratask-backend-go/internal/domain/employee"
)

var ErrInvalidSession = errors.New("invalid session claims")

// Session is the identity extracted from the verified token claims.
type Session struct {
	UserID    string
	CompanyID string
	Role      employee.Role
}

// SessionFromContext reads the verified JWT claims placed on the request
// context by the auth middleware.
func SessionFromContext(ctx context.Context) (Session, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Session{}, ErrInvalidSession
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Session{}, ErrInvalidSession
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return Session{}, ErrInvalidSession
	}
	role, ok := claims["role"].(string)
	if !ok {
		return Session{}, ErrInvalidSession
	}

	return Session{
		UserID:    userID,
		CompanyID: companyID,
		Role:      employee.Role(role),
	}, nil
}
