package middleware

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen/quotations-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotations-service/internal/platform/config"
	"github.com/jsamuelsen/quotations-service/internal/platform/logging"
)

const (
	// ContextKeyClaims is the gin context key for storing extracted claims.
	ContextKeyClaims = "claims"

	// Default header names if not configured.
	defaultSubjectHeader = "X-User-ID"
	defaultNameHeader    = "X-User-Name"
	defaultRolesHeader   = "X-User-Roles"
	defaultScopesHeader  = "X-User-Scopes"

	bearerPrefix = "Bearer "
)

// Roles recognised by the review routes.
const (
	RoleReviewer = "reviewer"
	RoleAdmin    = "admin"
)

// Claims identifies the caller of a request.
type Claims struct {
	// Subject is the user ID (sub claim).
	Subject string

	// Username is the display name (name claim). It may be empty.
	Username string

	// Roles is the list of roles assigned to the user.
	Roles []string

	// Scopes is the list of OAuth2 scopes granted.
	Scopes []string
}

// HasRole checks if the user has the specified role.
func (c *Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// HasAnyRole checks if the user has any of the specified roles.
func (c *Claims) HasAnyRole(roles ...string) bool {
	return slices.ContainsFunc(roles, c.HasRole)
}

// HasScope checks if the user has the specified scope.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// tokenClaims is the JWT payload accepted by Authenticate.
type tokenClaims struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
	Scope string   `json:"scope"`
	jwt.RegisteredClaims
}

// ParseToken validates an HS256 bearer token against cfg and returns its claims.
func ParseToken(raw string, cfg *config.AuthConfig) (*Claims, error) {
	if cfg == nil || cfg.JWTSecret == "" {
		return nil, errors.New("bearer tokens are not accepted")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	var tc tokenClaims

	_, err := jwt.ParseWithClaims(raw, &tc, func(*jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	if tc.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &Claims{
		Subject:  tc.Subject,
		Username: tc.Name,
		Roles:    tc.Roles,
		Scopes:   parseSpaceSeparated(tc.Scope),
	}, nil
}

// ExtractClaims extracts user claims from gateway identity headers.
// Header names are configurable via AuthConfig.
func ExtractClaims(c *gin.Context, cfg *config.AuthConfig) *Claims {
	subjectHeader := defaultSubjectHeader
	nameHeader := defaultNameHeader
	rolesHeader := defaultRolesHeader
	scopesHeader := defaultScopesHeader

	if cfg != nil {
		subjectHeader = headerOr(cfg.SubjectHeader, subjectHeader)
		nameHeader = headerOr(cfg.NameHeader, nameHeader)
		rolesHeader = headerOr(cfg.RolesHeader, rolesHeader)
		scopesHeader = headerOr(cfg.ScopesHeader, scopesHeader)
	}

	claims := &Claims{
		Subject:  strings.TrimSpace(c.GetHeader(subjectHeader)),
		Username: strings.TrimSpace(c.GetHeader(nameHeader)),
	}

	// Parse roles (comma-separated)
	if rolesStr := c.GetHeader(rolesHeader); rolesStr != "" {
		claims.Roles = parseCommaSeparated(rolesStr)
	}

	// Scopes are space-separated (RFC 6749).
	if scopesStr := c.GetHeader(scopesHeader); scopesStr != "" {
		claims.Scopes = parseSpaceSeparated(scopesStr)
	}

	return claims
}

// Authenticate identifies the caller from a bearer token or, when the gateway is trusted,
// from identity headers. Requests without credentials continue anonymously; a bearer token
// that fails validation is rejected with 401.
func Authenticate(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var claims *Claims

		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, bearerPrefix) {
			parsed, err := ParseToken(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)), cfg)
			if err != nil {
				logging.FromContext(c.Request.Context()).Debug("rejecting bearer token", "error", err)
				dto.AbortWithErrorCode(c, dto.ErrorCodeUnauthorized, "invalid bearer token")
				return
			}
			claims = parsed
		} else if cfg != nil && cfg.TrustGatewayHeaders {
			claims = ExtractClaims(c, cfg)
		}

		if claims != nil && claims.Subject != "" {
			c.Set(ContextKeyClaims, claims)
			c.Request = c.Request.WithContext(logging.WithUserID(c.Request.Context(), claims.Subject))
		}

		c.Next()
	}
}

// GetClaims retrieves claims from the gin context.
// Returns nil if the caller is anonymous.
func GetClaims(c *gin.Context) *Claims {
	if claims, exists := c.Get(ContextKeyClaims); exists {
		if cl, ok := claims.(*Claims); ok {
			return cl
		}
	}

	return nil
}

// RequireAuth rejects anonymous callers with 401. It must run after Authenticate.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetClaims(c) == nil {
			dto.AbortWithErrorCode(c, dto.ErrorCodeUnauthorized, "authentication required")
			return
		}

		c.Next()
	}
}

// RequireAnyRole returns middleware that requires at least one of the roles.
// Anonymous callers get 401, authenticated callers without the role get 403.
func RequireAnyRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if AuthorizeAnyRole(c, roles...) {
			c.Next()
		}
	}
}

// AuthorizeAnyRole is the check behind RequireAnyRole, for handlers that restrict only some
// requests. On failure it aborts with 401 or 403 and returns false.
func AuthorizeAnyRole(c *gin.Context, roles ...string) bool {
	claims := GetClaims(c)

	switch {
	case claims == nil:
		dto.AbortWithErrorCode(c, dto.ErrorCodeUnauthorized, "authentication required")
		return false
	case !claims.HasAnyRole(roles...):
		dto.AbortWithErrorCode(c, dto.ErrorCodeForbidden,
			"insufficient permissions: one of roles ["+strings.Join(roles, ", ")+"] required")
		return false
	}

	return true
}

func headerOr(name, fallback string) string {
	if name == "" {
		return fallback
	}

	return name
}

// parseCommaSeparated splits a comma-separated string into trimmed values.
func parseCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")

	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// parseSpaceSeparated splits a space-separated string (OAuth2 scope format).
func parseSpaceSeparated(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return strings.Fields(s)
}
