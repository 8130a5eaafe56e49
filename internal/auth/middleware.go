package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/constants"
	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/logger"
)

// AccessClaims is the shape of the bearer tokens issued by the identity
// provider. Only the claims the API consumes are declared.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthClient validates API keys and bearer tokens. Signing keys are fetched
// from the provider's JWKS endpoint and refreshed in the background.
type AuthClient struct {
	JWKSURL  string
	Issuer   string
	Audience string
	jwks     *keyfunc.JWKS
}

// NewAuthClient builds an AuthClient from AUTH_JWKS_URL, AUTH_ISSUER and
// AUTH_AUDIENCE. A failed JWKS fetch is logged rather than fatal so API-key
// auth keeps working when the identity provider is unreachable.
func NewAuthClient() *AuthClient {
	client := &AuthClient{
		JWKSURL:  os.Getenv("AUTH_JWKS_URL"),
		Issuer:   os.Getenv("AUTH_ISSUER"),
		Audience: os.Getenv("AUTH_AUDIENCE"),
	}

	if err := client.initializeJWKS(); err != nil {
		logger.Log.Error("Failed to initialize JWKS", zap.Error(err))
	}

	return client
}

func (ac *AuthClient) initializeJWKS() error {
	if ac.JWKSURL == "" {
		return fmt.Errorf("AUTH_JWKS_URL not set")
	}

	jwks, err := keyfunc.Get(ac.JWKSURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: time.Minute,
		RefreshTimeout:   time.Second * 10,
		RefreshErrorHandler: func(err error) {
			logger.Log.Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create JWKS: %w", err)
	}

	ac.jwks = jwks

	logger.Log.Info("JWKS initialized",
		zap.String("jwks_url", ac.JWKSURL),
		zap.String("issuer", ac.Issuer),
	)

	return nil
}

// workspaceExempt reports whether a path is reachable before the caller
// belongs to any workspace, so the X-Workspace-ID requirement does not apply.
func workspaceExempt(path string) bool {
	if path == "/api/v1/accounts/me" {
		return true
	}
	return path == "/api/v1/workspaces" || strings.HasPrefix(path, "/api/v1/workspaces/")
}

// EnsureValidAPIKeyOrToken authenticates a request by API key when the
// X-API-Key header is present, otherwise by bearer token. On success the gin
// context carries workspaceID, accountID, accountType, authType and, for key
// auth, apiKeyLevel.
func (ac *AuthClient) EnsureValidAPIKeyOrToken(queries db.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey != "" {
			workspace, account, key, err := ac.validateAPIKey(c, queries, apiKey)
			if err != nil {
				logger.Log.Debug("API key validation failed", zap.Error(err))
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				c.Abort()
				return
			}

			c.Set("workspaceID", workspace.ID.String())
			c.Set("accountID", account.ID.String())
			c.Set("accountType", string(account.AccountType))
			c.Set("apiKeyLevel", string(key.AccessLevel))
			c.Set("authType", constants.AuthTypeAPIKey)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authentication provided"})
			c.Abort()
			return
		}

		account, err := ac.validateBearerAccount(c, queries, authHeader)
		if err != nil {
			logger.Log.Debug("Bearer token validation failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		workspaceID := c.GetHeader("X-Workspace-ID")
		if workspaceID == "" {
			workspaceID = c.GetHeader("X-Workspace-Id")
		}
		if workspaceID == "" {
			if workspaceExempt(c.Request.URL.Path) {
				c.Set("accountID", account.ID.String())
				c.Set("accountType", string(account.AccountType))
				c.Set("authType", constants.AuthTypeJWT)
				c.Next()
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "No workspace ID provided"})
			c.Abort()
			return
		}

		workspaceUUID, err := uuid.Parse(workspaceID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID format"})
			c.Abort()
			return
		}

		workspace, err := queries.GetWorkspace(c.Request.Context(), workspaceUUID)
		if err != nil {
			logger.Log.Debug("Failed to get workspace",
				zap.String("workspace_id", workspaceID),
				zap.String("account_id", account.ID.String()),
				zap.Error(err),
			)
			c.JSON(http.StatusForbidden, gin.H{"error": "Workspace not found or access denied"})
			c.Abort()
			return
		}

		// The owning account always has access; anyone else must hold a
		// membership row.
		if workspace.AccountID != account.ID {
			if _, err := queries.GetWorkspaceMember(c.Request.Context(), db.GetWorkspaceMemberParams{
				WorkspaceID: workspaceUUID,
				AccountID:   account.ID,
			}); err != nil {
				logger.Log.Debug("Workspace membership check failed",
					zap.String("workspace_id", workspaceID),
					zap.String("account_id", account.ID.String()),
					zap.Error(err),
				)
				c.JSON(http.StatusForbidden, gin.H{"error": "Access denied to workspace"})
				c.Abort()
				return
			}
		}

		c.Set("workspaceID", workspaceID)
		c.Set("accountID", account.ID.String())
		c.Set("accountType", string(account.AccountType))
		c.Set("authType", constants.AuthTypeJWT)
		c.Next()
	}
}

// validateAPIKey resolves an API key to its workspace and owning account.
// Keys are stored as bcrypt hashes, so every active key is compared until one
// matches.
func (ac *AuthClient) validateAPIKey(c *gin.Context, queries db.Querier, apiKey string) (db.Workspace, db.Account, db.ApiKey, error) {
	keyPreview := "too_short"
	if len(apiKey) > 4 {
		keyPreview = apiKey[:4] + "..."
	}

	activeKeys, err := queries.GetAllActiveAPIKeys(c.Request.Context())
	if err != nil {
		logger.Log.Debug("Failed to retrieve active API keys", zap.Error(err))
		return db.Workspace{}, db.Account{}, db.ApiKey{}, fmt.Errorf("authentication service error")
	}

	var key db.ApiKey
	found := false
	for _, k := range activeKeys {
		if err := helpers.CompareAPIKeyHash(apiKey, k.KeyHash); err == nil {
			key = k
			found = true
			break
		}
	}

	if !found {
		logger.Log.Debug("API key not found or invalid", zap.String("key_preview", keyPreview))
		return db.Workspace{}, db.Account{}, db.ApiKey{}, fmt.Errorf("invalid API key")
	}

	go func() {
		if err := queries.UpdateAPIKeyLastUsed(context.Background(), key.ID); err != nil {
			logger.Log.Warn("Failed to update API key last used timestamp",
				zap.String("key_id", key.ID.String()),
				zap.Error(err),
			)
		}
	}()

	if key.ExpiresAt.Valid && key.ExpiresAt.Time.Before(time.Now()) {
		logger.Log.Debug("API key expired",
			zap.String("key_id", key.ID.String()),
			zap.Time("expires_at", key.ExpiresAt.Time),
		)
		return db.Workspace{}, db.Account{}, db.ApiKey{}, fmt.Errorf("API key has expired")
	}

	workspace, err := queries.GetWorkspace(c.Request.Context(), key.WorkspaceID)
	if err != nil {
		logger.Log.Debug("Failed to get workspace for API key",
			zap.String("key_id", key.ID.String()),
			zap.Error(err),
		)
		return db.Workspace{}, db.Account{}, db.ApiKey{}, fmt.Errorf("invalid workspace")
	}

	account, err := queries.GetAccount(c.Request.Context(), workspace.AccountID)
	if err != nil {
		logger.Log.Debug("Failed to get account for workspace",
			zap.String("workspace_id", workspace.ID.String()),
			zap.Error(err),
		)
		return db.Workspace{}, db.Account{}, db.ApiKey{}, fmt.Errorf("invalid account")
	}

	return workspace, account, key, nil
}

// validateBearerAccount validates the bearer token and resolves its subject
// to an account, creating the account on first sighting.
func (ac *AuthClient) validateBearerAccount(c *gin.Context, queries db.Querier, authHeader string) (db.Account, error) {
	claims, err := ac.validateToken(authHeader)
	if err != nil {
		return db.Account{}, ErrInvalidToken
	}

	if claims.Subject == "" {
		return db.Account{}, ErrInvalidSubject
	}

	account, err := queries.GetAccountByAuthSubject(c.Request.Context(), claims.Subject)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return db.Account{}, fmt.Errorf("account lookup failed: %w", err)
		}

		account, err = queries.CreateAccount(c.Request.Context(), db.CreateAccountParams{
			AuthSubject: claims.Subject,
			Email:       claims.Email,
			DisplayName: pgtype.Text{String: claims.Name, Valid: claims.Name != ""},
			AccountType: db.AccountTypeOwner,
		})
		if err != nil {
			return db.Account{}, fmt.Errorf("failed to create account: %w", err)
		}

		logger.Log.Info("Created account on first token sighting",
			zap.String("account_id", account.ID.String()),
			zap.String("email", claims.Email),
		)
	}

	return account, nil
}

// validateToken parses and verifies a bearer token against the JWKS.
func (ac *AuthClient) validateToken(tokenString string) (*AccessClaims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	if ac.jwks == nil {
		return nil, fmt.Errorf("JWKS not initialized")
	}

	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, ac.jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("token is expired")
	}

	if ac.Issuer != "" && claims.Issuer != ac.Issuer {
		logger.Log.Debug("Issuer mismatch",
			zap.String("expected", ac.Issuer),
			zap.String("actual", claims.Issuer),
		)
		return nil, fmt.Errorf("invalid issuer")
	}

	if ac.Audience != "" {
		audienceValid := false
		for _, aud := range claims.Audience {
			if aud == ac.Audience {
				audienceValid = true
				break
			}
		}
		if !audienceValid {
			return nil, fmt.Errorf("invalid audience")
		}
	}

	return claims, nil
}

// RequireRoles gates a route to privileged callers. API-key auth requires an
// admin-level key; token auth requires an admin account when the route asks
// for the admin role.
func (ac *AuthClient) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountType := c.GetString("accountType")
		apiKeyLevel := c.GetString("apiKeyLevel")
		authType := c.GetString("authType")

		if authType == constants.AuthTypeAPIKey {
			if apiKeyLevel != constants.AccessLevelAdmin {
				logger.Log.Debug("Insufficient API key access level")
				c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient API key access level"})
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if len(roles) > 0 && roles[0] == constants.AccountTypeAdmin && accountType != constants.AccountTypeAdmin {
			logger.Log.Debug("Admin access required")
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
