package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-hclog"
	"github.com/segmentio/ksuid"
	"golang.org/x/crypto/bcrypt"
	"projetos/pkg/constants"
	"projetos/pkg/models"
	usuarioRepo "projetos/pkg/repository/usuario"
	"projetos/pkg/utils"
)

const (
	InvalidCredentialsMessage = "No active account found with the given credentials"
	InvalidTokenMessage       = "Token is invalid or expired"
	InvalidAccessTokenMessage = "Given token not valid for any token type"
	UserNotFoundMessage       = "User not found"
	TokenNotValidCode         = "token_not_valid"
	UserNotFoundCode          = "user_not_found"
)

// Provider registers users, issues token pairs and checks bearer tokens
type Provider interface {
	Register(ctx context.Context, input models.CadastroInput) (*models.Usuario, *utils.GenericError)
	IssueTokens(ctx context.Context, username, password string) (*models.TokenPair, *utils.GenericError)
	Refresh(ctx context.Context, refreshToken string) (*models.AccessToken, *utils.GenericError)
	Verify(ctx context.Context, accessToken string) (*models.Principal, *utils.GenericError)
}

type TokenLifetimes struct {
	Access  time.Duration
	Refresh time.Duration
}

type tokenClaims struct {
	TokenType string `json:"token_type"`
	UserID    int64  `json:"user_id"`
	jwt.RegisteredClaims
}

type jwtProvider struct {
	usuarioRepo usuarioRepo.UsuarioRepo
	signingKey  []byte
	lifetimes   TokenLifetimes
	hashCost    int
	now         func() time.Time
	logger      hclog.Logger
}

func NewIdentityProvider(logger hclog.Logger, usuarioRepo usuarioRepo.UsuarioRepo, signingKey []byte, lifetimes TokenLifetimes) Provider {
	return &jwtProvider{
		usuarioRepo: usuarioRepo,
		signingKey:  signingKey,
		lifetimes:   lifetimes,
		hashCost:    bcrypt.DefaultCost,
		now:         time.Now,
		logger:      logger.Named("identity-provider"),
	}
}

// Register stores a new usuario with a bcrypt hash of the password
func (provider *jwtProvider) Register(ctx context.Context, input models.CadastroInput) (*models.Usuario, *utils.GenericError) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), provider.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, utils.ValidationError(map[string][]string{
				"password": {"Ensure this field has no more than 72 characters."},
			})
		}
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	usuario := models.Usuario{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if _, createErr := provider.usuarioRepo.CreateOne(ctx, &usuario); createErr != nil {
		return nil, createErr
	}

	provider.logger.Info("registered usuario", "id", usuario.ID)
	return &usuario, nil
}

// IssueTokens checks the credentials and returns a fresh access and refresh pair
func (provider *jwtProvider) IssueTokens(ctx context.Context, username, password string) (*models.TokenPair, *utils.GenericError) {
	usuario := models.Usuario{Username: username}
	if err := provider.usuarioRepo.GetOneByUsername(ctx, &usuario); err != nil {
		if err.Type == http.StatusNotFound {
			return nil, utils.HTTPGenericError(http.StatusUnauthorized, InvalidCredentialsMessage)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		provider.logger.Debug("password mismatch", "usuario", usuario.ID)
		return nil, utils.HTTPGenericError(http.StatusUnauthorized, InvalidCredentialsMessage)
	}

	access, err := provider.sign(usuario.ID, constants.AccessTokenType, provider.lifetimes.Access)
	if err != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	refresh, err := provider.sign(usuario.ID, constants.RefreshTokenType, provider.lifetimes.Refresh)
	if err != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (provider *jwtProvider) Refresh(ctx context.Context, refreshToken string) (*models.AccessToken, *utils.GenericError) {
	claims, err := provider.parse(refreshToken, constants.RefreshTokenType)
	if err != nil {
		provider.logger.Debug("rejected refresh token", "error", err.Error())
		return nil, tokenNotValid(InvalidTokenMessage)
	}

	usuario := models.Usuario{ID: claims.UserID}
	if getErr := provider.usuarioRepo.GetOneByID(ctx, &usuario); getErr != nil {
		if getErr.Type == http.StatusNotFound {
			return nil, tokenNotValid(InvalidTokenMessage)
		}
		return nil, getErr
	}

	access, err := provider.sign(usuario.ID, constants.AccessTokenType, provider.lifetimes.Access)
	if err != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	return &models.AccessToken{Access: access}, nil
}

// Verify resolves an access token to the usuario it was issued for
func (provider *jwtProvider) Verify(ctx context.Context, accessToken string) (*models.Principal, *utils.GenericError) {
	claims, err := provider.parse(accessToken, constants.AccessTokenType)
	if err != nil {
		provider.logger.Debug("rejected access token", "error", err.Error())
		return nil, tokenNotValid(InvalidAccessTokenMessage)
	}

	usuario := models.Usuario{ID: claims.UserID}
	if getErr := provider.usuarioRepo.GetOneByID(ctx, &usuario); getErr != nil {
		if getErr.Type == http.StatusNotFound {
			return nil, &utils.GenericError{
				Message: UserNotFoundMessage,
				Type:    http.StatusUnauthorized,
				Code:    UserNotFoundCode,
			}
		}
		return nil, getErr
	}

	return &models.Principal{UserID: usuario.ID, TokenID: claims.ID}, nil
}

func (provider *jwtProvider) sign(userID int64, tokenType string, lifetime time.Duration) (string, error) {
	issuedAt := provider.now()
	claims := tokenClaims{
		TokenType: tokenType,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        ksuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(provider.signingKey)
}

func (provider *jwtProvider) parse(token string, tokenType string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return provider.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(provider.now),
	)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("token has wrong type %q", claims.TokenType)
	}
	return claims, nil
}

func tokenNotValid(message string) *utils.GenericError {
	return &utils.GenericError{
		Message: message,
		Type:    http.StatusUnauthorized,
		Code:    TokenNotValidCode,
	}
}
