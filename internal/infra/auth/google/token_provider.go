package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"strik/config"
	"strik/internal/domain/entity"
	domainerrors "strik/internal/domain/errors"
	"strik/internal/domain/service"
	"strik/internal/errors"

	"go.uber.org/fx"
)

const (
	jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	maxTokenBodyBytes  = 64 << 10
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type tokenProvider struct {
	signer    *signer
	projectID string
	tokenURL  string
	client    *http.Client
	now       func() time.Time
}

// TokenProviderParams holds dependencies for the token provider, injected by Fx.
type TokenProviderParams struct {
	fx.In

	Config  *config.Config
	Account *ServiceAccount
}

// NewTokenProvider creates the signed-assertion token provider. The account's
// key is parsed once here and held only by the provider.
func NewTokenProvider(params TokenProviderParams) (service.TokenProvider, error) {
	s, err := newSigner(params.Account)
	if err != nil {
		return nil, err
	}

	tokenURL := AssertionAudience
	timeout := 10 * time.Second
	if params.Config.FCM != nil {
		if params.Config.FCM.TokenURL != "" {
			tokenURL = params.Config.FCM.TokenURL
		}
		if params.Config.FCM.RequestTimeout > 0 {
			timeout = params.Config.FCM.RequestTimeout
		}
	}

	return &tokenProvider{
		signer:    s,
		projectID: params.Account.ProjectID,
		tokenURL:  tokenURL,
		client:    &http.Client{Timeout: timeout},
		now:       time.Now,
	}, nil
}

// Token implements service.TokenProvider
func (p *tokenProvider) Token(ctx context.Context) (*entity.AccessToken, error) {
	now := p.now()

	assertion, err := p.signer.sign(now)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrantType)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange assertion for token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read token response")
	}

	var parsed tokenResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.AccessToken == "" {
		return nil, domainerrors.ErrAuthenticationFailed.WithDetails(string(body))
	}

	expiresIn := time.Duration(parsed.ExpiresIn) * time.Second
	if expiresIn <= 0 {
		expiresIn = assertionTTL
	}

	return &entity.AccessToken{
		Token:     parsed.AccessToken,
		ProjectID: p.projectID,
		ExpiresAt: now.Add(expiresIn),
	}, nil
}
