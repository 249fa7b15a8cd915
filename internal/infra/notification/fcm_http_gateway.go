package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"strik/config"
	"strik/internal/domain/entity"
	domainerrors "strik/internal/domain/errors"
	"strik/internal/domain/service"
	"strik/internal/errors"

	"golang.org/x/time/rate"
)

const (
	defaultSendURL     = "https://fcm.googleapis.com"
	maxSendBodyBytes   = 64 << 10
	sendPathFormat     = "%s/v1/projects/%s/messages:send"
	defaultSendTimeout = 10 * time.Second
)

// httpGateway talks to the FCM HTTP v1 API with tokens from a TokenProvider
type httpGateway struct {
	tokens  service.TokenProvider
	sendURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPGateway creates the HTTP v1 gateway. A positive requestsPerSecond
// throttles sends across all sessions.
func NewHTTPGateway(cfg *config.FCMConfig, tokens service.TokenProvider) service.PushGateway {
	sendURL := defaultSendURL
	timeout := defaultSendTimeout

	var limiter *rate.Limiter
	if cfg != nil {
		if cfg.SendURL != "" {
			sendURL = strings.TrimRight(cfg.SendURL, "/")
		}
		if cfg.RequestTimeout > 0 {
			timeout = cfg.RequestTimeout
		}
		if cfg.RequestsPerSecond > 0 {
			limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(cfg.Burst, 1))
		}
	}

	return &httpGateway{
		tokens:  tokens,
		sendURL: sendURL,
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// Open implements service.PushGateway. The token is fetched once and reused by every send of the session.
func (g *httpGateway) Open(ctx context.Context) (service.PushSession, error) {
	token, err := g.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	return &httpSession{
		gateway:  g,
		token:    token.Token,
		endpoint: fmt.Sprintf(sendPathFormat, g.sendURL, token.ProjectID),
	}, nil
}

type httpSession struct {
	gateway  *httpGateway
	token    string
	endpoint string
}

// Send implements service.PushSession
func (s *httpSession) Send(ctx context.Context, msg *entity.PushMessage) (string, error) {
	if s.gateway.limiter != nil {
		if err := s.gateway.limiter.Wait(ctx); err != nil {
			return "", domainerrors.NewDeliveryTransportError(err)
		}
	}

	payload, err := json.Marshal(newFCMRequest(msg))
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal fcm message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "failed to create fcm request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.gateway.client.Do(req)
	if err != nil {
		return "", domainerrors.NewDeliveryTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSendBodyBytes))
	if err != nil {
		return "", domainerrors.NewDeliveryTransportError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", domainerrors.NewDeliveryError(resp.StatusCode, string(body))
	}

	var parsed fcmResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", domainerrors.NewDeliveryError(resp.StatusCode, string(body))
	}

	return parsed.Name, nil
}
