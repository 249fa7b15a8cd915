// Package google implements the signed-assertion OAuth flow used to
// authenticate against Firebase Cloud Messaging with a service account.
package google

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"strings"

	"strik/config"
	"strik/internal/errors"

	"github.com/go-playground/validator/v10"
)

// ServiceAccount is the subset of a Google service-account key the assertion needs.
type ServiceAccount struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id" validate:"required"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key" validate:"required"`
	ClientEmail  string `json:"client_email" validate:"required,email"`
	TokenURI     string `json:"token_uri" validate:"omitempty,url"`

	raw []byte
}

// JSON returns the key file as loaded, for SDKs that parse it themselves.
func (a *ServiceAccount) JSON() []byte {
	return a.raw
}

// LoadServiceAccount reads the credential from the base64 setting, or from the
// file path when no inline value is configured.
func LoadServiceAccount(cfg *config.Config) (*ServiceAccount, error) {
	if cfg.FCM == nil {
		return nil, errors.New("fcm configuration is missing")
	}

	var (
		raw []byte
		err error
	)

	switch {
	case strings.TrimSpace(cfg.FCM.CredentialsBase64) != "":
		raw, err = base64.StdEncoding.DecodeString(strings.TrimSpace(cfg.FCM.CredentialsBase64))
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode fcm.credentialsBase64")
		}
	case cfg.FCM.CredentialsPath != "":
		raw, err = os.ReadFile(cfg.FCM.CredentialsPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read service account file %s", cfg.FCM.CredentialsPath)
		}
	default:
		return nil, errors.New("no fcm credentials configured: set fcm.credentialsBase64 or fcm.credentialsPath")
	}

	return ParseServiceAccount(raw)
}

// ParseServiceAccount decodes and validates a service-account JSON document.
func ParseServiceAccount(raw []byte) (*ServiceAccount, error) {
	var account ServiceAccount
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, errors.Wrap(err, "failed to parse service account")
	}

	if err := validator.New().Struct(&account); err != nil {
		return nil, errors.Wrap(err, "invalid service account")
	}
	account.raw = raw

	return &account, nil
}
