package google

import (
	"crypto/rsa"
	"time"

	"strik/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// MessagingScope grants send access to FCM
	MessagingScope = "https://www.googleapis.com/auth/firebase.messaging"

	// AssertionAudience is the token endpoint the assertion is addressed to
	AssertionAudience = "https://oauth2.googleapis.com/token"

	assertionTTL = time.Hour
)

// signer produces RS256 assertions for one service account
type signer struct {
	issuer string
	key    *rsa.PrivateKey
}

func newSigner(account *ServiceAccount) (*signer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(account.PrivateKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse service account private key")
	}

	return &signer{issuer: account.ClientEmail, key: key}, nil
}

// sign returns header.claims.signature, each part unpadded base64url
func (s *signer) sign(now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"iss":   s.issuer,
		"scope": MessagingScope,
		"aud":   AssertionAudience,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionTTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign assertion")
	}

	return signed, nil
}
