package codex

import (
	"crypto/ed25519"
	"encoding/hex"
	"strconv"
	"time"

	"codex/pkg/core"
)

// seedHexLen is the number of secret key characters used as the ed25519 seed.
const seedHexLen = 2 * ed25519.SeedSize

// Signer authenticates private API calls with an ed25519 key derived from the secret key.
type Signer struct {
	publicKey string
	secretKey string
	now       func() time.Time
}

// NewSigner creates a Signer for the given key pair. Either key may be empty;
// Sign then fails with core.ErrMissingCredentials.
func NewSigner(creds *core.Credentials, now func() time.Time) *Signer {
	if now == nil {
		now = time.Now
	}
	s := &Signer{now: now}
	if creds != nil {
		s.publicKey = creds.PublicKey
		s.secretKey = creds.SecretKey
	}
	return s
}

// Sign signs jsonPayload + path + tonce, where tonce is the current time in
// nanoseconds. The returned Tonce is the exact string embedded in the message.
//
// The signature is the hex-encoded signed message: the 64-byte ed25519
// signature followed by the message itself.
func (s *Signer) Sign(path, jsonPayload string) (*core.SignedHeaders, error) {
	if s.publicKey == "" || s.secretKey == "" {
		return nil, &core.SignerError{Err: core.ErrMissingCredentials}
	}

	key, err := s.signingKey()
	if err != nil {
		return nil, err
	}

	tonce := strconv.FormatInt(s.now().UnixNano(), 10)
	message := []byte(jsonPayload + path + tonce)

	signed := make([]byte, 0, ed25519.SignatureSize+len(message))
	signed = append(signed, ed25519.Sign(key, message)...)
	signed = append(signed, message...)

	return &core.SignedHeaders{
		Signature: hex.EncodeToString(signed),
		PublicKey: s.publicKey,
		Tonce:     tonce,
	}, nil
}

func (s *Signer) signingKey() (ed25519.PrivateKey, error) {
	seedHex := s.secretKey
	if len(seedHex) > seedHexLen {
		seedHex = seedHex[:seedHexLen]
	}

	seed, err := hex.DecodeString(seedHex)
	if err != nil || len(seed) != ed25519.SeedSize {
		return nil, &core.SignerError{Err: core.ErrInvalidSecretKey}
	}

	return ed25519.NewKeyFromSeed(seed), nil
}
