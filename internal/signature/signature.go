package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Header is the parsed form of a `t=<ts>,s=<hex>[,s=<hex>...]` signature header.
type Header struct {
	Timestamp  string
	Signatures []string
}

// ParseHeader splits the signature header into its timestamp and signatures.
// The last `t` wins; every `s` is kept. Unknown keys and malformed pairs are ignored.
func ParseHeader(header string) Header {
	var h Header
	seen := make(map[string]struct{})

	for _, pair := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "t":
			h.Timestamp = value
		case "s":
			if value == "" {
				continue
			}
			if _, dup := seen[value]; dup {
				continue
			}
			seen[value] = struct{}{}
			h.Signatures = append(h.Signatures, value)
		}
	}

	return h
}

// Compute returns the lowercase hex HMAC-SHA256 of "t=<timestamp>.<payload>".
func Compute(timestamp string, payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("t=" + timestamp + "."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether payload was signed with secret. payload must be the raw
// request body; re-encoded JSON will not match.
func Verify(header string, payload []byte, secret string) bool {
	if strings.TrimSpace(header) == "" || strings.TrimSpace(secret) == "" {
		return false
	}

	h := ParseHeader(header)
	if h.Timestamp == "" || len(h.Signatures) == 0 {
		return false
	}

	expected := []byte(Compute(h.Timestamp, payload, secret))

	matched := 0
	for _, s := range h.Signatures {
		matched |= subtle.ConstantTimeCompare(expected, []byte(strings.ToLower(s)))
	}
	return matched == 1
}

// Verifier binds a secret to Verify and optionally enforces a delivery age window.
type Verifier struct {
	Secret string
	// Tolerance is the maximum distance between the signed timestamp and now.
	// Zero disables the check.
	Tolerance time.Duration
	Now       func() time.Time
}

func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	return &Verifier{
		Secret:    secret,
		Tolerance: tolerance,
		Now:       time.Now,
	}
}

func (v *Verifier) Verify(header string, payload []byte) bool {
	if !Verify(header, payload, v.Secret) {
		return false
	}
	if v.Tolerance <= 0 {
		return true
	}

	ts, err := strconv.ParseInt(ParseHeader(header).Timestamp, 10, 64)
	if err != nil {
		return false
	}

	age := v.Now().Sub(time.Unix(ts, 0))
	if age < 0 {
		age = -age
	}
	return age <= v.Tolerance
}

// HasSecret reports whether the verifier can ever accept a delivery.
func (v *Verifier) HasSecret() bool {
	return strings.TrimSpace(v.Secret) != ""
}
