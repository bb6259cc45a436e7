package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"socialdots/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

var (
	ErrMissingWebhookSecret   = errors.New("missing MERCADOPAGO_WEBHOOK_SECRET")
	ErrInvalidTimestamp       = errors.New("invalid timestamp")
	ErrTimestampOutsideWindow = errors.New("timestamp outside allowed window")
	ErrInvalidSignature       = errors.New("invalid signature")
)

const Window = 5 * time.Minute

// SignatureVerifier checks the x-signature header of payment notifications:
// "ts=<unix>,v1=<hex hmac-sha256>" over "id:<data.id>;request-id:<x-request-id>;ts:<ts>;".
type SignatureVerifier struct {
	secret string
}

var _ interfaces.IWebhookVerifier = (*SignatureVerifier)(nil)

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: secret}
}

func (v *SignatureVerifier) Verify(sig interfaces.WebhookSignature) error {
	if v == nil || v.secret == "" {
		return ErrMissingWebhookSecret
	}

	tsHeader, provided := parseSignatureHeader(sig.Header)
	ts, err := parseTimestamp(tsHeader)
	if err != nil {
		return err
	}

	now := sig.Now.UTC()
	if ts.Before(now.Add(-Window)) || ts.After(now.Add(Window)) {
		return ErrTimestampOutsideWindow
	}

	providedSig, err := hex.DecodeString(provided)
	if err != nil || len(providedSig) == 0 {
		return ErrInvalidSignature
	}

	expected := sign(v.secret, manifest(sig.DataID, sig.RequestID, tsHeader))
	if !hmac.Equal(providedSig, expected) {
		return ErrInvalidSignature
	}
	return nil
}

// SignatureHeader builds a valid x-signature value; used by tests and local tooling.
func SignatureHeader(secret, dataID, requestID string, ts time.Time) string {
	tsHeader := strconv.FormatInt(ts.Unix(), 10)
	mac := sign(secret, manifest(dataID, requestID, tsHeader))
	return "ts=" + tsHeader + ",v1=" + hex.EncodeToString(mac)
}

func manifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	return b.String()
}

func sign(secret, msg string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(msg))
	return mac.Sum(nil)
}

func parseSignatureHeader(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		k, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(val)
		case "v1":
			v1 = strings.TrimSpace(val)
		}
	}
	return ts, v1
}

// parseTimestamp accepts seconds or milliseconds since the epoch.
func parseTimestamp(s string) (time.Time, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return time.Time{}, ErrInvalidTimestamp
	}
	if n > 1e12 {
		return time.UnixMilli(n).UTC(), nil
	}
	return time.Unix(n, 0).UTC(), nil
}
