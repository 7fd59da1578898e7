// README: TC3-HMAC-SHA256 request signing for Tencent Cloud APIs.
package ai

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	signAlgorithm = "TC3-HMAC-SHA256"
	signedHeaders = "content-type;host"
	contentType   = "application/json; charset=utf-8"
)

// BuildAuthorization produces the Authorization header value for a JSON POST
// to a Tencent Cloud endpoint. The timestamp is passed in explicitly so
// signing stays deterministic and testable; callers pass time.Now().
//
// The canonical request is fixed for this API family: POST to "/" with an
// empty query string, signing only content-type and host.
func BuildAuthorization(secretID, secretKey, host, service string, payload []byte, now time.Time) (string, error) {
	if secretID == "" || secretKey == "" {
		return "", ErrMissingCredentials
	}

	date := now.UTC().Format("2006-01-02")
	hashedPayload := sha256Hex(payload)

	canonicalRequest := "POST\n" +
		"/\n" +
		"\n" +
		"content-type:" + contentType + "\nhost:" + host + "\n\n" +
		signedHeaders + "\n" +
		hashedPayload

	credentialScope := fmt.Sprintf("%s/%s/tc3_request", date, service)
	stringToSign := fmt.Sprintf("%s\n%d\n%s\n%s",
		signAlgorithm, now.Unix(), credentialScope, sha256Hex([]byte(canonicalRequest)))

	kDate := hmacSHA256([]byte("TC3"+secretKey), date)
	kService := hmacSHA256(kDate, service)
	kSigning := hmacSHA256(kService, "tc3_request")
	signature := hex.EncodeToString(hmacSHA256(kSigning, stringToSign))

	return fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		signAlgorithm, secretID, credentialScope, signedHeaders, signature), nil
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func hmacSHA256(key []byte, msg string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(msg))
	return h.Sum(nil)
}
