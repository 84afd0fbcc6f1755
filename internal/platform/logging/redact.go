package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values are never
// logged. The HTTP middleware filters on the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

// Attribute keys that always hold a credential: the Firebase ID token, the
// persisted refresh material and the local shared secret.
var credentialKeys = []string{
	"password",
	"secret",
	"token",
	"id_token",
	"raw_token",
	"refresh_token",
	"shared_secret",
}

// Value patterns caught regardless of key.
var credentialValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-z0-9\-._~+/]+=*`),
	// Three base64url segments of ten or more characters: a compact JWT.
	regexp.MustCompile(`[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)api[_\-]?key\s*[:=]\s*\S+`),
}

func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, key := range credentialKeys {
		opts = append(opts, masq.WithFieldName(key))
	}
	opts = append(opts, masq.WithFieldPrefix("secret_"), masq.WithFieldPrefix("api_key"))
	for _, re := range credentialValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
