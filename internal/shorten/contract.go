package shorten

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Contract names one backend variant. Exactly one contract is used per deployment.
type Contract string

const (
	// ContractID backends answer with a bare identifier that is joined to the short base URL
	ContractID Contract = "id"
	// ContractFull backends answer with the complete short URL
	ContractFull Contract = "full"
)

// Contract field names
const (
	FieldOriginalURL = "originalURL"
	FieldLongURL     = "longUrl"
	FieldID          = "id"
	FieldShortURL    = "shortUrl"
	FieldMessage     = "message"
	FieldError       = "error"
)

var (
	// ErrUnknownContract is returned for a contract name that is not supported
	ErrUnknownContract = errors.New("unknown backend contract")

	// ErrMissingShortURL is returned when a response lacks the contract's short URL field
	ErrMissingShortURL = errors.New("response has no short url")
)

// ParseContract converts a configuration value into a Contract
func ParseContract(name string) (Contract, error) {
	switch c := Contract(strings.ToLower(strings.TrimSpace(name))); c {
	case ContractID, ContractFull:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownContract, name)
	}
}

// String returns the configuration name of the contract
func (c Contract) String() string {
	return string(c)
}

// DefaultRequestField returns the JSON key carrying the long URL
func (c Contract) DefaultRequestField() string {
	if c == ContractFull {
		return FieldLongURL
	}
	return FieldOriginalURL
}

// ResponseField returns the JSON key carrying the short URL or its identifier
func (c Contract) ResponseField() string {
	if c == ContractFull {
		return FieldShortURL
	}
	return FieldID
}

// NormalizeShortURL turns a decoded success body into one canonical short URL.
// Absolute http(s) values are returned verbatim, anything else is treated as
// an identifier and joined to shortBaseURL.
func NormalizeShortURL(contract Contract, shortBaseURL string, body map[string]any) (string, error) {
	field := contract.ResponseField()

	value, err := stringField(body, field)
	if err != nil {
		return "", err
	}

	if isAbsoluteHTTPURL(value) {
		return value, nil
	}

	if shortBaseURL == "" {
		return "", fmt.Errorf("%w: %q is not an absolute url and no short base url is set", ErrMissingShortURL, value)
	}

	return strings.TrimRight(shortBaseURL, "/") + "/" + strings.TrimLeft(value, "/"), nil
}

// stringField extracts a non-empty string (or integral number) field
func stringField(body map[string]any, field string) (string, error) {
	raw, ok := body[field]
	if !ok || raw == nil {
		return "", fmt.Errorf("%w: field %q not found", ErrMissingShortURL, field)
	}

	var value string
	switch v := raw.(type) {
	case string:
		value = strings.TrimSpace(v)
	case float64:
		if v != float64(int64(v)) {
			return "", fmt.Errorf("%w: field %q is not an integer", ErrMissingShortURL, field)
		}
		value = strconv.FormatInt(int64(v), 10)
	default:
		return "", fmt.Errorf("%w: field %q has type %T", ErrMissingShortURL, field, raw)
	}

	if value == "" {
		return "", fmt.Errorf("%w: field %q is empty", ErrMissingShortURL, field)
	}
	return value, nil
}

func isAbsoluteHTTPURL(value string) bool {
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
