package is

import (
	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Gobd/reqgate/schema"
)

// formatRule wraps a string validator and records its format token on the
// OpenAPI schema.
type formatRule struct {
	validation.Rule
	format string
}

func (r formatRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = r.format
	return nil
}

func rule(f func(string) bool, msg, format string) schema.Rule {
	return formatRule{validation.NewStringRule(f, msg), format}
}

var (
	// Email validates if a string is an email address.
	Email = rule(govalidator.IsEmail, "must be a valid email address", "email")
	// UUID validates if a string is a valid UUID.
	UUID = rule(govalidator.IsUUID, "must be a valid UUID", "uuid")
	// UUIDv4 validates if a string is a valid version 4 UUID.
	UUIDv4 = rule(govalidator.IsUUIDv4, "must be a valid UUID v4", "uuid")
	// URL validates if a string is a valid URL.
	URL = rule(govalidator.IsURL, "must be a valid URL", "uri")
	// RequestURI validates if a string is a valid absolute request URI.
	RequestURI = rule(govalidator.IsRequestURI, "must be a valid request URI", "uri")
	// Host validates if a string is a valid IP address or DNS name.
	Host = rule(govalidator.IsHost, "must be a valid IP address or DNS name", "hostname")
	// DNSName validates if a string is a valid DNS name.
	DNSName = rule(govalidator.IsDNSName, "must be a valid DNS name", "hostname")
	// IP validates if a string is a valid IP address (v4 or v6).
	IP = rule(govalidator.IsIP, "must be a valid IP address", "ip")
	// IPv4 validates if a string is a valid version 4 IP address.
	IPv4 = rule(govalidator.IsIPv4, "must be a valid IPv4 address", "ipv4")
	// IPv6 validates if a string is a valid version 6 IP address.
	IPv6 = rule(govalidator.IsIPv6, "must be a valid IPv6 address", "ipv6")
	// Port validates if a string is a valid port number.
	Port = rule(govalidator.IsPort, "must be a valid port number", "port")
	// Alpha validates if a string contains English letters only.
	Alpha = rule(govalidator.IsAlpha, "must contain English letters only", "alpha")
	// Alphanumeric validates if a string contains English letters and digits only.
	Alphanumeric = rule(govalidator.IsAlphanumeric, "must contain English letters and digits only", "alphanumeric")
	// Numeric validates if a string contains digits only.
	Numeric = rule(govalidator.IsNumeric, "must contain digits only", "numeric")
	// Float validates if a string is a floating point number.
	Float = rule(govalidator.IsFloat, "must be a floating point number", "float")
	// ASCII validates if a string contains ASCII characters only.
	ASCII = rule(govalidator.IsASCII, "must contain ASCII characters only", "ascii")
	// Base64 validates if a string is base64-encoded.
	Base64 = rule(govalidator.IsBase64, "must be encoded in Base64", "byte")
	// JSON validates if a string is a valid JSON document.
	JSON = rule(govalidator.IsJSON, "must be in valid JSON format", "json")
	// Semver validates if a string is a valid semantic version.
	Semver = rule(govalidator.IsSemver, "must be a valid semantic version", "semver")
	// CountryCode2 validates if a string is a valid ISO3166 Alpha 2 country code.
	CountryCode2 = rule(govalidator.IsISO3166Alpha2, "must be a valid two-letter country code", "iso3166-alpha-2")
	// CurrencyCode validates if a string is a valid ISO4217 currency code.
	CurrencyCode = rule(govalidator.IsISO4217, "must be a valid currency code", "iso4217")
	// E164 validates if a string is a valid E.164 phone number.
	E164 = rule(govalidator.IsE164, "must be a valid E.164 phone number", "e164")
	// Lowercase validates if a string is all lowercase.
	Lowercase = rule(govalidator.IsLowerCase, "must be in lower case", "lowercase")
	// Uppercase validates if a string is all uppercase.
	Uppercase = rule(govalidator.IsUpperCase, "must be in upper case", "uppercase")
)
