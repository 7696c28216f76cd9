package security

import (
	"context"
	"fmt"
	"net"
	"net/url"
	apperrors "newsdeck/utils/errors"
	"strings"
	"time"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// Resolver is the subset of *net.Resolver the validator needs.
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// SSRFValidator decides whether a user-supplied URL may be fetched by the
// proxy and reader endpoints.
type SSRFValidator struct {
	metadataEndpoints []string
	internalDomains   []string
	resolver          Resolver
	resolveTimeout    time.Duration
	allowPrivate      bool
}

// ValidationError represents a validation error with context
type ValidationError struct {
	Message string
	Type    string
	Details map[string]interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Is reports every validation failure as apperrors.ErrBlockedURL.
func (e *ValidationError) Is(target error) bool {
	return target == apperrors.ErrBlockedURL
}

func NewSSRFValidator() *SSRFValidator {
	return &SSRFValidator{
		metadataEndpoints: []string{
			"169.254.169.254",          // AWS/Azure/GCP
			"metadata.google.internal", // GCP
			"100.100.100.200",          // Alibaba Cloud
			"192.0.0.192",              // Oracle Cloud
		},
		internalDomains: []string{
			".local", ".internal", ".corp", ".lan", ".intranet",
			".localhost", ".cluster.local",
		},
		resolver:       net.DefaultResolver,
		resolveTimeout: 5 * time.Second,
	}
}

// SetAllowPrivate lets loopback and private targets through. Local
// development and tests only.
func (v *SSRFValidator) SetAllowPrivate(enabled bool) {
	v.allowPrivate = enabled
}

// SetResolver replaces the DNS resolver.
func (v *SSRFValidator) SetResolver(r Resolver) {
	v.resolver = r
}

// ValidateRawURL parses and validates raw.
func (v *SSRFValidator) ValidateRawURL(ctx context.Context, raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, &ValidationError{Message: "malformed URL", Type: "BASIC_VALIDATION_ERROR"}
	}
	if err := v.ValidateURL(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (v *SSRFValidator) ValidateURL(ctx context.Context, u *url.URL) error {
	if u == nil || u.Host == "" {
		return &ValidationError{Message: "empty host not allowed", Type: "BASIC_VALIDATION_ERROR"}
	}

	if u.Scheme != "https" && u.Scheme != "http" {
		return &ValidationError{Message: "only HTTP and HTTPS schemes allowed", Type: "SCHEME_VALIDATION_ERROR"}
	}

	if u.User != nil {
		return &ValidationError{Message: "credentials in URL not allowed", Type: "BASIC_VALIDATION_ERROR"}
	}

	if v.allowPrivate {
		return nil
	}

	if err := v.validateHost(u); err != nil {
		return err
	}

	if err := v.validateUnicode(u); err != nil {
		return err
	}

	return v.validateResolvedIPs(ctx, u)
}

func (v *SSRFValidator) validateHost(u *url.URL) error {
	hostname := strings.ToLower(u.Hostname())

	for _, endpoint := range v.metadataEndpoints {
		if hostname == endpoint {
			return &ValidationError{
				Message: "access to metadata endpoint not allowed",
				Type:    "METADATA_ENDPOINT_BLOCKED",
				Details: map[string]interface{}{"hostname": hostname},
			}
		}
	}

	if hostname == "localhost" {
		return &ValidationError{Message: "access to localhost not allowed", Type: "INTERNAL_DOMAIN_BLOCKED"}
	}

	for _, suffix := range v.internalDomains {
		if strings.HasSuffix(hostname, suffix) {
			return &ValidationError{
				Message: "access to internal domains not allowed",
				Type:    "INTERNAL_DOMAIN_BLOCKED",
				Details: map[string]interface{}{"hostname": hostname, "suffix": suffix},
			}
		}
	}

	return nil
}

// validateUnicode rejects hosts that only look public once punycode is decoded.
func (v *SSRFValidator) validateUnicode(u *url.URL) error {
	hostname := u.Hostname()

	ascii, err := idna.ToASCII(hostname)
	if err != nil {
		return &ValidationError{Message: "invalid internationalized domain name", Type: "PUNYCODE_VALIDATION_ERROR"}
	}

	if ascii != hostname && strings.Contains(ascii, "localhost") {
		return &ValidationError{
			Message: "punycode bypass detected",
			Type:    "PUNYCODE_BYPASS_BLOCKED",
			Details: map[string]interface{}{"original": hostname, "ascii": ascii},
		}
	}

	if hasConfusableChars(hostname) {
		return &ValidationError{
			Message: "unicode bypass detected",
			Type:    "UNICODE_BYPASS_BLOCKED",
			Details: map[string]interface{}{"hostname": hostname},
		}
	}

	return nil
}

func hasConfusableChars(hostname string) bool {
	normalized := norm.NFKC.String(hostname)
	// Cyrillic lookalikes of a, e, o, p, c, x
	return strings.ContainsAny(normalized, "аеорсх")
}

func (v *SSRFValidator) validateResolvedIPs(ctx context.Context, u *url.URL) error {
	hostname := u.Hostname()

	if ip := net.ParseIP(hostname); ip != nil {
		return checkIP(ip, hostname)
	}

	ctx, cancel := context.WithTimeout(ctx, v.resolveTimeout)
	defer cancel()

	addrs, err := v.resolver.LookupIPAddr(ctx, hostname)
	if err != nil {
		return &ValidationError{
			Message: "DNS resolution failed",
			Type:    "DNS_RESOLUTION_ERROR",
			Details: map[string]interface{}{"hostname": hostname, "error": err.Error()},
		}
	}

	for _, addr := range addrs {
		if err := checkIP(addr.IP, hostname); err != nil {
			return err
		}
	}
	return nil
}

// ValidateConnectionAddress checks the host:port a dialer is about to connect
// to. By then the host is a resolved IP literal.
func (v *SSRFValidator) ValidateConnectionAddress(network, address string) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return &ValidationError{
			Message: "invalid connection address",
			Type:    "CONNECTION_ADDRESS_ERROR",
			Details: map[string]interface{}{"address": address, "network": network},
		}
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return &ValidationError{
			Message: "connection address is not an IP",
			Type:    "CONNECTION_ADDRESS_ERROR",
			Details: map[string]interface{}{"address": address, "network": network},
		}
	}

	if v.allowPrivate {
		return nil
	}

	for _, endpoint := range v.metadataEndpoints {
		if ip.String() == endpoint {
			return &ValidationError{
				Message: "access to metadata endpoint not allowed",
				Type:    "METADATA_ENDPOINT_BLOCKED",
				Details: map[string]interface{}{"address": address},
			}
		}
	}
	return checkIP(ip, host)
}

func checkIP(ip net.IP, hostname string) error {
	if isPrivateOrDangerous(ip) {
		return &ValidationError{
			Message: "private or reserved address not allowed",
			Type:    "PRIVATE_ADDRESS_BLOCKED",
			Details: map[string]interface{}{"hostname": hostname, "resolved_ip": ip.String()},
		}
	}
	return nil
}

func isPrivateOrDangerous(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast()
}
