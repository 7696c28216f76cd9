package url_validator_port

import (
	"context"
	"net/url"
)

//go:generate go run go.uber.org/mock/mockgen -source=url_validator_port.go -destination=../../mocks/mock_url_validator_port.go -package=mocks

// URLValidatorPort rejects targets the service must not fetch on a caller's behalf.
type URLValidatorPort interface {
	ValidateRawURL(ctx context.Context, raw string) (*url.URL, error)
}
