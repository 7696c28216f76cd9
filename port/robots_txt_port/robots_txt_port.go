package robots_txt_port

import (
	"context"
	"net/url"
)

//go:generate go run go.uber.org/mock/mockgen -source=robots_txt_port.go -destination=../../mocks/mock_robots_txt_port.go -package=mocks

// RobotsTxtPort defines the interface for robots.txt checks
type RobotsTxtPort interface {
	// IsAllowed reports whether agent may fetch pageURL
	IsAllowed(ctx context.Context, pageURL *url.URL, agent string) (bool, error)
}
