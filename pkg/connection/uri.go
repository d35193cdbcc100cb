package connection

import (
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/mongokit/pkg/topology"
)

// buildURI assembles the target connection string:
//
//	mongodb://[user:pass@]host1:port1[,host2:port2...][/?appName=name]
//
// Hosts appear in the given order. Credentials are URL-escaped; the
// replica-set name and auth source travel in the client options, not here.
func buildURI(cfg Config, hosts []topology.Host) string {
	var b strings.Builder
	b.WriteString("mongodb://")

	if cfg.Username != "" {
		b.WriteString(url.QueryEscape(cfg.Username))
		b.WriteByte(':')
		b.WriteString(url.QueryEscape(cfg.Password))
		b.WriteByte('@')
	}

	addrs := make([]string, len(hosts))
	for i, h := range hosts {
		addrs[i] = h.Address()
	}
	b.WriteString(strings.Join(addrs, ","))

	if cfg.AppName != "" {
		b.WriteString("/?appName=")
		b.WriteString(url.QueryEscape(cfg.AppName))
	}

	return b.String()
}

// Backoff returns the sleep before the attempt following the k-th failed
// one: k*interval, so the schedule at the default 2s interval is 2s, 4s,
// 6s, … No sleep precedes the first attempt or follows the last.
func Backoff(attempt int, interval time.Duration) time.Duration {
	if attempt < 1 {
		return 0
	}
	return time.Duration(attempt) * interval
}
