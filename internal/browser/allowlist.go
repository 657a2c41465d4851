package browser

import (
	"net/url"
	"strings"
)

// HostAllowlist restricts target hosts for capture requests. Entries are
// matched case-insensitively, a "*.domain" entry matches the domain itself
// along with any of its subdomains. An empty allowlist allows every host.
type HostAllowlist struct {
	hosts []string
}

func NewHostAllowlist(hosts []string) *HostAllowlist {
	normalized := make([]string, 0, len(hosts))
	for _, h := range hosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			normalized = append(normalized, h)
		}
	}
	return &HostAllowlist{hosts: normalized}
}

func (a *HostAllowlist) Allowed(rawURL string) bool {
	if len(a.hosts) == 0 {
		return true
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	hostname := strings.ToLower(u.Hostname())
	if hostname == "" {
		return false
	}

	for _, entry := range a.hosts {
		if domain, ok := strings.CutPrefix(entry, "*."); ok {
			if hostname == domain || strings.HasSuffix(hostname, "."+domain) {
				return true
			}
		} else if hostname == entry {
			return true
		}
	}
	return false
}
