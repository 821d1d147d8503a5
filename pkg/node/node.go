package node

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/prevostc/graph-tooling/pkg/validate"
)

// Product names accepted by --product.
const (
	ProductStudio        = "subgraph-studio"
	ProductHostedService = "hosted-service"
)

// Deploy endpoints of the hosted products.
const (
	SubgraphStudioURL = "https://api.studio.thegraph.com/deploy/"
	HostedServiceURL  = "https://api.thegraph.com/deploy/"
)

var productURLs = map[string]string{
	ProductStudio:        SubgraphStudioURL,
	ProductHostedService: HostedServiceURL,
}

// Products returns the accepted product names in a stable order.
func Products() []string {
	names := make([]string, 0, len(productURLs))
	for k := range productURLs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// IsProduct reports whether s names a known product.
func IsProduct(s string) bool {
	_, ok := productURLs[s]
	return ok
}

// Selection is the outcome of Choose.
type Selection struct {
	Node string
}

// Choose resolves the node URL from an explicit node or a product selection.
// studio is a shortcut for product "subgraph-studio" and wins over node.
func Choose(product string, studio bool, node string) (Selection, error) {
	if node != "" {
		if err := Validate(node); err != nil {
			return Selection{}, fmt.Errorf("node URL is invalid: %w", err)
		}
	}
	if studio {
		product = ProductStudio
	}
	if product != "" {
		u, ok := productURLs[product]
		if !ok {
			return Selection{}, fmt.Errorf("unknown product %q: must be one of %s", product, strings.Join(Products(), ", "))
		}
		node = u
	}
	return Selection{Node: node}, nil
}

// Validate checks that s parses as a node URL.
func Validate(s string) error {
	_, err := validate.NodeURL(s)
	return err
}

// Normalize returns the canonical form of a node URL used as a keystore key.
// An empty path becomes "/" so "http://host:8020" and "http://host:8020/" match.
func Normalize(s string) (string, error) {
	u, err := validate.NodeURL(s)
	if err != nil {
		return "", err
	}
	return normalizeURL(u), nil
}

func normalizeURL(u *url.URL) string {
	c := *u
	c.Scheme = strings.ToLower(c.Scheme)
	c.Host = strings.ToLower(c.Host)
	if c.Path == "" && c.Opaque == "" {
		c.Path = "/"
	}
	return c.String()
}
