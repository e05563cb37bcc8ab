package meta

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service loads assets (configs, command scripts) from any URL scheme
// supported by the abstract file system, expanding ${env.KEY}
// expressions in the loaded text.
type Service struct {
	fs      afs.Service
	baseURL string
}

// New creates a meta service. A nil fs defaults to the standard afs
// service; baseURL, when set, resolves relative asset locations.
func New(fs afs.Service, baseURL string) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, baseURL: baseURL}
}

// Download fetches the raw asset with env expressions expanded.
func (s *Service) Download(ctx context.Context, URL string) ([]byte, error) {
	data, err := s.fs.DownloadWithURL(ctx, s.normalizeURL(URL))
	if err != nil {
		return nil, err
	}
	return []byte(expandEnvExpr(string(data))), nil
}

// Load fetches a YAML asset and decodes it into target.
func (s *Service) Load(ctx context.Context, URL string, target interface{}) error {
	data, err := s.Download(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", URL, err)
	}
	if err = yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", URL, err)
	}
	return nil
}

func (s *Service) normalizeURL(URL string) string {
	if s.baseURL == "" || strings.Contains(URL, "://") || strings.HasPrefix(URL, "/") {
		return URL
	}
	return url.Join(s.baseURL, URL)
}
