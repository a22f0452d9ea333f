package resolver

import (
	"context"
	"errors"

	"github.com/oshokin/ptdocs/internal/version"
)

// errNoBuildInfo is reported when the binary carries no module version.
var errNoBuildInfo = errors.New("no module version in build info")

// BuildInfoProvider reports the main module version embedded by the Go toolchain.
type BuildInfoProvider struct {
	// read returns the module version or "".
	read func() string
}

// NewBuildInfoProvider returns a provider backed by runtime build info.
func NewBuildInfoProvider() *BuildInfoProvider {
	return &BuildInfoProvider{read: version.ModuleVersion}
}

// Name implements Provider.
func (*BuildInfoProvider) Name() string {
	return "buildinfo"
}

// Provide implements Provider.
func (p *BuildInfoProvider) Provide(_ context.Context) (string, error) {
	if v := p.read(); v != "" {
		return v, nil
	}

	return "", errNoBuildInfo
}
