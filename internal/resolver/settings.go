package resolver

import (
	"github.com/oshokin/ptdocs/internal/config"
)

// FromSettings assembles the chain described by the version settings:
// candidate files, then the describe command, then build info, then the fallback.
func FromSettings(settings *config.VersionSettings, opts ...DescribeOption) *Resolver {
	providers := FileProviders(settings.ResolvedVersionFiles())

	if !settings.DisableDescribe && len(settings.Describe) > 0 {
		describeOptions := append([]DescribeOption{
			WithDir(settings.BaseDir),
			WithTimeout(settings.DescribeTimeout),
		}, opts...)

		providers = append(providers, NewDescribeProvider(settings.Describe, describeOptions...))
	}

	if settings.UseBuildInfo {
		providers = append(providers, NewBuildInfoProvider())
	}

	return New(settings.Fallback, providers...)
}
