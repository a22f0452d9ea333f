package config

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// validate returns the shared validator instance.
//
//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})
