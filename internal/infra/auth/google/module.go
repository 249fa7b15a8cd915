package google

import "go.uber.org/fx"

// Module loads the service account and provides the token provider
var Module = fx.Module("google-auth",
	fx.Provide(
		LoadServiceAccount,
		NewTokenProvider,
	),
)
