package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(fmtCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(keywordsCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
