package bootstrap

import (
	"homestay-pricing/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	BrokerModule,
	JWTModule,
	components.RepositoryModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
