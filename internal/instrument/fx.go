package instrument

import (
	"github.com/smallbiznis/easysale/internal/instrument/repository"
	"github.com/smallbiznis/easysale/internal/instrument/service"
	"go.uber.org/fx"
)

var Module = fx.Module("instrument.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
