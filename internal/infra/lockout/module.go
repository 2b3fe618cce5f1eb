package lockout

import (
	"voiceauth/config"
	"voiceauth/internal/domain/repository"
	"voiceauth/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the dependencies of the lockout repository.
type Params struct {
	fx.In

	Config *config.Config
	DB     *gorm.DB
}

// NewRepository selects the configured lockout backend.
func NewRepository(params Params) repository.LockoutRepository {
	if params.Config.Lockout.Backend == config.BackendPostgres {
		return postgres.NewLockoutRepository(params.DB)
	}

	return NewMemoryStore(nil)
}
