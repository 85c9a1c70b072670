// Package permission maps a caller's role to the routes it may call.
package permission

import (
	_ "embed"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"likenovel/internal/shared/logger"
)

//go:embed model.conf
var modelText string

// Enforcer checks (role, route pattern, method) triples against casbin_rule.
type Enforcer struct {
	casbin *casbin.SyncedEnforcer
	log    logger.Interface
}

// NewEnforcer loads casbin_rule and then adds any embedded default rule it lacks.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("casbin adapter: %w", err)
	}
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("casbin model: %w", err)
	}
	synced, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("casbin enforcer: %w", err)
	}

	e := &Enforcer{casbin: synced, log: log.Named("permission")}
	if err := e.seed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enforcer) Enforce(role, route, method string) (bool, error) {
	allowed, err := e.casbin.Enforce(role, route, method)
	if err != nil {
		e.log.Errorw("permission check failed", "error", err, "role", role, "route", route, "method", method)
		return false, err
	}
	return allowed, nil
}

// Grant stores an extra rule. method is a regular expression matched against the request method.
func (e *Enforcer) Grant(role, route, method string) error {
	_, err := e.casbin.AddPolicy(role, route, method)
	return err
}

func (e *Enforcer) Revoke(role, route, method string) error {
	_, err := e.casbin.RemovePolicy(role, route, method)
	return err
}
