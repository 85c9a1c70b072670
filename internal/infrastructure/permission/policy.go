package permission

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

type policyFile struct {
	Inherits []struct {
		Role   string `yaml:"role"`
		Parent string `yaml:"parent"`
	} `yaml:"inherits"`
	Policies []struct {
		Role   string `yaml:"role"`
		Path   string `yaml:"path"`
		Method string `yaml:"method"`
	} `yaml:"policies"`
}

func parsePolicy(data []byte) (*policyFile, error) {
	var pf policyFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}
	return &pf, nil
}

// seed adds the embedded rules missing from the store. Rows added by operators are kept.
func (e *Enforcer) seed() error {
	pf, err := parsePolicy(defaultPolicy)
	if err != nil {
		return err
	}

	added := 0
	for _, g := range pf.Inherits {
		ok, err := e.casbin.AddGroupingPolicy(g.Role, g.Parent)
		if err != nil {
			return fmt.Errorf("failed to add role inheritance [%s, %s]: %w", g.Role, g.Parent, err)
		}
		if ok {
			added++
		}
	}
	for _, p := range pf.Policies {
		ok, err := e.casbin.AddPolicy(p.Role, p.Path, p.Method)
		if err != nil {
			e.log.Errorw("failed to add permission policy",
				"error", err,
				"role", p.Role,
				"path", p.Path,
				"method", p.Method)
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p.Role, p.Path, p.Method, err)
		}
		if ok {
			added++
		}
	}

	if added > 0 {
		e.log.Infow("permission policy seeded", "rules", added)
	}
	return nil
}
