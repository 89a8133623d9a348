package decode

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the serializable form of Options, e.g.
//
//	workers: 4
//	policy: collect
//
// Zero or absent fields keep their DefaultOptions value.
type Config struct {
	Workers int    `yaml:"workers"`
	Policy  Policy `yaml:"policy"`
}

// UnmarshalYAML decodes a policy from its name.
func (p *Policy) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParsePolicy(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = parsed
	return nil
}

// MarshalYAML encodes a policy as its name.
func (p Policy) MarshalYAML() (any, error) {
	return p.String(), nil
}

// ParseConfig decodes a YAML document into a Config and validates it.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("decode: parsing config: %w", err)
	}
	if c.Workers < 0 {
		return Config{}, fmt.Errorf("%w: got %d", ErrBadWorkers, c.Workers)
	}
	return c, nil
}

// Options converts c into functional options for Aggregate.
func (c Config) Options() []Option {
	opts := []Option{WithPolicy(c.Policy)}
	if c.Workers > 0 {
		opts = append(opts, WithWorkers(c.Workers))
	}
	return opts
}
