package params

import (
	"io/ioutil"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// LoadConfigFile reads a yaml config file on top of the default config and
// returns the result. Unknown keys are rejected.
func LoadConfigFile(configFileName string) (*AutomatonConfig, error) {
	yamlFile, err := ioutil.ReadFile(configFileName) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read config file")
	}
	conf := DefaultConfig()
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		return nil, errors.Wrap(err, "could not parse config file")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	log.WithField("configName", conf.ConfigName).Debugf("Config file values: %+v", conf)
	return conf, nil
}
