package config

import (
	"io/ioutil"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type YamlConfig struct {
	FileLocation string
}

func (conf *YamlConfig) GetAllFields() (*CasaConfig, error) {
	content, err := ioutil.ReadFile(conf.FileLocation)
	if err != nil {
		return nil, err
	}
	var casaConfig CasaConfig
	err = yaml.UnmarshalStrict(content, &casaConfig)
	if err != nil {
		return nil, err
	}
	if err = casaConfig.Validate(); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"file":       conf.FileLocation,
		"name":       casaConfig.Name,
		"appliances": len(casaConfig.Appliances),
	}).Debugf("loaded config")
	return &casaConfig, nil
}
