package config

import (
	"github.com/sizzlei/confloader"
)

// paramLoader fetches the 'repository' block from the AWS parameter store.
// Tests replace it.
var paramLoader = func(region, path string) (map[string]interface{}, error) {
	conf, err := confloader.AWSParamLoader(region, path)
	if err != nil {
		return nil, err
	}
	return conf.Keyload("repository"), nil
}
