package supplychain

import "github.com/kelseyhightower/envconfig"

// envDefaults mirrors the environment variables the constructor falls back
// to when explicit arguments are empty. CLIENT_TYPE set to an empty string
// deliberately yields an empty tag, which suppresses the X-Client-Type
// header; the default only applies when the variable is unset.
type envDefaults struct {
	APIKey     string `envconfig:"API_KEY"`
	ClientType string `envconfig:"CLIENT_TYPE" default:"agent"`
}

func defaultsFromEnv() envDefaults {
	var d envDefaults
	_ = envconfig.Process("", &d)
	return d
}
