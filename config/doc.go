// Package config loads engine configuration from YAML files, .env files,
// and environment variables using viper.
//
// Precedence, lowest to highest: config.yml, .env, process environment.
// EngineConfig is the root struct; applications embedding the engine extend
// it with their own sections.
//
//	cfg, err := config.LoadEngineConfig()
//	if err != nil {
//	    return err
//	}
//	logger.Init(cfg.Logging)
//	analyzer := analysis.New(analysis.WithOptions(cfg.Analysis))
package config
