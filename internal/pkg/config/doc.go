// Package config provides functionality for loading and managing application
// configuration.
//
// Settings are loaded from yaml files via viper with environment variable
// overrides, validated with go-playground/validator and made accessible to
// the rest of the application through typed settings structs.
package config
