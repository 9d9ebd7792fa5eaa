package config

import "errors"

// Configuration-loading errors.
var (
	ErrConfigIO    = errors.New("config: unable to read configuration file")
	ErrConfigParse = errors.New("config: unable to parse configuration document")
)
