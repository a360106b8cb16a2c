// Package config loads the umatrix tool configuration from YAML.
//
// Load starts from DefaultConfig, expands ${ENV} references, decodes the file
// strictly (unknown keys are errors) and validates the result. The typed
// accessors translate sections into the option structs of the source,
// hexgrid, umatrix and loader packages.
package config
