// Package config loads goatl's module-level defaults from YAML.
//
// A config file sets the generic level, per-record levels and message
// templates, the default target logger, and the default logger's
// output:
//
//	level: info
//	logger: app
//	levels:
//	  return: debug
//	messages:
//	  call: "-> {func} {args}"
//	output:
//	  format: json
//	  file: app.log
//	  async: true
//
// Load reads and validates a file; Apply installs it via
// wrap.SetDefaults and logger.Configure. Unknown keys are rejected.
package config
