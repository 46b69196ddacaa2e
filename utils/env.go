package utils

import "classtrack/config"

// IsProduction reports whether the server runs with a production environment.
func IsProduction() bool {
	return config.IsProduction()
}
