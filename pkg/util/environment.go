package util

import (
	"os"
	"strings"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		name, value, found := strings.Cut(variable, "=")
		if !found {
			continue
		}

		environmentVariables[name] = value
	}

	return environmentVariables
}
