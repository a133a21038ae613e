// Package envvar provides typed lookups of environment variables, used to configure the command line tools.
package envvar

import (
	"os"
	"strconv"
	"strings"
)

// GetString returns the value of the environmental variable varName with surrounding whitespace removed, if the env
// var is not set or is blank it will return "", false.
func GetString(varName string) (string, bool) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return "", false
	}

	env = strings.TrimSpace(env)

	return env, env != ""
}

// GetBool returns the boolean value of the environmental variable varName if the env var is empty or not a boolean it
// will return false, false.
func GetBool(varName string) (bool, bool) {
	val, ok := GetString(varName)
	if !ok {
		return false, false
	}

	ret, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}

	return ret, true
}
