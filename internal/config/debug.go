package config

import "os"

func IsDebug() bool {
	return os.Getenv("SULPHITE_DEBUG") == "1"
}
