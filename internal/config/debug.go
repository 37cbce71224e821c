package config

import "os"

func IsDebug() bool {
	return os.Getenv("COINBOT_DEBUG") == "1"
}
