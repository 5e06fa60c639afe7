package config

import "github.com/gofiber/fiber/v2/log"

// FiberLogLevel traduce LOG_LEVEL al nivel del logger de fiber.
func FiberLogLevel(level string) log.Level {
	switch level {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
