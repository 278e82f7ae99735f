package logger_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/philipp01105/levelgate/core"
	"github.com/philipp01105/levelgate/logger"
	"github.com/philipp01105/levelgate/sink/consolesink"
)

func stdout() core.Sink {
	return consolesink.New(consolesink.Config{
		Writer:           os.Stdout,
		DisableTimestamp: true,
		NoColor:          true,
	})
}

// Use the package-level default logger for quick, no-setup logging.
func Example() {
	logger.Info("Application started")
	logger.Debug("hidden at the default Info level")
}

// Create a ThresholdLogger with the Builder pattern.
func ExampleNewBuilder() {
	log, err := logger.NewBuilder().
		WithSink(stdout()).
		WithLevel(logger.WarnLevel).
		WithPrefix("api:").
		Build()
	if err != nil {
		panic(err)
	}

	log.Info("ready", 8080)
	log.Warn("slow start", "3s")
	// Output: [WARN] api: slow start 3s
}

func ExampleThresholdLogger_SetLevel() {
	log, _ := logger.NewThresholdLogger(stdout(), logger.InfoLevel)

	log.Debug("before")
	if _, err := log.SetLevel(logger.DebugLevel); err != nil {
		panic(err)
	}
	log.Debug("after")
	log.ResetLevel()
	log.Debug("reset")

	_, err := log.SetLevel(-1)
	fmt.Println(err)
	// Output:
	// [DEBUG] after
	// invalid log level: -1, expected one of [0, 1, 2, 3, 4, 5]
}

type cacheKey string

func ExampleKeyedLogger() {
	log := logger.NewKeyedLogger(stdout(), map[cacheKey]logger.Level{
		"miss":  logger.DebugLevel,
		"evict": logger.InfoLevel,
	})

	_ = log.LogKey("miss", "miss", "user:1")
	log.SetMapping(map[cacheKey]logger.Level{"miss": logger.NoneLevel})
	_ = log.LogKey("miss", "muted")

	_ = log.SetAll(logger.ErrorLevel)
	_ = log.LogKey("evict", "evicted", 3)
	fmt.Println(errors.Is(log.SetAll(logger.InfoLevel), core.ErrOverrideAlreadyActive))
	log.ResetAll()

	err := log.LogKey("hit", "never mapped")
	fmt.Println(err)
	// Output:
	// [DEBUG] miss user:1
	// [ERROR] evicted 3
	// true
	// unknown log key: hit
}
