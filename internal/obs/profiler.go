package obs

import (
	"log"

	pyroscope "github.com/grafana/pyroscope-go"
)

// StartProfiler starts continuous profiling when an address is configured
// and returns the stop function. An empty address is a no-op: profiling is
// strictly opt-in for the adapters.
func StartProfiler(app, serverAddress string) func() {
	if serverAddress == "" {
		return func() {}
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: app,
		ServerAddress:   serverAddress,
		Logger:          emptyLogger{},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
		},
	})
	if err != nil {
		log.Fatalf("pyroscope start failed: %v", err)
	}
	return func() {
		_ = profiler.Stop()
	}
}

// emptyLogger keeps the profiler quiet: its chatter has no place on either
// side of the adapter's stdio contract.
type emptyLogger struct{}

func (emptyLogger) Infof(_ string, _ ...interface{})  {}
func (emptyLogger) Debugf(_ string, _ ...interface{}) {}
func (emptyLogger) Errorf(_ string, _ ...interface{}) {}
