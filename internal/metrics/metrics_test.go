package metrics

import (
	"testing"
)

func TestMockProvider(t *testing.T) {
	provider := &MockProvider{}
	if err := provider.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	hw := provider.Hardware()
	if hw.CPULoadPercent < 0 || hw.CPULoadPercent > 100 {
		t.Errorf("Invalid CPU usage: %f", hw.CPULoadPercent)
	}
	if hw.RAMUsedGB > hw.RAMTotalGB {
		t.Errorf("RAM used %f exceeds total %f", hw.RAMUsedGB, hw.RAMTotalGB)
	}

	procs := provider.Processes()
	if len(procs) == 0 {
		t.Error("No processes returned in mock mode")
	}
}

func TestMockProviderTerminate(t *testing.T) {
	provider := &MockProvider{}
	if err := provider.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	before := len(provider.Processes())
	if err := provider.Terminate(1000); err != nil {
		t.Fatalf("Terminate(1000) failed: %v", err)
	}
	if got := len(provider.Processes()); got != before-1 {
		t.Errorf("process count after terminate = %d, want %d", got, before-1)
	}

	if err := provider.Terminate(99999); err == nil {
		t.Error("Terminate(99999) should fail for a missing pid")
	} else if err.Error() == "" {
		t.Error("Terminate error message should not be empty")
	}
}
