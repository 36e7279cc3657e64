package observability

import (
	"os"

	"github.com/shirou/gopsutil/process"
)

// ProcessUsage is the process footprint attached to stats responses.
type ProcessUsage struct {
	CPUPercent float64 `json:"cpuPercent"`
	RAMPercent float32 `json:"ramPercent"`
}

// ProbeProcess samples the current process cpu and memory usage.
func ProbeProcess() (ProcessUsage, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ProcessUsage{}, err
	}
	cpu, err := proc.CPUPercent()
	if err != nil {
		return ProcessUsage{}, err
	}
	ram, err := proc.MemoryPercent()
	if err != nil {
		return ProcessUsage{}, err
	}
	return ProcessUsage{CPUPercent: cpu, RAMPercent: ram}, nil
}
