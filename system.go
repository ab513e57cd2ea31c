package main

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

type SysInfo struct {
	Arch     string
	Hostname string
	Platform string
	CPUCount int
	CPUFreq  float64
	RAM      float64
}

func HostStat() SysInfo {
	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	totalFreq := 0.0
	for _, cpu := range cpuStat {
		totalFreq += cpu.Mhz
	}
	freq := 0.0
	if len(cpuStat) > 0 {
		freq = totalFreq / float64(len(cpuStat)) * 1000
	}
	info := SysInfo{
		Arch:     runtime.GOARCH,
		Hostname: hostStat.Hostname,
		Platform: hostStat.Platform,
		CPUCount: len(cpuStat),
		CPUFreq:  freq,
		RAM:      float64(vmStat.Total) / 1024 / 1024 / 1024,
	}
	return info
}

// Parameters flattens the snapshot for the parameters table of a run
// database.
func (info SysInfo) Parameters() map[string]any {
	return map[string]any{
		"arch":     info.Arch,
		"hostname": info.Hostname,
		"platform": info.Platform,
		"cpu":      info.CPUCount,
		"freq":     info.CPUFreq,
		"ram":      info.RAM,
	}
}
