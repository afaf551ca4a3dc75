package config

import (
	"os"
	"strconv"
	"time"
)

type BenchEngineCfg struct {
	PollInterval time.Duration
	WorkerSize   int
}

func NewBenchEngineCfg() *BenchEngineCfg {
	pollIntervalSec := os.Getenv("BENCH_POLL_INTERVAL_SEC")
	varInt, err := strconv.Atoi(pollIntervalSec)
	if err != nil {
		varInt = 5
	}
	workerSize := os.Getenv("BENCH_WORKER_SIZE")
	varInt2, err := strconv.Atoi(workerSize)
	if err != nil || varInt2 <= 0 {
		varInt2 = 2
	}
	return &BenchEngineCfg{
		PollInterval: time.Duration(varInt) * time.Second,
		WorkerSize:   varInt2,
	}
}
