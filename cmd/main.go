package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"routesim/congestion"
	"routesim/routing"
	"routesim/simulation"
	"routesim/topology"
)

// SimConfig holds configuration from the toml file.
type SimConfig struct {
	Simulation SimulationConfig  `toml:"simulation"`
	Flows      []simulation.Flow `toml:"flows"`
}

type SimulationConfig struct {
	Routers   int    `toml:"routers"`
	Steps     int    `toml:"steps"`
	Algorithm string `toml:"algorithm"`
	Sampler   string `toml:"sampler"`
	Seed      int64  `toml:"seed"`
	PoolSize  int    `toml:"pool_size"`
}

func loadConfig(path string) (*SimConfig, error) {
	config := &SimConfig{
		Simulation: SimulationConfig{
			Routers:   6,
			Steps:     3,
			Algorithm: routing.DefaultAlgorithm,
			Sampler:   "uniform",
			Seed:      42,
		},
		Flows: []simulation.Flow{{Source: 0, Destination: 5}},
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		if os.IsNotExist(err) {
			log.Warningf("config file %s not found, using defaults", path)
			return config, nil
		}
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return config, nil
}

// log init
func init() {
	logDir := "./logs"
	os.MkdirAll(logDir, 0755)

	// Configure log rotation with lumberjack
	fileLogger := &lumberjack.Logger{
		Filename:   logDir + "/routesim.log",
		MaxSize:    100, // MB
		MaxBackups: 7,
		MaxAge:     30, // Days
		Compress:   true,
	}

	// Output to both file and stdout
	log.SetOutput(io.MultiWriter(os.Stdout, fileLogger))
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetLevel(log.InfoLevel)
}

func newSampler(cfg SimulationConfig) congestion.Sampler {
	switch cfg.Sampler {
	case "hostload":
		return congestion.NewHostLoadSampler()
	case "fixed":
		return congestion.FixedSampler(1.0)
	default:
		return congestion.NewUniformSampler(cfg.Seed)
	}
}

func main() {
	cfg, err := loadConfig("routesim_config.toml")
	if err != nil {
		log.Fatalf("loading configuration failed, err:%v", err)
		return
	}

	net, err := topology.NewNetwork(cfg.Simulation.Routers)
	if err != nil {
		log.Fatalf("building network failed, err:%v", err)
		return
	}

	engine := routing.NewEngine(net)
	engine.SetAlgorithm(cfg.Simulation.Algorithm)

	runner, err := simulation.NewRunner(net, engine, newSampler(cfg.Simulation), cfg.Simulation.PoolSize)
	if err != nil {
		log.Fatalf("creating runner failed, err:%v", err)
		return
	}
	defer runner.Close()

	log.Infof("running %d simulation steps, algorithm=%s, %d flows",
		cfg.Simulation.Steps, engine.Algorithm(), len(cfg.Flows))

	for step := 1; step <= cfg.Simulation.Steps; step++ {
		result := runner.StepMulti(cfg.Flows)

		for _, fr := range result.Flows {
			if !fr.Found {
				log.Warningf("step %d: no path %d->%d (%.3fms)",
					step, fr.Flow.Source, fr.Flow.Destination, fr.Route.ElapsedMillis)
				continue
			}
			log.Infof("step %d: path %d->%d found: %v cost=%.2f (%.3fms)",
				step, fr.Flow.Source, fr.Flow.Destination, fr.Route.Nodes, fr.Route.Cost, fr.Route.ElapsedMillis)
		}

		ids := make([]int, 0, len(result.State.Routers))
		for id := range result.State.Routers {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			log.Infof("step %d: router %d congestion: %.2f", step, id, result.State.Routers[id].Congestion)
		}
	}
}
