package routing

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// AlgorithmRegistry maps algorithm names to calculators.
type AlgorithmRegistry struct {
	calculators map[string]PathCalculator
	mu          sync.RWMutex
}

var globalRegistry = &AlgorithmRegistry{
	calculators: make(map[string]PathCalculator),
}

// Register adds a calculator under name. Registering a taken name fails.
func (ar *AlgorithmRegistry) Register(name string, calculator PathCalculator) error {
	ar.mu.Lock()
	defer ar.mu.Unlock()

	if _, exists := ar.calculators[name]; exists {
		return fmt.Errorf("algorithm '%s' is already registered", name)
	}
	ar.calculators[name] = calculator
	return nil
}

// Get retrieves a calculator by name.
func (ar *AlgorithmRegistry) Get(name string) (PathCalculator, error) {
	ar.mu.RLock()
	defer ar.mu.RUnlock()

	calc, exists := ar.calculators[name]
	if !exists {
		return nil, fmt.Errorf("algorithm '%s' not found in registry", name)
	}
	return calc, nil
}

// List returns all registered algorithm names.
func (ar *AlgorithmRegistry) List() []string {
	ar.mu.RLock()
	defer ar.mu.RUnlock()

	names := make([]string, 0, len(ar.calculators))
	for name := range ar.calculators {
		names = append(names, name)
	}
	return names
}

// RegisterGlobal registers a calculator in the global registry.
func RegisterGlobal(name string, calculator PathCalculator) error {
	return globalRegistry.Register(name, calculator)
}

// GetGlobal retrieves a calculator from the global registry.
func GetGlobal(name string) (PathCalculator, error) {
	return globalRegistry.Get(name)
}

// ListGlobal returns all registered algorithm names in the global registry.
func ListGlobal() []string {
	return globalRegistry.List()
}

// The built-in calculators register at package load so engines can resolve
// them by name immediately.
func init() {
	if err := RegisterGlobal(AlgorithmDijkstra, &DijkstraCalculator{}); err != nil {
		log.Warnf("failed to register %s calculator: %v", AlgorithmDijkstra, err)
	}
	if err := RegisterGlobal(AlgorithmAStar, &AStarCalculator{}); err != nil {
		log.Warnf("failed to register %s calculator: %v", AlgorithmAStar, err)
	}
	log.Debugf("available routing algorithms: %v", ListGlobal())
}
