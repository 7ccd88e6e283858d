// Package registry keeps the known fourier.Transformer back-ends, so
// tools can select one by name without importing every implementation.
package registry

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/xaionaro-go/epicycles/pkg/fourier"
)

// NaivePriority is the priority of the always available naive DFT.
const NaivePriority = 0

type TransformerFactory interface {
	// String returns the back-end name used for the selection.
	String() string
	NewTransformer() fourier.Transformer
}

type transformerFactoryWithPriority struct {
	Priority int
	TransformerFactory
}

var transformerFactoryRegistry = map[reflect.Type]transformerFactoryWithPriority{}

func init() {
	RegisterTransformerFactory(NaivePriority, NaiveFactory{})
}

func RegisterTransformerFactory(
	priority int,
	factory TransformerFactory,
) {
	t := reflect.ValueOf(factory).Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if _, ok := transformerFactoryRegistry[t]; ok {
		panic(fmt.Errorf("there is already registered a factory of Transformer of type %v", t))
	}
	for _, registered := range transformerFactoryRegistry {
		if registered.String() == factory.String() {
			panic(fmt.Errorf("there is already registered a Transformer named '%s'", factory))
		}
	}
	transformerFactoryRegistry[t] = transformerFactoryWithPriority{
		Priority:           priority,
		TransformerFactory: factory,
	}
}

// TransformerFactories returns the registered factories, the highest
// priority first; equal priorities are ordered by name.
func TransformerFactories() []TransformerFactory {
	var factoriesWithPriorities []transformerFactoryWithPriority
	for _, factory := range transformerFactoryRegistry {
		factoriesWithPriorities = append(factoriesWithPriorities, factory)
	}
	sort.Slice(factoriesWithPriorities, func(i, j int) bool {
		a, b := factoriesWithPriorities[i], factoriesWithPriorities[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.String() < b.String()
	})

	var factories []TransformerFactory
	for _, factory := range factoriesWithPriorities {
		factories = append(factories, factory.TransformerFactory)
	}

	return factories
}

func Names() []string {
	var names []string
	for _, factory := range TransformerFactories() {
		names = append(names, factory.String())
	}
	return names
}

// NewTransformer instantiates the back-end of the given name, or the one
// of the highest priority if name is empty.
func NewTransformer(name string) (fourier.Transformer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	factories := TransformerFactories()
	if name == "" {
		return factories[0].NewTransformer(), nil
	}
	for _, factory := range factories {
		if factory.String() == name {
			return factory.NewTransformer(), nil
		}
	}
	return nil, fmt.Errorf("unknown transformer '%s', known: %s", name, strings.Join(Names(), ", "))
}

type NaiveFactory struct{}

func (NaiveFactory) String() string {
	return "naive"
}

func (NaiveFactory) NewTransformer() fourier.Transformer {
	return fourier.NewNaive(0)
}
