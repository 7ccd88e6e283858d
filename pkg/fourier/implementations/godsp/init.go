package godsp

import (
	"github.com/xaionaro-go/epicycles/pkg/fourier"
	"github.com/xaionaro-go/epicycles/pkg/fourier/registry"
)

const (
	Priority = 50
)

func init() {
	registry.RegisterTransformerFactory(Priority, TransformerFactory{})
}

type TransformerFactory struct{}

func (TransformerFactory) String() string {
	return "godsp"
}

func (TransformerFactory) NewTransformer() fourier.Transformer {
	return New()
}
