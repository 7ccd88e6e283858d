package gonum

import (
	"github.com/xaionaro-go/epicycles/pkg/fourier"
	"github.com/xaionaro-go/epicycles/pkg/fourier/registry"
)

const (
	Priority = 60
)

func init() {
	registry.RegisterTransformerFactory(Priority, TransformerFactory{})
}

type TransformerFactory struct{}

func (TransformerFactory) String() string {
	return "gonum"
}

func (TransformerFactory) NewTransformer() fourier.Transformer {
	return New()
}
