package radix2

import (
	dft "github.com/xaionaro-go/epicycles/pkg/fourier"
	"github.com/xaionaro-go/epicycles/pkg/fourier/registry"
)

const (
	Priority = 40
)

func init() {
	registry.RegisterTransformerFactory(Priority, TransformerFactory{})
}

type TransformerFactory struct{}

func (TransformerFactory) String() string {
	return "radix2"
}

func (TransformerFactory) NewTransformer() dft.Transformer {
	return New(nil)
}
