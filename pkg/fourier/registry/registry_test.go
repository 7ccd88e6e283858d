package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/epicycles/pkg/fourier"
	_ "github.com/xaionaro-go/epicycles/pkg/fourier/implementations/godsp"
	"github.com/xaionaro-go/epicycles/pkg/fourier/implementations/gonum"
	_ "github.com/xaionaro-go/epicycles/pkg/fourier/implementations/radix2"
	"github.com/xaionaro-go/epicycles/pkg/fourier/registry"
)

func TestTransformerFactories(t *testing.T) {
	require.Equal(t, []string{"gonum", "godsp", "radix2", "naive"}, registry.Names())

	tr, err := registry.NewTransformer("")
	require.NoError(t, err)
	require.IsType(t, &gonum.Transformer{}, tr)

	tr, err = registry.NewTransformer(" Naive ")
	require.NoError(t, err)
	require.IsType(t, &fourier.Naive{}, tr)

	_, err = registry.NewTransformer("fftw")
	require.Error(t, err)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	require.Panics(t, func() {
		registry.RegisterTransformerFactory(1, registry.NaiveFactory{})
	})
	require.Panics(t, func() {
		registry.RegisterTransformerFactory(1, &registry.NaiveFactory{})
	})
}
