package usecase

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

// Test: 同じproviderのバンドル可能商品は最安の配送料だけ払う
func TestCalcShippingPriceBundlesPerProvider(t *testing.T) {
	// provider 1: バンドル可 2000/3000 → 2000
	// provider 2: バンドル可 2000 → 2000、バンドル不可 2000 → 2000
	products := []model.Product{
		{ID: 1, ProviderID: 1, ShippingPrice: 2000, CanBundle: true},
		{ID: 2, ProviderID: 1, ShippingPrice: 3000, CanBundle: true},
		{ID: 3, ProviderID: 2, ShippingPrice: 2000, CanBundle: true},
		{ID: 4, ProviderID: 2, ShippingPrice: 2000, CanBundle: false},
	}

	assert.Equal(t, int64(6000), CalcShippingPrice(products))
}

// Test: バンドル不可は同じproviderでも1つずつかかる
func TestCalcShippingPriceNoBundle(t *testing.T) {
	products := []model.Product{
		{ID: 1, ProviderID: 1, ShippingPrice: 2500, CanBundle: false},
		{ID: 2, ProviderID: 1, ShippingPrice: 1500, CanBundle: false},
	}

	assert.Equal(t, int64(4000), CalcShippingPrice(products))
}

// Test: 同じ商品の別オプションが2行来ても商品単位で1回だけ数える
func TestCalcShippingPriceDistinctProducts(t *testing.T) {
	products := []model.Product{
		{ID: 1, ProviderID: 1, ShippingPrice: 3000, CanBundle: false},
		{ID: 1, ProviderID: 1, ShippingPrice: 3000, CanBundle: false},
	}

	assert.Equal(t, int64(3000), CalcShippingPrice(products))
}

func TestCalcShippingPriceEmpty(t *testing.T) {
	assert.Equal(t, int64(0), CalcShippingPrice(nil))
}

// Test: 配送料0のバンドルグループも0として数える
func TestCalcShippingPriceFreeShipping(t *testing.T) {
	products := []model.Product{
		{ID: 1, ProviderID: 1, ShippingPrice: 0, CanBundle: true},
		{ID: 2, ProviderID: 1, ShippingPrice: 2000, CanBundle: true},
	}

	assert.Equal(t, int64(0), CalcShippingPrice(products))
}
