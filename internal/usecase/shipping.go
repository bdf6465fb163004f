package usecase

import "app/internal/domain/model"

// 注文に含まれる商品の配送料を計算する。
// can_bundleな商品は同じprovider同士でまとめて、その中の最安の配送料だけ払う。
// can_bundleでない商品は1つずつ配送料がかかる。
func CalcShippingPrice(products []model.Product) int64 {
	// cart行は同じ商品の別オプションを指せるので、商品単位に寄せる
	distinct := make(map[int64]model.Product, len(products))
	for _, p := range products {
		distinct[p.ID] = p
	}

	minByProvider := map[int64]int64{}
	var separate int64

	for _, p := range distinct {
		if !p.CanBundle {
			separate += p.ShippingPrice
			continue
		}

		cur, ok := minByProvider[p.ProviderID]
		if !ok || p.ShippingPrice < cur {
			minByProvider[p.ProviderID] = p.ShippingPrice
		}
	}

	var bundled int64
	for _, min := range minByProvider {
		bundled += min
	}

	return bundled + separate
}
