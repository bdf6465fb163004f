package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type OrderUsecase struct {
	tx    repo.TransactionManager
	users repo.UserRepository
	clock Clock
}

// DI
func NewOrderUsecase(tx repo.TransactionManager, users repo.UserRepository, clock Clock) *OrderUsecase {
	return &OrderUsecase{tx: tx, users: users, clock: clock}
}

type CreateOrderInput struct {
	CartIDs             []int64
	ShippingAddress     string
	ShippingRequestNote string
	PayMethod           string
}

type OrderProductOutput struct {
	ID              int64                   `json:"id"`
	ProductPrice    int64                   `json:"product_price"`
	OrderedQuantity int64                   `json:"ordered_quantity"`
	OrderedPrice    int64                   `json:"ordered_price"`
	Status          string                  `json:"status"`
	ProductOption   OptionWithProductOutput `json:"product_option"`
}

type PaymentOutput struct {
	ID                    int64  `json:"id"`
	PayPrice              int64  `json:"pay_price"`
	PayMethod             string `json:"pay_method"`
	AdditionalInformation string `json:"additional_information"`
}

type OrderOutput struct {
	ID                  int64                `json:"id"`
	OrderUID            string               `json:"order_uid"`
	ShippingPrice       int64                `json:"shipping_price"`
	ShippingAddress     string               `json:"shipping_address"`
	ShippingRequestNote string               `json:"shipping_request_note"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
	IsPaid              bool                 `json:"is_paid"`
	User                UserOutput           `json:"user"`
	OrderProducts       []OrderProductOutput `json:"order_products"`
	Payment             PaymentOutput        `json:"payment"`
}

// チェックアウト本体。cart_idsをOrder+OrderProduct+Paymentに変換する。
// 全部1トランザクションで、途中で失敗したら何も残らない。
// cart行は消さない：同じcart_idsをロック解放後にもう一度送れば別の注文になる
// （カートを再注文のテンプレートとして残す現行仕様）。
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID int64, in CreateOrderInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(in.CartIDs) == 0 {
		return OrderOutput{}, NewFieldError("cart_ids", "이 필드는 필수 항목입니다.")
	}
	if strings.TrimSpace(in.ShippingAddress) == "" {
		return OrderOutput{}, NewFieldError("shipping_address", "이 필드는 필수 항목입니다.")
	}

	// pay_methodは閉じた列挙。永続化に触る前に弾く。
	payMethod := model.PayMethod(in.PayMethod)
	if !payMethod.Valid() {
		return OrderOutput{}, NewFieldError("pay_method", "올바른 pay_method를 입력 해주세요.")
	}

	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var out OrderOutput

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 1. cart行をoption/product/provider込みでロード。
		//    他人のidや存在しないidは件数差で丸ごと弾く（部分成功はさせない）。
		carts, err := r.Carts().FindByIDsForUser(ctx, userID, in.CartIDs)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(carts) != len(in.CartIDs) {
			return NewFieldError("cart_ids", "잘못된 cart id가 포함되어 있습니다.")
		}

		// 2. 在庫チェック。足りないものを全部集めてから1回で返す。
		var noStock []string
		for _, cart := range carts {
			if cart.Quantity > cart.ProductOption.Stock {
				noStock = append(noStock, cart.ProductOption.Product.Name+"/"+cart.ProductOption.Name)
			}
		}
		if len(noStock) > 0 {
			return NewNonFieldError(strings.Join(noStock, ", ") + " 의 재고가 부족합니다")
		}

		// 3. 配送料を集計
		products := make([]model.Product, 0, len(carts))
		for _, cart := range carts {
			products = append(products, cart.ProductOption.Product)
		}
		shippingPrice := CalcShippingPrice(products)

		// 4-5. Order作成
		order, err := r.Orders().Create(ctx, model.Order{
			UserID:              userID,
			OrderUID:            newOrderUID(u.clock.Now(), userID),
			ShippingPrice:       shippingPrice,
			ShippingAddress:     in.ShippingAddress,
			ShippingRequestNote: in.ShippingRequestNote,
			IsPaid:              false,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 6. 明細。価格は注文時点のスナップショット。
		orderProducts := make([]model.OrderProduct, 0, len(carts))
		for _, cart := range carts {
			cartID := cart.ID
			orderProducts = append(orderProducts, model.OrderProduct{
				OrderID:         order.ID,
				UserID:          userID,
				CartID:          &cartID,
				ProductOptionID: cart.ProductOptionID,
				ProductOption:   cart.ProductOption,
				ProductPrice:    cart.ProductOption.Product.Price,
				OrderedQuantity: cart.Quantity,
				OrderedPrice:    cart.ProductOption.Product.Price * cart.Quantity,
				Status:          model.OrderProductStatusPending,
			})
		}
		orderProducts, err = r.Orders().CreateProducts(ctx, orderProducts)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 7. Payment。pay_price = shipping_price + Σ ordered_price。
		var orderedSum int64
		for _, op := range orderProducts {
			orderedSum += op.OrderedPrice
		}
		payment, err := r.Payments().Create(ctx, model.Payment{
			OrderID:   order.ID,
			PayPrice:  order.ShippingPrice + orderedSum,
			PayMethod: payMethod,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(order, user, orderProducts, payment)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 人が読めるタイムスタンプ接頭辞（UTC、マイクロ秒上2桁まで）＋ユーザーid。
// 同一ユーザー・同一10µs枠の衝突対策にuuid断片を足してある。
func newOrderUID(now time.Time, userID int64) string {
	now = now.UTC()
	micro2 := now.Nanosecond() / 10000000
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s%02d%d-%s", now.Format("20060102150405"), micro2, userID, suffix)
}

func toOrderOutput(o model.Order, user model.User, products []model.OrderProduct, payment model.Payment) OrderOutput {
	outProducts := make([]OrderProductOutput, 0, len(products))
	for _, op := range products {
		outProducts = append(outProducts, OrderProductOutput{
			ID:              op.ID,
			ProductPrice:    op.ProductPrice,
			OrderedQuantity: op.OrderedQuantity,
			OrderedPrice:    op.OrderedPrice,
			Status:          string(op.Status),
			ProductOption:   toOptionWithProductOutput(op.ProductOption),
		})
	}

	return OrderOutput{
		ID:                  o.ID,
		OrderUID:            o.OrderUID,
		ShippingPrice:       o.ShippingPrice,
		ShippingAddress:     o.ShippingAddress,
		ShippingRequestNote: o.ShippingRequestNote,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
		IsPaid:              o.IsPaid,
		User:                toUserOutput(user),
		OrderProducts:       outProducts,
		Payment: PaymentOutput{
			ID:                    payment.ID,
			PayPrice:              payment.PayPrice,
			PayMethod:             string(payment.PayMethod),
			AdditionalInformation: payment.AdditionalInformation,
		},
	}
}
