package models

import "time"

const (
	// OrderStatusPending 挂起状态：创建时不扣减库存
	OrderStatusPending = "pending"
	// OrderStatusFulfilled 已交付状态：创建时立即扣减库存
	OrderStatusFulfilled = "fulfilled"
)

// Order 订单表。订单创建后不可变更，只能删除；
// status 仅 fulfilled 触发扣库存，其余值原样保存。
type Order struct {
	ID            uint      `gorm:"primarykey" json:"id"`                               // 主键
	CustomerName  string    `gorm:"type:varchar(100);not null" json:"customer_name"`    // 客户姓名
	CustomerPhone string    `gorm:"type:varchar(20)" json:"customer_phone"`             // 客户电话（可为空）
	TShirtID      uint      `gorm:"column:tshirt_id;not null;index" json:"tshirt_id"`   // 关联 SKU ID（弱引用，reset 后可能悬空）
	Quantity      int       `gorm:"not null" json:"quantity"`                           // 订购数量（> 0）
	Status        string    `gorm:"type:varchar(20);default:'pending'" json:"status"`   // 订单状态
	OrderDate     time.Time `gorm:"index" json:"order_date"`                            // 下单时间，创建后不再变更

	TShirt *TShirt `gorm:"foreignKey:TShirtID" json:"tshirt,omitempty"` // 关联 SKU
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
