package models

import "time"

const (
	// DefaultTShirtColor 未指定颜色时的默认值
	DefaultTShirtColor = "White"
)

// TShirtSizes 尺码枚举（目录中出现的全部尺码）
var TShirtSizes = []string{"S", "M", "L", "XL", "2XL"}

// TShirt T恤 SKU 表（一个设计/尺码/颜色组合对应一行库存）
type TShirt struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                    // 主键
	DesignName string    `gorm:"type:varchar(100);not null;index" json:"design_name"`     // 设计名称
	Size       string    `gorm:"type:varchar(5);not null" json:"size"`                    // 尺码（S/M/L/XL/2XL）
	Color      string    `gorm:"type:varchar(20);default:'White'" json:"color"`           // 颜色
	Price      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`      // 单价
	Quantity   int       `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`  // 可售库存（任何操作后保持 >= 0）
	CreatedAt  time.Time `gorm:"index" json:"-"`                                          // 创建时间
	UpdatedAt  time.Time `json:"-"`                                                       // 更新时间
}

// TableName 指定表名
func (TShirt) TableName() string {
	return "tshirts"
}
