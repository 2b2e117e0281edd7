package models

import "time"

type Customer struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"       json:"id"`
	Name    string `gorm:"size:50;not null"               json:"name"`
	Email   string `gorm:"size:100;not null;uniqueIndex"  json:"email"`
	Address string `gorm:"size:200"                       json:"address"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string  `gorm:"size:200;not null"        json:"product_name"`
	Price       float64 `gorm:"not null"                 json:"price"`
}

type Order struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderDate  time.Time `gorm:"type:date;not null"       json:"order_date"`
	CustomerID uint      `gorm:"index;not null"           json:"customer_id"`
}

// OrderProduct links an order to a product. The composite primary key keeps
// the association a set: the same product cannot be attached to the same
// order twice.
type OrderProduct struct {
	OrderID   uint `gorm:"primaryKey" json:"order_id"`
	ProductID uint `gorm:"primaryKey" json:"product_id"`
}

func (OrderProduct) TableName() string { return "order_products" }
