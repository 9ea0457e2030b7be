package model

import "time"

type AssignmentStatus string

const (
	AssignmentStatusAssigned   AssignmentStatus = "assigned"
	AssignmentStatusUnassigned AssignmentStatus = "unassigned"
)

// 注文ごとにassignedは最大1行。
// 再割当は既存行のdelivery_man_idを書き換える（2行目は作らない）。
type AssignDeliveryMan struct {
	ID            int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	DeliveryManID int64            `gorm:"not null;index" json:"delivery_man_id"`
	OrderID       int64            `gorm:"not null;index" json:"order_id"`
	Status        AssignmentStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Note          string           `gorm:"type:text" json:"note"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
