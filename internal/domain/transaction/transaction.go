package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Transaction struct {
	Id            ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	CategoryId    ulid.ULID `gorm:"type:varchar(26);index:idx_transactions_category_id;not null" json:"categoryId"`
	BillingAmount float64   `gorm:"type:decimal(15,2);not null" json:"billingAmount"`
	IsIncome      bool      `gorm:"not null;default:false;index:idx_transactions_is_income" json:"isIncome"`
	Description   string    `gorm:"type:varchar(255)" json:"description"`
	Date          time.Time `gorm:"type:date;not null;index:idx_transactions_date" json:"date"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}
