package budget

import (
	"time"

	"finsight/internal/domain/period"

	"github.com/oklog/ulid/v2"
)

type Budget struct {
	Id           ulid.ULID          `gorm:"type:varchar(26);primaryKey" json:"id"`
	CategoryId   ulid.ULID          `gorm:"type:varchar(26);index:idx_budgets_category;not null" json:"categoryId"`
	CategoryName string             `gorm:"-" json:"categoryName,omitempty"`
	Amount       float64            `gorm:"type:decimal(15,2);not null" json:"amount"`
	Period       period.Granularity `gorm:"type:varchar(10);not null;index:idx_budgets_category_period" json:"period"`
	StartDate    time.Time          `gorm:"type:date;not null" json:"startDate"`
	EndDate      *time.Time         `gorm:"type:date" json:"endDate,omitempty"`
	CreatedAt    time.Time          `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt    time.Time          `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Budget) TableName() string {
	return "budgets"
}
