package category

import (
	"crypto/sha256"
	"time"

	"github.com/oklog/ulid/v2"
)

type Type string

const (
	TypeExpense Type = "expense"
	TypeIncome  Type = "income"
)

func (t Type) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

type Category struct {
	Id        ulid.ULID `json:"id" gorm:"type:varchar(26);primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;index:idx_categories_name,unique"`
	Type      Type      `json:"type" gorm:"type:varchar(10);not null;default:'expense'"`
	Icon      string    `json:"icon" gorm:"type:varchar(50)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}

type DefaultCategoryDefinition struct {
	Name string
	Type Type
	Icon string
}

var DefaultCategories = []DefaultCategoryDefinition{
	{Name: "Groceries", Type: TypeExpense, Icon: "food"},
	{Name: "Transport", Type: TypeExpense, Icon: "car"},
	{Name: "Health", Type: TypeExpense, Icon: "health"},
	{Name: "Entertainment", Type: TypeExpense, Icon: "entertainment"},
	{Name: "Housing", Type: TypeExpense, Icon: "home"},
	{Name: "Shopping", Type: TypeExpense, Icon: "shopping"},
	{Name: "Bills", Type: TypeExpense, Icon: "bills"},
	{Name: "Salary", Type: TypeIncome, Icon: "salary"},
	{Name: "Freelance", Type: TypeIncome, Icon: "freelance"},
	{Name: "Other", Type: TypeExpense, Icon: "other"},
}

// GetDefaultCategories monta o conjunto padrão com IDs determinísticos, para
// que reexecuções do seed não dupliquem categorias.
func GetDefaultCategories() []*Category {
	now := time.Now()
	categories := make([]*Category, 0, len(DefaultCategories))

	for _, defaultCat := range DefaultCategories {
		categories = append(categories, &Category{
			Id:        GenerateDeterministicID(defaultCat.Name),
			Name:      defaultCat.Name,
			Type:      defaultCat.Type,
			Icon:      defaultCat.Icon,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return categories
}

func GenerateDeterministicID(categoryName string) ulid.ULID {
	hash := sha256.Sum256([]byte("default_category:" + categoryName))

	timestamp := ulid.Timestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	entropy := [10]byte{}
	copy(entropy[:], hash[:10])

	reader := &deterministicReader{data: entropy[:]}
	return ulid.MustNew(timestamp, reader)
}

type deterministicReader struct {
	data []byte
	pos  int
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if r.pos >= len(r.data) {
		r.pos = 0
	}

	n := copy(p, r.data[r.pos:])
	r.pos += n

	if r.pos >= len(r.data) {
		r.pos = 0
	}

	return n, nil
}
