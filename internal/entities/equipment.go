package entities

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// SizeNA - размер для позиций без размерной сетки.
const SizeNA = "N/A"

func NormalizeSize(size string) string {
	size = strings.TrimSpace(size)
	if size == "" || strings.EqualFold(size, SizeNA) {
		return SizeNA
	}
	return size
}

type EquipmentItem struct {
	ID            int64
	Name          string
	Category      string
	Sizes         []string
	UnitPrice     float64
	IsChargeable  bool
	IsActive      bool
	InactiveSizes []string
	MaxPerRider   int
}

func (i *EquipmentItem) HasSize(size string) bool {
	size = NormalizeSize(size)
	if len(i.Sizes) == 0 {
		return size == SizeNA
	}
	return slices.Contains(i.Sizes, size)
}

// IsOffered - позиция и размер доступны для новой выдачи.
func (i *EquipmentItem) IsOffered(size string) bool {
	return i.IsActive && i.HasSize(size) && !slices.Contains(i.InactiveSizes, NormalizeSize(size))
}

type TransactionType string

const (
	TransactionInbound      TransactionType = "inbound"
	TransactionDistribution TransactionType = "distribution"
	TransactionReturn       TransactionType = "return"
	TransactionAdjustment   TransactionType = "adjustment"
)

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionInbound, TransactionDistribution, TransactionReturn, TransactionAdjustment:
		return true
	default:
		return false
	}
}

type StockTransaction struct {
	ID        int64
	ItemID    int64
	Size      string
	Type      TransactionType
	Quantity  int
	RiderID   *string
	BatchID   *string
	Notes     string
	CreatedAt time.Time
}

// StockKey адресует остаток: позиция + размер.
type StockKey struct {
	ItemID int64
	Size   string
}

func NewStockKey(itemID int64, size string) StockKey {
	return StockKey{ItemID: itemID, Size: NormalizeSize(size)}
}

// LockKey - ключ advisory lock'а для сериализации записей по остатку.
func (k StockKey) LockKey() string {
	return fmt.Sprintf("stock:%d:%s", k.ItemID, k.Size)
}

type StockLevel struct {
	StockKey
	Quantity int
}

// TransactionRecord - запрос на запись в журнал. Для distribution Quantity - модуль,
// для adjustment - знаковая дельта.
type TransactionRecord struct {
	ItemID   int64
	Size     string
	Type     TransactionType
	Quantity int
	RiderID  *string
	BatchID  *string
	Notes    string
}

type EquipmentSelection struct {
	ItemID           int64  `json:"item_id"`
	Size             string `json:"size"`
	QuantityPerRider int    `json:"quantity_per_rider"`
}

type DistributionBatch struct {
	BatchID      string
	RiderCount   int
	Transactions []StockTransaction
}

// StockSnapshot - остаток позиции и сколько можно выдать на райдера.
type StockSnapshot struct {
	Item        *EquipmentItem
	Size        string
	Quantity    int
	RiderCount  int
	PerRiderCap int
}

// EquipmentReturn - возврат экипировки райдером. Restock=false означает списание:
// в журнал такой возврат не пишется.
type EquipmentReturn struct {
	RiderID  string
	ItemID   int64
	Size     string
	Quantity int
	Restock  bool
	Notes    string
}
