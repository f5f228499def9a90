package model

import "time"

// Transaction is one purchase event (the receipt header). TotalAmt stays at
// the provisional 0 until every detail row has been staged in the same
// database transaction.
type Transaction struct {
	TrdID    int       `gorm:"column:trd_id;primaryKey;autoIncrement" json:"TRD_ID"`
	Datetime time.Time `gorm:"column:datetime;not null;autoCreateTime" json:"DATETIME"`
	EmpCd    string    `gorm:"column:emp_cd;type:varchar(10);not null" json:"EMP_CD"`
	StoreCd  string    `gorm:"column:store_cd;type:varchar(5);not null" json:"STORE_CD"`
	PosNo    string    `gorm:"column:pos_no;type:varchar(3);not null" json:"POS_NO"`
	TotalAmt int       `gorm:"column:total_amt;not null;default:0" json:"TOTAL_AMT"`

	Details []TransactionDetail `gorm:"foreignKey:TrdID;references:TrdID" json:"details,omitempty"`
}

func (Transaction) TableName() string { return "t_trd_okabe" }

// TransactionDetail is one line item, with a snapshot of the product at
// purchase time so later catalog price changes never alter past receipts.
// DtlID is a database identity column: sequence allocation is serialized by
// the store itself, so concurrent purchases can never collide.
type TransactionDetail struct {
	DtlID    int    `gorm:"column:dtl_id;primaryKey;autoIncrement" json:"DTL_ID"`
	TrdID    int    `gorm:"column:trd_id;not null;index" json:"TRD_ID"`
	PrdID    int    `gorm:"column:prd_id;not null" json:"PRD_ID"`
	PrdCode  string `gorm:"column:prd_code;type:varchar(13);not null" json:"PRD_CODE"`
	PrdName  string `gorm:"column:prd_name;type:varchar(50);not null" json:"PRD_NAME"`
	PrdPrice int    `gorm:"column:prd_price;not null" json:"PRD_PRICE"`
}

func (TransactionDetail) TableName() string { return "t_trd_dtl_okabe" }
