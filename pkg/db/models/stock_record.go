package models

import "time"

// StockRecord is a denormalized snapshot of plant stock availability.
// Column and JSON names mirror the upstream dataset headers; SAL is the
// free-text availability field that drives delivery estimates.
type StockRecord struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Type      string    `gorm:"column:typ" json:"TYP"`
	DateCode  string    `gorm:"column:dtp" json:"DTP"`
	Packet    string    `gorm:"column:pkt" json:"PKT"`
	Grade     string    `gorm:"column:grd;index" json:"GRD"`
	Finish    string    `gorm:"column:fin" json:"FIN"`
	Thickness string    `gorm:"column:thk" json:"THK"`
	Width     string    `gorm:"column:widt" json:"WIDT"`
	Length    string    `gorm:"column:lngt" json:"LNGT"`
	Weight    string    `gorm:"column:pwt" json:"PWT"`
	Quality   string    `gorm:"column:qly" json:"QLY"`
	Edge      string    `gorm:"column:edge" json:"EDGE"`
	ASP       string    `gorm:"column:asp" json:"ASP"`
	HRC       string    `gorm:"column:hrc1" json:"HRC1"`
	BL        string    `gorm:"column:bl" json:"BL"`
	SAL       string    `gorm:"column:sal" json:"SAL"`
	Store     string    `gorm:"column:store" json:"STORE"`
	Nickel    string    `gorm:"column:nickel" json:"NICKEL"`
	CoilNo    string    `gorm:"column:coilno" json:"COILNO"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName pins the table to the upstream dataset name.
func (StockRecord) TableName() string {
	return "stock_data"
}
