package models

type FileAttachment struct {
	Base
	OwnerType string `json:"ownerType" gorm:"index;not null"`
	OwnerID   string `json:"ownerId" gorm:"index;not null"`
	Name      string `json:"name" gorm:"not null"`
	MimeType  string `json:"mimeType"`
	Size      int64  `json:"size"`
	DataURL   string `json:"dataUrl,omitempty" gorm:"column:data_url;type:text"`
}

func (FileAttachment) TableName() string { return "attachment" }

func (a FileAttachment) WithMeta(b Base) FileAttachment {
	a.Base = b
	return a
}

func (a FileAttachment) Clone() FileAttachment { return a }
