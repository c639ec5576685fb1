package model

import "time"

type Photo struct {
	ID         int64      `json:"id,omitempty"`
	FileName   string     `json:"fileName"`
	FilePath   string     `json:"filePath"`
	Caption    string     `json:"caption,omitempty"`
	Comments   string     `json:"comments,omitempty"`
	EventID    *int64     `json:"eventId,omitempty"`
	PhotoDate  *time.Time `json:"photoDate,omitempty"`
	UploadedBy *int64     `json:"uploadedBy,omitempty"`
	Tags       string     `json:"tags,omitempty"` // comma-separated
	UploadedAt *time.Time `json:"uploadedAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// PhotoPatch is a partial photo update. Nil fields are left untouched.
type PhotoPatch struct {
	FileName  *string    `json:"fileName,omitempty"`
	FilePath  *string    `json:"filePath,omitempty"`
	Caption   *string    `json:"caption,omitempty"`
	Comments  *string    `json:"comments,omitempty"`
	EventID   *int64     `json:"eventId,omitempty"`
	PhotoDate *time.Time `json:"photoDate,omitempty"`
	Tags      *string    `json:"tags,omitempty"`
}

// Apply merges the patch into a copy of ph and returns it.
func (p PhotoPatch) Apply(ph Photo) Photo {
	if p.FileName != nil {
		ph.FileName = *p.FileName
	}
	if p.FilePath != nil {
		ph.FilePath = *p.FilePath
	}
	if p.Caption != nil {
		ph.Caption = *p.Caption
	}
	if p.Comments != nil {
		ph.Comments = *p.Comments
	}
	if p.EventID != nil {
		ph.EventID = p.EventID
	}
	if p.PhotoDate != nil {
		ph.PhotoDate = p.PhotoDate
	}
	if p.Tags != nil {
		ph.Tags = *p.Tags
	}
	return ph
}
