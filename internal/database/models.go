package database

import "time"

// Models exist for migration and seeding. Request-path reads and writes go
// through the placeholder adapter instead, so column names here must match
// the raw statements in internal/repository.

// Project is a portfolio entry shown on the work page.
type Project struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text;not null"`
	Category    string    `gorm:"size:32;not null"`
	Image       *string   `gorm:"size:512"`
	Stack       string    `gorm:"type:text"`
	LiveURL     *string   `gorm:"column:live_url;size:512"`
	GithubURL   *string   `gorm:"column:github_url;size:512"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Project) TableName() string { return "projects" }

// ResumeEntry is one block of the resume, grouped by section when read.
// Content holds either JSON text or a plain string.
type ResumeEntry struct {
	ID         uint   `gorm:"primaryKey"`
	Section    string `gorm:"size:64;index"`
	Content    string `gorm:"type:text"`
	OrderIndex int    `gorm:"column:order_index;default:0"`
}

func (ResumeEntry) TableName() string { return "resume_data" }

// Stat is a homepage counter keyed by a unique business key.
type Stat struct {
	ID           uint   `gorm:"primaryKey"`
	StatKey      string `gorm:"column:stat_key;size:64;uniqueIndex"`
	StatLabel    string `gorm:"column:stat_label;size:255"`
	StatValue    int    `gorm:"column:stat_value;default:0"`
	DisplayOrder int    `gorm:"column:display_order;default:0"`
}

func (Stat) TableName() string { return "stats" }

// ContactField is one name/value pair of the contact page.
type ContactField struct {
	ID         uint   `gorm:"primaryKey"`
	FieldName  string `gorm:"column:field_name;size:64;uniqueIndex"`
	FieldValue string `gorm:"column:field_value;type:text"`
}

func (ContactField) TableName() string { return "contact_info" }

// CVFile records an uploaded CV. At most one row is active; the upload path
// deactivates all rows before inserting the new one.
type CVFile struct {
	ID         uint      `gorm:"primaryKey"`
	FileName   string    `gorm:"column:file_name;size:255"`
	FilePath   string    `gorm:"column:file_path;size:512"`
	FileSize   int64     `gorm:"column:file_size"`
	IsActive   bool      `gorm:"column:is_active;default:false"`
	UploadedAt time.Time `gorm:"column:uploaded_at;autoCreateTime"`
}

func (CVFile) TableName() string { return "cv_files" }

// AdminUser is the single panel account. Seeded at bootstrap, read-only after.
type AdminUser struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"size:64;uniqueIndex"`
	Password string `gorm:"size:255"`
	Email    string `gorm:"size:255"`
}

func (AdminUser) TableName() string { return "admin_users" }
